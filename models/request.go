package models

// Athlete is one group-member entry inside a group registration payload.
type Athlete struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Gender      string `json:"gender"`
	TShirtSize  string `json:"tshirt_size"`
}

// RegistrationRequest is the upstream POST /register/ payload. All three
// flow variants share this envelope; the variant-specific fields are
// omitted when empty.
type RegistrationRequest struct {
	IsAthlete    bool   `json:"is_athlete"`
	EventID      int    `json:"event_id"`
	CourtesyCode string `json:"courtesy_code"`

	// Individual variant.
	TShirtSize string `json:"tshirt_size,omitempty"`
	Gender     string `json:"gender,omitempty"`

	// Group variant.
	GroupName    string    `json:"group_name,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Athletes     []Athlete `json:"athletes,omitempty"`

	// Spectator variant.
	Quantity int `json:"quantity,omitempty"`

	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`

	ClientFirstName  string `json:"client_first_name"`
	ClientLastName   string `json:"client_last_name"`
	ClientPhone      string `json:"client_phone"`
	ClientEmail      string `json:"client_email"`
	ClientCountry    string `json:"client_country"`
	ClientCity       string `json:"client_city"`
	ClientState      string `json:"client_state"`
	ClientPostalCode string `json:"client_postal_code"`
	ClientLocation   string `json:"client_location"`

	CardName string `json:"card_name"`
	// ExpirationYear is always the last two digits of the stored year.
	ExpirationMonth string `json:"expiration_month"`
	ExpirationYear  string `json:"expiration_year"`
	CardNumber      string `json:"card_number"`
	CVV             string `json:"cvv"`

	Simulate bool `json:"simulate"`
}
