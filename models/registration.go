package models

// RegistrationType selects which flow variant a session runs.
type RegistrationType string

const (
	TypeIndividual RegistrationType = "individual"
	TypeGroups     RegistrationType = "groups"
	TypeSpectator  RegistrationType = "spectator"
)

// Valid reports whether the type is one of the supported flow variants.
func (t RegistrationType) Valid() bool {
	switch t {
	case TypeIndividual, TypeGroups, TypeSpectator:
		return true
	}
	return false
}

// Step is one entry of the flow progress bar.
type Step struct {
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// PersonalInfo holds the individual athlete's registration data.
type PersonalInfo struct {
	FirstName             string `json:"firstName"`
	LastName              string `json:"lastName"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	PhoneCountry          string `json:"phoneCountry"`
	EmergencyContact      string `json:"emergencyContact"`
	EmergencyPhone        string `json:"emergencyPhone"`
	EmergencyPhoneCountry string `json:"emergencyPhoneCountry"`
	Category              string `json:"category"`
	Size                  string `json:"size"`
	Gender                string `json:"gender"`
}

// TeamMember carries the same personal shape as PersonalInfo minus category.
type TeamMember struct {
	FirstName             string `json:"firstName"`
	LastName              string `json:"lastName"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	PhoneCountry          string `json:"phoneCountry"`
	EmergencyContact      string `json:"emergencyContact"`
	EmergencyPhone        string `json:"emergencyPhone"`
	EmergencyPhoneCountry string `json:"emergencyPhoneCountry"`
	Size                  string `json:"size"`
	Gender                string `json:"gender"`
}

// SpectatorInfo holds the spectator flow data. Quantity is the number of
// spectator tickets, 1 to 10 inclusive.
type SpectatorInfo struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PhoneCountry string `json:"phoneCountry"`
	Quantity     int    `json:"quantity"`
}

// FormErrors maps a field name to a human-readable error message. A missing
// key means the field is valid.
type FormErrors map[string]string

// GroupErrors collects group-flow validation errors: team-level fields plus
// per-member field errors keyed by the member's current list index.
type GroupErrors struct {
	TeamName     string             `json:"teamName,omitempty"`
	ContactEmail string             `json:"contactEmail,omitempty"`
	Members      map[int]FormErrors `json:"teamMembers,omitempty"`
}
