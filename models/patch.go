package models

// Patch types carry partial updates for the flow stores. Nil fields are
// left untouched by the merge; updating never validates as a side effect.

type PersonalInfoPatch struct {
	FirstName             *string `json:"firstName"`
	LastName              *string `json:"lastName"`
	Email                 *string `json:"email"`
	Phone                 *string `json:"phone"`
	PhoneCountry          *string `json:"phoneCountry"`
	EmergencyContact      *string `json:"emergencyContact"`
	EmergencyPhone        *string `json:"emergencyPhone"`
	EmergencyPhoneCountry *string `json:"emergencyPhoneCountry"`
	Category              *string `json:"category"`
	Size                  *string `json:"size"`
	Gender                *string `json:"gender"`
}

type TeamMemberPatch struct {
	FirstName             *string `json:"firstName"`
	LastName              *string `json:"lastName"`
	Email                 *string `json:"email"`
	Phone                 *string `json:"phone"`
	PhoneCountry          *string `json:"phoneCountry"`
	EmergencyContact      *string `json:"emergencyContact"`
	EmergencyPhone        *string `json:"emergencyPhone"`
	EmergencyPhoneCountry *string `json:"emergencyPhoneCountry"`
	Size                  *string `json:"size"`
	Gender                *string `json:"gender"`
}

type SpectatorInfoPatch struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	PhoneCountry *string `json:"phoneCountry"`
	Quantity     *int    `json:"quantity"`
}

type PaymentInfoPatch struct {
	CardNumber       *string `json:"cardNumber"`
	CardHolder       *string `json:"cardHolder"`
	ExpiryMonth      *string `json:"expiryMonth"`
	ExpiryYear       *string `json:"expiryYear"`
	CVV              *string `json:"cvv"`
	ClientCity       *string `json:"clientCity"`
	ClientState      *string `json:"clientState"`
	ClientPostalCode *string `json:"clientPostalCode"`
	ClientLocation   *string `json:"clientLocation"`
}
