package models

import "strconv"

// Category is an event category as returned by the upstream API.
type Category struct {
	ID                        int      `json:"id"`
	Name                      string   `json:"name"`
	GroupSize                 int      `json:"group_size"`
	PaymentType               string   `json:"payment_type"`
	AllowedGenderCombinations []string `json:"allowed_gender_combinations"`
	Event                     int      `json:"event"`
}

// Event is the upstream event record. Price and fee fields arrive as
// decimal strings and are kept that way until an amount is computed.
type Event struct {
	ID                   int        `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	Location             string     `json:"location"`
	StartDate            string     `json:"start_date"`
	EndDate              string     `json:"end_date"`
	RegistrationDeadline string     `json:"registration_deadline"`
	RegistrationType     string     `json:"registration_type"`
	Visibility           string     `json:"visibility"`
	IsActive             bool       `json:"is_active"`
	IndividualPrice      string     `json:"individual_price"`
	IndividualFee        string     `json:"individual_fee"`
	GroupPrice           string     `json:"group_price"`
	GroupFee             string     `json:"group_fee"`
	SpectatorPrice       string     `json:"spectator_price"`
	SpectatorFee         string     `json:"spectator_fee"`
	ImageURL             *string    `json:"image_url"`
	Categories           []Category `json:"categories"`
}

// RegistrationAmount returns price plus fee for the selected flow variant.
// Unknown types and unparseable price fields yield zero.
func (e *Event) RegistrationAmount(t RegistrationType) float64 {
	var price, fee string
	switch t {
	case TypeIndividual:
		price, fee = e.IndividualPrice, e.IndividualFee
	case TypeGroups:
		price, fee = e.GroupPrice, e.GroupFee
	case TypeSpectator:
		price, fee = e.SpectatorPrice, e.SpectatorFee
	default:
		return 0
	}
	p, _ := strconv.ParseFloat(price, 64)
	f, _ := strconv.ParseFloat(fee, 64)
	return p + f
}
