package flow

import (
	"errors"
	"fmt"

	"podio/models"
)

// ErrEmptyRoster rejects assembling a group payload with no members.
var ErrEmptyRoster = errors.New("el equipo debe tener al menos un miembro")

// lastTwoDigits truncates a stored expiration year to the two digits the
// upstream API expects, regardless of how many digits the form stored.
func lastTwoDigits(year string) string {
	if len(year) <= 2 {
		return year
	}
	return year[len(year)-2:]
}

func paymentEnvelope(req *models.RegistrationRequest, payment models.PaymentInfo) {
	req.ClientCity = payment.ClientCity
	req.ClientState = payment.ClientState
	req.ClientPostalCode = payment.ClientPostalCode
	req.ClientLocation = payment.ClientLocation
	req.CardName = payment.CardHolder
	req.ExpirationMonth = payment.ExpiryMonth
	req.ExpirationYear = lastTwoDigits(payment.ExpiryYear)
	req.CardNumber = payment.CardNumber
	req.CVV = payment.CVV
}

// AssembleIndividual builds the individual registration payload from a
// validated personal-info slice.
func AssembleIndividual(info models.PersonalInfo, payment models.PaymentInfo, eventID int, simulate bool) models.RegistrationRequest {
	req := models.RegistrationRequest{
		IsAthlete:    true,
		EventID:      eventID,
		CourtesyCode: "",
		TShirtSize:   info.Size,
		Gender:       info.Gender,

		FullName:    fmt.Sprintf("%s %s", info.FirstName, info.LastName),
		Email:       info.Email,
		PhoneNumber: info.Phone,

		ClientFirstName: info.FirstName,
		ClientLastName:  info.LastName,
		ClientPhone:     info.Phone,
		ClientEmail:     info.Email,
		ClientCountry:   info.PhoneCountry,

		Simulate: simulate,
	}
	paymentEnvelope(&req, payment)
	return req
}

// AssembleGroup builds the group registration payload. The client/billing
// identity defaults to the first team member; that convention comes from
// the upstream contract and is deliberate.
func AssembleGroup(g *GroupState, payment models.PaymentInfo, eventID int, simulate bool) (models.RegistrationRequest, error) {
	if len(g.TeamMembers) == 0 {
		return models.RegistrationRequest{}, ErrEmptyRoster
	}

	athletes := make([]models.Athlete, 0, len(g.TeamMembers))
	for _, m := range g.TeamMembers {
		athletes = append(athletes, models.Athlete{
			FullName:    fmt.Sprintf("%s %s", m.FirstName, m.LastName),
			Email:       m.Email,
			PhoneNumber: m.Phone,
			Gender:      m.Gender,
			TShirtSize:  m.Size,
		})
	}

	first := g.TeamMembers[0]
	req := models.RegistrationRequest{
		IsAthlete:    true,
		EventID:      eventID,
		CourtesyCode: "",
		GroupName:    g.TeamName,
		ContactEmail: g.ContactEmail,
		Athletes:     athletes,

		FullName:    fmt.Sprintf("%s %s", first.FirstName, first.LastName),
		Email:       first.Email,
		PhoneNumber: first.Phone,

		ClientFirstName: first.FirstName,
		ClientLastName:  first.LastName,
		ClientPhone:     first.Phone,
		ClientEmail:     first.Email,
		ClientCountry:   first.PhoneCountry,

		Simulate: simulate,
	}
	paymentEnvelope(&req, payment)
	return req, nil
}

// AssembleSpectator builds the spectator registration payload.
func AssembleSpectator(info models.SpectatorInfo, payment models.PaymentInfo, eventID int, simulate bool) models.RegistrationRequest {
	req := models.RegistrationRequest{
		IsAthlete:    false,
		EventID:      eventID,
		CourtesyCode: "",
		Quantity:     info.Quantity,

		FullName:    fmt.Sprintf("%s %s", info.FirstName, info.LastName),
		Email:       info.Email,
		PhoneNumber: info.Phone,

		ClientFirstName: info.FirstName,
		ClientLastName:  info.LastName,
		ClientPhone:     info.Phone,
		ClientEmail:     info.Email,
		ClientCountry:   info.PhoneCountry,

		Simulate: simulate,
	}
	paymentEnvelope(&req, payment)
	return req
}
