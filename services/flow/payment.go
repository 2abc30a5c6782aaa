package flow

import (
	"time"

	"podio/models"
	"podio/services/validation"
)

// PaymentState is the payment flow store. CardType is derived: every
// card-number update recomputes it, nothing else may set it.
type PaymentState struct {
	PaymentInfo models.PaymentInfo `json:"paymentInfo"`
	FormErrors  models.FormErrors  `json:"errors"`
}

// NewPaymentState returns the store in its Empty state.
func NewPaymentState() *PaymentState {
	return &PaymentState{
		PaymentInfo: models.PaymentInfo{CardType: models.CardVisa},
		FormErrors:  models.FormErrors{},
	}
}

// Update shallow-merges the patch into the payment info and rederives the
// card type when the card number changed.
func (s *PaymentState) Update(patch models.PaymentInfoPatch) {
	info := &s.PaymentInfo
	if patch.CardNumber != nil {
		info.CardNumber = *patch.CardNumber
		info.CardType = validation.DetectCardType(info.CardNumber)
	}
	if patch.CardHolder != nil {
		info.CardHolder = *patch.CardHolder
	}
	if patch.ExpiryMonth != nil {
		info.ExpiryMonth = *patch.ExpiryMonth
	}
	if patch.ExpiryYear != nil {
		info.ExpiryYear = *patch.ExpiryYear
	}
	if patch.CVV != nil {
		info.CVV = *patch.CVV
	}
	if patch.ClientCity != nil {
		info.ClientCity = *patch.ClientCity
	}
	if patch.ClientState != nil {
		info.ClientState = *patch.ClientState
	}
	if patch.ClientPostalCode != nil {
		info.ClientPostalCode = *patch.ClientPostalCode
	}
	if patch.ClientLocation != nil {
		info.ClientLocation = *patch.ClientLocation
	}
}

func (s *PaymentState) paymentFieldError(field, value string) string {
	switch field {
	case "cardNumber":
		return validation.CardNumber(value)
	case "cardHolder":
		return validation.CardHolder(value)
	case "expiryMonth":
		return validation.ExpiryMonth(value)
	case "expiryYear":
		return validation.ExpiryYear(value, time.Now().Year())
	case "cvv":
		return validation.CVV(value, s.PaymentInfo.CardType)
	case "clientCity":
		return validation.ClientCity(value)
	case "clientState":
		return validation.ClientState(value)
	case "clientPostalCode":
		return validation.ClientPostalCode(value)
	case "clientLocation":
		return validation.ClientLocation(value)
	}
	return ""
}

// ValidateField computes one field's error and merges it into the error map.
func (s *PaymentState) ValidateField(field, value string) {
	if err := s.paymentFieldError(field, value); err != "" {
		s.FormErrors[field] = err
	} else {
		delete(s.FormErrors, field)
	}
}

var paymentFields = []string{
	"cardNumber", "cardHolder", "expiryMonth", "expiryYear", "cvv",
	"clientCity", "clientState", "clientPostalCode", "clientLocation",
}

// ValidateForm re-validates every field from current values, replaces the
// error map and reports whether the form is submittable. CardType is
// derived and never validated on its own.
func (s *PaymentState) ValidateForm() bool {
	errs := models.FormErrors{}
	for _, field := range paymentFields {
		if err := s.paymentFieldError(field, s.paymentValue(field)); err != "" {
			errs[field] = err
		}
	}
	s.FormErrors = errs
	return len(errs) == 0
}

func (s *PaymentState) paymentValue(field string) string {
	info := s.PaymentInfo
	switch field {
	case "cardNumber":
		return info.CardNumber
	case "cardHolder":
		return info.CardHolder
	case "expiryMonth":
		return info.ExpiryMonth
	case "expiryYear":
		return info.ExpiryYear
	case "cvv":
		return info.CVV
	case "clientCity":
		return info.ClientCity
	case "clientState":
		return info.ClientState
	case "clientPostalCode":
		return info.ClientPostalCode
	case "clientLocation":
		return info.ClientLocation
	}
	return ""
}

// Reset returns the store to its Empty state.
func (s *PaymentState) Reset() {
	*s = *NewPaymentState()
}
