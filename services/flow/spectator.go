package flow

import (
	"podio/models"
	"podio/services/validation"
)

// SpectatorState is the spectator flow store.
type SpectatorState struct {
	SpectatorInfo models.SpectatorInfo `json:"spectatorInfo"`
	FormErrors    models.FormErrors    `json:"formErrors"`
}

// NewSpectatorState returns the store with its defaults: one ticket,
// Guatemala preselected as phone country.
func NewSpectatorState() *SpectatorState {
	return &SpectatorState{
		SpectatorInfo: models.SpectatorInfo{PhoneCountry: "GT", Quantity: 1},
		FormErrors:    models.FormErrors{},
	}
}

// Update shallow-merges the patch into the spectator info.
func (s *SpectatorState) Update(patch models.SpectatorInfoPatch) {
	info := &s.SpectatorInfo
	if patch.FirstName != nil {
		info.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		info.LastName = *patch.LastName
	}
	if patch.Email != nil {
		info.Email = *patch.Email
	}
	if patch.Phone != nil {
		info.Phone = *patch.Phone
	}
	if patch.PhoneCountry != nil {
		info.PhoneCountry = *patch.PhoneCountry
	}
	if patch.Quantity != nil {
		info.Quantity = *patch.Quantity
	}
}

func (s *SpectatorState) textFieldError(field, value string) string {
	switch field {
	case "firstName":
		return validation.Required(value, "Nombre")
	case "lastName":
		return validation.Required(value, "Apellido")
	case "email":
		return validation.Email(value)
	case "phone":
		return validation.Phone(value, s.SpectatorInfo.PhoneCountry)
	case "phoneCountry":
		return validation.Required(value, "País")
	}
	return ""
}

// ValidateField computes one text field's error and merges it into the
// error map.
func (s *SpectatorState) ValidateField(field, value string) {
	if err := s.textFieldError(field, value); err != "" {
		s.FormErrors[field] = err
	} else {
		delete(s.FormErrors, field)
	}
}

// ValidateQuantity checks the ticket count, which rides separately from the
// text fields.
func (s *SpectatorState) ValidateQuantity(value int) {
	if err := validation.Quantity(value); err != "" {
		s.FormErrors["quantity"] = err
	} else {
		delete(s.FormErrors, "quantity")
	}
}

// ValidateForm re-validates every field from current values, replaces the
// error map and reports whether the form is submittable.
func (s *SpectatorState) ValidateForm() bool {
	errs := models.FormErrors{}
	for _, field := range []string{"firstName", "lastName", "email", "phone", "phoneCountry"} {
		if err := s.textFieldError(field, s.textValue(field)); err != "" {
			errs[field] = err
		}
	}
	if err := validation.Quantity(s.SpectatorInfo.Quantity); err != "" {
		errs["quantity"] = err
	}
	s.FormErrors = errs
	return len(errs) == 0
}

func (s *SpectatorState) textValue(field string) string {
	info := s.SpectatorInfo
	switch field {
	case "firstName":
		return info.FirstName
	case "lastName":
		return info.LastName
	case "email":
		return info.Email
	case "phone":
		return info.Phone
	case "phoneCountry":
		return info.PhoneCountry
	}
	return ""
}

// Reset returns the store to its Empty state.
func (s *SpectatorState) Reset() {
	*s = *NewSpectatorState()
}
