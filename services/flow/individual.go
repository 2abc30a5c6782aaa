// Package flow holds the per-session state containers of the registration
// flow. Each container owns one slice of registration data plus its error
// map and exposes update, validate and reset operations; nothing here
// touches the network or Redis.
package flow

import (
	"podio/models"
	"podio/services/validation"
)

// RegistrationState is the individual flow store: the athlete's personal
// info plus the session's step progress, persisted together under the
// registration storage key.
type RegistrationState struct {
	Steps            []models.Step       `json:"steps"`
	CurrentStepIndex int                 `json:"currentStepIndex"`
	PersonalInfo     models.PersonalInfo `json:"personalInfo"`
	FormErrors       models.FormErrors   `json:"formErrors"`
}

// NewRegistrationState returns the store in its Empty state.
func NewRegistrationState() *RegistrationState {
	return &RegistrationState{
		Steps:            initialSteps(),
		CurrentStepIndex: 0,
		FormErrors:       models.FormErrors{},
	}
}

// Update shallow-merges the patch into the personal info. Prior errors for
// the touched fields stay until ValidateField runs for them.
func (s *RegistrationState) Update(patch models.PersonalInfoPatch) {
	info := &s.PersonalInfo
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
	if patch.EmergencyContact != nil {
		info.EmergencyContact = *patch.EmergencyContact
	}
	if patch.EmergencyPhone != nil {
		info.EmergencyPhone = *patch.EmergencyPhone
	}
	if patch.EmergencyPhoneCountry != nil {
		info.EmergencyPhoneCountry = *patch.EmergencyPhoneCountry
	}
	if patch.Category != nil {
		info.Category = *patch.Category
	}
	if patch.Size != nil {
		info.Size = *patch.Size
	}
	if patch.Gender != nil {
		info.Gender = *patch.Gender
	}
}

// personalFieldError dispatches one field to its validator. The country
// context for phone fields comes from the current state, not the patch.
func (s *RegistrationState) personalFieldError(field, value string) string {
	switch field {
	case "firstName":
		return validation.Required(value, "Nombre")
	case "lastName":
		return validation.Required(value, "Apellido")
	case "email":
		return validation.Email(value)
	case "phone":
		return validation.Phone(value, s.PersonalInfo.PhoneCountry)
	case "phoneCountry":
		return validation.Required(value, "País")
	case "emergencyContact":
		return validation.Required(value, "Contacto de emergencia")
	case "emergencyPhone":
		return validation.Phone(value, s.PersonalInfo.EmergencyPhoneCountry)
	case "emergencyPhoneCountry":
		return validation.Required(value, "País")
	case "category":
		return validation.Required(value, "La categoría")
	case "size":
		return validation.Size(value)
	case "gender":
		return validation.Gender(value)
	}
	return ""
}

// ValidateField computes one field's error and merges it into the error
// map. A passing field clears its entry.
func (s *RegistrationState) ValidateField(field, value string) {
	if err := s.personalFieldError(field, value); err != "" {
		s.FormErrors[field] = err
	} else {
		delete(s.FormErrors, field)
	}
}

// ValidateForm re-validates every field from current values, replaces the
// whole error map and reports whether the form is submittable. Category is
// only required when the event defines categories for the flow; callers
// toggle that through requireCategory.
func (s *RegistrationState) ValidateForm(requireCategory bool) bool {
	fields := []string{
		"firstName", "lastName", "email", "phone", "phoneCountry",
		"emergencyContact", "emergencyPhone", "emergencyPhoneCountry",
		"size", "gender",
	}
	if requireCategory {
		fields = append(fields, "category")
	}

	errs := models.FormErrors{}
	for _, field := range fields {
		if err := s.personalFieldError(field, s.personalValue(field)); err != "" {
			errs[field] = err
		}
	}
	s.FormErrors = errs
	return len(errs) == 0
}

func (s *RegistrationState) personalValue(field string) string {
	info := s.PersonalInfo
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
	case "emergencyContact":
		return info.EmergencyContact
	case "emergencyPhone":
		return info.EmergencyPhone
	case "emergencyPhoneCountry":
		return info.EmergencyPhoneCountry
	case "category":
		return info.Category
	case "size":
		return info.Size
	case "gender":
		return info.Gender
	}
	return ""
}

// Reset returns the store to its Empty state, progress included.
func (s *RegistrationState) Reset() {
	*s = *NewRegistrationState()
}
