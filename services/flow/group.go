package flow

import (
	"errors"

	"podio/models"
	"podio/services/validation"
)

// ErrIncompleteMember rejects adding a member with any required field empty;
// partial members are never persisted.
var ErrIncompleteMember = errors.New("todos los campos del miembro son requeridos")

// ErrMemberIndex reports an out-of-range member index.
var ErrMemberIndex = errors.New("índice de miembro inválido")

// GroupState is the group flow store: team identity plus the ordered member
// roster. Member errors are keyed by the member's current list index.
type GroupState struct {
	TeamName     string              `json:"teamName"`
	ContactEmail string              `json:"contactEmail"`
	TeamMembers  []models.TeamMember `json:"teamMembers"`
	FormErrors   models.GroupErrors  `json:"formErrors"`
}

// NewGroupState returns the store in its Empty state.
func NewGroupState() *GroupState {
	return &GroupState{
		FormErrors: models.GroupErrors{Members: map[int]models.FormErrors{}},
	}
}

// SetTeamName updates the team name without validating.
func (s *GroupState) SetTeamName(name string) {
	s.TeamName = name
}

// SetContactEmail updates the contact email without validating.
func (s *GroupState) SetContactEmail(email string) {
	s.ContactEmail = email
}

// AddMember appends to the roster. Every required sub-field must be
// non-empty; emergency country defaults to the phone country when omitted.
func (s *GroupState) AddMember(m models.TeamMember) error {
	if m.EmergencyPhoneCountry == "" {
		m.EmergencyPhoneCountry = m.PhoneCountry
	}
	if m.FirstName == "" || m.LastName == "" || m.Email == "" ||
		m.Phone == "" || m.PhoneCountry == "" ||
		m.EmergencyContact == "" || m.EmergencyPhone == "" ||
		m.Size == "" || m.Gender == "" {
		return ErrIncompleteMember
	}
	s.TeamMembers = append(s.TeamMembers, m)
	return nil
}

// UpdateMember shallow-merges a patch into the member at index.
func (s *GroupState) UpdateMember(index int, patch models.TeamMemberPatch) error {
	if index < 0 || index >= len(s.TeamMembers) {
		return ErrMemberIndex
	}
	m := &s.TeamMembers[index]
	if patch.FirstName != nil {
		m.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		m.LastName = *patch.LastName
	}
	if patch.Email != nil {
		m.Email = *patch.Email
	}
	if patch.Phone != nil {
		m.Phone = *patch.Phone
	}
	if patch.PhoneCountry != nil {
		m.PhoneCountry = *patch.PhoneCountry
	}
	if patch.EmergencyContact != nil {
		m.EmergencyContact = *patch.EmergencyContact
	}
	if patch.EmergencyPhone != nil {
		m.EmergencyPhone = *patch.EmergencyPhone
	}
	if patch.EmergencyPhoneCountry != nil {
		m.EmergencyPhoneCountry = *patch.EmergencyPhoneCountry
	}
	if patch.Size != nil {
		m.Size = *patch.Size
	}
	if patch.Gender != nil {
		m.Gender = *patch.Gender
	}
	return nil
}

// RemoveMember splices the member out and re-keys the surviving members'
// error entries so no stale entry points at the wrong member.
func (s *GroupState) RemoveMember(index int) error {
	if index < 0 || index >= len(s.TeamMembers) {
		return ErrMemberIndex
	}
	s.TeamMembers = append(s.TeamMembers[:index], s.TeamMembers[index+1:]...)

	rekeyed := map[int]models.FormErrors{}
	for i, errs := range s.FormErrors.Members {
		switch {
		case i < index:
			rekeyed[i] = errs
		case i > index:
			rekeyed[i-1] = errs
		}
	}
	s.FormErrors.Members = rekeyed
	return nil
}

func memberFieldError(m models.TeamMember, field, value string) string {
	switch field {
	case "firstName":
		return validation.Required(value, "Nombre")
	case "lastName":
		return validation.Required(value, "Apellido")
	case "email":
		return validation.Email(value)
	case "phone":
		return validation.Phone(value, m.PhoneCountry)
	case "phoneCountry":
		return validation.Required(value, "País")
	case "emergencyContact":
		return validation.Required(value, "Contacto de emergencia")
	case "emergencyPhone":
		return validation.Phone(value, m.EmergencyPhoneCountry)
	case "emergencyPhoneCountry":
		return validation.Required(value, "País")
	case "size":
		return validation.Size(value)
	case "gender":
		return validation.Gender(value)
	}
	return ""
}

// ValidateMemberField computes one member field's error and merges it into
// that member's error map.
func (s *GroupState) ValidateMemberField(index int, field, value string) error {
	if index < 0 || index >= len(s.TeamMembers) {
		return ErrMemberIndex
	}
	if s.FormErrors.Members == nil {
		s.FormErrors.Members = map[int]models.FormErrors{}
	}
	errs := s.FormErrors.Members[index]
	if errs == nil {
		errs = models.FormErrors{}
	}
	if err := memberFieldError(s.TeamMembers[index], field, value); err != "" {
		errs[field] = err
	} else {
		delete(errs, field)
	}
	if len(errs) == 0 {
		delete(s.FormErrors.Members, index)
	} else {
		s.FormErrors.Members[index] = errs
	}
	return nil
}

var memberFields = []string{
	"firstName", "lastName", "email", "phone", "phoneCountry",
	"emergencyContact", "emergencyPhone", "emergencyPhoneCountry",
	"size", "gender",
}

// ValidateForm re-validates the team fields and every member. The form
// fails when the team name or contact email is missing, the roster is
// empty, or any member has any invalid field.
func (s *GroupState) ValidateForm() bool {
	errs := models.GroupErrors{Members: map[int]models.FormErrors{}}

	errs.TeamName = validation.Required(s.TeamName, "Nombre del equipo")
	errs.ContactEmail = validation.Email(s.ContactEmail)

	for i, m := range s.TeamMembers {
		memberErrs := models.FormErrors{}
		for _, field := range memberFields {
			if err := memberFieldError(m, field, memberValue(m, field)); err != "" {
				memberErrs[field] = err
			}
		}
		if len(memberErrs) > 0 {
			errs.Members[i] = memberErrs
		}
	}

	s.FormErrors = errs
	return errs.TeamName == "" && errs.ContactEmail == "" &&
		len(errs.Members) == 0 && len(s.TeamMembers) > 0
}

func memberValue(m models.TeamMember, field string) string {
	switch field {
	case "firstName":
		return m.FirstName
	case "lastName":
		return m.LastName
	case "email":
		return m.Email
	case "phone":
		return m.Phone
	case "phoneCountry":
		return m.PhoneCountry
	case "emergencyContact":
		return m.EmergencyContact
	case "emergencyPhone":
		return m.EmergencyPhone
	case "emergencyPhoneCountry":
		return m.EmergencyPhoneCountry
	case "size":
		return m.Size
	case "gender":
		return m.Gender
	}
	return ""
}

// Reset returns the store to its Empty state.
func (s *GroupState) Reset() {
	*s = *NewGroupState()
}
