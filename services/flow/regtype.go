package flow

import "podio/models"

// TypeState holds the session's selected registration type. It is chosen
// once per session and gates which flow stores matter at submission.
type TypeState struct {
	RegistrationType models.RegistrationType `json:"registrationType"`
}

// NewTypeState returns the store with no type selected yet.
func NewTypeState() *TypeState {
	return &TypeState{}
}

// SetType records the selected flow variant.
func (s *TypeState) SetType(t models.RegistrationType) {
	s.RegistrationType = t
}

// Reset clears the selection.
func (s *TypeState) Reset() {
	s.RegistrationType = ""
}
