package flow

import "podio/models"

// initialSteps is the fixed step table of the registration flow. The first
// step is the landing page the visitor already reached.
func initialSteps() []models.Step {
	return []models.Step{
		{Label: "Inicio", Completed: true, Current: false},
		{Label: "Detalles y reglamento", Completed: false, Current: false},
		{Label: "Información Personal", Completed: false, Current: false},
		{Label: "Pago", Completed: false, Current: false},
	}
}

// SetCurrentStep moves the progress marker. Completed is recomputed so it
// holds exactly for every step before the current one; the store itself
// does not police skipping, that is the step gate's job.
func (s *RegistrationState) SetCurrentStep(index int) {
	for i := range s.Steps {
		s.Steps[i].Completed = i < index
		s.Steps[i].Current = i == index
	}
	s.CurrentStepIndex = index
}
