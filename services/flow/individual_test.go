package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podio/models"
)

func strPtr(s string) *string { return &s }

func validPersonalInfo() models.PersonalInfo {
	return models.PersonalInfo{
		FirstName:             "Ana",
		LastName:              "Lopez",
		Email:                 "ana@example.com",
		Phone:                 "12345678",
		PhoneCountry:          "GT",
		EmergencyContact:      "Luis Lopez",
		EmergencyPhone:        "87654321",
		EmergencyPhoneCountry: "GT",
		Category:              "10K",
		Size:                  "M",
		Gender:                "F",
	}
}

func TestNewRegistrationState(t *testing.T) {
	s := NewRegistrationState()

	require.Len(t, s.Steps, 4)
	assert.Equal(t, "Inicio", s.Steps[0].Label)
	assert.Equal(t, "Detalles y reglamento", s.Steps[1].Label)
	assert.Equal(t, "Información Personal", s.Steps[2].Label)
	assert.Equal(t, "Pago", s.Steps[3].Label)
	assert.Equal(t, 0, s.CurrentStepIndex)
	assert.True(t, s.Steps[0].Completed)
	assert.False(t, s.Steps[1].Completed)
	assert.Empty(t, s.FormErrors)
}

func TestRegistrationState_SetCurrentStep(t *testing.T) {
	s := NewRegistrationState()
	s.SetCurrentStep(2)

	assert.Equal(t, 2, s.CurrentStepIndex)
	assert.True(t, s.Steps[0].Completed)
	assert.True(t, s.Steps[1].Completed)
	assert.False(t, s.Steps[2].Completed)
	assert.True(t, s.Steps[2].Current)
	assert.False(t, s.Steps[0].Current)

	// Moving back clears completion of later steps.
	s.SetCurrentStep(1)
	assert.False(t, s.Steps[1].Completed)
	assert.True(t, s.Steps[1].Current)
	assert.False(t, s.Steps[2].Current)
}

func TestRegistrationState_Update(t *testing.T) {
	s := NewRegistrationState()
	s.PersonalInfo = validPersonalInfo()

	s.Update(models.PersonalInfoPatch{
		FirstName: strPtr("Maria"),
		Email:     strPtr("maria@example.com"),
	})

	assert.Equal(t, "Maria", s.PersonalInfo.FirstName)
	assert.Equal(t, "maria@example.com", s.PersonalInfo.Email)
	// Untouched fields keep their values.
	assert.Equal(t, "Lopez", s.PersonalInfo.LastName)
	assert.Equal(t, "12345678", s.PersonalInfo.Phone)
}

func TestRegistrationState_ValidateField(t *testing.T) {
	s := NewRegistrationState()
	s.PersonalInfo.PhoneCountry = "GT"

	s.ValidateField("email", "not-an-email")
	assert.Equal(t, "El correo electrónico no es válido", s.FormErrors["email"])

	s.ValidateField("email", "ana@example.com")
	_, exists := s.FormErrors["email"]
	assert.False(t, exists)

	// Phone validation uses the state's country context.
	s.ValidateField("phone", "1234567")
	assert.Equal(t, "El teléfono debe tener 8 dígitos para GT", s.FormErrors["phone"])
}

func TestRegistrationState_ValidateForm(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(*models.PersonalInfo)
		requireCategory bool
		wantValid       bool
		wantErrField    string
	}{
		{
			name:            "all valid with category",
			mutate:          func(i *models.PersonalInfo) {},
			requireCategory: true,
			wantValid:       true,
		},
		{
			name:            "missing category only fails when required",
			mutate:          func(i *models.PersonalInfo) { i.Category = "" },
			requireCategory: true,
			wantValid:       false,
			wantErrField:    "category",
		},
		{
			name:            "missing category passes when optional",
			mutate:          func(i *models.PersonalInfo) { i.Category = "" },
			requireCategory: false,
			wantValid:       true,
		},
		{
			name:            "invalid size",
			mutate:          func(i *models.PersonalInfo) { i.Size = "XXXL" },
			requireCategory: false,
			wantValid:       false,
			wantErrField:    "size",
		},
		{
			name:            "empty first name",
			mutate:          func(i *models.PersonalInfo) { i.FirstName = "" },
			requireCategory: false,
			wantValid:       false,
			wantErrField:    "firstName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRegistrationState()
			s.PersonalInfo = validPersonalInfo()
			tt.mutate(&s.PersonalInfo)

			valid := s.ValidateForm(tt.requireCategory)

			assert.Equal(t, tt.wantValid, valid)
			if tt.wantErrField != "" {
				assert.Contains(t, s.FormErrors, tt.wantErrField)
			} else {
				assert.Empty(t, s.FormErrors)
			}
		})
	}
}

func TestRegistrationState_ValidateForm_ReplacesStaleErrors(t *testing.T) {
	s := NewRegistrationState()
	s.PersonalInfo = validPersonalInfo()
	s.FormErrors["email"] = "El correo electrónico no es válido"

	valid := s.ValidateForm(false)

	assert.True(t, valid)
	assert.Empty(t, s.FormErrors)
}

func TestRegistrationState_Reset(t *testing.T) {
	s := NewRegistrationState()
	s.PersonalInfo = validPersonalInfo()
	s.SetCurrentStep(3)
	s.FormErrors["email"] = "x"

	s.Reset()

	assert.Equal(t, models.PersonalInfo{}, s.PersonalInfo)
	assert.Equal(t, 0, s.CurrentStepIndex)
	assert.Empty(t, s.FormErrors)
}
