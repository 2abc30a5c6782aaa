package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	assert.Equal(t, "Nombre es requerido", Required("", "Nombre"))
	assert.Equal(t, "", Required("Ana", "Nombre"))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{name: "empty", value: "", wantErr: "El correo electrónico es requerido"},
		{name: "missing at", value: "ana.example.com", wantErr: "El correo electrónico no es válido"},
		{name: "missing tld", value: "ana@example", wantErr: "El correo electrónico no es válido"},
		{name: "contains space", value: "ana maria@example.com", wantErr: "El correo electrónico no es válido"},
		{name: "valid", value: "ana@example.com", wantErr: ""},
		{name: "valid subdomain", value: "ana@mail.example.com", wantErr: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, Email(tt.value))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		country string
		wantErr string
	}{
		{name: "no country selected", value: "12345678", country: "", wantErr: "Debe seleccionar un país"},
		{name: "empty phone", value: "", country: "GT", wantErr: "El teléfono es requerido"},
		{name: "unsupported country", value: "12345678", country: "FR", wantErr: "País no soportado"},
		{name: "non numeric", value: "1234abcd", country: "GT", wantErr: "El teléfono solo debe contener dígitos"},
		{name: "too short for GT", value: "1234567", country: "GT", wantErr: "El teléfono debe tener 8 dígitos para GT"},
		{name: "too long for GT", value: "123456789", country: "GT", wantErr: "El teléfono debe tener 8 dígitos para GT"},
		{name: "valid GT", value: "12345678", country: "GT", wantErr: ""},
		{name: "GT length for US", value: "12345678", country: "US", wantErr: "El teléfono debe tener 10 dígitos para US"},
		{name: "valid US", value: "1234567890", country: "US", wantErr: ""},
		{name: "valid MX", value: "5512345678", country: "MX", wantErr: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, Phone(tt.value, tt.country))
		})
	}
}

// Every supported country accepts exactly its configured digit count and
// nothing else.
func TestPhone_AllCountries(t *testing.T) {
	for _, country := range SupportedCountries() {
		length, ok := PhoneLength(country)
		assert.True(t, ok)

		exact := make([]byte, length)
		for i := range exact {
			exact[i] = '5'
		}
		assert.Equal(t, "", Phone(string(exact), country), country)
		assert.NotEqual(t, "", Phone(string(exact[:length-1]), country), country)
		assert.NotEqual(t, "", Phone(string(exact)+"5", country), country)
	}
}

func TestSize(t *testing.T) {
	assert.Equal(t, "La talla es requerida", Size(""))
	assert.Equal(t, "La talla no es válida", Size("XXXL"))
	for _, s := range []string{"XS", "S", "M", "L", "XL", "XXL"} {
		assert.Equal(t, "", Size(s))
	}
}

func TestGender(t *testing.T) {
	assert.Equal(t, "Sexo es requerido", Gender(""))
	assert.Equal(t, "El sexo no es válido", Gender("X"))
	assert.Equal(t, "", Gender("M"))
	assert.Equal(t, "", Gender("F"))
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr string
	}{
		{name: "zero", value: 0, wantErr: "La cantidad es requerida"},
		{name: "negative", value: -1, wantErr: "La cantidad debe ser al menos 1"},
		{name: "minimum", value: 1, wantErr: ""},
		{name: "maximum", value: 10, wantErr: ""},
		{name: "above maximum", value: 11, wantErr: "La cantidad máxima es 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, Quantity(tt.value))
		})
	}
}

func TestBillingFields(t *testing.T) {
	assert.Equal(t, "La ciudad es requerida", ClientCity(""))
	assert.Equal(t, "La ciudad debe tener al menos 2 caracteres", ClientCity("A"))
	assert.Equal(t, "", ClientCity("Guatemala"))

	assert.Equal(t, "El departamento es requerido", ClientState(""))
	assert.Equal(t, "", ClientState("Guatemala"))

	assert.Equal(t, "El código postal es requerido", ClientPostalCode(""))
	assert.Equal(t, "El código postal debe tener 5 dígitos", ClientPostalCode("1234"))
	assert.Equal(t, "El código postal debe tener 5 dígitos", ClientPostalCode("12a45"))
	assert.Equal(t, "", ClientPostalCode("01011"))

	assert.Equal(t, "La dirección es requerida", ClientLocation(""))
	assert.Equal(t, "La dirección debe tener al menos 5 caracteres", ClientLocation("Z1"))
	assert.Equal(t, "", ClientLocation("Zona 1"))
}
