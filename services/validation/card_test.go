package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"podio/models"
)

func TestDetectCardType(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   models.CardType
	}{
		{name: "visa 16", number: "4111111111111111", want: models.CardVisa},
		{name: "visa 13", number: "4222222222222", want: models.CardVisa},
		{name: "visa with spaces", number: "4111 1111 1111 1111", want: models.CardVisa},
		{name: "mastercard 5x", number: "5500000000000004", want: models.CardMastercard},
		{name: "mastercard 2-series", number: "2221000000000009", want: models.CardMastercard},
		{name: "amex", number: "371449635398431", want: models.CardAmex},
		{name: "unmatched falls back to visa", number: "6011111111111117", want: models.CardVisa},
		{name: "empty falls back to visa", number: "", want: models.CardVisa},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCardType(tt.number))
		})
	}
}

func TestLuhn(t *testing.T) {
	assert.True(t, Luhn("4539578763621486"))
	assert.False(t, Luhn("4539578763621487"))
	assert.True(t, Luhn("371449635398431"))
	assert.False(t, Luhn("4111a11111111111"))
}

func TestCardNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{name: "empty", value: "", wantErr: "El número de tarjeta es requerido"},
		{name: "too short", value: "411111111111", wantErr: "El número de tarjeta no es válido"},
		{name: "too long", value: "41111111111111111111", wantErr: "El número de tarjeta no es válido"},
		{name: "letters", value: "4111b11111111111", wantErr: "El número de tarjeta no es válido"},
		{name: "fails luhn", value: "4111111111111112", wantErr: "El número de tarjeta no es válido"},
		{name: "valid visa", value: "4111111111111111", wantErr: ""},
		{name: "valid with spaces", value: "4111 1111 1111 1111", wantErr: ""},
		{name: "valid amex", value: "371449635398431", wantErr: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, CardNumber(tt.value))
		})
	}
}

func TestCardHolder(t *testing.T) {
	assert.Equal(t, "El nombre del titular es requerido", CardHolder(""))
	assert.Equal(t, "El nombre del titular no es válido", CardHolder("A"))
	assert.Equal(t, "El nombre del titular no es válido", CardHolder("Ana123"))
	assert.Equal(t, "", CardHolder("Ana Lopez"))
}

func TestExpiryMonth(t *testing.T) {
	assert.Equal(t, "El mes de expiración es requerido", ExpiryMonth(""))
	assert.Equal(t, "El mes de expiración no es válido", ExpiryMonth("13"))
	assert.Equal(t, "El mes de expiración no es válido", ExpiryMonth("0"))
	assert.Equal(t, "El mes de expiración no es válido", ExpiryMonth("1"))
	assert.Equal(t, "", ExpiryMonth("01"))
	assert.Equal(t, "", ExpiryMonth("12"))
}

func TestExpiryYear(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{name: "empty", value: "", wantErr: "El año de expiración es requerido"},
		{name: "two digits", value: "27", wantErr: "El año de expiración no es válido"},
		{name: "letters", value: "20a7", wantErr: "El año de expiración no es válido"},
		{name: "past year", value: "2024", wantErr: "El año de expiración ya pasó"},
		{name: "current year", value: "2026", wantErr: ""},
		{name: "future year", value: "2030", wantErr: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, ExpiryYear(tt.value, 2026))
		})
	}
}

func TestCVV(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		cardType models.CardType
		wantErr  string
	}{
		{name: "empty", value: "", cardType: models.CardVisa, wantErr: "El CVV es requerido"},
		{name: "visa three digits", value: "123", cardType: models.CardVisa, wantErr: ""},
		{name: "visa four digits rejected", value: "1234", cardType: models.CardVisa, wantErr: "El CVV debe tener 3 dígitos"},
		{name: "mastercard three digits", value: "123", cardType: models.CardMastercard, wantErr: ""},
		{name: "amex four digits", value: "1234", cardType: models.CardAmex, wantErr: ""},
		{name: "amex three digits rejected", value: "123", cardType: models.CardAmex, wantErr: "El CVV debe tener 4 dígitos"},
		{name: "non numeric", value: "12a", cardType: models.CardVisa, wantErr: "El CVV no es válido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, CVV(tt.value, tt.cardType))
		})
	}
}
