// Package validation holds the pure field validators shared by every flow
// store. Each validator maps a raw value (plus sibling context where the
// rule needs it) to a human-readable error message, or "" when valid.
package validation

import (
	"fmt"
	"regexp"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitPattern  = regexp.MustCompile(`^\d+$`)
	postalPattern = regexp.MustCompile(`^\d{5}$`)
)

var allowedSizes = map[string]bool{
	"XS": true, "S": true, "M": true, "L": true, "XL": true, "XXL": true,
}

// Required fails when the value is empty. The message embeds the field's
// display label.
func Required(value, label string) string {
	if value == "" {
		return fmt.Sprintf("%s es requerido", label)
	}
	return ""
}

// Email checks for a simple local@domain.tld shape.
func Email(value string) string {
	if value == "" {
		return "El correo electrónico es requerido"
	}
	if !emailPattern.MatchString(value) {
		return "El correo electrónico no es válido"
	}
	return ""
}

// Phone validates a local phone number against the selected country's
// digit-length rule.
func Phone(value, country string) string {
	if country == "" {
		return "Debe seleccionar un país"
	}
	if value == "" {
		return "El teléfono es requerido"
	}
	length, ok := PhoneLength(country)
	if !ok {
		return "País no soportado"
	}
	if !digitPattern.MatchString(value) {
		return "El teléfono solo debe contener dígitos"
	}
	if len(value) != length {
		return fmt.Sprintf("El teléfono debe tener %d dígitos para %s", length, country)
	}
	return ""
}

// Size enforces the t-shirt size enum.
func Size(value string) string {
	if value == "" {
		return "La talla es requerida"
	}
	if !allowedSizes[value] {
		return "La talla no es válida"
	}
	return ""
}

// Gender accepts M or F.
func Gender(value string) string {
	if value == "" {
		return "Sexo es requerido"
	}
	if value != "M" && value != "F" {
		return "El sexo no es válido"
	}
	return ""
}

// Quantity bounds the spectator ticket count to 1..10.
func Quantity(value int) string {
	if value == 0 {
		return "La cantidad es requerida"
	}
	if value < 1 {
		return "La cantidad debe ser al menos 1"
	}
	if value > 10 {
		return "La cantidad máxima es 10"
	}
	return ""
}

// ClientCity requires at least 2 characters.
func ClientCity(value string) string {
	if value == "" {
		return "La ciudad es requerida"
	}
	if len(value) < 2 {
		return "La ciudad debe tener al menos 2 caracteres"
	}
	return ""
}

// ClientState requires at least 2 characters.
func ClientState(value string) string {
	if value == "" {
		return "El departamento es requerido"
	}
	if len(value) < 2 {
		return "El departamento debe tener al menos 2 caracteres"
	}
	return ""
}

// ClientPostalCode requires exactly 5 digits.
func ClientPostalCode(value string) string {
	if value == "" {
		return "El código postal es requerido"
	}
	if !postalPattern.MatchString(value) {
		return "El código postal debe tener 5 dígitos"
	}
	return ""
}

// ClientLocation requires at least 5 characters.
func ClientLocation(value string) string {
	if value == "" {
		return "La dirección es requerida"
	}
	if len(value) < 5 {
		return "La dirección debe tener al menos 5 caracteres"
	}
	return ""
}
