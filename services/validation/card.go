package validation

import (
	"fmt"
	"regexp"
	"strings"

	"podio/models"
)

// Brand patterns tested in fixed priority order.
var (
	visaPattern       = regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)
	mastercardPattern = regexp.MustCompile(`^(5[1-5]|2[2-7])[0-9]{14}$`)
	amexPattern       = regexp.MustCompile(`^3[47][0-9]{13}$`)

	cardNumberPattern  = regexp.MustCompile(`^[0-9]{13,19}$`)
	cardHolderPattern  = regexp.MustCompile(`^[a-zA-Z\s]{2,}$`)
	expiryMonthPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
	expiryYearPattern  = regexp.MustCompile(`^[0-9]{4}$`)
	cvvPattern         = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// DetectCardType derives the card brand from the number. Unmatched numbers
// fall back to visa so downstream CVV rules always have a brand to work
// with; the number itself still has to pass CardNumber.
func DetectCardType(cardNumber string) models.CardType {
	cleaned := strings.ReplaceAll(cardNumber, " ", "")
	switch {
	case visaPattern.MatchString(cleaned):
		return models.CardVisa
	case mastercardPattern.MatchString(cleaned):
		return models.CardMastercard
	case amexPattern.MatchString(cleaned):
		return models.CardAmex
	}
	return models.CardVisa
}

// Luhn runs the mod-10 checksum over an all-digit card number.
func Luhn(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// CardNumber is the single canonical card-number validator: 13 to 19
// digits after stripping spaces, plus a passing Luhn checksum.
func CardNumber(value string) string {
	if value == "" {
		return "El número de tarjeta es requerido"
	}
	cleaned := strings.ReplaceAll(value, " ", "")
	if !cardNumberPattern.MatchString(cleaned) {
		return "El número de tarjeta no es válido"
	}
	if !Luhn(cleaned) {
		return "El número de tarjeta no es válido"
	}
	return ""
}

// CardHolder accepts letters and spaces, at least 2 characters.
func CardHolder(value string) string {
	if value == "" {
		return "El nombre del titular es requerido"
	}
	if !cardHolderPattern.MatchString(value) {
		return "El nombre del titular no es válido"
	}
	return ""
}

// ExpiryMonth accepts 01 through 12.
func ExpiryMonth(value string) string {
	if value == "" {
		return "El mes de expiración es requerido"
	}
	if !expiryMonthPattern.MatchString(value) {
		return "El mes de expiración no es válido"
	}
	return ""
}

// ExpiryYear accepts a 4-digit year not earlier than currentYear. The
// caller supplies the reference year so the validator stays deterministic.
func ExpiryYear(value string, currentYear int) string {
	if value == "" {
		return "El año de expiración es requerido"
	}
	if !expiryYearPattern.MatchString(value) {
		return "El año de expiración no es válido"
	}
	year := 0
	fmt.Sscanf(value, "%d", &year)
	if year < currentYear {
		return "El año de expiración ya pasó"
	}
	return ""
}

// CVV enforces brand-exact length: 4 digits for amex, 3 otherwise.
func CVV(value string, cardType models.CardType) string {
	if value == "" {
		return "El CVV es requerido"
	}
	want := 3
	if cardType == models.CardAmex {
		want = 4
	}
	if len(value) != want {
		return fmt.Sprintf("El CVV debe tener %d dígitos", want)
	}
	if !cvvPattern.MatchString(value) {
		return "El CVV no es válido"
	}
	return ""
}
