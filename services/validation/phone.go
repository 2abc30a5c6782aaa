package validation

// phoneRules maps an ISO country code to the exact digit count a local
// phone number must have. Adding a country is a table edit.
var phoneRules = map[string]int{
	"GT": 8,
	"SV": 8,
	"HN": 8,
	"NI": 8,
	"CR": 8,
	"PA": 8,
	"MX": 10,
	"US": 10,
}

// PhoneLength returns the required digit count for a country code.
func PhoneLength(country string) (int, bool) {
	n, ok := phoneRules[country]
	return n, ok
}

// SupportedCountries lists the country codes with a phone rule entry.
func SupportedCountries() []string {
	codes := make([]string, 0, len(phoneRules))
	for code := range phoneRules {
		codes = append(codes, code)
	}
	return codes
}
