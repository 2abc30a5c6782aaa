package models

// CardType is a derived card brand, never user-entered.
type CardType string

const (
	CardVisa       CardType = "visa"
	CardMastercard CardType = "mastercard"
	CardAmex       CardType = "amex"
)

// PaymentInfo holds the card and billing data entered on the payment step.
// CardType is recomputed every time CardNumber changes.
type PaymentInfo struct {
	CardNumber       string   `json:"cardNumber"`
	CardHolder       string   `json:"cardHolder"`
	ExpiryMonth      string   `json:"expiryMonth"`
	ExpiryYear       string   `json:"expiryYear"`
	CVV              string   `json:"cvv"`
	CardType         CardType `json:"cardType"`
	ClientCity       string   `json:"clientCity"`
	ClientState      string   `json:"clientState"`
	ClientPostalCode string   `json:"clientPostalCode"`
	ClientLocation   string   `json:"clientLocation"`
}
