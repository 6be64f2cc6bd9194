package models

// Supported currency codes
const (
	USD = "USD"
	EUR = "EUR"
	UAH = "UAH"
)

// Currencies lists every supported currency code in a stable order.
func Currencies() []string {
	return []string{USD, EUR, UAH}
}
