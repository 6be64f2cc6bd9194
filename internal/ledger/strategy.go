package ledger

import (
	"github.com/shopspring/decimal"
)

// ConversionStrategy converts an amount expressed in sourceCurrency into the
// account's own currency. Implementations must be pure: no side effects, no
// mutation of the strategy itself.
type ConversionStrategy interface {
	Convert(amount decimal.Decimal, sourceCurrency string) (decimal.Decimal, error)
}

// CurrentRateStrategy converts using a fixed per-currency rate table.
type CurrentRateStrategy struct {
	rates map[string]decimal.Decimal
}

// NewCurrentRateStrategy creates a strategy over a copy of the given rate table.
func NewCurrentRateStrategy(rates map[string]decimal.Decimal) *CurrentRateStrategy {
	table := make(map[string]decimal.Decimal, len(rates))
	for currency, rate := range rates {
		table[currency] = rate
	}
	return &CurrentRateStrategy{rates: table}
}

// Convert multiplies amount by the configured rate for sourceCurrency.
// A missing entry fails with ErrRateUnavailable. A configured rate of exactly
// zero is also treated as unavailable, matching the reference behavior.
func (s *CurrentRateStrategy) Convert(amount decimal.Decimal, sourceCurrency string) (decimal.Decimal, error) {
	rate, ok := s.rates[sourceCurrency]
	if !ok || rate.IsZero() {
		return decimal.Zero, ErrRateUnavailable
	}
	return amount.Mul(rate), nil
}

// FixedRateStrategy converts every currency with a single constant rate.
type FixedRateStrategy struct {
	rate decimal.Decimal
}

// NewFixedRateStrategy creates a strategy that always multiplies by rate.
func NewFixedRateStrategy(rate decimal.Decimal) *FixedRateStrategy {
	return &FixedRateStrategy{rate: rate}
}

// Convert multiplies amount by the fixed rate regardless of sourceCurrency. It never fails.
func (s *FixedRateStrategy) Convert(amount decimal.Decimal, sourceCurrency string) (decimal.Decimal, error) {
	return amount.Mul(s.rate), nil
}
