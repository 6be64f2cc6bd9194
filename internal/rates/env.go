// Package rates builds conversion-rate tables for ledger.CurrentRateStrategy
// from configuration and from a Redis cache. The strategy itself stays pure;
// these sources only assemble its table.
package rates

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/bank-ledger/internal/models"
)

// LoadConfig loads environment variables from a file and returns the log
// level plus a rate table assembled from RATE_<CODE> entries for every
// supported currency. A missing file is not an error; unset rates are simply
// absent from the table.
func LoadConfig(path string) (logLevel string, table map[string]decimal.Decimal, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	logLevel = getEnv("APP_LOG_LEVEL", "info")

	table = make(map[string]decimal.Decimal)
	for _, code := range models.Currencies() {
		raw := getEnv("RATE_"+code, "")
		if raw == "" {
			continue
		}
		rate, parseErr := decimal.NewFromString(raw)
		if parseErr != nil {
			err = fmt.Errorf("invalid rate for %s: %w", code, parseErr)
			return
		}
		table[code] = rate
	}

	return logLevel, table, nil
}
