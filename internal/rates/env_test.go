package rates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/bank-ledger/internal/models"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.env")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// clearEnv unsets the variables LoadConfig reads so that godotenv.Load,
// which never overrides existing variables, actually loads them from the
// file. t.Setenv registers restoration of the original values.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_LOG_LEVEL", "RATE_USD", "RATE_EUR", "RATE_UAH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)

	path := writeEnvFile(t, "APP_LOG_LEVEL=debug\nRATE_USD=1.1\nRATE_EUR=1.25\n")

	logLevel, table, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "debug", logLevel)

	assert.True(t, table[models.USD].Equal(decimal.RequireFromString("1.1")))
	assert.True(t, table[models.EUR].Equal(decimal.RequireFromString("1.25")))

	_, ok := table[models.UAH]
	assert.False(t, ok, "unset rates stay out of the table")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	logLevel, table, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err, "a missing config file is not an error")
	assert.Equal(t, "info", logLevel)
	assert.Empty(t, table)
}

func TestLoadConfig_InvalidRate(t *testing.T) {
	clearEnv(t)

	path := writeEnvFile(t, "RATE_USD=not-a-number\n")

	_, _, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rate for USD")
}
