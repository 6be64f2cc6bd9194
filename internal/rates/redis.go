package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/bank-ledger/internal/logger"
)

// RateCacheRepository provides cached conversion rates using Redis
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewRateCacheRepository creates a new repository instance with optional TTL
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetRate fetches a cached conversion rate for a currency
func (r *RateCacheRepository) GetRate(ctx context.Context, currency string) (decimal.Decimal, error) {
	key := fmt.Sprintf("conversion_rate:%s", currency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return decimal.Zero, fmt.Errorf("conversion rate not found in cache for %s", currency)
		}
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(val)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return decimal.Zero, err
	}

	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", rate,
		"error", nil,
	)

	return rate, nil
}

// SetRate caches a conversion rate in Redis with expiration
func (r *RateCacheRepository) SetRate(ctx context.Context, currency string, rate decimal.Decimal) error {
	key := fmt.Sprintf("conversion_rate:%s", currency)
	err := r.client.Set(ctx, key, rate.String(), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"rate", rate,
		"result", "ok",
		"error", err,
	)

	return err
}

// LoadTable pulls the cached rates for the given currencies into a table
// suitable for ledger.NewCurrentRateStrategy. Currencies without a cached
// rate are left out of the table; other errors propagate.
func (r *RateCacheRepository) LoadTable(ctx context.Context, currencies ...string) (map[string]decimal.Decimal, error) {
	table := make(map[string]decimal.Decimal, len(currencies))
	for _, currency := range currencies {
		key := fmt.Sprintf("conversion_rate:%s", currency)

		val, err := r.client.Get(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, err
		}

		rate, err := decimal.NewFromString(val)
		if err != nil {
			return nil, err
		}
		table[currency] = rate
	}
	return table, nil
}
