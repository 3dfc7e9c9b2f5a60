package kv

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"cap-core-backend/internal/domain/refdata"
)

const (
	ratesKey  = "cap:interest_rates"
	configKey = "cap:global_config"
)

// RefdataStore keeps the rate catalog and the global loan limits as
// opaque JSON blobs in Redis. Reads fall back to the seed data until an
// administrator writes a catalog of their own.
type RefdataStore struct{ rdb *redis.Client }

func NewRefdataStore(rdb *redis.Client) *RefdataStore { return &RefdataStore{rdb: rdb} }

func (s *RefdataStore) Rates(ctx context.Context) ([]refdata.InterestRate, error) {
	raw, err := s.rdb.Get(ctx, ratesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return refdata.DefaultRates(), nil
	}
	if err != nil {
		return nil, err
	}
	var rates []refdata.InterestRate
	if err := json.Unmarshal(raw, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

func (s *RefdataStore) SaveRates(ctx context.Context, rates []refdata.InterestRate) error {
	raw, err := json.Marshal(rates)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, ratesKey, raw, 0).Err()
}

func (s *RefdataStore) Config(ctx context.Context) (refdata.GlobalConfig, error) {
	raw, err := s.rdb.Get(ctx, configKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return refdata.DefaultConfig(), nil
	}
	if err != nil {
		return refdata.GlobalConfig{}, err
	}
	var cfg refdata.GlobalConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return refdata.GlobalConfig{}, err
	}
	return cfg, nil
}

func (s *RefdataStore) SaveConfig(ctx context.Context, cfg refdata.GlobalConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, configKey, raw, 0).Err()
}
