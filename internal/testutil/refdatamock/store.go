package refdatamock

import (
	"context"

	"cap-core-backend/internal/domain/refdata"
)

// Store satisfies refdata.Store with overridable funcs; unset readers
// serve the seed data, unset writers no-op.
type Store struct {
	RatesFn      func(ctx context.Context) ([]refdata.InterestRate, error)
	SaveRatesFn  func(ctx context.Context, rates []refdata.InterestRate) error
	ConfigFn     func(ctx context.Context) (refdata.GlobalConfig, error)
	SaveConfigFn func(ctx context.Context, cfg refdata.GlobalConfig) error
}

func (s *Store) Rates(ctx context.Context) ([]refdata.InterestRate, error) {
	if s.RatesFn != nil {
		return s.RatesFn(ctx)
	}
	return refdata.DefaultRates(), nil
}

func (s *Store) SaveRates(ctx context.Context, rates []refdata.InterestRate) error {
	if s.SaveRatesFn != nil {
		return s.SaveRatesFn(ctx, rates)
	}
	return nil
}

func (s *Store) Config(ctx context.Context) (refdata.GlobalConfig, error) {
	if s.ConfigFn != nil {
		return s.ConfigFn(ctx)
	}
	return refdata.DefaultConfig(), nil
}

func (s *Store) SaveConfig(ctx context.Context, cfg refdata.GlobalConfig) error {
	if s.SaveConfigFn != nil {
		return s.SaveConfigFn(ctx, cfg)
	}
	return nil
}
