package refdata

import (
	"context"
	"errors"
)

var (
	ErrRateNotFound  = errors.New("interest rate category not found")
	ErrInvalidConfig = errors.New("invalid global loan configuration")
)

// InterestRate is a named credit category: annual nominal rate in
// percent and the longest term the category allows. Reference data,
// configured by an administrator and immutable from the engine's side.
type InterestRate struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Rate     float64 `json:"rate"`
	MaxTerm  int     `json:"max_term"`
}

// GlobalConfig caps every loan regardless of category.
type GlobalConfig struct {
	MinLoanAmount float64 `json:"min_loan_amount"`
	MaxLoanAmount float64 `json:"max_loan_amount"`
	MaxGlobalTerm int     `json:"max_global_term"`
}

func (c GlobalConfig) Validate() error {
	if c.MinLoanAmount <= 0 || c.MaxLoanAmount <= c.MinLoanAmount || c.MaxGlobalTerm <= 0 {
		return ErrInvalidConfig
	}
	return nil
}

// Store persists reference data as opaque JSON behind a generic
// key-value contract. Reads fall back to the seed data when a key has
// never been written.
type Store interface {
	Rates(ctx context.Context) ([]InterestRate, error)
	SaveRates(ctx context.Context, rates []InterestRate) error
	Config(ctx context.Context) (GlobalConfig, error)
	SaveConfig(ctx context.Context, cfg GlobalConfig) error
}

// FindRate looks up a category by id in a catalog slice.
func FindRate(rates []InterestRate, id string) (*InterestRate, error) {
	for i := range rates {
		if rates[i].ID == id {
			return &rates[i], nil
		}
	}
	return nil, ErrRateNotFound
}
