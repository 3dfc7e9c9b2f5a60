package admin

import (
	"context"
	"errors"
	"fmt"

	"cap-core-backend/internal/domain/refdata"
)

var ErrInvalidRate = errors.New("invalid interest rate entry")

// Usecase is the administrator's editor for loan reference data.
type Usecase struct {
	refdata refdata.Store
}

func NewUsecase(rd refdata.Store) *Usecase {
	return &Usecase{refdata: rd}
}

func (u *Usecase) Rates(ctx context.Context) ([]refdata.InterestRate, error) {
	return u.refdata.Rates(ctx)
}

// ReplaceRates swaps the whole catalog. Entries must carry an id, a
// non-negative rate and a positive max term.
func (u *Usecase) ReplaceRates(ctx context.Context, rates []refdata.InterestRate) error {
	if len(rates) == 0 {
		return fmt.Errorf("%w: empty catalog", ErrInvalidRate)
	}
	for _, r := range rates {
		if r.ID == "" || r.Category == "" || r.Rate < 0 || r.MaxTerm <= 0 {
			return fmt.Errorf("%w: %+v", ErrInvalidRate, r)
		}
	}
	return u.refdata.SaveRates(ctx, rates)
}

func (u *Usecase) Config(ctx context.Context) (refdata.GlobalConfig, error) {
	return u.refdata.Config(ctx)
}

func (u *Usecase) ReplaceConfig(ctx context.Context, cfg refdata.GlobalConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return u.refdata.SaveConfig(ctx, cfg)
}
