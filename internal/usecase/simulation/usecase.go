package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cap-core-backend/internal/domain/loan"
	"cap-core-backend/internal/domain/member"
	"cap-core-backend/internal/domain/refdata"
	"cap-core-backend/pkg/id"
)

var ErrPrincipalOutOfRange = errors.New("principal outside the configured loan limits")

type Usecase struct {
	ledger  member.Ledger
	refdata refdata.Store
}

func NewUsecase(ledger member.Ledger, rd refdata.Store) *Usecase {
	return &Usecase{ledger: ledger, refdata: rd}
}

// Simulate validates the request against the configured limits and
// returns a candidate schedule. No side effects; repeatable.
func (u *Usecase) Simulate(ctx context.Context, in SimulateInput) (*ScheduleDTO, error) {
	cfg, err := u.refdata.Config(ctx)
	if err != nil {
		return nil, err
	}
	if in.Principal < cfg.MinLoanAmount || in.Principal > cfg.MaxLoanAmount {
		return nil, fmt.Errorf("%w: got %.2f, limits [%.2f, %.2f]",
			ErrPrincipalOutOfRange, in.Principal, cfg.MinLoanAmount, cfg.MaxLoanAmount)
	}

	rates, err := u.refdata.Rates(ctx)
	if err != nil {
		return nil, err
	}
	rate, err := refdata.FindRate(rates, in.CategoryID)
	if err != nil {
		return nil, err
	}

	// Effective term is the requested term trimmed by the category cap
	// and the global cap.
	n := in.TermMonths
	if rate.MaxTerm < n {
		n = rate.MaxTerm
	}
	if cfg.MaxGlobalTerm < n {
		n = cfg.MaxGlobalTerm
	}

	sched, err := loan.ComputeSchedule(in.Principal, rate.Rate, n)
	if err != nil {
		return nil, err
	}

	return &ScheduleDTO{
		CategoryID:     rate.ID,
		Category:       rate.Category,
		Rate:           rate.Rate,
		EffectiveTerm:  n,
		MonthlyPayment: sched.MonthlyPayment,
		TotalInterest:  sched.TotalInterest,
		TotalPayable:   sched.TotalPayable,
		Installments:   sched.Installments,
	}, nil
}

// SubmitRequest recomputes the schedule server-side and files a loan in
// requested state under the member. The submitted principal and term are
// authoritative inputs, never a client-built schedule.
func (u *Usecase) SubmitRequest(ctx context.Context, in SubmitInput) (*LoanDTO, error) {
	sched, err := u.Simulate(ctx, SimulateInput{
		Principal:  in.Principal,
		CategoryID: in.CategoryID,
		TermMonths: in.TermMonths,
	})
	if err != nil {
		return nil, err
	}

	var dto *LoanDTO
	err = u.ledger.WithinMemberTx(ctx, in.MemberID, func(m *member.Member) error {
		l := loan.Loan{
			ID:                id.NewID32(),
			MemberID:          m.ID,
			MemberName:        m.Name,
			Amount:            in.Principal,
			Balance:           in.Principal,
			Rate:              sched.Rate,
			InstallmentsCount: sched.EffectiveTerm,
			Installments:      sched.Installments,
			Status:            loan.StatusRequested,
			Category:          sched.Category,
			StartDate:         time.Now().UTC(),
		}
		m.Loans = append(m.Loans, l)
		dto = toLoanDTO(&l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toLoanDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:            l.ID,
		MemberID:          l.MemberID,
		MemberName:        l.MemberName,
		Amount:            l.Amount,
		Balance:           l.Balance,
		Rate:              l.Rate,
		InstallmentsCount: l.InstallmentsCount,
		Installments:      l.Installments,
		Status:            string(l.Status),
		Category:          l.Category,
		StartDate:         l.StartDate,
	}
}
