package members

import (
	"context"

	"cap-core-backend/internal/domain/member"
)

// Usecase serves the read side: member detail and single-loan views.
type Usecase struct {
	ledger member.Ledger
}

func NewUsecase(ledger member.Ledger) *Usecase {
	return &Usecase{ledger: ledger}
}

func (u *Usecase) Get(ctx context.Context, memberID string) (*MemberDTO, error) {
	m, err := u.ledger.GetByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return toMemberDTO(m), nil
}

func (u *Usecase) GetLoan(ctx context.Context, memberID, loanID string) (*LoanDTO, error) {
	m, err := u.ledger.GetByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	l, err := m.LoanByID(loanID)
	if err != nil {
		return nil, err
	}
	return toLoanDTO(l), nil
}
