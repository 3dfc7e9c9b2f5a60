package decision

import (
	"context"
	"time"

	"cap-core-backend/internal/domain/member"
)

type Usecase struct {
	ledger member.Ledger
}

func NewUsecase(ledger member.Ledger) *Usecase {
	return &Usecase{ledger: ledger}
}

type DecideInput struct {
	LoanID    string
	MemberID  string
	Approve   bool
	Rationale string
}

// Decide settles a requested loan. Approval activates it and disburses
// the principal into the member's savings account; rejection is terminal
// with no account side effects. The loan's current status is looked up
// inside the transaction, so deciding an already-decided loan fails and
// writes nothing.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*DecisionDTO, error) {
	var dto *DecisionDTO
	err := u.ledger.WithinMemberTx(ctx, in.MemberID, func(m *member.Member) error {
		l, err := m.LoanByID(in.LoanID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if in.Approve {
			// Resolve the savings account before flipping state so a
			// structurally broken member record aborts cleanly.
			if _, err := m.SavingsAccount(); err != nil {
				return err
			}
			if err := l.Approve(in.Rationale); err != nil {
				return err
			}
			if err := m.DisburseLoan(l, now); err != nil {
				return err
			}
		} else {
			if err := l.Reject(in.Rationale); err != nil {
				return err
			}
		}

		dto = newDecisionDTO(m, l, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
