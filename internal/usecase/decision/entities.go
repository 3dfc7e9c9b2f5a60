package decision

import (
	"time"

	"cap-core-backend/internal/domain/loan"
	"cap-core-backend/internal/domain/member"
)

// DecisionDTO reports the settled loan plus the balances the teller
// screen refreshes after a decision.
type DecisionDTO struct {
	LoanID         string    `json:"loan_id"`
	MemberID       string    `json:"member_id"`
	Status         string    `json:"status"`
	Comments       string    `json:"comments"`
	DecidedAt      time.Time `json:"decided_at"`
	SavingsBalance float64   `json:"savings_balance,omitempty"`
}

func newDecisionDTO(m *member.Member, l *loan.Loan, at time.Time) *DecisionDTO {
	dto := &DecisionDTO{
		LoanID:    l.ID,
		MemberID:  m.ID,
		Status:    string(l.Status),
		Comments:  l.Comments,
		DecidedAt: at,
	}
	if sav, err := m.SavingsAccount(); err == nil {
		dto.SavingsBalance = sav.Balance
	}
	return dto
}
