package collection

import (
	"time"

	"cap-core-backend/internal/domain/loan"
	"cap-core-backend/internal/domain/member"
)

// ReceiptDTO is what a teller prints after collecting an installment.
type ReceiptDTO struct {
	LoanID            string    `json:"loan_id"`
	MemberID          string    `json:"member_id"`
	InstallmentNumber int       `json:"installment_number"`
	Capital           float64   `json:"capital"`
	Interest          float64   `json:"interest"`
	Total             float64   `json:"total"`
	LoanStatus        string    `json:"loan_status"`
	LoanBalance       float64   `json:"loan_balance"`
	SavingsBalance    float64   `json:"savings_balance"`
	BureauScore       int       `json:"bureau_score"`
	BureauRating      string    `json:"bureau_rating"`
	PaidAt            time.Time `json:"paid_at"`
}

func newReceiptDTO(m *member.Member, l *loan.Loan, inst *loan.Installment, sav *member.Account, at time.Time) *ReceiptDTO {
	dto := &ReceiptDTO{
		LoanID:            l.ID,
		MemberID:          m.ID,
		InstallmentNumber: inst.Number,
		Capital:           inst.Capital,
		Interest:          inst.Interest,
		Total:             inst.Total,
		LoanStatus:        string(l.Status),
		LoanBalance:       l.Balance,
		SavingsBalance:    sav.Balance,
		PaidAt:            at,
	}
	if m.Bureau != nil {
		dto.BureauScore = m.Bureau.Score
		dto.BureauRating = string(m.Bureau.Rating)
	}
	return dto
}
