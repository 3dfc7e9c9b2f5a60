package simulation

import (
	"time"

	"cap-core-backend/internal/domain/loan"
)

type SimulateInput struct {
	Principal  float64 `json:"principal"`
	CategoryID string  `json:"category_id"`
	TermMonths int     `json:"term_months"`
}

type SubmitInput struct {
	MemberID   string  `json:"member_id"`
	Principal  float64 `json:"principal"`
	CategoryID string  `json:"category_id"`
	TermMonths int     `json:"term_months"`
}

// ScheduleDTO is a candidate schedule. EffectiveTerm may be shorter than
// the requested term when the category or the global cap trims it.
type ScheduleDTO struct {
	CategoryID     string             `json:"category_id"`
	Category       string             `json:"category"`
	Rate           float64            `json:"rate"`
	EffectiveTerm  int                `json:"effective_term"`
	MonthlyPayment float64            `json:"monthly_payment"`
	TotalInterest  float64            `json:"total_interest"`
	TotalPayable   float64            `json:"total_payable"`
	Installments   []loan.Installment `json:"installments"`
}

type LoanDTO struct {
	LoanID            string             `json:"loan_id"`
	MemberID          string             `json:"member_id"`
	MemberName        string             `json:"member_name"`
	Amount            float64            `json:"amount"`
	Balance           float64            `json:"balance"`
	Rate              float64            `json:"rate"`
	InstallmentsCount int                `json:"installments_count"`
	Installments      []loan.Installment `json:"installments"`
	Status            string             `json:"status"`
	Category          string             `json:"category"`
	StartDate         time.Time          `json:"start_date"`
}
