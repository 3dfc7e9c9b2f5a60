package members

import (
	"time"

	"cap-core-backend/internal/domain/loan"
	"cap-core-backend/internal/domain/member"
)

type MemberDTO struct {
	ID           string                      `json:"id"`
	Name         string                      `json:"name"`
	MemberNumber string                      `json:"member_number,omitempty"`
	Accounts     []member.Account            `json:"accounts"`
	Transactions []member.Transaction        `json:"transactions"`
	Loans        []LoanDTO                   `json:"loans"`
	Bureau       *member.CreditBureauProfile `json:"bureau,omitempty"`
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
	Comments          string             `json:"comments,omitempty"`
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
		Comments:          l.Comments,
	}
}

func toMemberDTO(m *member.Member) *MemberDTO {
	loans := make([]LoanDTO, 0, len(m.Loans))
	for i := range m.Loans {
		loans = append(loans, *toLoanDTO(&m.Loans[i]))
	}
	return &MemberDTO{
		ID:           m.ID,
		Name:         m.Name,
		MemberNumber: m.MemberNumber,
		Accounts:     m.Accounts,
		Transactions: m.Transactions,
		Loans:        loans,
		Bureau:       m.Bureau,
	}
}
