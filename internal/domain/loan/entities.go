package loan

import (
	"errors"
	"strings"
	"time"
)

type Status string

const (
	StatusRequested Status = "requested"
	StatusActive    Status = "active"
	StatusPaid      Status = "paid"
	StatusRejected  Status = "rejected"
)

type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentPaid    InstallmentStatus = "paid"
)

var (
	ErrNotFound               = errors.New("loan not found")
	ErrInvalidTransition      = errors.New("loan is not in a state that allows this operation")
	ErrMissingRationale       = errors.New("decision rationale is required")
	ErrInstallmentNotFound    = errors.New("installment not found")
	ErrInstallmentAlreadyPaid = errors.New("installment is already paid")
	ErrInsufficientFunds      = errors.New("insufficient savings balance")
)

// Installment is one scheduled payment. Numbers are 1-based and
// contiguous; only Status changes after the schedule is built.
type Installment struct {
	Number   int               `json:"number"`
	Period   string            `json:"period"`
	Capital  float64           `json:"capital"`
	Interest float64           `json:"interest"`
	Total    float64           `json:"total"`
	Status   InstallmentStatus `json:"status"`
}

type Loan struct {
	ID                string        `json:"loan_id"`
	MemberID          string        `json:"member_id"`
	MemberName        string        `json:"member_name"`
	Amount            float64       `json:"amount"`
	Balance           float64       `json:"balance"`
	Rate              float64       `json:"rate"`
	InstallmentsCount int           `json:"installments_count"`
	Installments      []Installment `json:"installments"`
	Status            Status        `json:"status"`
	Category          string        `json:"category"`
	StartDate         time.Time     `json:"start_date"`
	Comments          string        `json:"comments,omitempty"`
}

// Installment returns the scheduled payment with the given 1-based number.
func (l *Loan) Installment(number int) (*Installment, error) {
	if number < 1 || number > len(l.Installments) {
		return nil, ErrInstallmentNotFound
	}
	return &l.Installments[number-1], nil
}

func (l *Loan) AllPaid() bool {
	for i := range l.Installments {
		if l.Installments[i].Status != InstallmentPaid {
			return false
		}
	}
	return len(l.Installments) > 0
}

// Approve moves a requested loan to active. The officer's rationale is
// mandatory and kept verbatim as an audit note.
func (l *Loan) Approve(rationale string) error {
	rationale = strings.TrimSpace(rationale)
	if rationale == "" {
		return ErrMissingRationale
	}
	if l.Status != StatusRequested {
		return ErrInvalidTransition
	}
	l.Status = StatusActive
	l.Comments = rationale
	return nil
}

// Reject moves a requested loan to its terminal rejected state.
// No account or ledger side effects.
func (l *Loan) Reject(rationale string) error {
	rationale = strings.TrimSpace(rationale)
	if rationale == "" {
		return ErrMissingRationale
	}
	if l.Status != StatusRequested {
		return ErrInvalidTransition
	}
	l.Status = StatusRejected
	l.Comments = rationale
	return nil
}

// ApplyPayment marks installment number as paid and reduces the
// outstanding balance by its capital portion only; interest is income,
// not principal reduction. When every installment is paid the loan flips
// to its terminal paid state; "all paid" is the terminal signal rather
// than a float comparison of balance against zero.
func (l *Loan) ApplyPayment(number int) (*Installment, error) {
	if l.Status != StatusActive {
		return nil, ErrInvalidTransition
	}
	inst, err := l.Installment(number)
	if err != nil {
		return nil, err
	}
	if inst.Status == InstallmentPaid {
		return nil, ErrInstallmentAlreadyPaid
	}
	inst.Status = InstallmentPaid
	l.Balance -= inst.Capital
	if l.AllPaid() {
		l.Status = StatusPaid
	}
	return inst, nil
}
