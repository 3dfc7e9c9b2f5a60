package loan

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidPrincipal = errors.New("principal must be positive")
	ErrInvalidRate      = errors.New("annual rate must not be negative")
	ErrInvalidTerm      = errors.New("term must be at least one month")
)

// ScheduleResult is the output of a fixed-payment amortization run.
type ScheduleResult struct {
	MonthlyPayment float64       `json:"monthly_payment"`
	TotalInterest  float64       `json:"total_interest"`
	TotalPayable   float64       `json:"total_payable"`
	Installments   []Installment `json:"installments"`
}

// ComputeSchedule builds a French (fixed-payment) amortization schedule.
// The monthly payment is M = P*r/(1-(1+r)^-n) with r the monthly rate;
// a zero rate degrades to straight-line P/n. Capital and interest are
// clamped at zero to absorb float drift in the final period.
// Pure function: no state, no side effects.
func ComputeSchedule(principal, annualRatePct float64, termMonths int) (*ScheduleResult, error) {
	if principal <= 0 {
		return nil, ErrInvalidPrincipal
	}
	if annualRatePct < 0 {
		return nil, ErrInvalidRate
	}
	if termMonths <= 0 {
		return nil, ErrInvalidTerm
	}

	r := (annualRatePct / 100) / 12
	n := termMonths

	var payment float64
	if r == 0 {
		payment = principal / float64(n)
	} else {
		payment = principal * (r / (1 - math.Pow(1+r, -float64(n))))
	}

	balance := principal
	installments := make([]Installment, 0, n)
	for i := 1; i <= n; i++ {
		interest := balance * r
		capital := payment - interest
		balance -= capital
		installments = append(installments, Installment{
			Number:   i,
			Period:   fmt.Sprintf("Mes %d", i),
			Capital:  math.Max(0, capital),
			Interest: math.Max(0, interest),
			Total:    payment,
			Status:   InstallmentPending,
		})
	}

	return &ScheduleResult{
		MonthlyPayment: payment,
		TotalInterest:  payment*float64(n) - principal,
		TotalPayable:   payment * float64(n),
		Installments:   installments,
	}, nil
}
