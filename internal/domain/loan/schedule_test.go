package loan

import (
	"errors"
	"math"
	"testing"
)

const centEps = 0.01

func almostEqual(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestComputeSchedule_ReferenceScenario(t *testing.T) {
	// 1000 at 12% nominal over 12 months: monthly rate 0.01,
	// M = 1000*0.01/(1-1.01^-12) ≈ 88.85
	sched, err := ComputeSchedule(1000, 12, 12)
	if err != nil {
		t.Fatalf("ComputeSchedule err: %v", err)
	}
	if !almostEqual(sched.MonthlyPayment, 88.85, centEps) {
		t.Fatalf("monthly payment = %.4f, want ≈88.85", sched.MonthlyPayment)
	}
	if !almostEqual(sched.TotalPayable, 1066.19, centEps) {
		t.Fatalf("total payable = %.4f, want ≈1066.19", sched.TotalPayable)
	}
	if !almostEqual(sched.TotalInterest, 66.19, centEps) {
		t.Fatalf("total interest = %.4f, want ≈66.19", sched.TotalInterest)
	}
	if len(sched.Installments) != 12 {
		t.Fatalf("installments = %d, want 12", len(sched.Installments))
	}
}

func TestComputeSchedule_Invariants(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		rate      float64
		term      int
	}{
		{"small consumer", 1000, 12, 12},
		{"micro", 500, 28.23, 24},
		{"mortgage-sized", 100000, 9.5, 120},
		{"single installment", 250, 16.06, 1},
		{"zero rate", 1200, 0, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sched, err := ComputeSchedule(tc.principal, tc.rate, tc.term)
			if err != nil {
				t.Fatalf("ComputeSchedule err: %v", err)
			}

			var capitalSum float64
			for i, inst := range sched.Installments {
				if inst.Number != i+1 {
					t.Fatalf("installment %d has number %d", i, inst.Number)
				}
				if inst.Status != InstallmentPending {
					t.Fatalf("installment %d status = %s", inst.Number, inst.Status)
				}
				// fixed payment: total identical across the whole schedule
				if inst.Total != sched.MonthlyPayment {
					t.Fatalf("installment %d total %.6f != payment %.6f", inst.Number, inst.Total, sched.MonthlyPayment)
				}
				if !almostEqual(inst.Capital+inst.Interest, inst.Total, 1e-6) {
					t.Fatalf("installment %d capital+interest=%.8f, total=%.8f",
						inst.Number, inst.Capital+inst.Interest, inst.Total)
				}
				if inst.Capital < 0 || inst.Interest < 0 {
					t.Fatalf("installment %d has negative portion: %+v", inst.Number, inst)
				}
				capitalSum += inst.Capital
			}
			if !almostEqual(capitalSum, tc.principal, centEps) {
				t.Fatalf("sum(capital)=%.6f, principal=%.2f", capitalSum, tc.principal)
			}
		})
	}
}

func TestComputeSchedule_ZeroRateIsStraightLine(t *testing.T) {
	sched, err := ComputeSchedule(1200, 0, 12)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if sched.MonthlyPayment != 100 {
		t.Fatalf("payment = %.4f, want 100", sched.MonthlyPayment)
	}
	if !almostEqual(sched.TotalInterest, 0, 1e-9) {
		t.Fatalf("total interest = %.6f, want 0", sched.TotalInterest)
	}
	for _, inst := range sched.Installments {
		if inst.Interest != 0 {
			t.Fatalf("installment %d interest = %.6f, want 0", inst.Number, inst.Interest)
		}
	}
}

func TestComputeSchedule_InvalidInputs(t *testing.T) {
	if _, err := ComputeSchedule(0, 12, 12); !errors.Is(err, ErrInvalidPrincipal) {
		t.Fatalf("err = %v, want ErrInvalidPrincipal", err)
	}
	if _, err := ComputeSchedule(-5, 12, 12); !errors.Is(err, ErrInvalidPrincipal) {
		t.Fatalf("err = %v, want ErrInvalidPrincipal", err)
	}
	if _, err := ComputeSchedule(1000, -1, 12); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("err = %v, want ErrInvalidRate", err)
	}
	if _, err := ComputeSchedule(1000, 12, 0); !errors.Is(err, ErrInvalidTerm) {
		t.Fatalf("err = %v, want ErrInvalidTerm", err)
	}
}
