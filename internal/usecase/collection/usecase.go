package collection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cap-core-backend/internal/domain/loan"
	"cap-core-backend/internal/domain/member"
)

// Source says where the money for an installment comes from.
type Source string

const (
	// SourceAccount debits the member's savings account directly.
	SourceAccount Source = "ACCOUNT"
	// SourceExternalTransfer books an incoming deposit and immediately
	// pays the installment from it; both legs hit the ledger so the net
	// balance change is zero but the audit trail is complete.
	SourceExternalTransfer Source = "EXTERNAL_TRANSFER"
)

var ErrUnknownSource = errors.New("unknown payment source")

const (
	paymentCategory  = "Loan payments"
	transferCategory = "External transfer"
)

type Usecase struct {
	ledger member.Ledger
}

func NewUsecase(ledger member.Ledger) *Usecase {
	return &Usecase{ledger: ledger}
}

type CollectInput struct {
	LoanID   string
	MemberID string
	Number   int
	Source   Source
}

// Collect pays one pending installment of an active loan. On success the
// installment flips to paid, the loan balance drops by the capital
// portion, the savings account and ledger record the money movement and
// the bureau profile is rewarded. All of it persists as one unit; any
// precondition failure leaves the member record untouched.
func (u *Usecase) Collect(ctx context.Context, in CollectInput) (*ReceiptDTO, error) {
	if in.Source != SourceAccount && in.Source != SourceExternalTransfer {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, in.Source)
	}

	var dto *ReceiptDTO
	err := u.ledger.WithinMemberTx(ctx, in.MemberID, func(m *member.Member) error {
		l, err := m.LoanByID(in.LoanID)
		if err != nil {
			return err
		}
		if l.Status != loan.StatusActive {
			return loan.ErrInvalidTransition
		}
		inst, err := l.Installment(in.Number)
		if err != nil {
			return err
		}
		if inst.Status == loan.InstallmentPaid {
			return loan.ErrInstallmentAlreadyPaid
		}
		sav, err := m.SavingsAccount()
		if err != nil {
			return err
		}
		if in.Source == SourceAccount && sav.Balance < inst.Total {
			return fmt.Errorf("%w: balance %.2f, installment %.2f",
				loan.ErrInsufficientFunds, sav.Balance, inst.Total)
		}

		now := time.Now().UTC()
		paid, err := l.ApplyPayment(in.Number)
		if err != nil {
			return err
		}

		switch in.Source {
		case SourceAccount:
			sav.Balance -= paid.Total
			m.PushTransaction(debitLeg(l, paid, sav.ID, now))
		case SourceExternalTransfer:
			m.PushTransaction(member.Transaction{
				ID:          uuid.NewString(),
				Date:        now,
				Description: fmt.Sprintf("EXTERNAL DEPOSIT LOAN PAYMENT %s", l.ID),
				Amount:      paid.Total,
				Type:        member.TransactionCredit,
				Category:    transferCategory,
				AccountID:   sav.ID,
				Reference:   l.ID,
			})
			m.PushTransaction(debitLeg(l, paid, sav.ID, now))
		}

		m.RewardPayment(now)
		dto = newReceiptDTO(m, l, paid, sav, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func debitLeg(l *loan.Loan, inst *loan.Installment, accountID string, at time.Time) member.Transaction {
	return member.Transaction{
		ID:          uuid.NewString(),
		Date:        at,
		Description: fmt.Sprintf("INSTALLMENT #%d PAYMENT LOAN %s", inst.Number, l.ID),
		Amount:      -inst.Total,
		Type:        member.TransactionDebit,
		Category:    paymentCategory,
		AccountID:   accountID,
		Reference:   l.ID,
	}
}
