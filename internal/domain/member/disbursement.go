package member

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"cap-core-backend/internal/domain/loan"
)

// DisbursementCategory tags the ledger entry written when an approved
// principal is credited.
const DisbursementCategory = "Loan disbursement"

// DisburseLoan credits the approved principal into the member's savings
// account and records the credit leg in the ledger. Fails with
// ErrNoSavingsAccount before touching anything.
func (m *Member) DisburseLoan(l *loan.Loan, at time.Time) error {
	sav, err := m.SavingsAccount()
	if err != nil {
		return err
	}
	sav.Balance += l.Amount
	m.PushTransaction(Transaction{
		ID:          uuid.NewString(),
		Date:        at,
		Description: fmt.Sprintf("LOAN DISBURSEMENT %s", l.ID),
		Amount:      l.Amount,
		Type:        TransactionCredit,
		Category:    DisbursementCategory,
		AccountID:   sav.ID,
		Reference:   l.ID,
	})
	return nil
}
