package member

import (
	"errors"
	"time"

	"cap-core-backend/internal/domain/loan"
)

type AccountType string

const (
	AccountSavings     AccountType = "AHORRO_VISTA"
	AccountCertificate AccountType = "CERTIFICADO_APORTACION"
	AccountLoan        AccountType = "PRESTAMO"
)

type TransactionType string

const (
	TransactionCredit TransactionType = "CREDIT"
	TransactionDebit  TransactionType = "DEBIT"
)

var (
	ErrNotFound         = errors.New("member not found")
	ErrNoSavingsAccount = errors.New("member has no savings account")
)

type Account struct {
	ID       string      `json:"id"`
	Type     AccountType `json:"type"`
	Number   string      `json:"number"`
	Balance  float64     `json:"balance"`
	Currency string      `json:"currency"`
}

// Transaction is an immutable ledger entry. Entries are prepended to the
// member's history (most recent first) and never edited or deleted.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	AccountID   string          `json:"account_id"`
	Reference   string          `json:"reference,omitempty"`
	IsCash      bool            `json:"is_cash,omitempty"`
	TellerID    string          `json:"teller_id,omitempty"`
}

// Member is the aggregate root. Accounts, transactions and loans are
// owned exclusively by their member; mutations operate on a snapshot of
// the whole record and persist it back as one unit.
type Member struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	MemberNumber     string               `json:"member_number,omitempty"`
	RegistrationDate time.Time            `json:"registration_date,omitempty"`
	Accounts         []Account            `json:"accounts"`
	Transactions     []Transaction        `json:"transactions"`
	Loans            []loan.Loan          `json:"loans"`
	Bureau           *CreditBureauProfile `json:"bureau,omitempty"`
}

// SavingsAccount returns the member's single savings account. A member
// without one is a structural data defect and fails loudly instead of
// falling back to a placeholder account id.
func (m *Member) SavingsAccount() (*Account, error) {
	for i := range m.Accounts {
		if m.Accounts[i].Type == AccountSavings {
			return &m.Accounts[i], nil
		}
	}
	return nil, ErrNoSavingsAccount
}

// LoanByID finds a loan owned by this member.
func (m *Member) LoanByID(loanID string) (*loan.Loan, error) {
	for i := range m.Loans {
		if m.Loans[i].ID == loanID {
			return &m.Loans[i], nil
		}
	}
	return nil, loan.ErrNotFound
}

// PushTransaction prepends an entry so history stays most-recent-first.
func (m *Member) PushTransaction(tx Transaction) {
	m.Transactions = append([]Transaction{tx}, m.Transactions...)
}

// Clone returns a deep copy of the aggregate so callers can compute a
// candidate next state without touching the current snapshot.
func (m *Member) Clone() *Member {
	out := *m
	out.Accounts = append([]Account(nil), m.Accounts...)
	out.Transactions = append([]Transaction(nil), m.Transactions...)
	out.Loans = make([]loan.Loan, len(m.Loans))
	for i := range m.Loans {
		out.Loans[i] = m.Loans[i]
		out.Loans[i].Installments = append([]loan.Installment(nil), m.Loans[i].Installments...)
	}
	if m.Bureau != nil {
		b := *m.Bureau
		out.Bureau = &b
	}
	return &out
}
