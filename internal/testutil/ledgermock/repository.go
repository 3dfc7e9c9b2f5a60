package ledgermock

import (
	"context"

	domain "cap-core-backend/internal/domain/member"
)

// Ledger is a function-backed mock that satisfies member.Ledger.
// Only wire the funcs a test needs; the zero value of the rest either
// no-ops or reports context.Canceled.
type Ledger struct {
	CreateFn         func(ctx context.Context, m *domain.Member) error
	GetByMemberIDFn  func(ctx context.Context, memberID string) (*domain.Member, error)
	SaveFn           func(ctx context.Context, m *domain.Member) error
	WithinMemberTxFn func(ctx context.Context, memberID string, fn func(m *domain.Member) error) error
}

func (l *Ledger) Create(ctx context.Context, m *domain.Member) error {
	if l.CreateFn != nil {
		return l.CreateFn(ctx, m)
	}
	return nil
}

func (l *Ledger) GetByMemberID(ctx context.Context, memberID string) (*domain.Member, error) {
	if l.GetByMemberIDFn != nil {
		return l.GetByMemberIDFn(ctx, memberID)
	}
	return nil, context.Canceled
}

func (l *Ledger) Save(ctx context.Context, m *domain.Member) error {
	if l.SaveFn != nil {
		return l.SaveFn(ctx, m)
	}
	return nil
}

func (l *Ledger) WithinMemberTx(ctx context.Context, memberID string, fn func(m *domain.Member) error) error {
	if l.WithinMemberTxFn != nil {
		return l.WithinMemberTxFn(ctx, memberID, fn)
	}
	return context.Canceled
}

// InMemory is a single-member ledger whose WithinMemberTx mimics the
// real repository: fn runs against a clone and the clone replaces the
// stored member only when fn succeeds.
type InMemory struct {
	Member *domain.Member
}

func NewInMemory(m *domain.Member) *InMemory { return &InMemory{Member: m} }

func (s *InMemory) Create(ctx context.Context, m *domain.Member) error {
	s.Member = m.Clone()
	return nil
}

func (s *InMemory) GetByMemberID(ctx context.Context, memberID string) (*domain.Member, error) {
	if s.Member == nil || s.Member.ID != memberID {
		return nil, domain.ErrNotFound
	}
	return s.Member.Clone(), nil
}

func (s *InMemory) Save(ctx context.Context, m *domain.Member) error {
	if s.Member == nil || s.Member.ID != m.ID {
		return domain.ErrNotFound
	}
	s.Member = m.Clone()
	return nil
}

func (s *InMemory) WithinMemberTx(ctx context.Context, memberID string, fn func(m *domain.Member) error) error {
	m, err := s.GetByMemberID(ctx, memberID)
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return err
	}
	s.Member = m
	return nil
}
