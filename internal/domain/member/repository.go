package member

import "context"

// Ledger is the per-member aggregate store. Save always receives the
// complete post-transition member record, never a partial patch.
// Callers must serialize read-modify-write cycles against the same
// member; WithinMemberTx is the supported way to do that.
type Ledger interface {
	Create(ctx context.Context, m *Member) error
	GetByMemberID(ctx context.Context, memberID string) (*Member, error)
	Save(ctx context.Context, m *Member) error

	// WithinMemberTx loads the member, runs fn against the snapshot and
	// persists it as one unit. When fn errors nothing is written, so an
	// operation either applies all of its effects or none of them.
	WithinMemberTx(ctx context.Context, memberID string, fn func(m *Member) error) error
}
