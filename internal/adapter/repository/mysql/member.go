package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	memberDomain "cap-core-backend/internal/domain/member"
)

// MemberRecord stores the whole member aggregate as one JSON document.
// The engine always reads and writes the member by value, so a document
// column keeps the row layout stable while the aggregate evolves.
type MemberRecord struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	MemberID  string    `gorm:"size:32;uniqueIndex:ux_members_member_id;column:member_id"`
	Name      string    `gorm:"size:191;column:name"`
	Document  []byte    `gorm:"type:json;column:document"`
	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at"`
}

func (MemberRecord) TableName() string { return "members" }

type MemberRepository struct{ db *gorm.DB }

func NewMemberRepository(db *gorm.DB) *MemberRepository { return &MemberRepository{db: db} }

func (r *MemberRepository) Create(ctx context.Context, m *memberDomain.Member) error {
	doc, err := json.Marshal(m)
	if err != nil {
		return err
	}
	rec := MemberRecord{MemberID: m.ID, Name: m.Name, Document: doc}
	return r.db.WithContext(ctx).Create(&rec).Error
}

func (r *MemberRepository) GetByMemberID(ctx context.Context, memberID string) (*memberDomain.Member, error) {
	var rec MemberRecord
	res := r.db.WithContext(ctx).Where("member_id = ?", memberID).First(&rec)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, memberDomain.ErrNotFound
		}
		return nil, res.Error
	}
	var m memberDomain.Member
	if err := json.Unmarshal(rec.Document, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save overwrites the stored document with the complete post-transition
// aggregate.
func (r *MemberRepository) Save(ctx context.Context, m *memberDomain.Member) error {
	return r.save(r.db.WithContext(ctx), m)
}

func (r *MemberRepository) save(tx *gorm.DB, m *memberDomain.Member) error {
	doc, err := json.Marshal(m)
	if err != nil {
		return err
	}
	res := tx.Model(&MemberRecord{}).
		Where("member_id = ?", m.ID).
		Updates(map[string]any{"name": m.Name, "document": doc})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return memberDomain.ErrNotFound
	}
	return nil
}

// WithinMemberTx runs fn against a fresh snapshot inside a db
// transaction and persists the result only when fn succeeds. Concurrent
// writers to the same member must go through here.
func (r *MemberRepository) WithinMemberTx(ctx context.Context, memberID string, fn func(m *memberDomain.Member) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := &MemberRepository{db: tx}
		m, err := repo.GetByMemberID(ctx, memberID)
		if err != nil {
			return err
		}
		if err := fn(m); err != nil {
			return err
		}
		return repo.save(tx.WithContext(ctx), m)
	})
}
