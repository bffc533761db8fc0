package membermock

import (
	"context"

	domain "sacco-backend/internal/domain/member"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, m *domain.Member) error
	GetByMemberUIDFn func(ctx context.Context, memberUID string) (*domain.Member, error)
	CountFn          func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, mem *domain.Member) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mem)
	}
	return nil
}

func (m *Repo) GetByMemberUID(ctx context.Context, memberUID string) (*domain.Member, error) {
	if m.GetByMemberUIDFn != nil {
		return m.GetByMemberUIDFn(ctx, memberUID)
	}
	return nil, context.Canceled
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
