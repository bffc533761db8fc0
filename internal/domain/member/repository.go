package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByMemberUID(ctx context.Context, memberUID string) (*Member, error)
	Count(ctx context.Context) (int64, error)
}
