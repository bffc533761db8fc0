package mysql

import (
	"context"

	"gorm.io/gorm"

	memberDomain "sacco-backend/internal/domain/member"
)

type MemberRepository struct{ db *gorm.DB }

func NewMemberRepository(db *gorm.DB) *MemberRepository { return &MemberRepository{db: db} }

func (r *MemberRepository) Create(ctx context.Context, m *memberDomain.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberRepository) GetByMemberUID(ctx context.Context, memberUID string) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).Where("member_uid = ?", memberUID).First(&out)
	return &out, res.Error
}

func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&memberDomain.Member{}).Count(&n)
	return n, res.Error
}
