package member

import (
	"context"
	"fmt"
	"time"

	approvalDomain "sacco-backend/internal/domain/approval"
	memberDomain "sacco-backend/internal/domain/member"
	"sacco-backend/pkg/id"
)

type Usecase struct{ repo memberDomain.Repository }

func NewUsecase(r memberDomain.Repository) *Usecase { return &Usecase{repo: r} }

type CreateMemberInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type MemberDTO struct {
	MemberUID string            `json:"member_uid"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Role      memberDomain.Role `json:"role"`
	CreatedAt time.Time         `json:"created_at"`
}

func toDTO(m *memberDomain.Member) *MemberDTO {
	return &MemberDTO{
		MemberUID: m.MemberUID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateMemberInput) (*MemberDTO, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", approvalDomain.ErrInvalidInput)
	}
	role := memberDomain.RoleMember
	if in.Role == string(memberDomain.RoleAdmin) {
		role = memberDomain.RoleAdmin
	}
	m := &memberDomain.Member{
		MemberUID: id.NewID32(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      role,
	}
	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toDTO(m), nil
}

func (u *Usecase) Get(ctx context.Context, memberUID string) (*MemberDTO, error) {
	m, err := u.repo.GetByMemberUID(ctx, memberUID)
	if err != nil {
		return nil, err
	}
	return toDTO(m), nil
}
