package saving

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	approvalDomain "sacco-backend/internal/domain/approval"
	savingDomain "sacco-backend/internal/domain/saving"
	"sacco-backend/pkg/id"
	"sacco-backend/pkg/timeutil"
)

type Usecase struct{ repo savingDomain.Repository }

func NewUsecase(r savingDomain.Repository) *Usecase { return &Usecase{repo: r} }

type CreateSavingInput struct {
	MemberUID       string          `json:"member_uid"`
	MemberName      string          `json:"member_name"`
	SubmittedAmount decimal.Decimal `json:"submitted_amount"`
	SubmittedDate   string          `json:"submitted_date"`
}

type SavingDTO struct {
	SavingID        string                `json:"saving_id"`
	MemberUID       string                `json:"member_uid"`
	MemberName      string                `json:"member_name"`
	SubmittedAmount decimal.Decimal       `json:"submitted_amount"`
	SubmittedDate   string                `json:"submitted_date"`
	ApprovedAmount  *decimal.Decimal      `json:"approved_amount,omitempty"`
	ApprovedDate    string                `json:"approved_date,omitempty"`
	Status          approvalDomain.Status `json:"status"`
	Approvals       []string              `json:"approvals"`
	CreatedAt       time.Time             `json:"created_at"`
}

func toDTO(s *savingDomain.Saving) *SavingDTO {
	dto := &SavingDTO{
		SavingID:        s.SavingID,
		MemberUID:       s.MemberUID,
		MemberName:      s.MemberName,
		SubmittedAmount: s.SubmittedAmount,
		SubmittedDate:   s.SubmittedDate,
		ApprovedDate:    s.ApprovedDate,
		Status:          s.ApprovalStatus(),
		Approvals:       s.Approvals.List(),
		CreatedAt:       s.CreatedAt,
	}
	if s.ApprovedAmount.Valid {
		amt := s.ApprovedAmount.Decimal
		dto.ApprovedAmount = &amt
	}
	return dto
}

func (u *Usecase) Create(ctx context.Context, in CreateSavingInput) (*SavingDTO, error) {
	if in.MemberUID == "" || len(in.MemberUID) != 32 {
		return nil, fmt.Errorf("%w: member_uid must be 32-char hex", approvalDomain.ErrInvalidInput)
	}
	if in.SubmittedAmount.IsNegative() {
		return nil, fmt.Errorf("%w: submitted_amount must not be negative", approvalDomain.ErrInvalidInput)
	}

	// The bucketing timestamp prefers the submitted date; form submissions
	// without one fall back to now.
	at := time.Now().UTC()
	if t, ok := timeutil.ParseDate(in.SubmittedDate); ok {
		at = t
	}
	s := &savingDomain.Saving{
		SavingID:        id.NewID32(),
		MemberUID:       in.MemberUID,
		MemberName:      in.MemberName,
		SubmittedAmount: in.SubmittedAmount,
		SubmittedDate:   in.SubmittedDate,
		SubmittedAt:     timeutil.FromTime(at),
		Status:          approvalDomain.StatusPending,
		Approvals:       approvalDomain.ApproverSet{},
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

func (u *Usecase) Get(ctx context.Context, savingID string) (*SavingDTO, error) {
	s, err := u.repo.GetBySavingID(ctx, savingID)
	if err != nil {
		return nil, err
	}
	return toDTO(s), nil
}

func (u *Usecase) List(ctx context.Context) ([]SavingDTO, error) {
	savings, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SavingDTO, 0, len(savings))
	for i := range savings {
		out = append(out, *toDTO(&savings[i]))
	}
	return out, nil
}
