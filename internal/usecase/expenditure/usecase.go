package expenditure

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	approvalDomain "sacco-backend/internal/domain/approval"
	expDomain "sacco-backend/internal/domain/expenditure"
	"sacco-backend/pkg/id"
	"sacco-backend/pkg/timeutil"
)

type Usecase struct{ repo expDomain.Repository }

func NewUsecase(r expDomain.Repository) *Usecase { return &Usecase{repo: r} }

type CreateExpenditureInput struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	RecordedBy  string          `json:"recorded_by"`
}

type ExpenditureDTO struct {
	ExpenditureID string                `json:"expenditure_id"`
	Amount        decimal.Decimal       `json:"amount"`
	Category      string                `json:"category"`
	Description   string                `json:"description"`
	Date          timeutil.FlexTime     `json:"date"`
	RecordedBy    string                `json:"recorded_by"`
	Status        approvalDomain.Status `json:"status"`
	Approvals     []string              `json:"approvals"`
	CreatedAt     time.Time             `json:"created_at"`
}

func toDTO(e *expDomain.Expenditure) *ExpenditureDTO {
	return &ExpenditureDTO{
		ExpenditureID: e.ExpenditureID,
		Amount:        e.Amount,
		Category:      e.Category,
		Description:   e.Description,
		Date:          e.SpentAt,
		RecordedBy:    e.RecordedBy,
		Status:        e.ApprovalStatus(),
		Approvals:     e.Approvals.List(),
		CreatedAt:     e.CreatedAt,
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateExpenditureInput) (*ExpenditureDTO, error) {
	if in.RecordedBy == "" || len(in.RecordedBy) != 32 {
		return nil, fmt.Errorf("%w: recorded_by must be 32-char hex", approvalDomain.ErrInvalidInput)
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", approvalDomain.ErrInvalidInput)
	}
	if in.Category == "" {
		return nil, fmt.Errorf("%w: category is required", approvalDomain.ErrInvalidInput)
	}

	e := &expDomain.Expenditure{
		ExpenditureID: id.NewID32(),
		Amount:        in.Amount,
		Category:      in.Category,
		Description:   in.Description,
		RecordedBy:    in.RecordedBy,
		Status:        approvalDomain.StatusPending,
		Approvals:     approvalDomain.ApproverSet{},
	}
	if t, ok := timeutil.ParseDate(in.Date); ok {
		e.SpentAt = timeutil.FromTime(t)
	} else {
		e.SpentAt = timeutil.FromTime(time.Now().UTC())
	}
	if err := u.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toDTO(e), nil
}

func (u *Usecase) Get(ctx context.Context, expenditureID string) (*ExpenditureDTO, error) {
	e, err := u.repo.GetByExpenditureID(ctx, expenditureID)
	if err != nil {
		return nil, err
	}
	return toDTO(e), nil
}

func (u *Usecase) List(ctx context.Context) ([]ExpenditureDTO, error) {
	exps, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ExpenditureDTO, 0, len(exps))
	for i := range exps {
		out = append(out, *toDTO(&exps[i]))
	}
	return out, nil
}
