package investment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	approvalDomain "sacco-backend/internal/domain/approval"
	invDomain "sacco-backend/internal/domain/investment"
	"sacco-backend/internal/domain/uow"
	"sacco-backend/pkg/id"
	"sacco-backend/pkg/timeutil"
)

type Usecase struct {
	repo invDomain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(repo invDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx}
}

type CreateInvestmentInput struct {
	Name           string          `json:"name"`
	AmountInvested decimal.Decimal `json:"amount_invested"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	StartDate      string          `json:"start_date"`
	MaturityDate   string          `json:"maturity_date"`
}

type InvestmentDTO struct {
	InvestmentID    string            `json:"investment_id"`
	Name            string            `json:"name"`
	AmountInvested  decimal.Decimal   `json:"amount_invested"`
	InterestRate    decimal.Decimal   `json:"interest_rate"`
	StartDate       timeutil.FlexTime `json:"start_date"`
	MaturityDate    timeutil.FlexTime `json:"maturity_date"`
	Status          invDomain.Status  `json:"status"`
	ProfitEarned    *decimal.Decimal  `json:"profit_earned,omitempty"`
	ResolutionNotes string            `json:"resolution_notes,omitempty"`
	ResolvedAt      *time.Time        `json:"resolved_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

func toDTO(inv *invDomain.Investment) *InvestmentDTO {
	dto := &InvestmentDTO{
		InvestmentID:    inv.InvestmentID,
		Name:            inv.Name,
		AmountInvested:  inv.AmountInvested,
		InterestRate:    inv.InterestRate,
		StartDate:       inv.StartDate,
		MaturityDate:    inv.MaturityDate,
		Status:          inv.Status,
		ResolutionNotes: inv.ResolutionNotes,
		ResolvedAt:      inv.ResolvedAt,
		CreatedAt:       inv.CreatedAt,
	}
	if inv.ProfitEarned.Valid {
		p := inv.ProfitEarned.Decimal
		dto.ProfitEarned = &p
	}
	return dto
}

func (u *Usecase) Create(ctx context.Context, in CreateInvestmentInput) (*InvestmentDTO, error) {
	if in.Name == "" || in.AmountInvested.IsNegative() {
		return nil, approvalDomain.ErrInvalidInput
	}
	inv := &invDomain.Investment{
		InvestmentID:   id.NewID32(),
		Name:           in.Name,
		AmountInvested: in.AmountInvested,
		InterestRate:   in.InterestRate,
		Status:         invDomain.StatusActive,
	}
	if t, ok := timeutil.ParseDate(in.StartDate); ok {
		inv.StartDate = timeutil.FromTime(t)
	}
	if t, ok := timeutil.ParseDate(in.MaturityDate); ok {
		inv.MaturityDate = timeutil.FromTime(t)
	}
	if err := u.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toDTO(inv), nil
}

func (u *Usecase) List(ctx context.Context) ([]InvestmentDTO, error) {
	invs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]InvestmentDTO, 0, len(invs))
	for i := range invs {
		out = append(out, *toDTO(&invs[i]))
	}
	return out, nil
}

// Resolve performs the single-authorizer active → resolved transition.
// profit must be strictly positive; resolving twice is rejected, and the
// first resolution's figures are never touched again.
func (u *Usecase) Resolve(ctx context.Context, investmentID, authorizerID string, profit decimal.Decimal, notes string) (*InvestmentDTO, error) {
	if !profit.IsPositive() {
		return nil, fmt.Errorf("%w: profit_earned must be positive", approvalDomain.ErrInvalidInput)
	}

	var dto *InvestmentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		inv, ferr := r.Investments.GetByInvestmentIDForUpdate(ctx, investmentID)
		if ferr != nil {
			if errors.Is(ferr, gorm.ErrRecordNotFound) {
				return approvalDomain.ErrNotFound
			}
			return ferr
		}
		if inv.Status == invDomain.StatusResolved {
			return invDomain.ErrAlreadyResolved
		}

		now := time.Now().UTC()
		inv.Status = invDomain.StatusResolved
		inv.ProfitEarned = decimal.NewNullDecimal(profit)
		inv.ResolutionNotes = notes
		inv.ResolvedAt = &now
		if serr := r.Investments.Save(ctx, inv); serr != nil {
			return serr
		}

		log.Printf("investment %s resolved by %s, profit %s", inv.InvestmentID, authorizerID, profit.StringFixed(2))
		dto = toDTO(inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
