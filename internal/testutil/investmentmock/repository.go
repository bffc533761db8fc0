package investmentmock

import (
	"context"

	domain "sacco-backend/internal/domain/investment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                     func(ctx context.Context, inv *domain.Investment) error
	GetByInvestmentIDFn          func(ctx context.Context, investmentID string) (*domain.Investment, error)
	GetByInvestmentIDForUpdateFn func(ctx context.Context, investmentID string) (*domain.Investment, error)
	ListFn                       func(ctx context.Context) ([]domain.Investment, error)
	ListByStatusFn               func(ctx context.Context, status domain.Status) ([]domain.Investment, error)
	SaveFn                       func(ctx context.Context, inv *domain.Investment) error
}

func (m *Repo) Create(ctx context.Context, inv *domain.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}

func (m *Repo) GetByInvestmentID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	if m.GetByInvestmentIDFn != nil {
		return m.GetByInvestmentIDFn(ctx, investmentID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByInvestmentIDForUpdate(ctx context.Context, investmentID string) (*domain.Investment, error) {
	if m.GetByInvestmentIDForUpdateFn != nil {
		return m.GetByInvestmentIDForUpdateFn(ctx, investmentID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Investment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Investment, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, inv *domain.Investment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, inv)
	}
	return nil
}
