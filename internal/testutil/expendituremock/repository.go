package expendituremock

import (
	"context"

	domain "sacco-backend/internal/domain/expenditure"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                      func(ctx context.Context, e *domain.Expenditure) error
	GetByExpenditureIDFn          func(ctx context.Context, expenditureID string) (*domain.Expenditure, error)
	GetByExpenditureIDForUpdateFn func(ctx context.Context, expenditureID string) (*domain.Expenditure, error)
	ListFn                        func(ctx context.Context) ([]domain.Expenditure, error)
	SaveFn                        func(ctx context.Context, e *domain.Expenditure) error
}

func (m *Repo) Create(ctx context.Context, e *domain.Expenditure) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByExpenditureID(ctx context.Context, expenditureID string) (*domain.Expenditure, error) {
	if m.GetByExpenditureIDFn != nil {
		return m.GetByExpenditureIDFn(ctx, expenditureID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByExpenditureIDForUpdate(ctx context.Context, expenditureID string) (*domain.Expenditure, error) {
	if m.GetByExpenditureIDForUpdateFn != nil {
		return m.GetByExpenditureIDForUpdateFn(ctx, expenditureID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Expenditure, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, e *domain.Expenditure) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}
