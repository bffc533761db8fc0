package savingmock

import (
	"context"

	domain "sacco-backend/internal/domain/saving"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                 func(ctx context.Context, s *domain.Saving) error
	GetBySavingIDFn          func(ctx context.Context, savingID string) (*domain.Saving, error)
	GetBySavingIDForUpdateFn func(ctx context.Context, savingID string) (*domain.Saving, error)
	ListFn                   func(ctx context.Context) ([]domain.Saving, error)
	SaveFn                   func(ctx context.Context, s *domain.Saving) error
}

func (m *Repo) Create(ctx context.Context, s *domain.Saving) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetBySavingID(ctx context.Context, savingID string) (*domain.Saving, error) {
	if m.GetBySavingIDFn != nil {
		return m.GetBySavingIDFn(ctx, savingID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetBySavingIDForUpdate(ctx context.Context, savingID string) (*domain.Saving, error) {
	if m.GetBySavingIDForUpdateFn != nil {
		return m.GetBySavingIDForUpdateFn(ctx, savingID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Saving, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, s *domain.Saving) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
