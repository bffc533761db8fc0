package investment

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Investment) error
	GetByInvestmentID(ctx context.Context, investmentID string) (*Investment, error)
	// Row-locked read for use inside a unit-of-work transaction.
	GetByInvestmentIDForUpdate(ctx context.Context, investmentID string) (*Investment, error)
	List(ctx context.Context) ([]Investment, error)
	ListByStatus(ctx context.Context, status Status) ([]Investment, error)
	Save(ctx context.Context, inv *Investment) error
}
