package expenditure

import "context"

type Repository interface {
	Create(ctx context.Context, e *Expenditure) error
	GetByExpenditureID(ctx context.Context, expenditureID string) (*Expenditure, error)
	// Row-locked read for use inside a unit-of-work transaction.
	GetByExpenditureIDForUpdate(ctx context.Context, expenditureID string) (*Expenditure, error)
	List(ctx context.Context) ([]Expenditure, error)
	Save(ctx context.Context, e *Expenditure) error
}
