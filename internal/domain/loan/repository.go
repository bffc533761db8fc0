package loan

import (
	"context"

	"sacco-backend/internal/domain/approval"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// Row-locked read for use inside a unit-of-work transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByStatus(ctx context.Context, status approval.Status) ([]Loan, error)
	List(ctx context.Context) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
