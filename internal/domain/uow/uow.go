package uow

import (
	"context"

	"sacco-backend/internal/domain/expenditure"
	"sacco-backend/internal/domain/investment"
	"sacco-backend/internal/domain/loan"
	"sacco-backend/internal/domain/member"
	"sacco-backend/internal/domain/saving"
)

type Repos struct {
	Loans        loan.Repository
	Savings      saving.Repository
	Expenditures expenditure.Repository
	Investments  investment.Repository
	Members      member.Repository
}

// UnitOfWork binds all repositories to one store transaction. The approval
// and resolution engines run their read-mutate-check-transition sequence
// inside WithinTx with a row-locked fetch, so concurrent voters on the same
// record serialize at the store instead of overwriting each other.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
