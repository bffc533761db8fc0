package mysql

import (
	"context"

	"gorm.io/gorm"

	"sacco-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Loans:        &LoanRepository{db: tx},
			Savings:      &SavingRepository{db: tx},
			Expenditures: &ExpenditureRepository{db: tx},
			Investments:  &InvestmentRepository{db: tx},
			Members:      &MemberRepository{db: tx},
		}
		return fn(r)
	})
}
