package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	expDomain "sacco-backend/internal/domain/expenditure"
)

type ExpenditureRepository struct{ db *gorm.DB }

func NewExpenditureRepository(db *gorm.DB) *ExpenditureRepository {
	return &ExpenditureRepository{db: db}
}

func (r *ExpenditureRepository) Create(ctx context.Context, e *expDomain.Expenditure) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ExpenditureRepository) Save(ctx context.Context, e *expDomain.Expenditure) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *ExpenditureRepository) GetByExpenditureID(ctx context.Context, expenditureID string) (*expDomain.Expenditure, error) {
	var out expDomain.Expenditure
	res := r.db.WithContext(ctx).Where("expenditure_id = ?", expenditureID).First(&out)
	return &out, res.Error
}

// GetByExpenditureIDForUpdate locks the row until the surrounding transaction
// ends.
func (r *ExpenditureRepository) GetByExpenditureIDForUpdate(ctx context.Context, expenditureID string) (*expDomain.Expenditure, error) {
	var out expDomain.Expenditure
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("expenditure_id = ?", expenditureID).
		First(&out)
	return &out, res.Error
}

func (r *ExpenditureRepository) List(ctx context.Context) ([]expDomain.Expenditure, error) {
	var out []expDomain.Expenditure
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
