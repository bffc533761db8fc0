package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	invDomain "sacco-backend/internal/domain/investment"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *invDomain.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) Save(ctx context.Context, inv *invDomain.Investment) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *InvestmentRepository) GetByInvestmentID(ctx context.Context, investmentID string) (*invDomain.Investment, error) {
	var out invDomain.Investment
	res := r.db.WithContext(ctx).Where("investment_id = ?", investmentID).First(&out)
	return &out, res.Error
}

// GetByInvestmentIDForUpdate locks the row until the surrounding transaction
// ends.
func (r *InvestmentRepository) GetByInvestmentIDForUpdate(ctx context.Context, investmentID string) (*invDomain.Investment, error) {
	var out invDomain.Investment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("investment_id = ?", investmentID).
		First(&out)
	return &out, res.Error
}

func (r *InvestmentRepository) List(ctx context.Context) ([]invDomain.Investment, error) {
	var out []invDomain.Investment
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *InvestmentRepository) ListByStatus(ctx context.Context, status invDomain.Status) ([]invDomain.Investment, error) {
	var out []invDomain.Investment
	res := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
