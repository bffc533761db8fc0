package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	savingDomain "sacco-backend/internal/domain/saving"
)

type SavingRepository struct{ db *gorm.DB }

func NewSavingRepository(db *gorm.DB) *SavingRepository { return &SavingRepository{db: db} }

func (r *SavingRepository) Create(ctx context.Context, s *savingDomain.Saving) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SavingRepository) Save(ctx context.Context, s *savingDomain.Saving) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SavingRepository) GetBySavingID(ctx context.Context, savingID string) (*savingDomain.Saving, error) {
	var out savingDomain.Saving
	res := r.db.WithContext(ctx).Where("saving_id = ?", savingID).First(&out)
	return &out, res.Error
}

// GetBySavingIDForUpdate locks the row until the surrounding transaction ends.
func (r *SavingRepository) GetBySavingIDForUpdate(ctx context.Context, savingID string) (*savingDomain.Saving, error) {
	var out savingDomain.Saving
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("saving_id = ?", savingID).
		First(&out)
	return &out, res.Error
}

func (r *SavingRepository) List(ctx context.Context) ([]savingDomain.Saving, error) {
	var out []savingDomain.Saving
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
