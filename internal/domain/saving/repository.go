package saving

import "context"

type Repository interface {
	Create(ctx context.Context, s *Saving) error
	GetBySavingID(ctx context.Context, savingID string) (*Saving, error)
	// Row-locked read for use inside a unit-of-work transaction.
	GetBySavingIDForUpdate(ctx context.Context, savingID string) (*Saving, error)
	List(ctx context.Context) ([]Saving, error)
	Save(ctx context.Context, s *Saving) error
}
