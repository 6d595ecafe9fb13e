package account

import "context"

type Repository interface {
	Create(ctx context.Context, a *Account) error
	Save(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id uint64) (*Account, error)

	// List returns every account ordered by id.
	List(ctx context.Context) ([]Account, error)
	// SearchByHolder matches holder names case-insensitively by substring.
	SearchByHolder(ctx context.Context, name string) ([]Account, error)
	// Holders returns distinct holder names in first-seen order.
	Holders(ctx context.Context) ([]string, error)

	Delete(ctx context.Context, id uint64) error
}
