package accountmock

import (
	"context"

	domain "bank-account-api/internal/domain/account"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a nil error; reads default to context.Canceled.
type Repo struct {
	CreateFn         func(ctx context.Context, a *domain.Account) error
	SaveFn           func(ctx context.Context, a *domain.Account) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Account, error)
	ListFn           func(ctx context.Context) ([]domain.Account, error)
	SearchByHolderFn func(ctx context.Context, name string) ([]domain.Account, error)
	HoldersFn        func(ctx context.Context) ([]string, error)
	DeleteFn         func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Account) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Account, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) SearchByHolder(ctx context.Context, name string) ([]domain.Account, error) {
	if m.SearchByHolderFn != nil {
		return m.SearchByHolderFn(ctx, name)
	}
	return nil, context.Canceled
}

func (m *Repo) Holders(ctx context.Context) ([]string, error) {
	if m.HoldersFn != nil {
		return m.HoldersFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
