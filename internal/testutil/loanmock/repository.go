package loanmock

import (
	"context"

	domain "bank-account-api/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a nil error; reads default to context.Canceled.
type Repo struct {
	CreateFn         func(ctx context.Context, l *domain.Loan) error
	SaveFn           func(ctx context.Context, l *domain.Loan) error
	AddPaymentFn     func(ctx context.Context, p *domain.Payment) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Loan, error)
	ListFn           func(ctx context.Context) ([]domain.Loan, error)
	ListByStatusFn   func(ctx context.Context, s domain.Status) ([]domain.Loan, error)
	SearchByHolderFn func(ctx context.Context, name string) ([]domain.Loan, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) AddPayment(ctx context.Context, p *domain.Payment) error {
	if m.AddPaymentFn != nil {
		return m.AddPaymentFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByStatus(ctx context.Context, s domain.Status) ([]domain.Loan, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, context.Canceled
}

func (m *Repo) SearchByHolder(ctx context.Context, name string) ([]domain.Loan, error) {
	if m.SearchByHolderFn != nil {
		return m.SearchByHolderFn(ctx, name)
	}
	return nil, context.Canceled
}
