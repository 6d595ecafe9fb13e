package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	// Save persists the loan row only; payments go through AddPayment.
	Save(ctx context.Context, l *Loan) error
	AddPayment(ctx context.Context, p *Payment) error

	// Reads preload payments in insertion order.
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	List(ctx context.Context) ([]Loan, error)
	ListByStatus(ctx context.Context, s Status) ([]Loan, error)
	SearchByHolder(ctx context.Context, name string) ([]Loan, error)
}
