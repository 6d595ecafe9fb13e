package uow

import (
	"context"

	"bank-account-api/internal/domain/account"
	"bank-account-api/internal/domain/loan"
)

// domain/uow/uow.go
type Repos struct {
	Accounts account.Repository
	Loans    loan.Repository
}

type UnitOfWork interface {
	// plain tx; any error rolls back every write made through r
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: load the loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID uint64, fn func(r Repos, l *loan.Loan) error) error
}
