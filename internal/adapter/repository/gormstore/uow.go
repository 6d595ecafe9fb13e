package gormstore

import (
	"context"

	"bank-account-api/internal/domain/loan"
	"bank-account-api/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID uint64, fn func(r uow.Repos, l *loan.Loan) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		l, err := r.Loans.GetByID(ctx, loanID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Accounts: &AccountRepository{db: tx},
		Loans:    &LoanRepository{db: tx},
	}
}
