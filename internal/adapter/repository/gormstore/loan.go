package gormstore

import (
	"context"
	"errors"
	"fmt"

	"bank-account-api/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loan.Loan) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loan.Loan) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error
}

func (r *LoanRepository) AddPayment(ctx context.Context, p *loan.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loan.Loan, error) {
	var out loan.Loan
	res := r.withPayments(ctx).First(&out, id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: loan with ID %d not found", loan.ErrNotFound, id)
	}
	if res.Error != nil {
		return nil, res.Error
	}
	normalize(&out)
	return &out, nil
}

func (r *LoanRepository) List(ctx context.Context) ([]loan.Loan, error) {
	return r.find(r.withPayments(ctx))
}

func (r *LoanRepository) ListByStatus(ctx context.Context, s loan.Status) ([]loan.Loan, error) {
	return r.find(r.withPayments(ctx).Where("status = ?", s))
}

func (r *LoanRepository) SearchByHolder(ctx context.Context, name string) ([]loan.Loan, error) {
	return r.find(r.withPayments(ctx).Where("instr(lower(account_holder_name), lower(?)) > 0", name))
}

func (r *LoanRepository) withPayments(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Payments", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

func (r *LoanRepository) find(q *gorm.DB) ([]loan.Loan, error) {
	out := []loan.Loan{}
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	for i := range out {
		normalize(&out[i])
	}
	return out, nil
}

func normalize(l *loan.Loan) {
	if l.Payments == nil {
		l.Payments = []loan.Payment{}
	}
}
