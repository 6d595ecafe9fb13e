package gormstore

import (
	"context"
	"errors"
	"fmt"

	"bank-account-api/internal/domain/account"

	"gorm.io/gorm"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountRepository) Save(ctx context.Context, a *account.Account) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*account.Account, error) {
	var out account.Account
	res := r.db.WithContext(ctx).First(&out, id)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: account with ID %d not found", account.ErrNotFound, id)
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]account.Account, error) {
	out := []account.Account{}
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *AccountRepository) SearchByHolder(ctx context.Context, name string) ([]account.Account, error) {
	out := []account.Account{}
	res := r.db.WithContext(ctx).
		Where("instr(lower(account_holder_name), lower(?)) > 0", name).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *AccountRepository) Holders(ctx context.Context) ([]string, error) {
	names := []string{}
	res := r.db.WithContext(ctx).
		Raw("SELECT account_holder_name FROM accounts GROUP BY account_holder_name ORDER BY MIN(id)").
		Scan(&names)
	return names, res.Error
}

func (r *AccountRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&account.Account{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: account with ID %d not found", account.ErrNotFound, id)
	}
	return nil
}
