package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bank-account-api/internal/domain/account"
	"bank-account-api/internal/domain/uow"
	"bank-account-api/pkg/id"
)

type Usecase struct {
	repo account.Repository
	uow  uow.UnitOfWork
	now  func() time.Time
}

// NewUsecase: reads go through repo, writes through the unit of work.
func NewUsecase(r account.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx, now: time.Now}
}

func (u *Usecase) List(ctx context.Context) ([]account.Account, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) Holders(ctx context.Context) ([]string, error) {
	return u.repo.Holders(ctx)
}

func (u *Usecase) Search(ctx context.Context, name string) ([]account.Account, error) {
	return u.repo.SearchByHolder(ctx, name)
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*account.Account, error) {
	return u.repo.GetByID(ctx, id)
}

func numberPrefix(accountType string) string {
	switch accountType {
	case TypeSavings:
		return id.PrefixSavings
	case TypeChecking:
		return id.PrefixChecking
	default:
		return id.PrefixAccount
	}
}

// Create stores a new account. An empty account number is generated from
// the account type and the assigned id.
func (u *Usecase) Create(ctx context.Context, in CreateAccountInput) (*account.Account, error) {
	if in.Balance == nil {
		return nil, fmt.Errorf("%w: balance is required", account.ErrInvalidAccount)
	}
	a := &account.Account{
		AccountNumber:     strings.TrimSpace(in.AccountNumber),
		AccountHolderName: strings.TrimSpace(in.AccountHolderName),
		Balance:           *in.Balance,
	}
	generate := a.AccountNumber == ""
	if generate {
		// placeholder so Validate only judges the caller's fields
		a.AccountNumber = numberPrefix(in.AccountType)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Accounts.Create(ctx, a); err != nil {
			return err
		}
		if !generate {
			return nil
		}
		a.AccountNumber = id.Number(numberPrefix(in.AccountType), u.now(), a.ID)
		return r.Accounts.Save(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces the stored account. The path id must match the body id.
func (u *Usecase) Update(ctx context.Context, pathID uint64, in UpdateAccountInput) error {
	if in.ID != pathID {
		return fmt.Errorf("%w: path %d, body %d", account.ErrIDMismatch, pathID, in.ID)
	}
	if in.Balance == nil {
		return fmt.Errorf("%w: balance is required", account.ErrInvalidAccount)
	}
	next := account.Account{
		ID:                in.ID,
		AccountNumber:     strings.TrimSpace(in.AccountNumber),
		AccountHolderName: strings.TrimSpace(in.AccountHolderName),
		Balance:           *in.Balance,
	}
	if err := next.Validate(); err != nil {
		return err
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Accounts.GetByID(ctx, in.ID); err != nil {
			return err
		}
		return r.Accounts.Save(ctx, &next)
	})
}

// Delete removes an account. A missing account is reported as ErrDeleteFailed.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Accounts.Delete(ctx, id)
	})
	if errors.Is(err, account.ErrNotFound) {
		return fmt.Errorf("%w: %v", account.ErrDeleteFailed, err)
	}
	return err
}

func (u *Usecase) Deposit(ctx context.Context, id uint64, in MovementInput) (*account.Account, error) {
	return u.move(ctx, id, func(a *account.Account) error {
		return a.Deposit(in.Amount, in.TransactionType)
	})
}

func (u *Usecase) Withdraw(ctx context.Context, id uint64, in MovementInput) (*account.Account, error) {
	return u.move(ctx, id, func(a *account.Account) error {
		return a.Withdraw(in.Amount, in.TransactionType)
	})
}

func (u *Usecase) move(ctx context.Context, id uint64, apply func(a *account.Account) error) (*account.Account, error) {
	var out *account.Account
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Accounts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(a); err != nil {
			return err
		}
		if err := r.Accounts.Save(ctx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Transfer moves funds between two stored accounts in one transaction.
func (u *Usecase) Transfer(ctx context.Context, in TransferInput) (*TransferResult, error) {
	if in.FromAccountID == in.ToAccountID {
		return nil, account.ErrSameAccount
	}
	var out *TransferResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		from, err := r.Accounts.GetByID(ctx, in.FromAccountID)
		if err != nil {
			return err
		}
		to, err := r.Accounts.GetByID(ctx, in.ToAccountID)
		if err != nil {
			return fmt.Errorf("%w: %w", account.ErrMissingTarget, err)
		}
		if err := from.Transfer(to, in.Amount); err != nil {
			return err
		}
		if err := r.Accounts.Save(ctx, from); err != nil {
			return err
		}
		if err := r.Accounts.Save(ctx, to); err != nil {
			return err
		}
		out = &TransferResult{From: *from, To: *to}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
