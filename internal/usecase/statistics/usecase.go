package statistics

import (
	"context"
	"time"

	"bank-account-api/internal/domain/account"
	"bank-account-api/internal/domain/statistics"
)

// Usecase reads a fresh account snapshot on every call; nothing is cached.
type Usecase struct {
	accounts account.Repository
	now      func() time.Time
}

func NewUsecase(r account.Repository) *Usecase {
	return &Usecase{accounts: r, now: time.Now}
}

func (u *Usecase) snapshot(ctx context.Context) ([]statistics.Holding, error) {
	rows, err := u.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	hs := make([]statistics.Holding, len(rows))
	for i, a := range rows {
		hs[i] = statistics.Holding{Holder: a.AccountHolderName, Balance: a.Balance}
	}
	return hs, nil
}

func (u *Usecase) Overview(ctx context.Context) (statistics.Overview, error) {
	hs, err := u.snapshot(ctx)
	if err != nil {
		return statistics.Overview{}, err
	}
	return statistics.Compute(statistics.Balances(hs)), nil
}

func (u *Usecase) Distribution(ctx context.Context) ([]statistics.Bucket, error) {
	hs, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return statistics.Distribution(statistics.Balances(hs)), nil
}

func (u *Usecase) TopHolders(ctx context.Context, limit int) ([]statistics.HolderStats, error) {
	// reject a bad limit before touching the store
	if _, err := statistics.TopHolders(nil, limit); err != nil {
		return nil, err
	}
	hs, err := u.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return statistics.TopHolders(hs, limit)
}

func (u *Usecase) Summary(ctx context.Context) (statistics.Summary, error) {
	hs, err := u.snapshot(ctx)
	if err != nil {
		return statistics.Summary{}, err
	}
	return statistics.Summarize(hs, u.now()), nil
}
