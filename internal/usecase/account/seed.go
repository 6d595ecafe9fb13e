package account

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"

	"bank-account-api/internal/domain/account"
	"bank-account-api/internal/domain/uow"
	"bank-account-api/pkg/id"
)

var seedHolders = []string{
	"John Smith", "Maria Garcia", "Mohammed Khan", "Sophie Dubois",
	"Liam Johnson", "Emma Martinez", "Noah Lee", "Olivia Kim",
}

// Seed creates n demo accounts with whole-dollar balances in [10, 10010) and
// then runs one random Debit/Credit transfer for every ordered pair. Failed
// transfers are logged and skipped.
func (u *Usecase) Seed(ctx context.Context, n int, rng *rand.Rand) ([]account.Account, error) {
	accounts := make([]account.Account, 0, n)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		for i := 0; i < n; i++ {
			a := account.Account{
				AccountNumber:     id.PrefixAccount,
				AccountHolderName: seedHolders[i%len(seedHolders)],
				Balance:           float64(rng.IntN(10000) + 10),
			}
			if err := r.Accounts.Create(ctx, &a); err != nil {
				return err
			}
			a.AccountNumber = id.Number(id.PrefixAccount, u.now(), a.ID)
			accounts = append(accounts, a)
		}

		for i := range accounts {
			for j := range accounts {
				if i == j {
					continue
				}
				from, to := &accounts[i], &accounts[j]
				amt := math.Round(rng.Float64() * from.Balance)
				if err := from.Withdraw(amt, account.Debit); err != nil {
					slog.DebugContext(ctx, "seed: transfer failed", "from", from.AccountNumber, "to", to.AccountNumber, "err", err)
					continue
				}
				if err := to.Deposit(amt, account.Credit); err != nil {
					slog.DebugContext(ctx, "seed: transfer failed", "from", from.AccountNumber, "to", to.AccountNumber, "err", err)
					continue
				}
				slog.DebugContext(ctx, "seed: transfer", "amount", amt, "from", from.AccountNumber, "to", to.AccountNumber)
			}
		}

		for i := range accounts {
			if err := r.Accounts.Save(ctx, &accounts[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "seed: accounts created", "count", len(accounts))
	return accounts, nil
}
