package gormstore

import (
	"context"
	"errors"
	"testing"

	"bank-account-api/internal/domain/account"
)

func seedAccounts(t *testing.T, repo *AccountRepository, rows ...account.Account) []account.Account {
	t.Helper()
	out := make([]account.Account, 0, len(rows))
	for i := range rows {
		a := rows[i]
		if err := repo.Create(context.Background(), &a); err != nil {
			t.Fatalf("Create: %v", err)
		}
		out = append(out, a)
	}
	return out
}

func TestAccountCreateAndGetByID(t *testing.T) {
	repo := NewAccountRepository(openTestDB(t))
	ctx := context.Background()

	a := &account.Account{AccountNumber: "ACC-1", AccountHolderName: "John Doe", Balance: 1000}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if *got != *a {
		t.Errorf("got %+v, want %+v", got, a)
	}
}

func TestAccountGetByID_NotFound(t *testing.T) {
	repo := NewAccountRepository(openTestDB(t))

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, account.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountSaveUpdates(t *testing.T) {
	repo := NewAccountRepository(openTestDB(t))
	ctx := context.Background()
	a := seedAccounts(t, repo, account.Account{AccountNumber: "ACC-1", AccountHolderName: "John", Balance: 10})[0]

	a.Balance = 99.95
	if err := repo.Save(ctx, &a); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Balance != 99.95 {
		t.Errorf("balance not updated, got=%v", got.Balance)
	}
}

func TestAccountListSearchHolders(t *testing.T) {
	repo := NewAccountRepository(openTestDB(t))
	ctx := context.Background()
	seedAccounts(t, repo,
		account.Account{AccountNumber: "A1", AccountHolderName: "John Doe", Balance: 1},
		account.Account{AccountNumber: "A2", AccountHolderName: "Jane Smith", Balance: 2},
		account.Account{AccountNumber: "A3", AccountHolderName: "John Doe", Balance: 3},
		account.Account{AccountNumber: "A4", AccountHolderName: "Bob Johnson", Balance: 4},
	)

	all, err := repo.List(ctx)
	if err != nil || len(all) != 4 {
		t.Fatalf("List: len=%d err=%v", len(all), err)
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("List not ordered by id: %+v", all)
		}
	}

	found, err := repo.SearchByHolder(ctx, "JOHN")
	if err != nil {
		t.Fatalf("SearchByHolder: %v", err)
	}
	if len(found) != 3 {
		t.Fatalf("SearchByHolder(JOHN) = %d rows, want 3", len(found))
	}

	none, err := repo.SearchByHolder(ctx, "zelda")
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("SearchByHolder(zelda) = %v, %v", none, err)
	}

	holders, err := repo.Holders(ctx)
	if err != nil {
		t.Fatalf("Holders: %v", err)
	}
	want := []string{"John Doe", "Jane Smith", "Bob Johnson"}
	if len(holders) != len(want) {
		t.Fatalf("Holders = %v, want %v", holders, want)
	}
	for i := range want {
		if holders[i] != want[i] {
			t.Fatalf("Holders = %v, want %v", holders, want)
		}
	}
}

func TestAccountDelete(t *testing.T) {
	repo := NewAccountRepository(openTestDB(t))
	ctx := context.Background()
	rows := seedAccounts(t, repo,
		account.Account{AccountNumber: "A1", AccountHolderName: "X", Balance: 1},
		account.Account{AccountNumber: "A2", AccountHolderName: "Y", Balance: 2},
	)

	if err := repo.Delete(ctx, rows[1].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, rows[1].ID); !errors.Is(err, account.ErrNotFound) {
		t.Fatalf("second Delete: expected ErrNotFound, got %v", err)
	}

	// ids are never reused after a delete
	next := seedAccounts(t, repo, account.Account{AccountNumber: "A3", AccountHolderName: "Z", Balance: 3})[0]
	if next.ID <= rows[1].ID {
		t.Fatalf("id reused: got %d after deleting %d", next.ID, rows[1].ID)
	}
}
