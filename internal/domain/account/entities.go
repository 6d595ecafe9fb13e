package account

import (
	"fmt"
	"strings"

	"bank-account-api/pkg/money"
)

// TransactionKind classifies a ledger movement. It is a tag checked by
// Deposit and Withdraw, not a stored ledger entry.
type TransactionKind string

const (
	Credit         TransactionKind = "Credit"
	TransferCredit TransactionKind = "TransferCredit"
	Debit          TransactionKind = "Debit"
	ATMDebit       TransactionKind = "ATMDebit"
)

func (k TransactionKind) IsCredit() bool { return k == Credit || k == TransferCredit }
func (k TransactionKind) IsDebit() bool  { return k == Debit || k == ATMDebit }
func (k TransactionKind) Valid() bool    { return k.IsCredit() || k.IsDebit() }

// Table: accounts
type Account struct {
	ID                uint64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AccountNumber     string  `gorm:"column:account_number;size:64;not null" json:"accountNumber"`
	AccountHolderName string  `gorm:"column:account_holder_name;size:255;not null;index" json:"accountHolderName"`
	Balance           float64 `gorm:"column:balance;not null" json:"balance"`
}

func (Account) TableName() string { return "accounts" }

// Validate applies the admission rules for accounts entering the store
// through create or update. Construction alone does not forbid a negative
// balance.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.AccountNumber) == "" {
		return fmt.Errorf("%w: account number is required", ErrInvalidAccount)
	}
	if strings.TrimSpace(a.AccountHolderName) == "" {
		return fmt.Errorf("%w: account holder name is required", ErrInvalidAccount)
	}
	if !money.NonNegative(a.Balance) {
		return fmt.Errorf("%w: balance cannot be negative", ErrInvalidAccount)
	}
	if !money.InRange(a.Balance) {
		return fmt.Errorf("%w: balance cannot exceed %v", ErrInvalidAccount, money.MaxAmount)
	}
	return nil
}
