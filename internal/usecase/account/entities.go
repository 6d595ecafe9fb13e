package account

import "bank-account-api/internal/domain/account"

// Account types accepted on create; the zero value is a standard account.
const (
	TypeStandard = "standard"
	TypeSavings  = "savings"
	TypeChecking = "checking"
)

type CreateAccountInput struct {
	AccountNumber     string   `json:"accountNumber" validate:"omitempty,max=64"`
	AccountHolderName string   `json:"accountHolderName" validate:"max=255"`
	Balance           *float64 `json:"balance" validate:"omitempty,lte=1000000000000000,dec2"`
	AccountType       string   `json:"accountType" validate:"omitempty,oneof=standard savings checking"`
}

type UpdateAccountInput struct {
	ID                uint64   `json:"id"`
	AccountNumber     string   `json:"accountNumber" validate:"max=64"`
	AccountHolderName string   `json:"accountHolderName" validate:"max=255"`
	Balance           *float64 `json:"balance" validate:"omitempty,lte=1000000000000000,dec2"`
}

type MovementInput struct {
	Amount          float64                 `json:"amount" validate:"lte=1000000000000000,dec2"`
	TransactionType account.TransactionKind `json:"transactionType" validate:"required"`
}

type TransferInput struct {
	FromAccountID uint64  `json:"fromAccountId" validate:"required"`
	ToAccountID   uint64  `json:"toAccountId" validate:"required"`
	Amount        float64 `json:"amount" validate:"lte=1000000000000000,dec2"`
}

type TransferResult struct {
	From account.Account `json:"from"`
	To   account.Account `json:"to"`
}
