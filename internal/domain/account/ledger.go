package account

import (
	"fmt"

	"bank-account-api/pkg/money"
)

// Deposit credits the account. Only Credit and TransferCredit are accepted.
func (a *Account) Deposit(amount float64, kind TransactionKind) error {
	if !kind.IsCredit() {
		return fmt.Errorf("%w: deposit requires Credit or TransferCredit, got %q", ErrInvalidTransactionKind, kind)
	}
	if err := checkAmount("deposit", amount); err != nil {
		return err
	}
	next, err := credit(a.Balance, amount)
	if err != nil {
		return err
	}
	a.Balance = next
	return nil
}

// Withdraw debits the account. Only Debit and ATMDebit are accepted and the
// balance never goes below zero.
func (a *Account) Withdraw(amount float64, kind TransactionKind) error {
	if !kind.IsDebit() {
		return fmt.Errorf("%w: withdrawal requires Debit or ATMDebit, got %q", ErrInvalidTransactionKind, kind)
	}
	if err := checkAmount("withdrawal", amount); err != nil {
		return err
	}
	if !money.InRange(a.Balance) {
		return fmt.Errorf("%w: balance %v out of range", ErrInvalidAccount, a.Balance)
	}
	if amount > a.Balance {
		return fmt.Errorf("%w: balance %v, requested %v", ErrInsufficientFunds, a.Balance, amount)
	}
	a.Balance = money.Sub(a.Balance, amount)
	return nil
}

// Transfer moves amount from a to target. Both balances change or neither does.
func (a *Account) Transfer(target *Account, amount float64) error {
	if target == nil {
		return ErrMissingTarget
	}
	if target == a || (a.ID != 0 && target.ID == a.ID) {
		return ErrSameAccount
	}
	if err := checkAmount("transfer", amount); err != nil {
		return err
	}
	if !money.InRange(a.Balance) {
		return fmt.Errorf("%w: balance %v out of range", ErrInvalidAccount, a.Balance)
	}
	if amount > a.Balance {
		return fmt.Errorf("%w: balance %v, requested %v", ErrInsufficientFunds, a.Balance, amount)
	}
	next, err := credit(target.Balance, amount)
	if err != nil {
		return err
	}
	a.Balance = money.Sub(a.Balance, amount)
	target.Balance = next
	return nil
}

func checkAmount(op string, amount float64) error {
	if !money.Positive(amount) || !money.InRange(amount) {
		return fmt.Errorf("%w: %s amount %v", ErrInvalidAmount, op, amount)
	}
	return nil
}

// credit returns balance+amount, refusing results above money.MaxAmount.
func credit(balance, amount float64) (float64, error) {
	if !money.InRange(balance) {
		return 0, fmt.Errorf("%w: balance %v out of range", ErrInvalidAccount, balance)
	}
	next := money.Add(balance, amount)
	if !money.InRange(next) {
		return 0, fmt.Errorf("%w: balance would exceed %v", ErrInvalidAmount, money.MaxAmount)
	}
	return next, nil
}
