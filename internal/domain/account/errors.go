package account

import "errors"

var (
	ErrNotFound               = errors.New("account not found")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInvalidTransactionKind = errors.New("invalid transaction type")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrMissingTarget          = errors.New("destination account is required")
	ErrSameAccount            = errors.New("source and destination accounts are the same")
	ErrInvalidAccount         = errors.New("invalid account")
	ErrIDMismatch             = errors.New("account id mismatch")
	ErrDeleteFailed           = errors.New("could not delete account")
)
