package loan

import "errors"

var (
	ErrNotFound           = errors.New("loan not found")
	ErrInvalidAmount      = errors.New("payment amount must be positive")
	ErrAmountOutOfRange   = errors.New("loan amount out of range")
	ErrTermOutOfRange     = errors.New("loan term out of range")
	ErrRateOutOfRange     = errors.New("interest rate out of range")
	ErrLoanNotActive      = errors.New("cannot make payment on inactive loan")
	ErrPaymentExceedsOwed = errors.New("payment exceeds total amount owed")
	ErrInvalidConfig      = errors.New("invalid loan configuration")
)
