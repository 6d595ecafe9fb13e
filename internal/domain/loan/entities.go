package loan

import (
	"fmt"
	"math"
	"time"

	"bank-account-api/pkg/money"
)

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusPaidOff Status = "PAID_OFF"
	// StatusDefaulted is never produced by the payment engine; it is only
	// reachable by writing the status directly.
	StatusDefaulted Status = "DEFAULTED"
)

// Table: loans
type Loan struct {
	ID                 uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LoanNumber         string    `gorm:"column:loan_number;size:64;index" json:"loanNumber"`
	AccountHolderName  string    `gorm:"column:account_holder_name;size:255;not null;index" json:"accountHolderName"`
	PrincipalAmount    float64   `gorm:"column:principal_amount;not null" json:"principalAmount"`
	InterestRate       float64   `gorm:"column:interest_rate;not null" json:"interestRate"` // annual, percent
	TermMonths         int       `gorm:"column:term_months;not null" json:"termMonths"`
	OutstandingBalance float64   `gorm:"column:outstanding_balance;not null" json:"outstandingBalance"`
	Status             Status    `gorm:"column:status;size:16;not null;index" json:"status"`
	CreatedAt          time.Time `gorm:"column:created_at" json:"createdAt"`
	Payments           []Payment `gorm:"foreignKey:LoanID;constraint:OnDelete:CASCADE" json:"payments"`
}

func (Loan) TableName() string { return "loans" }

// Table: loan_payments. Rows are append-only and ordered by id.
type Payment struct {
	ID               uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	LoanID           uint64    `gorm:"column:loan_id;not null;index" json:"-"`
	Date             time.Time `gorm:"column:paid_at;not null" json:"date"`
	Amount           float64   `gorm:"column:amount;not null" json:"amount"`
	PrincipalPaid    float64   `gorm:"column:principal_paid;not null" json:"principalPaid"`
	InterestPaid     float64   `gorm:"column:interest_paid;not null" json:"interestPaid"`
	RemainingBalance float64   `gorm:"column:remaining_balance;not null" json:"remainingBalance"`
}

func (Payment) TableName() string { return "loan_payments" }

// New builds an ACTIVE loan with the full principal outstanding. It applies
// only the structural guards; configured bounds are checked by
// Configuration.CheckApplication.
func New(holder string, principal, rate float64, termMonths int, now time.Time) (*Loan, error) {
	if !money.Positive(principal) || !money.InRange(principal) {
		return nil, fmt.Errorf("%w: principal amount must be positive and at most %v", ErrAmountOutOfRange, money.MaxAmount)
	}
	if rate < 0 || math.IsNaN(rate) {
		return nil, fmt.Errorf("%w: interest rate cannot be negative", ErrRateOutOfRange)
	}
	if termMonths <= 0 {
		return nil, fmt.Errorf("%w: term must be at least 1 month", ErrTermOutOfRange)
	}
	l := &Loan{
		AccountHolderName:  holder,
		PrincipalAmount:    principal,
		InterestRate:       rate,
		TermMonths:         termMonths,
		OutstandingBalance: principal,
		Status:             StatusActive,
		CreatedAt:          now.UTC(),
		Payments:           []Payment{},
	}
	if !money.InRange(l.installment()) {
		return nil, fmt.Errorf("%w: installment for %v%% over %d months is out of range", ErrRateOutOfRange, rate, termMonths)
	}
	return l, nil
}
