package loan

import (
	"fmt"
	"math"
	"time"

	"bank-account-api/pkg/money"
)

// Summary is the read-only projection served by the summary endpoint.
type Summary struct {
	LoanNumber         string  `json:"loanNumber"`
	AccountHolderName  string  `json:"accountHolderName"`
	PrincipalAmount    float64 `json:"principalAmount"`
	InterestRate       float64 `json:"interestRate"`
	TermMonths         int     `json:"termMonths"`
	MonthlyPayment     float64 `json:"monthlyPayment"`
	OutstandingBalance float64 `json:"outstandingBalance"`
	TotalInterest      float64 `json:"totalInterest"`
	Status             Status  `json:"status"`
	PaymentsMade       int     `json:"paymentsMade"`
}

func (l *Loan) monthlyRate() float64 { return l.InterestRate / 100 / 12 }

// MonthlyPayment is the fixed amortized installment P·r·(1+r)^n / ((1+r)^n − 1),
// or P/n for an interest-free loan, rounded to the cent.
func (l *Loan) MonthlyPayment() float64 { return money.Round2(l.installment()) }

func (l *Loan) installment() float64 {
	r := l.monthlyRate()
	n := float64(l.TermMonths)
	if r == 0 {
		return l.PrincipalAmount / n
	}
	f := math.Pow(1+r, n)
	return l.PrincipalAmount * r * f / (f - 1)
}

// CurrentInterest is one month of interest on the current outstanding balance.
func (l *Loan) CurrentInterest() float64 {
	return money.Round2(l.OutstandingBalance * l.monthlyRate())
}

// Owed is the largest payment the loan accepts right now.
func (l *Loan) Owed() float64 {
	return money.Add(l.OutstandingBalance, l.CurrentInterest())
}

// MakePayment splits amount into interest first and principal second,
// appends the payment record and flips the loan to PAID_OFF once nothing is
// outstanding. On error the loan is unchanged.
func (l *Loan) MakePayment(amount float64, at time.Time) (Payment, error) {
	if !money.Positive(amount) {
		return Payment{}, fmt.Errorf("%w: got %v", ErrInvalidAmount, amount)
	}
	if l.Status != StatusActive {
		return Payment{}, fmt.Errorf("%w: loan %s is %s", ErrLoanNotActive, l.LoanNumber, l.Status)
	}
	interest := l.CurrentInterest()
	if owed := money.Add(l.OutstandingBalance, interest); amount > owed {
		return Payment{}, fmt.Errorf("%w: owed %v, paid %v", ErrPaymentExceedsOwed, owed, amount)
	}

	interestPaid := math.Min(amount, interest)
	principalPaid := money.Sub(amount, interestPaid)
	l.OutstandingBalance = money.Round2(money.Sub(l.OutstandingBalance, principalPaid))
	if l.OutstandingBalance <= 0 {
		l.OutstandingBalance = 0
		l.Status = StatusPaidOff
	}

	p := Payment{
		LoanID:           l.ID,
		Date:             at.UTC(),
		Amount:           amount,
		PrincipalPaid:    principalPaid,
		InterestPaid:     interestPaid,
		RemainingBalance: l.OutstandingBalance,
	}
	l.Payments = append(l.Payments, p)
	return p, nil
}

// TotalInterest projects the interest paid over the full term at the fixed
// installment. It ignores the payments actually made.
func (l *Loan) TotalInterest() float64 {
	total := l.MonthlyPayment() * float64(l.TermMonths)
	return money.Round2(total - l.PrincipalAmount)
}

func (l *Loan) Summary() Summary {
	return Summary{
		LoanNumber:         l.LoanNumber,
		AccountHolderName:  l.AccountHolderName,
		PrincipalAmount:    l.PrincipalAmount,
		InterestRate:       l.InterestRate,
		TermMonths:         l.TermMonths,
		MonthlyPayment:     l.MonthlyPayment(),
		OutstandingBalance: l.OutstandingBalance,
		TotalInterest:      l.TotalInterest(),
		Status:             l.Status,
		PaymentsMade:       len(l.Payments),
	}
}
