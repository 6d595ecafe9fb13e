package loan

import "bank-account-api/pkg/money"

type PortfolioStats struct {
	TotalLoans              int     `json:"totalLoans"`
	ActiveLoans             int     `json:"activeLoans"`
	PaidOffLoans            int     `json:"paidOffLoans"`
	DefaultedLoans          int     `json:"defaultedLoans"`
	TotalPrincipalLent      float64 `json:"totalPrincipalLent"`
	TotalOutstandingBalance float64 `json:"totalOutstandingBalance"`
	AverageInterestRate     float64 `json:"averageInterestRate"`
}

// Portfolio aggregates loans: principal is summed over every loan, the
// outstanding balance over ACTIVE loans only.
func Portfolio(loans []Loan) PortfolioStats {
	var s PortfolioStats
	if len(loans) == 0 {
		return s
	}
	principals := make([]float64, 0, len(loans))
	outstanding := make([]float64, 0, len(loans))
	rates := make([]float64, 0, len(loans))
	for _, l := range loans {
		switch l.Status {
		case StatusActive:
			s.ActiveLoans++
			outstanding = append(outstanding, l.OutstandingBalance)
		case StatusPaidOff:
			s.PaidOffLoans++
		case StatusDefaulted:
			s.DefaultedLoans++
		}
		principals = append(principals, l.PrincipalAmount)
		rates = append(rates, l.InterestRate)
	}
	s.TotalLoans = len(loans)
	s.TotalPrincipalLent = money.Sum(principals...)
	s.TotalOutstandingBalance = money.Sum(outstanding...)
	s.AverageInterestRate = money.Round2(money.Sum(rates...) / float64(len(loans)))
	return s
}
