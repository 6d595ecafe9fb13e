package loan

type CreateLoanInput struct {
	AccountHolderName string   `json:"accountHolderName" validate:"required,max=255"`
	PrincipalAmount   float64  `json:"principalAmount" validate:"lte=1000000000000000,dec2"`
	InterestRate      *float64 `json:"interestRate" validate:"omitempty,gte=0"`
	TermMonths        int      `json:"termMonths"`
}

type MakePaymentInput struct {
	Amount float64 `json:"amount" validate:"lte=1000000000000000,dec2"`
}
