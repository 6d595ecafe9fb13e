package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "bank-account-api/internal/domain/loan"
	"bank-account-api/internal/domain/uow"
	"bank-account-api/internal/testutil/loanmock"
	"bank-account-api/internal/testutil/uowmock"
)

// ----- test doubles -----

type memStore struct {
	loans    map[uint64]*domain.Loan
	payments []domain.Payment
	next     uint64
}

func (s *memStore) repo() *loanmock.Repo {
	return &loanmock.Repo{
		CreateFn: func(_ context.Context, l *domain.Loan) error {
			s.next++
			l.ID = s.next
			cp := *l
			s.loans[l.ID] = &cp
			return nil
		},
		SaveFn: func(_ context.Context, l *domain.Loan) error {
			cp := *l
			s.loans[l.ID] = &cp
			return nil
		},
		AddPaymentFn: func(_ context.Context, p *domain.Payment) error {
			p.ID = uint64(len(s.payments) + 1)
			s.payments = append(s.payments, *p)
			return nil
		},
		GetByIDFn: func(_ context.Context, id uint64) (*domain.Loan, error) {
			l, ok := s.loans[id]
			if !ok {
				return nil, domain.ErrNotFound
			}
			cp := *l
			cp.Payments = append([]domain.Payment{}, l.Payments...)
			return &cp, nil
		},
		ListFn: func(context.Context) ([]domain.Loan, error) {
			out := []domain.Loan{}
			for id := uint64(1); id <= s.next; id++ {
				if l, ok := s.loans[id]; ok {
					out = append(out, *l)
				}
			}
			return out, nil
		},
	}
}

var fixedNow = time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC)

func newUsecase(t *testing.T) (*Usecase, *memStore) {
	t.Helper()
	s := &memStore{loans: map[uint64]*domain.Loan{}}
	repo := s.repo()
	uc := NewUsecase(repo, uowmock.Passthrough(uow.Repos{Loans: repo}), domain.NewConfigStore(domain.DefaultConfiguration()))
	uc.now = func() time.Time { return fixedNow }
	return uc, s
}

func rate(f float64) *float64 { return &f }

// ----- tests -----

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		in       CreateLoanInput
		wantErr  error
		wantRate float64
	}{
		{name: "explicit rate", in: CreateLoanInput{AccountHolderName: "John", PrincipalAmount: 10000, InterestRate: rate(12), TermMonths: 12}, wantRate: 12},
		{name: "default rate", in: CreateLoanInput{AccountHolderName: "John", PrincipalAmount: 10000, TermMonths: 12}, wantRate: 7.5},
		{name: "amount below min", in: CreateLoanInput{AccountHolderName: "John", PrincipalAmount: 99.99, TermMonths: 12}, wantErr: domain.ErrAmountOutOfRange},
		{name: "amount above max", in: CreateLoanInput{AccountHolderName: "John", PrincipalAmount: 1_000_000.01, TermMonths: 12}, wantErr: domain.ErrAmountOutOfRange},
		{name: "term zero", in: CreateLoanInput{AccountHolderName: "John", PrincipalAmount: 1000}, wantErr: domain.ErrTermOutOfRange},
		{name: "term too long", in: CreateLoanInput{AccountHolderName: "John", PrincipalAmount: 1000, TermMonths: 361}, wantErr: domain.ErrTermOutOfRange},
		{name: "rate too high", in: CreateLoanInput{AccountHolderName: "John", PrincipalAmount: 1000, TermMonths: 12, InterestRate: rate(25.01)}, wantErr: domain.ErrRateOutOfRange},
		{name: "rate zero below configured min", in: CreateLoanInput{AccountHolderName: "John", PrincipalAmount: 1000, TermMonths: 12, InterestRate: rate(0)}, wantErr: domain.ErrRateOutOfRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc, s := newUsecase(t)
			got, err := uc.Create(context.Background(), tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v, got %v", tc.wantErr, err)
				}
				if len(s.loans) != 0 {
					t.Fatalf("no loan should be stored on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got.InterestRate != tc.wantRate {
				t.Errorf("rate = %v, want %v", got.InterestRate, tc.wantRate)
			}
			if got.Status != domain.StatusActive || got.OutstandingBalance != tc.in.PrincipalAmount {
				t.Errorf("unexpected loan state: %+v", got)
			}
			if want := "LOAN-1757152800000-1"; got.LoanNumber != want || s.loans[1].LoanNumber != want {
				t.Errorf("loan number = %q, stored %q, want %q", got.LoanNumber, s.loans[1].LoanNumber, want)
			}
		})
	}
}

func TestCreate_UsesUpdatedConfiguration(t *testing.T) {
	uc, _ := newUsecase(t)
	minRate := 0.0
	if _, err := uc.UpdateConfig(domain.ConfigUpdate{MinInterestRate: &minRate}); err != nil {
		t.Fatalf("UpdateConfig: %v", err)
	}
	got, err := uc.Create(context.Background(), CreateLoanInput{AccountHolderName: "Zero", PrincipalAmount: 12000, InterestRate: rate(0), TermMonths: 12})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.MonthlyPayment() != 1000 {
		t.Fatalf("monthly payment = %v, want 1000", got.MonthlyPayment())
	}
}

func TestMakePayment_UntilPaidOff(t *testing.T) {
	uc, s := newUsecase(t)
	ctx := context.Background()

	l, err := uc.Create(ctx, CreateLoanInput{AccountHolderName: "John", PrincipalAmount: 10000, InterestRate: rate(12), TermMonths: 12})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	first, err := uc.MakePayment(ctx, l.ID, MakePaymentInput{Amount: 888.49})
	if err != nil {
		t.Fatalf("MakePayment: %v", err)
	}
	if first.InterestPaid != 100 || first.PrincipalPaid != 788.49 || first.RemainingBalance != 9211.51 {
		t.Fatalf("unexpected split: %+v", first)
	}
	if !first.Date.Equal(fixedNow) || first.LoanID != l.ID {
		t.Fatalf("unexpected record: %+v", first)
	}

	for i := 0; i < 20; i++ {
		cur, _ := uc.Get(ctx, l.ID)
		if cur.Status != domain.StatusActive {
			break
		}
		amt := cur.MonthlyPayment()
		if owed := cur.Owed(); owed < amt {
			amt = owed
		}
		if _, err := uc.MakePayment(ctx, l.ID, MakePaymentInput{Amount: amt}); err != nil {
			t.Fatalf("payment %d: %v", i, err)
		}
	}

	got, _ := uc.Get(ctx, l.ID)
	if got.Status != domain.StatusPaidOff || got.OutstandingBalance != 0 {
		t.Fatalf("loan not paid off: %+v", got)
	}
	if len(got.Payments) != len(s.payments) {
		t.Fatalf("loan holds %d payments, store has %d", len(got.Payments), len(s.payments))
	}

	if _, err := uc.MakePayment(ctx, l.ID, MakePaymentInput{Amount: 1}); !errors.Is(err, domain.ErrLoanNotActive) {
		t.Fatalf("want ErrLoanNotActive, got %v", err)
	}
}

func TestMakePayment_Errors(t *testing.T) {
	uc, s := newUsecase(t)
	ctx := context.Background()
	l, _ := uc.Create(ctx, CreateLoanInput{AccountHolderName: "John", PrincipalAmount: 10000, InterestRate: rate(12), TermMonths: 12})

	tests := []struct {
		name    string
		id      uint64
		amount  float64
		wantErr error
	}{
		{name: "not found", id: 99, amount: 10, wantErr: domain.ErrNotFound},
		{name: "zero", id: l.ID, amount: 0, wantErr: domain.ErrInvalidAmount},
		{name: "negative", id: l.ID, amount: -5, wantErr: domain.ErrInvalidAmount},
		{name: "exceeds owed", id: l.ID, amount: 10100.01, wantErr: domain.ErrPaymentExceedsOwed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.MakePayment(ctx, tc.id, MakePaymentInput{Amount: tc.amount}); !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
		})
	}
	if len(s.payments) != 0 || s.loans[l.ID].OutstandingBalance != 10000 {
		t.Fatalf("failed payments changed state: payments=%d balance=%v", len(s.payments), s.loans[l.ID].OutstandingBalance)
	}
}

func TestQueries(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()
	l, _ := uc.Create(ctx, CreateLoanInput{AccountHolderName: "John", PrincipalAmount: 10000, InterestRate: rate(12), TermMonths: 12})
	if _, err := uc.MakePayment(ctx, l.ID, MakePaymentInput{Amount: 500}); err != nil {
		t.Fatalf("MakePayment: %v", err)
	}

	sum, err := uc.Summary(ctx, l.ID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.MonthlyPayment != 888.49 || sum.PaymentsMade != 1 || sum.OutstandingBalance != 9600 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	pays, err := uc.Payments(ctx, l.ID)
	if err != nil || len(pays) != 1 || pays[0].Amount != 500 {
		t.Fatalf("Payments: %+v, %v", pays, err)
	}

	if _, err := uc.Summary(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Summary(missing): want ErrNotFound, got %v", err)
	}
	if _, err := uc.Payments(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Payments(missing): want ErrNotFound, got %v", err)
	}
}

func TestPortfolioStats(t *testing.T) {
	uc, s := newUsecase(t)
	ctx := context.Background()

	empty, err := uc.PortfolioStats(ctx)
	if err != nil || empty != (domain.PortfolioStats{}) {
		t.Fatalf("empty portfolio: %+v, %v", empty, err)
	}

	a, _ := uc.Create(ctx, CreateLoanInput{AccountHolderName: "A", PrincipalAmount: 1000, InterestRate: rate(5), TermMonths: 12})
	_, _ = uc.Create(ctx, CreateLoanInput{AccountHolderName: "B", PrincipalAmount: 2000, InterestRate: rate(10), TermMonths: 12})
	s.loans[a.ID].Status = domain.StatusPaidOff

	got, err := uc.PortfolioStats(ctx)
	if err != nil {
		t.Fatalf("PortfolioStats: %v", err)
	}
	want := domain.PortfolioStats{
		TotalLoans: 2, ActiveLoans: 1, PaidOffLoans: 1,
		TotalPrincipalLent: 3000, TotalOutstandingBalance: 2000, AverageInterestRate: 7.5,
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestConfig(t *testing.T) {
	uc, _ := newUsecase(t)
	if uc.Config() != domain.DefaultConfiguration() {
		t.Fatalf("unexpected default config: %+v", uc.Config())
	}

	maxRate := 20.0
	got, err := uc.UpdateConfig(domain.ConfigUpdate{MaxInterestRate: &maxRate})
	if err != nil || got.MaxInterestRate != 20 || uc.Config().MaxInterestRate != 20 {
		t.Fatalf("UpdateConfig: %+v, %v", got, err)
	}

	bad := 0.5
	if _, err := uc.UpdateConfig(domain.ConfigUpdate{MaxInterestRate: &bad}); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("want ErrInvalidConfig, got %v", err)
	}
	if uc.Config().MaxInterestRate != 20 {
		t.Fatalf("rejected update changed config")
	}
}
