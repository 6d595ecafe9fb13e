package loan

import (
	"context"
	"strings"
	"time"

	"bank-account-api/internal/domain/loan"
	"bank-account-api/internal/domain/uow"
	"bank-account-api/pkg/id"
)

type Usecase struct {
	repo loan.Repository
	uow  uow.UnitOfWork
	cfg  *loan.ConfigStore
	now  func() time.Time
}

func NewUsecase(r loan.Repository, tx uow.UnitOfWork, cfg *loan.ConfigStore) *Usecase {
	return &Usecase{repo: r, uow: tx, cfg: cfg, now: time.Now}
}

// Create validates the request against the current configuration and opens
// an ACTIVE loan numbered LOAN-<millis>-<id>.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*loan.Loan, error) {
	rate, err := u.cfg.Get().CheckApplication(in.PrincipalAmount, in.TermMonths, in.InterestRate)
	if err != nil {
		return nil, err
	}
	now := u.now()
	l, err := loan.New(strings.TrimSpace(in.AccountHolderName), in.PrincipalAmount, rate, in.TermMonths, now)
	if err != nil {
		return nil, err
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		l.LoanNumber = id.LoanNumber(now, l.ID)
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (u *Usecase) Get(ctx context.Context, loanID uint64) (*loan.Loan, error) {
	return u.repo.GetByID(ctx, loanID)
}

func (u *Usecase) List(ctx context.Context) ([]loan.Loan, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) Active(ctx context.Context) ([]loan.Loan, error) {
	return u.repo.ListByStatus(ctx, loan.StatusActive)
}

func (u *Usecase) Search(ctx context.Context, name string) ([]loan.Loan, error) {
	return u.repo.SearchByHolder(ctx, name)
}

func (u *Usecase) Summary(ctx context.Context, loanID uint64) (*loan.Summary, error) {
	l, err := u.repo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	s := l.Summary()
	return &s, nil
}

func (u *Usecase) Payments(ctx context.Context, loanID uint64) ([]loan.Payment, error) {
	l, err := u.repo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return l.Payments, nil
}

// MakePayment applies one payment and stores the record with the updated
// loan in the same transaction.
func (u *Usecase) MakePayment(ctx context.Context, loanID uint64, in MakePaymentInput) (*loan.Payment, error) {
	var out *loan.Payment
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		p, err := l.MakePayment(in.Amount, u.now())
		if err != nil {
			return err
		}
		if err := r.Loans.AddPayment(ctx, &p); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Config() loan.Configuration { return u.cfg.Get() }

func (u *Usecase) UpdateConfig(in loan.ConfigUpdate) (loan.Configuration, error) {
	return u.cfg.Update(in)
}

func (u *Usecase) PortfolioStats(ctx context.Context) (loan.PortfolioStats, error) {
	loans, err := u.repo.List(ctx)
	if err != nil {
		return loan.PortfolioStats{}, err
	}
	return loan.Portfolio(loans), nil
}
