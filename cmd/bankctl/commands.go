package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"bank-account-api/internal/domain/loan"
	"bank-account-api/internal/domain/prime"
	"bank-account-api/internal/domain/statistics"
	"bank-account-api/pkg/money"

	"github.com/google/subcommands"
)

func commands(out, errOut io.Writer) []subcommands.Command {
	return []subcommands.Command{
		&primeCmd{out: out, errOut: errOut},
		&amortizeCmd{out: out, errOut: errOut},
		&statsCmd{out: out, errOut: errOut, now: time.Now},
	}
}

// --- primeCmd ---

type primeCmd struct {
	out, errOut io.Writer
}

func (*primeCmd) Name() string     { return "prime" }
func (*primeCmd) Synopsis() string { return "reports whether a number is prime" }
func (*primeCmd) Usage() string {
	return `prime <n>

Prints true or false. n must be an integer in [0, 1000000000].
`
}
func (*primeCmd) SetFlags(*flag.FlagSet) {}

func (c *primeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(c.errOut, "Error: exactly one number is required.")
		return subcommands.ExitUsageError
	}
	ok, err := prime.CheckString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(c.out, ok)
	return subcommands.ExitSuccess
}

// --- amortizeCmd ---

type amortizeCmd struct {
	out, errOut io.Writer

	principal float64
	rate      float64
	term      int
	payment   float64
	asJSON    bool
}

func (*amortizeCmd) Name() string     { return "amortize" }
func (*amortizeCmd) Synopsis() string { return "prints the repayment schedule of a loan" }
func (*amortizeCmd) Usage() string {
	return `amortize -principal <amount> -rate <annual %> -term <months> [-payment <amount>] [-json]

Applies the monthly installment (or -payment) until the loan is paid off and
prints one row per payment.
`
}
func (c *amortizeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "principal", 0, "Principal amount.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate in percent.")
	f.IntVar(&c.term, "term", 0, "Term in months.")
	f.Float64Var(&c.payment, "payment", 0, "Payment per month; defaults to the amortized installment.")
	f.BoolVar(&c.asJSON, "json", false, "Print the schedule as JSON.")
}

func (c *amortizeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := loan.New("bankctl", c.principal, c.rate, c.term, time.Now())
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rows, err := schedule(l, c.payment)
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.asJSON {
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			fmt.Fprintf(c.errOut, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	s := l.Summary()
	fmt.Fprintf(c.out, "monthly payment %.2f, projected interest %.2f\n", s.MonthlyPayment, s.TotalInterest)
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "month\tpayment\tinterest\tprincipal\tremaining\t")
	for i, p := range rows {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t\n", i+1, p.Amount, p.InterestPaid, p.PrincipalPaid, p.RemainingBalance)
	}
	if err := tw.Flush(); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// schedule pays min(installment, owed) each month until the loan is paid
// off. An installment that never reduces the balance is an error.
func schedule(l *loan.Loan, installment float64) ([]loan.Payment, error) {
	if installment <= 0 {
		installment = l.MonthlyPayment()
	}
	limit := l.TermMonths*10 + 12
	at := l.CreatedAt
	for i := 0; l.Status == loan.StatusActive; i++ {
		if i == limit {
			return nil, fmt.Errorf("payment %.2f does not pay the loan off within %d months", installment, limit)
		}
		at = at.AddDate(0, 1, 0)
		if _, err := l.MakePayment(min(installment, l.Owed()), at); err != nil {
			return nil, err
		}
	}
	return l.Payments, nil
}

// --- statsCmd ---

type statsCmd struct {
	out, errOut io.Writer
	now         func() time.Time
	limit       int
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "summarizes a list of balances" }
func (*statsCmd) Usage() string {
	return `stats [-limit n] [holder=]balance...

Prints the statistics summary as JSON. Balances without a holder are
grouped under "unnamed".
`
}
func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", statistics.DefaultLimit, "Number of top holders to print.")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	hs, err := parseHoldings(f.Args())
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	sum := statistics.Summarize(hs, c.now())
	if c.limit != statistics.DefaultLimit {
		top, err := statistics.TopHolders(hs, c.limit)
		if err != nil {
			fmt.Fprintf(c.errOut, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		sum.TopHolders = top
	}
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sum); err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func parseHoldings(args []string) ([]statistics.Holding, error) {
	hs := make([]statistics.Holding, 0, len(args))
	for _, arg := range args {
		holder, raw := "unnamed", arg
		if name, bal, ok := strings.Cut(arg, "="); ok {
			holder, raw = strings.TrimSpace(name), bal
		}
		b, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || !money.InRange(b) {
			return nil, fmt.Errorf("invalid balance %q", arg)
		}
		hs = append(hs, statistics.Holding{Holder: holder, Balance: b})
	}
	return hs, nil
}
