// Package money holds the numeric guards and cent arithmetic shared by the
// ledger and loan engines. Amounts are plain float64 values; every operation
// that must not accumulate binary rounding noise goes through decimal.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxAmount caps every stored amount and balance. Totals over any realistic
// number of accounts stay finite below it.
const MaxAmount = 1e15

// Round2 rounds to the cent, half away from zero.
func Round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

// Add returns a+b computed in base 10.
func Add(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).InexactFloat64()
}

// Sub returns a-b computed in base 10.
func Sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).InexactFloat64()
}

// Sum adds xs in base 10.
func Sum(xs ...float64) float64 {
	total := decimal.Zero
	for _, x := range xs {
		total = total.Add(decimal.NewFromFloat(x))
	}
	return total.InexactFloat64()
}

// Positive reports whether amount can be moved by a ledger or loan operation.
func Positive(amount float64) bool { return amount > 0 }

// NonNegative reports whether a balance is acceptable for a newly created account.
func NonNegative(balance float64) bool { return balance >= 0 }

// InRange reports whether x is a number with magnitude at most MaxAmount.
func InRange(x float64) bool { return !math.IsNaN(x) && math.Abs(x) <= MaxAmount }

// HasCents reports whether x has at most two decimal places.
func HasCents(x float64) bool {
	d := decimal.NewFromFloat(x)
	return d.Equal(d.Round(2))
}
