package id

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PrefixAccount  = "ACC"
	PrefixSavings  = "SAV"
	PrefixChecking = "CHK"
	PrefixLoan     = "LOAN"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ValidKey accepts a canonical UUID or its 32-hex form.
func ValidKey(s string) bool {
	if len(s) != 36 && len(s) != 32 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Number builds a human facing identifier: <prefix>-<unix millis>-<seq>.
func Number(prefix string, at time.Time, seq uint64) string {
	return fmt.Sprintf("%s-%d-%d", prefix, at.UnixMilli(), seq)
}

// LoanNumber is Number with the loan prefix.
func LoanNumber(at time.Time, seq uint64) string { return Number(PrefixLoan, at, seq) }
