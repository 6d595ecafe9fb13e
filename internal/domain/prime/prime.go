// Package prime answers primality questions for bounded non-negative
// integers.
package prime

import (
	"errors"
	"strconv"
	"strings"
)

const MaxInput int64 = 1_000_000_000

var (
	ErrNotANumber    = errors.New("invalid number provided")
	ErrNegativeInput = errors.New("number must be non-negative")
	ErrOutOfRange    = errors.New("number too large, maximum allowed is 1,000,000,000")
)

// IsPrime uses trial division by 6k±1 up to the square root of n.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Check validates the bounds before testing n.
func Check(n int64) (bool, error) {
	if n < 0 {
		return false, ErrNegativeInput
	}
	if n > MaxInput {
		return false, ErrOutOfRange
	}
	return IsPrime(n), nil
}

// Parse reads a base-10 integer. Anything other than an optional sign
// followed by digits is rejected.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			if strings.HasPrefix(s, "-") {
				return 0, ErrNegativeInput
			}
			return 0, ErrOutOfRange
		}
		return 0, ErrNotANumber
	}
	return n, nil
}

// CheckString combines Parse and Check.
func CheckString(s string) (bool, error) {
	n, err := Parse(s)
	if err != nil {
		return false, err
	}
	return Check(n)
}
