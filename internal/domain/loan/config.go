package loan

import (
	"fmt"
	"sync"

	"bank-account-api/pkg/money"
)

// Configuration bounds the loans that can be opened. It is consulted only at
// creation time; changing it never re-validates existing loans.
type Configuration struct {
	DefaultInterestRate float64 `json:"defaultInterestRate"`
	MinInterestRate     float64 `json:"minInterestRate"`
	MaxInterestRate     float64 `json:"maxInterestRate"`
	MaxLoanAmount       float64 `json:"maxLoanAmount"`
	MinLoanAmount       float64 `json:"minLoanAmount"`
	MaxTermMonths       int     `json:"maxTermMonths"`
	MinTermMonths       int     `json:"minTermMonths"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		DefaultInterestRate: 7.5,
		MinInterestRate:     1.0,
		MaxInterestRate:     25.0,
		MaxLoanAmount:       1_000_000,
		MinLoanAmount:       100,
		MaxTermMonths:       360,
		MinTermMonths:       1,
	}
}

// ConfigUpdate carries a partial configuration; nil fields keep their value.
type ConfigUpdate struct {
	DefaultInterestRate *float64 `json:"defaultInterestRate"`
	MinInterestRate     *float64 `json:"minInterestRate"`
	MaxInterestRate     *float64 `json:"maxInterestRate"`
	MaxLoanAmount       *float64 `json:"maxLoanAmount"`
	MinLoanAmount       *float64 `json:"minLoanAmount"`
	MaxTermMonths       *int     `json:"maxTermMonths"`
	MinTermMonths       *int     `json:"minTermMonths"`
}

func (c Configuration) Merge(u ConfigUpdate) Configuration {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.DefaultInterestRate, u.DefaultInterestRate)
	set(&c.MinInterestRate, u.MinInterestRate)
	set(&c.MaxInterestRate, u.MaxInterestRate)
	set(&c.MaxLoanAmount, u.MaxLoanAmount)
	set(&c.MinLoanAmount, u.MinLoanAmount)
	if u.MaxTermMonths != nil {
		c.MaxTermMonths = *u.MaxTermMonths
	}
	if u.MinTermMonths != nil {
		c.MinTermMonths = *u.MinTermMonths
	}
	return c
}

func (c Configuration) Validate() error {
	switch {
	case c.MinInterestRate < 0 || c.MinInterestRate > c.MaxInterestRate:
		return fmt.Errorf("%w: interest rate range [%v, %v]", ErrInvalidConfig, c.MinInterestRate, c.MaxInterestRate)
	case c.DefaultInterestRate < c.MinInterestRate || c.DefaultInterestRate > c.MaxInterestRate:
		return fmt.Errorf("%w: default interest rate %v outside [%v, %v]", ErrInvalidConfig, c.DefaultInterestRate, c.MinInterestRate, c.MaxInterestRate)
	case c.MinLoanAmount <= 0 || c.MinLoanAmount > c.MaxLoanAmount || !money.InRange(c.MaxLoanAmount):
		return fmt.Errorf("%w: loan amount range [%v, %v]", ErrInvalidConfig, c.MinLoanAmount, c.MaxLoanAmount)
	case c.MinTermMonths < 1 || c.MinTermMonths > c.MaxTermMonths:
		return fmt.Errorf("%w: term range [%d, %d]", ErrInvalidConfig, c.MinTermMonths, c.MaxTermMonths)
	}
	return nil
}

// CheckApplication validates a loan request against the bounds and returns
// the interest rate to apply: the requested one, or the default when nil.
func (c Configuration) CheckApplication(principal float64, termMonths int, rate *float64) (float64, error) {
	if principal < c.MinLoanAmount || principal > c.MaxLoanAmount {
		return 0, fmt.Errorf("%w: loan amount must be between $%v and $%v", ErrAmountOutOfRange, c.MinLoanAmount, c.MaxLoanAmount)
	}
	if termMonths < c.MinTermMonths || termMonths > c.MaxTermMonths {
		return 0, fmt.Errorf("%w: loan term must be between %d and %d months", ErrTermOutOfRange, c.MinTermMonths, c.MaxTermMonths)
	}
	r := c.DefaultInterestRate
	if rate != nil {
		r = *rate
	}
	if r < c.MinInterestRate || r > c.MaxInterestRate {
		return 0, fmt.Errorf("%w: interest rate must be between %v%% and %v%%", ErrRateOutOfRange, c.MinInterestRate, c.MaxInterestRate)
	}
	return r, nil
}

// ConfigStore is the process-wide holder of the active Configuration.
type ConfigStore struct {
	mu  sync.RWMutex
	cfg Configuration
}

func NewConfigStore(cfg Configuration) *ConfigStore { return &ConfigStore{cfg: cfg} }

func (s *ConfigStore) Get() Configuration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update merges u into the current configuration. A merge that yields an
// inconsistent configuration is rejected and nothing changes.
func (s *ConfigStore) Update(u ConfigUpdate) (Configuration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.cfg.Merge(u)
	if err := next.Validate(); err != nil {
		return s.cfg, err
	}
	s.cfg = next
	return next, nil
}
