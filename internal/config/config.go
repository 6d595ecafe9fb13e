package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bank-account-api/internal/domain/loan"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type LoanBounds struct {
	DefaultInterestRate float64 `envconfig:"DEFAULT_INTEREST_RATE" default:"7.5"`
	MinInterestRate     float64 `envconfig:"MIN_INTEREST_RATE" default:"1"`
	MaxInterestRate     float64 `envconfig:"MAX_INTEREST_RATE" default:"25"`
	MinAmount           float64 `envconfig:"MIN_AMOUNT" default:"100"`
	MaxAmount           float64 `envconfig:"MAX_AMOUNT" default:"1000000"`
	MinTermMonths       int     `envconfig:"MIN_TERM_MONTHS" default:"1"`
	MaxTermMonths       int     `envconfig:"MAX_TERM_MONTHS" default:"360"`
}

type Config struct {
	AppPort string `envconfig:"APP_PORT" default:"8080"`

	DBDSN      string `envconfig:"DB_DSN" default:"file::memory:?cache=shared"`
	DBLogLevel string `envconfig:"DB_LOG_LEVEL" default:"warn"`

	// empty disables the idempotency middleware
	RedisAddr    string `envconfig:"REDIS_ADDR"`
	RedisDB      int    `envconfig:"REDIS_DB" default:"0"`
	IdempTTLSecs int    `envconfig:"IDEMPOTENCY_TTL_SECONDS" default:"300"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	SeedAccounts int `envconfig:"SEED_ACCOUNTS" default:"20"`

	Loan LoanBounds `envconfig:"LOAN"`
}

// Load reads an optional .env file (the first path given, or ./.env) and
// then the process environment.
func Load(envFile ...string) (*Config, error) {
	var err error
	if len(envFile) > 0 && envFile[0] != "" {
		err = godotenv.Load(envFile[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		slog.Debug("config: no .env file, using process environment")
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.DBDSN == "" {
		return errors.New("missing DB_DSN")
	}
	if c.IdempTTLSecs < 0 {
		return fmt.Errorf("IDEMPOTENCY_TTL_SECONDS must not be negative, got %d", c.IdempTTLSecs)
	}
	if c.SeedAccounts < 0 {
		return fmt.Errorf("SEED_ACCOUNTS must not be negative, got %d", c.SeedAccounts)
	}
	if err := c.LoanConfiguration().Validate(); err != nil {
		return fmt.Errorf("loan bounds: %w", err)
	}
	return nil
}

func (c *Config) LoanConfiguration() loan.Configuration {
	return loan.Configuration{
		DefaultInterestRate: c.Loan.DefaultInterestRate,
		MinInterestRate:     c.Loan.MinInterestRate,
		MaxInterestRate:     c.Loan.MaxInterestRate,
		MaxLoanAmount:       c.Loan.MaxAmount,
		MinLoanAmount:       c.Loan.MinAmount,
		MaxTermMonths:       c.Loan.MaxTermMonths,
		MinTermMonths:       c.Loan.MinTermMonths,
	}
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) IdempotencyEnabled() bool { return c.RedisAddr != "" }
