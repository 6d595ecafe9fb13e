package db

import (
	"log/slog"
	"strings"

	"bank-account-api/internal/domain/account"
	"bank-account-api/internal/domain/loan"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryDSN is a shared-cache in-memory database that lives as long as the
// process holds a connection to it.
const MemoryDSN = "file::memory:?cache=shared"

func OpenGorm(dsn, logLevel string) (*gorm.DB, error) {
	return OpenGormWithDialector(sqlite.Open(dsn), logLevel)
}

func OpenGormWithDialector(dial gorm.Dialector, logLevel string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:               logger.Default.LogMode(ParseLogLevel(logLevel)),
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// one connection keeps the in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	slog.Info("gorm: connected", "dialect", dial.Name())
	return db, nil
}

// Migrate creates the account and loan tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&account.Account{}, &loan.Loan{}, &loan.Payment{})
}

func ParseLogLevel(s string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
