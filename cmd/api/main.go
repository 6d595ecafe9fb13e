package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "bank-account-api/internal/adapter/http"
	idem "bank-account-api/internal/adapter/middleware"
	"bank-account-api/internal/adapter/repository/gormstore"
	"bank-account-api/internal/config"
	domainLoan "bank-account-api/internal/domain/loan"
	"bank-account-api/internal/infrastructure/cache"
	"bank-account-api/internal/infrastructure/db"
	"bank-account-api/internal/logging"
	"bank-account-api/internal/usecase/account"
	"bank-account-api/internal/usecase/loan"
	"bank-account-api/internal/usecase/statistics"
	"bank-account-api/pkg/id"
)

func main() {
	if err := run(); err != nil {
		slog.Error("api: exit", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg.DBDSN, cfg.DBLogLevel)
	if err != nil {
		return err
	}
	if err := db.Migrate(gdb); err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	accounts := gormstore.NewAccountRepository(gdb)
	loans := gormstore.NewLoanRepository(gdb)
	tx := gormstore.NewGormUoW(gdb)

	accountUC := account.NewUsecase(accounts, tx)
	loanUC := loan.NewUsecase(loans, tx, domainLoan.NewConfigStore(cfg.LoanConfiguration()))
	statsUC := statistics.NewUsecase(accounts)

	if cfg.SeedAccounts > 0 {
		seeded, err := accountUC.Seed(ctx, cfg.SeedAccounts, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))
		if err != nil {
			return err
		}
		slog.Info("api: seeded accounts", "count", len(seeded))
	}

	var mutating []echo.MiddlewareFunc
	if cfg.IdempotencyEnabled() {
		rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer rdb.Close()
		mutating = append(mutating, idem.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL()))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: id.NewID32}),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogMethod:    true,
			LogURI:       true,
			LogStatus:    true,
			LogLatency:   true,
			LogRequestID: true,
			LogError:     true,
			HandleError:  true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				attrs := []any{
					"method", v.Method, "uri", v.URI, "status", v.Status,
					"latency", v.Latency, "request_id", v.RequestID,
				}
				if v.Error != nil {
					slog.ErrorContext(c.Request().Context(), "request", append(attrs, "err", v.Error)...)
					return nil
				}
				slog.InfoContext(c.Request().Context(), "request", attrs...)
				return nil
			},
		}),
		middleware.Recover(),
	)

	httpadp.Router{
		Health:     httpadp.NewHandler(sqlDB),
		Accounts:   httpadp.NewAccountHandler(accountUC),
		Loans:      httpadp.NewLoanHandler(loanUC),
		Prime:      httpadp.NewPrimeHandler(),
		Statistics: httpadp.NewStatisticsHandler(statsUC),
	}.Register(e, mutating...)

	addr := ":" + cfg.AppPort
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api: listening", "addr", addr, "idempotency", cfg.IdempotencyEnabled())
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slog.Info("api: shutting down")
	return e.Shutdown(shutdownCtx)
}
