package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"bank-account-api/internal/domain/account"
	"bank-account-api/internal/domain/loan"
	"bank-account-api/internal/domain/prime"
	"bank-account-api/internal/domain/statistics"

	"github.com/labstack/echo/v4"
)

var statusTable = []struct {
	err    error
	status int
}{
	// not found wins over the kinds that wrap it
	{account.ErrNotFound, http.StatusNotFound},
	{loan.ErrNotFound, http.StatusNotFound},

	{loan.ErrLoanNotActive, http.StatusConflict},

	{account.ErrInvalidAmount, http.StatusBadRequest},
	{account.ErrInvalidTransactionKind, http.StatusBadRequest},
	{account.ErrInsufficientFunds, http.StatusBadRequest},
	{account.ErrMissingTarget, http.StatusBadRequest},
	{account.ErrSameAccount, http.StatusBadRequest},
	{account.ErrInvalidAccount, http.StatusBadRequest},
	{account.ErrIDMismatch, http.StatusBadRequest},
	{account.ErrDeleteFailed, http.StatusBadRequest},
	{loan.ErrInvalidAmount, http.StatusBadRequest},
	{loan.ErrAmountOutOfRange, http.StatusBadRequest},
	{loan.ErrTermOutOfRange, http.StatusBadRequest},
	{loan.ErrRateOutOfRange, http.StatusBadRequest},
	{loan.ErrPaymentExceedsOwed, http.StatusBadRequest},
	{loan.ErrInvalidConfig, http.StatusBadRequest},
	{statistics.ErrLimitOutOfRange, http.StatusBadRequest},
	{prime.ErrNotANumber, http.StatusBadRequest},
	{prime.ErrNegativeInput, http.StatusBadRequest},
	{prime.ErrOutOfRange, http.StatusBadRequest},
}

// StatusOf classifies a use case error. Unknown errors are 500.
func StatusOf(err error) int {
	for _, row := range statusTable {
		if errors.Is(err, row.err) {
			return row.status
		}
	}
	return http.StatusInternalServerError
}

func writeError(c echo.Context, err error) error {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "err", err)
		return c.JSON(status, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(status, ErrorResponse{Error: err.Error()})
}

// decode binds and validates the body. When it returns false the error
// response has already been written and its result must be returned.
func decode(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

// pathID parses a numeric path parameter, answering 400 like decode when
// it is not one.
func pathID(c echo.Context, name, what string) (uint64, bool, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + what + " ID"})
	}
	return id, true, nil
}
