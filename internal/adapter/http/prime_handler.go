package http

import (
	"net/http"

	"bank-account-api/internal/domain/prime"

	"github.com/labstack/echo/v4"
)

type PrimeHandler struct{}

func NewPrimeHandler() *PrimeHandler { return &PrimeHandler{} }

// Check answers a bare JSON boolean.
func (h *PrimeHandler) Check(c echo.Context) error {
	ok, err := prime.CheckString(c.Param("number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ok)
}
