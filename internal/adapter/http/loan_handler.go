package http

import (
	"net/http"
	"strings"

	domain "bank-account-api/internal/domain/loan"
	"bank-account-api/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

func (h *LoanHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Active(c echo.Context) error {
	out, err := h.uc.Active(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Search(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name parameter is required"})
	}
	out, err := h.uc.Search(c.Request().Context(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Stats(c echo.Context) error {
	out, err := h.uc.PortfolioStats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Config())
}

func (h *LoanHandler) UpdateConfig(c echo.Context) error {
	var req domain.ConfigUpdate
	if ok, err := decode(c, &req); !ok {
		return err
	}
	out, err := h.uc.UpdateConfig(req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Get(c echo.Context) error {
	id, ok, err := pathID(c, "id", "loan")
	if !ok {
		return err
	}
	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Summary(c echo.Context) error {
	id, ok, err := pathID(c, "id", "loan")
	if !ok {
		return err
	}
	out, err := h.uc.Summary(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Payments(c echo.Context) error {
	id, ok, err := pathID(c, "id", "loan")
	if !ok {
		return err
	}
	out, err := h.uc.Payments(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Create(c echo.Context) error {
	var req loan.CreateLoanInput
	if ok, err := decode(c, &req); !ok {
		return err
	}
	out, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *LoanHandler) MakePayment(c echo.Context) error {
	id, ok, err := pathID(c, "id", "loan")
	if !ok {
		return err
	}
	var req loan.MakePaymentInput
	if ok, err := decode(c, &req); !ok {
		return err
	}
	out, err := h.uc.MakePayment(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
