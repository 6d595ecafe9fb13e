package http

import (
	"context"
	"net/http"
	"strings"

	domain "bank-account-api/internal/domain/account"
	"bank-account-api/internal/usecase/account"

	"github.com/labstack/echo/v4"
)

type AccountHandler struct{ uc *account.Usecase }

func NewAccountHandler(uc *account.Usecase) *AccountHandler { return &AccountHandler{uc: uc} }

func (h *AccountHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AccountHandler) Holders(c echo.Context) error {
	out, err := h.uc.Holders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AccountHandler) Search(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))
	if name == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "search name parameter is required"})
	}
	out, err := h.uc.Search(c.Request().Context(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AccountHandler) Get(c echo.Context) error {
	id, ok, err := pathID(c, "id", "account")
	if !ok {
		return err
	}
	out, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AccountHandler) Create(c echo.Context) error {
	var req account.CreateAccountInput
	if ok, err := decode(c, &req); !ok {
		return err
	}
	out, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AccountHandler) Update(c echo.Context) error {
	id, ok, err := pathID(c, "id", "account")
	if !ok {
		return err
	}
	var req account.UpdateAccountInput
	if ok, err := decode(c, &req); !ok {
		return err
	}
	if err := h.uc.Update(c.Request().Context(), id, req); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AccountHandler) Delete(c echo.Context) error {
	id, ok, err := pathID(c, "id", "account")
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AccountHandler) Deposit(c echo.Context) error {
	return h.movement(c, h.uc.Deposit)
}

func (h *AccountHandler) Withdraw(c echo.Context) error {
	return h.movement(c, h.uc.Withdraw)
}

func (h *AccountHandler) movement(c echo.Context, apply func(context.Context, uint64, account.MovementInput) (*domain.Account, error)) error {
	id, ok, err := pathID(c, "id", "account")
	if !ok {
		return err
	}
	var req account.MovementInput
	if ok, err := decode(c, &req); !ok {
		return err
	}
	out, err := apply(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AccountHandler) Transfer(c echo.Context) error {
	var req account.TransferInput
	if ok, err := decode(c, &req); !ok {
		return err
	}
	out, err := h.uc.Transfer(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
