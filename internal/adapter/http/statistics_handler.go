package http

import (
	"net/http"
	"strconv"

	domain "bank-account-api/internal/domain/statistics"
	"bank-account-api/internal/usecase/statistics"

	"github.com/labstack/echo/v4"
)

type StatisticsHandler struct{ uc *statistics.Usecase }

func NewStatisticsHandler(uc *statistics.Usecase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

func (h *StatisticsHandler) Overview(c echo.Context) error {
	out, err := h.uc.Overview(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatisticsHandler) Summary(c echo.Context) error {
	out, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatisticsHandler) Distribution(c echo.Context) error {
	out, err := h.uc.Distribution(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatisticsHandler) TopHolders(c echo.Context) error {
	limit := domain.DefaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
		}
		limit = n
	}
	out, err := h.uc.TopHolders(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
