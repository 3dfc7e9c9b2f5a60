package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cap-core-backend/internal/domain/refdata"
	"cap-core-backend/internal/usecase/admin"
)

type AdminHandler struct{ uc *admin.Usecase }

func NewAdminHandler(uc *admin.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

func (h *AdminHandler) GetRates(c echo.Context) error {
	rates, err := h.uc.Rates(c.Request().Context())
	if err != nil {
		return c.JSON(statusForError(err), errorJSON(err))
	}
	return c.JSON(http.StatusOK, rates)
}

func (h *AdminHandler) PutRates(c echo.Context) error {
	var rates []refdata.InterestRate
	if err := c.Bind(&rates); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.ReplaceRates(c.Request().Context(), rates); err != nil {
		return c.JSON(statusForError(err), errorJSON(err))
	}
	return c.JSON(http.StatusOK, rates)
}

func (h *AdminHandler) GetConfig(c echo.Context) error {
	cfg, err := h.uc.Config(c.Request().Context())
	if err != nil {
		return c.JSON(statusForError(err), errorJSON(err))
	}
	return c.JSON(http.StatusOK, cfg)
}

func (h *AdminHandler) PutConfig(c echo.Context) error {
	var cfg refdata.GlobalConfig
	if err := c.Bind(&cfg); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.ReplaceConfig(c.Request().Context(), cfg); err != nil {
		return c.JSON(statusForError(err), errorJSON(err))
	}
	return c.JSON(http.StatusOK, cfg)
}
