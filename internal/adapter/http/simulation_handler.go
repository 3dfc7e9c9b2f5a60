package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cap-core-backend/internal/usecase/simulation"
)

type SimulationHandler struct{ uc *simulation.Usecase }

func NewSimulationHandler(uc *simulation.Usecase) *SimulationHandler {
	return &SimulationHandler{uc: uc}
}

type simulateReq struct {
	Principal  float64 `json:"principal"   validate:"required,gt=0,dec2"`
	CategoryID string  `json:"category_id" validate:"required"`
	TermMonths int     `json:"term_months" validate:"required,gte=1"`
}

func (h *SimulationHandler) Simulate(c echo.Context) error {
	var req simulateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Simulate(c.Request().Context(), simulation.SimulateInput{
		Principal:  req.Principal,
		CategoryID: req.CategoryID,
		TermMonths: req.TermMonths,
	})
	if err != nil {
		return c.JSON(statusForError(err), errorJSON(err))
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *SimulationHandler) SubmitRequest(c echo.Context) error {
	memberID := c.Param("member_id")
	if memberID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing member_id path param"})
	}
	var req simulateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.SubmitRequest(c.Request().Context(), simulation.SubmitInput{
		MemberID:   memberID,
		Principal:  req.Principal,
		CategoryID: req.CategoryID,
		TermMonths: req.TermMonths,
	})
	if err != nil {
		return c.JSON(statusForError(err), errorJSON(err))
	}
	return c.JSON(http.StatusCreated, dto)
}
