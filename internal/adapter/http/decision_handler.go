package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cap-core-backend/internal/usecase/decision"
)

type DecisionHandler struct{ uc *decision.Usecase }

func NewDecisionHandler(uc *decision.Usecase) *DecisionHandler {
	return &DecisionHandler{uc: uc}
}

type decideReq struct {
	Approve   *bool  `json:"approve"   validate:"required"`
	Rationale string `json:"rationale" validate:"required"`
}

func (h *DecisionHandler) Decide(c echo.Context) error {
	memberID := c.Param("member_id")
	loanID := c.Param("loan_id")
	if memberID == "" || loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing member_id or loan_id path param"})
	}
	if !validLoanID(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "loan_id must be 32-char lowercase hex"})
	}
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Decide(c.Request().Context(), decision.DecideInput{
		LoanID:    loanID,
		MemberID:  memberID,
		Approve:   *req.Approve,
		Rationale: req.Rationale,
	})
	if err != nil {
		return c.JSON(statusForError(err), errorJSON(err))
	}
	return c.JSON(http.StatusOK, dto)
}
