package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cap-core-backend/internal/usecase/members"
)

type MemberHandler struct{ uc *members.Usecase }

func NewMemberHandler(uc *members.Usecase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

func (h *MemberHandler) GetMember(c echo.Context) error {
	memberID := c.Param("member_id")
	if memberID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing member_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), memberID)
	if err != nil {
		return c.JSON(statusForError(err), errorJSON(err))
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MemberHandler) GetLoan(c echo.Context) error {
	memberID := c.Param("member_id")
	loanID := c.Param("loan_id")
	if memberID == "" || loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing member_id or loan_id path param"})
	}
	dto, err := h.uc.GetLoan(c.Request().Context(), memberID, loanID)
	if err != nil {
		return c.JSON(statusForError(err), errorJSON(err))
	}
	return c.JSON(http.StatusOK, dto)
}
