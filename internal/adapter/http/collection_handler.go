package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cap-core-backend/internal/usecase/collection"
)

type CollectionHandler struct{ uc *collection.Usecase }

func NewCollectionHandler(uc *collection.Usecase) *CollectionHandler {
	return &CollectionHandler{uc: uc}
}

type collectReq struct {
	Number int    `json:"number" validate:"required,gte=1"`
	Source string `json:"source" validate:"required,oneof=ACCOUNT EXTERNAL_TRANSFER"`
}

func (h *CollectionHandler) Collect(c echo.Context) error {
	memberID := c.Param("member_id")
	loanID := c.Param("loan_id")
	if memberID == "" || loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing member_id or loan_id path param"})
	}
	if !validLoanID(loanID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "loan_id must be 32-char lowercase hex"})
	}
	var req collectReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Collect(c.Request().Context(), collection.CollectInput{
		LoanID:   loanID,
		MemberID: memberID,
		Number:   req.Number,
		Source:   collection.Source(req.Source),
	})
	if err != nil {
		return c.JSON(statusForError(err), errorJSON(err))
	}
	return c.JSON(http.StatusOK, dto)
}
