package http

import (
	"errors"
	"net/http"

	"cap-core-backend/internal/domain/loan"
	"cap-core-backend/internal/domain/member"
	"cap-core-backend/internal/domain/refdata"
	"cap-core-backend/internal/usecase/admin"
	"cap-core-backend/internal/usecase/collection"
	"cap-core-backend/internal/usecase/simulation"
)

// statusForError maps domain errors to HTTP codes at the boundary.
// Conflicts (wrong state, double payment, short funds) are 409 so the
// operator corrects and resubmits; a member without a savings account is
// a structural defect and stays a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, member.ErrNotFound),
		errors.Is(err, loan.ErrNotFound),
		errors.Is(err, loan.ErrInstallmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrInvalidTransition),
		errors.Is(err, loan.ErrInstallmentAlreadyPaid),
		errors.Is(err, loan.ErrInsufficientFunds),
		errors.Is(err, loan.ErrMissingRationale):
		return http.StatusConflict
	case errors.Is(err, simulation.ErrPrincipalOutOfRange),
		errors.Is(err, refdata.ErrRateNotFound),
		errors.Is(err, refdata.ErrInvalidConfig),
		errors.Is(err, admin.ErrInvalidRate),
		errors.Is(err, collection.ErrUnknownSource),
		errors.Is(err, loan.ErrInvalidPrincipal),
		errors.Is(err, loan.ErrInvalidRate),
		errors.Is(err, loan.ErrInvalidTerm):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(err error) ErrorResponse { return ErrorResponse{Error: err.Error()} }
