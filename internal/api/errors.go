package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/junction-api/internal/api/shared"
	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/store"
)

// ErrInvalidRequestFormat is reported when a request body is not valid JSON
// for the endpoint.
var ErrInvalidRequestFormat = errors.New("invalid request format")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// A referential failure is reported exactly like a field rule failure.
	case errors.Is(err, domain.ErrValidation),
		store.IsInvalidEntityError(err),
		errors.Is(err, ErrInvalidRequestFormat):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"

	case errors.Is(err, store.ErrHeroNotFound):
		return "Hero not found"
	case errors.Is(err, store.ErrPowerNotFound):
		return "Power not found"
	case errors.Is(err, store.ErrHeroPowerNotFound):
		return "HeroPower not found"
	case errors.Is(err, store.ErrVendorNotFound):
		return "Vendor not found"
	case errors.Is(err, store.ErrSweetNotFound):
		return "Sweet not found"
	case errors.Is(err, store.ErrVendorSweetNotFound):
		return "VendorSweet not found"
	case store.IsNotFoundError(err):
		return "Not found"

	case errors.Is(err, domain.ErrValidation), store.IsInvalidEntityError(err):
		return shared.ValidationErrorsMessage

	case errors.Is(err, ErrInvalidRequestFormat):
		return "Invalid request format"

	default:
		return "An unexpected error occurred"
	}
}

// isValidationFault reports whether err is answered with the validation
// errors body rather than a single error message.
func isValidationFault(err error) bool {
	return errors.Is(err, domain.ErrValidation) || store.IsInvalidEntityError(err)
}

// HandleAPIError writes the response for err. Validation faults get the
// {"errors":["validation errors"]} body; everything else gets {"error": msg},
// where msg defaults to GetSafeErrorMessage(err).
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if isValidationFault(err) {
		shared.RespondWithValidationErrors(w, r, err)
		return
	}
	if msg == "" {
		msg = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), msg, err)
}
