package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/YairBetsalel/tutor-path-finder/internal/service"
)

// statusFor maps a service failure to an HTTP status and a stable error
// code. Unmatched errors surface as 500 server_error.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, "email_taken"
	case errors.Is(err, service.ErrInvalidRole):
		return http.StatusBadRequest, "invalid_role"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, service.ErrInvalidRefreshToken):
		return http.StatusUnauthorized, "invalid_refresh_token"
	case errors.Is(err, service.ErrProfileNotFound):
		return http.StatusNotFound, "profile_not_found"

	case errors.Is(err, service.ErrNoSlots):
		return http.StatusBadRequest, "no_slots"
	case errors.Is(err, service.ErrInvalidTime):
		return http.StatusBadRequest, "invalid_time"
	case errors.Is(err, service.ErrInvalidTimeRange):
		return http.StatusBadRequest, "invalid_time_range"
	case errors.Is(err, service.ErrPastDate):
		return http.StatusBadRequest, "past_date"
	case errors.Is(err, service.ErrSlotOverlap):
		return http.StatusConflict, "slot_overlap"

	case errors.Is(err, service.ErrStudentNotFound):
		return http.StatusNotFound, "student_not_found"
	case errors.Is(err, service.ErrAlreadyBonded):
		return http.StatusConflict, "already_bonded"
	case errors.Is(err, service.ErrRequestPending):
		return http.StatusConflict, "request_pending"
	case errors.Is(err, service.ErrPreviouslyDenied):
		return http.StatusConflict, "previously_denied"
	case errors.Is(err, service.ErrRequestNotFound):
		return http.StatusNotFound, "request_not_found"
	case errors.Is(err, service.ErrNotRequestOwner):
		return http.StatusForbidden, "not_request_owner"
	case errors.Is(err, service.ErrRequestNotPending):
		return http.StatusConflict, "request_not_pending"

	case errors.Is(err, service.ErrInvalidRating):
		return http.StatusBadRequest, "invalid_rating"
	case errors.Is(err, service.ErrNotBonded):
		return http.StatusForbidden, "not_bonded"
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "forbidden"

	case errors.Is(err, service.ErrTutorNotFound):
		return http.StatusNotFound, "tutor_not_found"
	case errors.Is(err, service.ErrUnknownQualification):
		return http.StatusBadRequest, "unknown_qualification"
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest, "invalid_request"
	}

	return http.StatusInternalServerError, "server_error"
}

func writeServiceError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	writeError(w, status, code)
}
