package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-deploy-gate/internal/service"
	"github.com/MKhiriev/go-deploy-gate/internal/store"
	"github.com/MKhiriev/go-deploy-gate/internal/utils"
	"github.com/MKhiriev/go-deploy-gate/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTestUserNotConfigured:   http.StatusNotFound,
	service.ErrRefreshTokenInvalid:     http.StatusUnauthorized,
	service.ErrTokenReuseDetected:      http.StatusUnauthorized,
	service.ErrOAuthNotConfigured:      http.StatusServiceUnavailable,
	service.ErrOAuthVerificationFailed: http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrEmailAlreadyExists:   http.StatusConflict,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrRefreshTokenNotFound: http.StatusUnauthorized,
	store.ErrRefreshTokenNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends a JSON error body with the given status.
func writeError(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

// writeMappedError maps a service/store error to its HTTP status and sends
// a JSON error body carrying the sentinel's message.
func writeMappedError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// internal details stay in the logs
		message = http.StatusText(http.StatusInternalServerError)
	}
	writeError(w, message, status)
}
