package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/service"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/internal/validators"
	"github.com/MKhiriev/go-user-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,

	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// statusFromError resolves err to an HTTP status code plus the sentinel it
// matched, so the response can carry the sentinel's clean message instead of
// the wrapped internal chain. Unrecognized errors map to 500 with no sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// respondError converts err into the API's JSON error contract:
//   - validation failures → 400 with every message under "errors";
//   - recognized sentinels → their mapped status with the sentinel text
//     under "error";
//   - everything else → 500 with a generic message, never internal detail.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		log.Warn().Err(err).Msg("request validation failed")
		utils.WriteJSON(w, models.ValidationErrorsResponse{Errors: validationErr.Messages}, http.StatusBadRequest)
		return
	}

	status, sentinel := statusFromError(err)
	if status == http.StatusInternalServerError || sentinel == nil {
		log.Err(err).Msg("unexpected error")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request failed")
	utils.WriteJSON(w, models.ErrorResponse{Error: sentinel.Error()}, status)
}
