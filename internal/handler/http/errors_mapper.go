package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-life-records/internal/adapter"
	"github.com/MKhiriev/go-life-records/internal/app"
	"github.com/MKhiriev/go-life-records/internal/logger"
	"github.com/MKhiriev/go-life-records/internal/service"
	"github.com/MKhiriev/go-life-records/internal/store"
	"github.com/MKhiriev/go-life-records/internal/utils"
	"github.com/MKhiriev/go-life-records/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSONBody: http.StatusBadRequest,

	utils.ErrNoBearerToken:          http.StatusUnauthorized,
	adapter.ErrInvalidToken:         http.StatusUnauthorized,
	adapter.ErrProviderUnavailable:  http.StatusInternalServerError,
	service.ErrUnauthenticated:      http.StatusUnauthorized,
	service.ErrTokenSubjectMismatch: http.StatusUnauthorized,
	service.ErrEmptyIdentity:        http.StatusUnauthorized,
	service.ErrUnknownKind:          http.StatusNotFound,
	service.ErrStorageUnavailable:   http.StatusServiceUnavailable,

	validators.ErrUnknownKind:       http.StatusNotFound,
	validators.ErrNoIdentity:        http.StatusUnauthorized,
	validators.ErrInvalidRecordID:   http.StatusNotFound,
	validators.ErrMissingField:      http.StatusBadRequest,
	validators.ErrEmptyAttachments:  http.StatusBadRequest,
	validators.ErrInvalidFieldValue: http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate:  http.StatusBadRequest,

	store.ErrRecordNotFound:   http.StatusNotFound,
	store.ErrFingerprintTaken: http.StatusConflict,
	store.ErrNothingToUpdate:  http.StatusBadRequest,
	store.ErrRecordNotSaved:   http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as {"error": message}. Client errors carry their own
// message; server errors get a generic one so store internals stay private.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
		message = app.MsgInternalServerError
	}

	utils.WriteError(w, r, message, status)
}
