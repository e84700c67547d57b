package local

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/simbaid-sync/internal/app"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/service"
	"github.com/MKhiriev/simbaid-sync/internal/store"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
)

var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidPayload, http.StatusBadRequest},
	{service.ErrInvalidKind, http.StatusBadRequest},
	{service.ErrItemNotFailed, http.StatusNotFound},
	{store.ErrQueueItemNotFound, http.StatusNotFound},
	{store.ErrQueueLocked, http.StatusServiceUnavailable},
	{store.ErrQueueStorage, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status mapped from err. Server-side
// failures are logged, client mistakes are not.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("path", r.URL.Path).Msg("local api request failed")
		utils.WriteError(w, app.MsgInternalServerError, status)
		return
	}
	utils.WriteError(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
