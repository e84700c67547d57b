package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/simbaid-sync/internal/service"
	"github.com/MKhiriev/simbaid-sync/internal/store"
)

var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrNoDeviceID, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrDeliveryConflict, http.StatusConflict},
	{store.ErrTemporarilyUnavailable, http.StatusServiceUnavailable},
	{store.ErrDeliveryNotSaved, http.StatusInternalServerError},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}
