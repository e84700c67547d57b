package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
)

// WithLogging writes one entry per request with the status, size and
// duration of the response.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w, ctx: r.Context()}
		next.ServeHTTP(lw, r)

		event := logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)
		if deviceID, ok := utils.GetDeviceIDFromContext(lw.ctx); ok {
			event = event.Str("device_id", deviceID)
		}
		event.Send()
	})
}
