package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/simbaid-sync/internal/app"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
	"github.com/MKhiriev/simbaid-sync/models"
)

// payloadHashing verifies the X-Payload-Hash header: the hex HMAC-SHA256 of
// the raw body keyed with the shared secret. The body is restored for the
// next handler.
func (h *Handler) payloadHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		expected := r.Header.Get(models.HeaderPayloadHash)
		if expected == "" {
			log.Err(ErrMissingPayloadHash).Str("func", "*Handler.payloadHashing").Send()
			utils.WriteError(w, ErrMissingPayloadHash.Error(), http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadSize))
		if err != nil {
			log.Err(err).Str("func", "*Handler.payloadHashing").Msg("failed to read request body")
			utils.WriteError(w, app.MsgPayloadTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		actual := h.hasher.SumHex(body)
		if !h.hasher.Equal(actual, expected) {
			log.Error().Str("func", "*Handler.payloadHashing").
				Str("hash from request", expected).
				Str("hashed body", actual).
				Msg("hashes are not equal")
			utils.WriteError(w, ErrPayloadHashMismatch.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
