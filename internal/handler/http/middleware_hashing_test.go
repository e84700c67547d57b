package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
	"github.com/MKhiriev/simbaid-sync/models"
)

func TestPayloadHashing(t *testing.T) {
	const key = "shared-secret"
	payload := []byte(`{"amount":5000,"currency":"KES"}`)
	good := utils.NewHasher(key).SumHex(payload)

	tests := []struct {
		name       string
		hash       string
		body       []byte
		wantStatus int
		wantNext   bool
	}{
		{name: "matching hash", hash: good, body: payload, wantStatus: http.StatusOK, wantNext: true},
		{name: "missing hash", body: payload, wantStatus: http.StatusBadRequest},
		{name: "tampered body", hash: good, body: []byte(`{"amount":9000,"currency":"KES"}`), wantStatus: http.StatusBadRequest},
		{name: "hash with another key", hash: utils.NewHasher("other").SumHex(payload), body: payload, wantStatus: http.StatusBadRequest},
		{name: "oversized body", hash: good, body: []byte(strings.Repeat("a", maxPayloadSize+1)), wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{hasher: utils.NewHasher(key), logger: logger.Nop()}

			var nextBody []byte
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				nextBody, _ = io.ReadAll(r.Body)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/loan_application", bytes.NewReader(tt.body))
			if tt.hash != "" {
				req.Header.Set(models.HeaderPayloadHash, tt.hash)
			}
			rr := httptest.NewRecorder()

			h.payloadHashing(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, called)
			if tt.wantNext {
				assert.Equal(t, tt.body, nextBody, "body is restored for the next handler")
			}
		})
	}
}
