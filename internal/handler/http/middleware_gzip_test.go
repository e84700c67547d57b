// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echo answers with the request body prefixed by "got: ".
var echo = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	_, _ = w.Write(append([]byte("got: "), body...))
})

func TestWithGZip(t *testing.T) {
	tests := []struct {
		name            string
		acceptEncoding  string
		compressRequest bool
		body            string
		wantGzipped     bool
	}{
		{name: "compress response", acceptEncoding: "gzip", body: "hello", wantGzipped: true},
		{name: "plain response", acceptEncoding: "", body: "hello"},
		{name: "gzip among several encodings", acceptEncoding: "deflate, gzip, br", body: "hello", wantGzipped: true},
		{name: "decompress request", compressRequest: true, body: `{"amount":5000}`},
		{name: "decompress request and compress response", acceptEncoding: "gzip", compressRequest: true, body: "both", wantGzipped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := []byte(tt.body)
			if tt.compressRequest {
				body = gzipBytes(t, body)
			}
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
			if tt.compressRequest {
				req.Header.Set("Content-Encoding", "gzip")
			}
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()

			WithGZip(echo).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "got: "+tt.body, gunzip(t, rr.Body.Bytes()))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, "got: "+tt.body, rr.Body.String())
		})
	}
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	WithGZip(echo).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWithGZip_EmptyResponseHasNoGzipTrailer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	WithGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rr, req)

	assert.Zero(t, rr.Body.Len())
}

func TestWithGZip_SkipsWebsocketUpgrade(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/status/ws", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Upgrade", "websocket")
	rr := httptest.NewRecorder()

	var passedThrough bool
	WithGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, passedThrough = w.(*httptest.ResponseRecorder)
	})).ServeHTTP(rr, req)

	assert.True(t, passedThrough)
}
