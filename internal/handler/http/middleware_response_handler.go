// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"
)

// responseWriter records the status and size of a response for
// WithLogging. WriteHeader is forwarded to the wrapped writer once.
//
// ctx is the context of the innermost request seen by SetContext, so values
// added by later middlewares (the device id) can still be logged.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int

	ctx context.Context
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Flush lets streaming handlers push data through the wrapper.
func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack is required by websocket upgrades behind WithLogging. A hijacked
// connection is logged with status 101.
func (w *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	w.status = http.StatusSwitchingProtocols
	w.wroteHeader = true
	return h.Hijack()
}

// Unwrap supports http.ResponseController.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// SetContext records ctx for the request log entry.
func (w *responseWriter) SetContext(ctx context.Context) {
	w.ctx = ctx
}

// contextSetter is implemented by responseWriter.
type contextSetter interface {
	SetContext(ctx context.Context)
}

// exposeContext hands ctx to an enclosing WithLogging, if any.
func exposeContext(w http.ResponseWriter, ctx context.Context) {
	for {
		if s, ok := w.(contextSetter); ok {
			s.SetContext(ctx)
			return
		}
		u, ok := w.(interface{ Unwrap() http.ResponseWriter })
		if !ok {
			return
		}
		w = u.Unwrap()
	}
}
