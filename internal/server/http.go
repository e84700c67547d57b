package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer serves a router on a single TCP address. The sync client uses
// it directly for the local status API.
type HTTPServer struct {
	server *http.Server

	logger *logger.Logger
}

// NewHTTPServer creates a server for router. A zero requestTimeout leaves
// reads unbounded, which long sync requests of the local API rely on.
func NewHTTPServer(router http.Handler, address string, requestTimeout time.Duration, logger *logger.Logger) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              address,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       requestTimeout,
		},
		logger: logger,
	}
}

// Addr returns the configured listen address.
func (h *HTTPServer) Addr() string {
	return h.server.Addr
}

func (h *HTTPServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("HTTP server listen on %s: %w", h.server.Addr, err)
	}
	return h.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done.
func (h *HTTPServer) Serve(ctx context.Context, ln net.Listener) error {
	h.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")

	errCh := make(chan error, 1)
	go func() {
		errCh <- h.server.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		h.Shutdown()
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
}

func (h *HTTPServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
		return
	}
	h.logger.Info().Msg("HTTP server Shutdown")
}
