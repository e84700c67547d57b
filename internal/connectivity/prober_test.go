package connectivity

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/simbaid-sync/internal/adapter"
	"github.com/MKhiriev/simbaid-sync/internal/config"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHTTPProber_Verdicts(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantOnline bool
		wantErr    error
	}{
		{name: "healthy", pingErr: nil, wantOnline: true},
		{name: "transport failure", pingErr: fmt.Errorf("%w: dial tcp", adapter.ErrTransport), wantOnline: false},
		{name: "service unavailable", pingErr: adapter.ErrServiceUnavailable, wantOnline: false},
		{name: "bad gateway", pingErr: adapter.ErrBadGateway, wantOnline: false},
		{name: "reachable but not found", pingErr: adapter.ErrNotFound, wantOnline: true},
		{name: "token cannot be issued", pingErr: adapter.ErrToken, wantErr: ErrSignalUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewHTTPProber(pingerFunc(func(context.Context) error { return tt.pingErr }))

			online, err := p.Probe(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOnline, online)
		})
	}
}

func TestHTTPProber_WithRemoteAdapter(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	remote, err := adapter.NewHTTPRemoteAdapter(
		config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: time.Second},
		config.ClientApp{DeviceID: "device-1", TokenSignKey: "secret", TokenDuration: time.Hour},
		logger.Nop(),
	)
	require.NoError(t, err)
	p := NewHTTPProber(remote)

	online, err := p.Probe(context.Background())
	require.NoError(t, err)
	assert.True(t, online)

	healthy.Store(false)
	online, err = p.Probe(context.Background())
	require.NoError(t, err)
	assert.False(t, online)

	srv.Close()
	online, err = p.Probe(context.Background())
	require.NoError(t, err)
	assert.False(t, online)
}

func startHealthServer(t *testing.T) (*health.Server, string) {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	hs := health.NewServer()
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	return hs, lis.Addr().String()
}

func TestGRPCProber(t *testing.T) {
	hs, addr := startHealthServer(t)

	p, err := NewGRPCProber(addr, "")
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	online, err := p.Probe(ctx)
	require.NoError(t, err)
	assert.True(t, online)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	online, err = p.Probe(ctx)
	require.NoError(t, err)
	assert.False(t, online)
}

func TestGRPCProber_UnknownService(t *testing.T) {
	_, addr := startHealthServer(t)

	p, err := NewGRPCProber(addr, "simbaid.Unknown")
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err = p.Probe(ctx)
	assert.True(t, errors.Is(err, ErrSignalUnavailable))
}

func TestGRPCProber_Unreachable(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	p, err := NewGRPCProber(addr, "")
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	online, err := p.Probe(ctx)
	require.NoError(t, err)
	assert.False(t, online)
}

func TestStaticProber(t *testing.T) {
	p := NewStaticProber(false)
	online, err := p.Probe(context.Background())
	require.NoError(t, err)
	assert.False(t, online)

	p.Set(true)
	online, _ = p.Probe(context.Background())
	assert.True(t, online)
}
