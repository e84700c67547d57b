// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connectivity

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/simbaid-sync/internal/adapter"
)

// Prober answers whether the remote is reachable right now.
//
// A nil error with online=false means the probe reached a verdict: the
// remote is down or the network path is broken. A non-nil error means no
// verdict could be produced at all.
type Prober interface {
	Probe(ctx context.Context) (online bool, err error)
}

// Pinger is the part of [adapter.RemoteAdapter] the HTTP prober needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPProber probes the remote health endpoint through the delivery
// adapter.
type HTTPProber struct {
	pinger Pinger
}

func NewHTTPProber(pinger Pinger) *HTTPProber {
	return &HTTPProber{pinger: pinger}
}

// Probe implements [Prober]. Transport failures and gateway errors are an
// offline verdict; any other answer from the remote means it is reachable.
func (p *HTTPProber) Probe(ctx context.Context) (bool, error) {
	err := p.pinger.Ping(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return false, nil
	case errors.Is(err, adapter.ErrToken):
		return false, fmt.Errorf("%w: %w", ErrSignalUnavailable, err)
	default:
		return true, nil
	}
}

// GRPCProber probes the standard grpc.health.v1 service of the remote.
type GRPCProber struct {
	conn    *grpc.ClientConn
	client  healthpb.HealthClient
	service string
}

// NewGRPCProber creates a prober for the health service at address. The
// connection is established lazily by the first probe. service selects the
// health service name; empty means the whole server.
func NewGRPCProber(address, service string) (*GRPCProber, error) {
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("error creating grpc health client: %w", err)
	}

	return &GRPCProber{
		conn:    conn,
		client:  healthpb.NewHealthClient(conn),
		service: service,
	}, nil
}

// Probe implements [Prober].
func (p *GRPCProber) Probe(ctx context.Context) (bool, error) {
	resp, err := p.client.Check(ctx, &healthpb.HealthCheckRequest{Service: p.service})
	if err != nil {
		switch status.Code(err) {
		case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrSignalUnavailable, err)
	}

	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}

// Close releases the underlying connection.
func (p *GRPCProber) Close() error {
	return p.conn.Close()
}

// StaticProber reports a value set by the host. It backs headless setups
// where the platform pushes reachability changes, and tests.
type StaticProber struct {
	online atomic.Bool
}

func NewStaticProber(online bool) *StaticProber {
	p := &StaticProber{}
	p.online.Store(online)
	return p
}

// Set changes the value reported by later probes.
func (p *StaticProber) Set(online bool) {
	p.online.Store(online)
}

// Probe implements [Prober].
func (p *StaticProber) Probe(context.Context) (bool, error) {
	return p.online.Load(), nil
}
