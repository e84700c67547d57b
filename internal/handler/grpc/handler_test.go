package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/mock"
	"github.com/MKhiriev/simbaid-sync/internal/service"
	"github.com/MKhiriev/simbaid-sync/internal/store"
)

func serveHealth(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := grpc.NewServer()
	h.Register(s)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHandler_CheckStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	delivery := mock.NewMockDeliveryService(ctrl)
	h := NewHandler(&service.Services{DeliveryService: delivery}, logger.Nop())
	client := serveHealth(t, h)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: DeliveryServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	delivery.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, h.CheckStorage(ctx))

	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: DeliveryServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	delivery.EXPECT().Ping(gomock.Any()).Return(store.ErrTemporarilyUnavailable)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, h.CheckStorage(ctx))

	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestHandler_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	delivery := mock.NewMockDeliveryService(ctrl)
	delivery.EXPECT().Ping(gomock.Any()).Return(nil).MinTimes(1)

	h := NewHandler(&service.Services{DeliveryService: delivery}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx, time.Millisecond) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
}
