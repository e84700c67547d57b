// Package grpc exposes the reference server over gRPC. Only the standard
// health service is served; it reports the delivery storage state.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/service"
)

// DeliveryServiceName is the health service name probed by clients that use
// the gRPC connectivity prober.
const DeliveryServiceName = "simbaid.sync.v1.Delivery"

const defaultCheckInterval = 10 * time.Second

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both the overall ("") and the delivery
// service start as NOT_SERVING until the first storage check.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(DeliveryServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// CheckStorage pings the delivery storage once and publishes the result as
// the serving status.
func (h *Handler) CheckStorage(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.DeliveryService.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("delivery storage is unavailable")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(DeliveryServiceName, status)
	return status
}

// Run keeps the serving status current until ctx is done, then marks every
// service NOT_SERVING.
func (h *Handler) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = defaultCheckInterval
	}

	h.CheckStorage(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return nil
		case <-ticker.C:
			h.CheckStorage(ctx)
		}
	}
}
