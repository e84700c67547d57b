package http

import (
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/service"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
)

// maxPayloadSize bounds the body of a single delivery.
const maxPayloadSize = 1 << 20

type Handler struct {
	services *service.Services
	hasher   *utils.Hasher

	logger *logger.Logger
}

// NewHandler creates the server HTTP handler. hashKey is the secret shared
// with the devices; it keys the X-Payload-Hash check.
func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hasher:   utils.NewHasher(hashKey),
		logger:   logger,
	}
}
