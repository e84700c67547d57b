package service

import (
	"github.com/MKhiriev/simbaid-sync/internal/config"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/store"
	"github.com/MKhiriev/simbaid-sync/models"
)

type Services struct {
	AuthService     AuthService
	DeliveryService DeliveryService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(cfg, logger),
		DeliveryService: NewDeliveryValidationService().Wrap(NewDeliveryService(storages.DeliveryRepository, logger)),
		AppInfoService:  appInfo,
	}, nil
}
