package service

import (
	"github.com/MKhiriev/simbaid-sync/internal/adapter"
	"github.com/MKhiriev/simbaid-sync/internal/config"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/store"
)

type ClientServices struct {
	QueueService  ClientQueueService
	SyncEngine    ClientSyncEngine
	StatusService ClientStatusService
	WalletService ClientWalletService
	SyncJob       ClientSyncJob
}

func NewClientServices(repo store.QueueRepository, remote adapter.RemoteAdapter, monitor ConnectivityMonitor,
	cfg config.ClientWorkers, logger *logger.Logger) (*ClientServices, error) {
	queueSvc := NewClientQueueService(repo, cfg.MaxRetries, logger)
	engine := NewClientSyncEngine(queueSvc, remote, monitor, cfg.DeliveryTimeout, logger)

	job, err := NewClientSyncJob(engine, monitor, cfg.SyncSchedule, logger)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		QueueService:  queueSvc,
		SyncEngine:    engine,
		StatusService: NewClientStatusService(queueSvc, monitor, engine, logger),
		WalletService: NewClientWalletService(queueSvc, logger),
		SyncJob:       job,
	}, nil
}
