package service

import (
	"context"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
	"github.com/MKhiriev/simbaid-sync/internal/utils"
	"github.com/MKhiriev/simbaid-sync/models"
)

const statusSourceBuffer = 16

type clientStatusService struct {
	queue   ClientQueueService
	monitor ConnectivityMonitor
	engine  ClientSyncEngine

	events *utils.Notifier[models.SyncStatus]
	logger *logger.Logger
}

// NewClientStatusService creates the status aggregator. It holds no state of
// its own besides its subscribers.
func NewClientStatusService(queue ClientQueueService, monitor ConnectivityMonitor, engine ClientSyncEngine, logger *logger.Logger) ClientStatusService {
	return &clientStatusService{
		queue:   queue,
		monitor: monitor,
		engine:  engine,
		events:  utils.NewNotifier[models.SyncStatus](),
		logger:  logger.WithComponent("status"),
	}
}

func (s *clientStatusService) GetStatus(ctx context.Context) (models.SyncStatus, error) {
	counts, err := s.queue.Counts(ctx)
	if err != nil {
		return models.SyncStatus{}, err
	}

	return models.SyncStatus{
		IsOnline:     s.monitor.IsOnline(),
		IsSyncing:    s.engine.IsSyncing(),
		LastSyncTime: s.engine.LastSyncTime(),
		PendingItems: counts.Pending,
		FailedItems:  counts.Failed,
	}, nil
}

func (s *clientStatusService) Subscribe(buf int) (<-chan models.SyncStatus, func()) {
	return s.events.Subscribe(buf)
}

func (s *clientStatusService) Run(ctx context.Context) error {
	queueEvents, cancelQueue := s.queue.Subscribe(statusSourceBuffer)
	defer cancelQueue()
	connEvents, cancelConn := s.monitor.Subscribe(statusSourceBuffer)
	defer cancelConn()
	engineEvents, cancelEngine := s.engine.Subscribe(statusSourceBuffer)
	defer cancelEngine()

	defer s.events.Close()

	s.publish(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-queueEvents:
			if !ok {
				queueEvents = nil
				continue
			}
		case _, ok := <-connEvents:
			if !ok {
				connEvents = nil
				continue
			}
		case _, ok := <-engineEvents:
			if !ok {
				engineEvents = nil
				continue
			}
		}

		s.publish(ctx)
	}
}

func (s *clientStatusService) publish(ctx context.Context) {
	status, err := s.GetStatus(ctx)
	if err != nil {
		s.logger.Err(err).Msg("error computing sync status")
		return
	}
	s.events.Publish(status)
}
