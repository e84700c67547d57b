package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/simbaid-sync/internal/config"
	"github.com/MKhiriev/simbaid-sync/internal/crypto"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// QueueRepository is the durable queue selected by the storage driver.
	QueueRepository QueueRepository
}

// NewClientStorages opens the queue backend named by cfg.Driver:
//   - "sqlite" opens cfg.DB.DSN with the SQLite driver and runs migrations;
//   - "bolt" opens cfg.DB.DSN as a bbolt file holding one queue record.
//
// Payloads are sealed with sealer in both cases.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, sealer crypto.PayloadSealer, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	switch cfg.Driver {
	case config.StorageDriverSQLite, "":
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: migration failed: %w", ErrQueueStorage, err)
		}

		return &ClientStorages{
			QueueRepository: NewSQLiteQueueRepository(db, sealer, logger),
		}, nil

	case config.StorageDriverBolt:
		repo, err := NewBoltQueueRepository(cfg.DB.DSN, sealer, logger)
		if err != nil {
			return nil, err
		}
		return &ClientStorages{QueueRepository: repo}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close releases every repository.
func (s *ClientStorages) Close() error {
	return s.QueueRepository.Close()
}
