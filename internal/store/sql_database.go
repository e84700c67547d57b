package store

import (
	"database/sql"
	"errors"

	"github.com/gofrs/flock"

	"github.com/MKhiriev/simbaid-sync/internal/logger"
)

// DB wraps a [sql.DB] with the schema migration and error classification of
// its dialect.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	migrate func(*sql.DB) error
	lock    *flock.Flock
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return errors.New("no migrations registered for this database")
	}
	return db.migrate(db.DB)
}

// Close closes the connection pool and releases the process lock, if any.
func (db *DB) Close() error {
	err := db.DB.Close()
	if db.lock != nil {
		err = errors.Join(err, db.lock.Unlock())
	}
	return err
}
