package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-record-sync/internal/logger"
)

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a database connection together with the error classifier of its
// driver.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	migrate            func(*sql.DB) error
}

// Migrate applies the pending schema migrations of the connected backend.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return nil
	}
	return db.migrate(db.DB)
}

// wrapError joins sentinel and err, marking err with [ErrRetryable] when the
// driver classifies it as transient.
func (db *DB) wrapError(sentinel, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrRetryable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
