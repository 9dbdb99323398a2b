package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	RecordRepository RecordRepository

	db *DB
}

// NewStorages connects the record store persistence layer. An empty DSN keeps
// everything in memory; otherwise cfg.DSN must point at PostgreSQL, whose
// schema is migrated before use.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	if cfg.DSN == "" {
		logger.Warn().Str("func", "NewStorages").Msg("no database DSN configured, records are kept in memory")
		return &Storages{RecordRepository: NewMemoryRecordRepository()}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		RecordRepository: NewRecordRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
