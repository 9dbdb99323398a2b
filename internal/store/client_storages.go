package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
)

// ClientStorages groups the client-side durable storage. KV is the backend
// chosen by the DSN; the sync repositories of a zone are bound to it with
// [ClientStorages.ForZone].
type ClientStorages struct {
	KV KeyValueStore
}

// SyncStorages holds the persisted state of one sync zone.
type SyncStorages struct {
	Uploads UploadBufferRepository
	Deletes DeleteBufferRepository
	State   SyncStateRepository
}

// NewClientStorages opens the key-value backend selected by cfg.DB.DSN:
//   - ":memory:" or "memory" keeps everything in process memory;
//   - a path ending in ".json" uses a single JSON document;
//   - anything else is a SQLite database file, migrated on open.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("func", "NewClientStorages").Msg("creating new storages...")

	dsn := strings.TrimSpace(cfg.DB.DSN)
	switch {
	case dsn == "":
		return nil, ErrUnsupportedDSN
	case dsn == ":memory:" || dsn == "memory":
		return &ClientStorages{KV: NewMemoryKeyValueStore()}, nil
	case strings.HasSuffix(strings.ToLower(dsn), ".json"):
		kv, err := NewFileKeyValueStore(dsn)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		return &ClientStorages{KV: kv}, nil
	}

	db, err := NewConnectSQLite(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{KV: NewSQLiteKeyValueStore(db, logger)}, nil
}

// ForZone returns the repositories persisting zone's buffers and state.
func (s *ClientStorages) ForZone(zone string) SyncStorages {
	return NewSyncStorages(s.KV, zone)
}

// Close releases the backend.
func (s *ClientStorages) Close() error {
	return s.KV.Close()
}

// NewSyncStorages binds the sync repositories of zone to kv.
func NewSyncStorages(kv KeyValueStore, zone string) SyncStorages {
	return SyncStorages{
		Uploads: NewUploadBufferRepository(kv, zone),
		Deletes: NewDeleteBufferRepository(kv, zone),
		State:   NewSyncStateRepository(kv, zone),
	}
}
