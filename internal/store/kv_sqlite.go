package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-record-sync/internal/logger"
)

// sqliteKeyValueStore is the default client [KeyValueStore], one row per key
// in the "kv" table.
type sqliteKeyValueStore struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteKeyValueStore builds a [KeyValueStore] on an already migrated
// SQLite connection.
func NewSQLiteKeyValueStore(db *DB, logger *logger.Logger) KeyValueStore {
	return &sqliteKeyValueStore{
		DB:     db,
		logger: logger,
	}
}

func (s *sqliteKeyValueStore) GetBytes(ctx context.Context, key string) ([]byte, error) {
	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.GetBytes").
			Str("key", key).
			Msg("failed to read value")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStore) SetBytes(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}

	query, args, err := buildSetValueQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.SetBytes").
			Str("key", key).
			Int("size", len(value)).
			Msg("failed to write value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) GetBool(ctx context.Context, key string) (bool, error) {
	value, err := s.GetBytes(ctx, key)
	return decodeBool(value), err
}

func (s *sqliteKeyValueStore) SetBool(ctx context.Context, key string, value bool) error {
	return s.SetBytes(ctx, key, encodeBool(value))
}

func (s *sqliteKeyValueStore) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStore.Delete").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Close() error {
	return s.DB.Close()
}
