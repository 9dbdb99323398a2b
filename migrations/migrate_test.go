// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateServer_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the db itself; no expectations means every call fails

	err = MigrateServer(db)
	if err == nil {
		t.Fatal("expected error from MigrateServer, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	for name, fn := range map[string]func(*sql.DB) error{
		"client": MigrateClient,
		"server": MigrateServer,
	} {
		t.Run(name, func(t *testing.T) {
			err := fn(nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "db is nil")
		})
	}
}

func TestMigrateClient_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateClient(db))
	// a second run has nothing left to apply
	require.NoError(t, MigrateClient(db))

	_, err = db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, "k", []byte("v"))
	require.NoError(t, err)

	var value []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM kv WHERE key = ?`, "k").Scan(&value))
	assert.Equal(t, []byte("v"), value)
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	for _, dir := range []string{"client", "server"} {
		entries, err := embedMigrations.ReadDir(dir)
		require.NoError(t, err)
		assert.NotEmpty(t, entries, dir)
	}
}
