package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/models"
)

func TestNewClientStorages_Backends(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		dsn  string
		want any
	}{
		{"memory", ":memory:", &memoryKeyValueStore{}},
		{"memory alias", "memory", &memoryKeyValueStore{}},
		{"json file", filepath.Join(dir, "state.JSON"), &fileKeyValueStore{}},
		{"sqlite", filepath.Join(dir, "state.db"), &sqliteKeyValueStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storages, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: tt.dsn}}, logger.Nop())
			require.NoError(t, err)
			defer storages.Close()

			assert.IsType(t, tt.want, storages.KV)
		})
	}
}

func TestNewClientStorages_EmptyDSN(t *testing.T) {
	_, err := NewClientStorages(context.Background(), config.ClientStorage{}, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestClientStorages_ForZone(t *testing.T) {
	ctx := context.Background()
	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "sync.db")}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	zone := storages.ForZone("Bookmark")
	require.NoError(t, zone.Uploads.Save(ctx, models.UploadBuffer{"r1": {Name: "r1", Zone: "Bookmark", Type: "Bookmark"}}))
	require.NoError(t, zone.Deletes.Save(ctx, models.DeleteBuffer{"r2"}))
	require.NoError(t, zone.State.SetToken(ctx, []byte("tok")))

	again := storages.ForZone("Bookmark")
	uploads, err := again.Uploads.Load(ctx)
	require.NoError(t, err)
	assert.Contains(t, uploads, "r1")

	deletes, err := again.Deletes.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DeleteBuffer{"r2"}, deletes)

	token, err := again.State.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("tok"), token)
}
