package client

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-record-sync/internal/config"
	myHTTP "github.com/MKhiriev/go-record-sync/internal/handler/http"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/service"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/models"
)

// ── loadImportFile ───────────────────────────────────────────────────────────

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadImportFile_EmptyPath(t *testing.T) {
	bookmarks, err := loadImportFile("  ")

	require.NoError(t, err)
	assert.Nil(t, bookmarks)
}

func TestLoadImportFile_AssignsMissingIDs(t *testing.T) {
	path := writeImportFile(t, `[
		{"id":"keep-me","title":"Go","url":"https://go.dev"},
		{"title":"Chi","url":"https://go-chi.io"}
	]`)

	bookmarks, err := loadImportFile(path)

	require.NoError(t, err)
	require.Len(t, bookmarks, 2)
	assert.Equal(t, "keep-me", bookmarks[0].ID)
	assert.NotEmpty(t, bookmarks[1].ID)
	assert.Equal(t, "Chi", bookmarks[1].Title)
	assert.False(t, bookmarks[1].Created.IsZero())
	assert.Nil(t, bookmarks[1].SystemFields())
}

func TestLoadImportFile_Errors(t *testing.T) {
	_, err := loadImportFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = loadImportFile(writeImportFile(t, `{"not":"an array"}`))
	assert.Error(t, err)
}

// ── NewApp ───────────────────────────────────────────────────────────────────

func TestNewApp_RequiresAddress(t *testing.T) {
	cfg := &config.ClientConfig{
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}},
		Sync:    config.ClientSync{RecordType: "Bookmark", Zone: "Bookmark"},
	}

	_, err := NewApp(context.Background(), cfg, logger.Nop())

	assert.Error(t, err)
}

// ── End to end ───────────────────────────────────────────────────────────────

// TestApp_UploadsImportedBookmarks runs the client against an in-memory
// record store and waits for the imported bookmarks to reach it.
func TestApp_UploadsImportedBookmarks(t *testing.T) {
	ctx := context.Background()
	log := logger.Nop()

	serverCfg := &config.ServerConfig{
		App: config.ServerApp{
			TokenSignKey:  "secret",
			TokenIssuer:   "go-record-sync-test",
			TokenDuration: time.Hour,
			Version:       "test",
		},
		Server: config.ServerHTTP{MaxBatchSize: 100, RetryAfter: time.Second},
	}

	storages, err := store.NewStorages(ctx, serverCfg.Storage, log)
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(storages, serverCfg, log)
	require.NoError(t, err)
	t.Cleanup(services.NotificationService.Close)

	server := httptest.NewServer(myHTTP.NewHandler(services, log).Init())
	t.Cleanup(server.Close)

	token, err := services.AuthService.CreateToken(ctx, "acc-1")
	require.NoError(t, err)

	clientCfg := &config.ClientConfig{
		App: config.ClientApp{
			ImportFile: writeImportFile(t, `[{"title":"Go","url":"https://go.dev"},{"title":"Chi","url":"https://go-chi.io"}]`),
		},
		Adapter: config.ClientAdapter{
			HTTPAddress:    server.URL,
			RequestTimeout: 5 * time.Second,
			Token:          token.SignedString,
		},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}},
		Sync:    config.ClientSync{RecordType: "Bookmark", Zone: "Bookmark"},
		Workers: config.ClientWorkers{SyncInterval: time.Hour, ReconnectDelay: 50 * time.Millisecond},
	}

	app, err := NewApp(ctx, clientCfg, log)
	require.NoError(t, err)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- app.run(runCtx) }()

	require.Eventually(t, func() bool {
		resp, err := services.RecordStoreService.FetchChanges(ctx, "acc-1", models.ChangesRequest{Zone: "Bookmark"})
		return err == nil && len(resp.Changed) == 2
	}, 5*time.Second, 50*time.Millisecond)

	require.Eventually(t, func() bool {
		return app.services.Bookmarks.AccountStatus() == models.AccountStatusAvailable
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
