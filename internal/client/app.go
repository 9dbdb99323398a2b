package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/adapter"
	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/service"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/internal/utils"
	"github.com/MKhiriev/go-record-sync/internal/workers"
	"github.com/MKhiriev/go-record-sync/models"
)

type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	listener *adapter.NotificationListener
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp wires the local storage, the record store adapter, the bookmark
// sync engine and the notification listener described by cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if accountID, err := utils.ParseAccountIDFromJWT(cfg.Adapter.Token); err == nil {
		log = log.WithStr("account_id", accountID)
	}

	initial, err := loadImportFile(cfg.App.ImportFile)
	if err != nil {
		return nil, err
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := adapter.NewHTTPRecordStore(cfg.Adapter, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create record store adapter: %w", err)
	}

	services := service.NewClientServices(cfg.Sync, remote, storages.ForZone(cfg.Sync.Zone), log,
		service.WithInitialRecords(initial))
	engine := services.Bookmarks

	listener, err := adapter.NewNotificationListener(cfg.Adapter, cfg.Workers.ReconnectDelay,
		func(payload []byte) { engine.ProcessRemoteNotification(payload) }, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create notification listener: %w", err)
	}
	// notifications sent while disconnected are lost, so every (re)connect
	// is followed by a full sync
	listener.OnConnect(engine.ForceSync)

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		listener: listener,
		workers: workers.NewWorkers(
			engine,
			listener,
			&syncJobWorker{job: services.SyncJob, interval: cfg.Workers.SyncInterval},
		),
		logger: log,
	}, nil
}

// Run starts the app and blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	engine := a.services.Bookmarks

	changes, cancelChanges := engine.Subscribe()
	defer cancelChanges()
	statuses, cancelStatuses := engine.SubscribeAccountStatus()
	defer cancelStatuses()

	a.workers.Run()
	a.logger.Info().
		Str("zone", engine.Zone()).
		Str("address", a.cfg.Adapter.HTTPAddress).
		Msg("client started")

	for {
		select {
		case <-ctx.Done():
			a.shutdown()
			return nil
		case change, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			a.logChange(change)
		case status, ok := <-statuses:
			if !ok {
				statuses = nil
				continue
			}
			a.logger.Info().Str("status", status.String()).Msg("account status changed")
		}
	}
}

func (a *App) shutdown() {
	a.logger.Info().Msg("client shutting down")

	a.workers.Stop()
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.shutdown").Msg("failed to close local storage")
	}
}

func (a *App) logChange(change models.ModelChange[models.Bookmark]) {
	event := a.logger.Info().Str("kind", change.Kind.String())

	switch change.Kind {
	case models.ChangeUpdated:
		titles := make([]string, 0, len(change.Updated))
		for _, bookmark := range change.Updated {
			titles = append(titles, bookmark.Title)
		}
		event.Int("count", len(change.Updated)).Strs("titles", titles)
	case models.ChangeDeleted:
		event.Strs("ids", change.Deleted)
	}

	event.Msg("model change")
}

// loadImportFile reads a JSON array of bookmarks. Entries without an id get a
// fresh one; an empty path imports nothing.
func loadImportFile(path string) ([]models.Bookmark, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	var bookmarks []models.Bookmark
	if err = json.Unmarshal(data, &bookmarks); err != nil {
		return nil, fmt.Errorf("parse import file %s: %w", path, err)
	}

	for i, bookmark := range bookmarks {
		if bookmark.ID == "" {
			fresh := models.NewBookmark(bookmark.Title, bookmark.URL)
			if !bookmark.Created.IsZero() {
				fresh.Created = bookmark.Created
			}
			bookmarks[i] = fresh
		}
	}

	return bookmarks, nil
}

// syncJobWorker runs the periodic sync job as a [workers.Worker].
type syncJobWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

func (w *syncJobWorker) Run() {
	w.job.Start(context.Background(), w.interval)
}

func (w *syncJobWorker) Stop() {
	w.job.Stop()
}
