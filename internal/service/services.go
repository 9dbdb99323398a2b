package service

import (
	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/store"
)

// Services groups the record store server's business layer.
type Services struct {
	AuthService         AuthService
	RecordStoreService  RecordStoreService
	NotificationService NotificationService
	AppInfoService      AppInfoService
}

// NewServices wires the server services on top of storages. The record store
// service is wrapped with request validation.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, cfg.Server, logger)
	if err != nil {
		return nil, err
	}

	hub := NewNotificationHub(logger)
	records := NewRecordStoreService(storages.RecordRepository, hub, cfg.Server, logger)

	return &Services{
		AuthService:         NewAuthService(cfg.App, logger),
		RecordStoreService:  NewRecordStoreValidationService().Wrap(records),
		NotificationService: hub,
		AppInfoService:      appInfo,
	}, nil
}
