package service

import (
	"context"
	"math"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/models"
)

type appInfoService struct {
	info models.ServerInfo

	logger *logger.Logger
}

// NewAppInfoService reports the configured version together with the batch
// limits of the record store. An empty version is a configuration error.
func NewAppInfoService(cfg config.ServerApp, limits config.ServerHTTP, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.ServerInfo{
			Version:           cfg.Version,
			MaxBatchSize:      limits.MaxBatchSize,
			RetryAfterSeconds: int(math.Ceil(limits.RetryAfter.Seconds())),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetServerInfo(ctx context.Context) models.ServerInfo {
	return s.info
}
