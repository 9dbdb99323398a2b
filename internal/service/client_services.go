package service

import (
	"github.com/MKhiriev/go-record-sync/internal/adapter"
	"github.com/MKhiriev/go-record-sync/internal/codec"
	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/models"
)

type ClientServices struct {
	Bookmarks *SyncEngine[models.Bookmark]
	SyncJob   ClientSyncJob
}

func NewClientServices(
	cfg config.ClientSync,
	remote adapter.RecordStore,
	storages store.SyncStorages,
	log *logger.Logger,
	opts ...SyncEngineOption[models.Bookmark],
) *ClientServices {
	zone := cfg.Zone
	if zone == "" {
		zone = cfg.RecordType
	}
	bookmarkCodec := codec.NewJSONCodec[models.Bookmark](zone, cfg.RecordType)
	engine := NewSyncEngine[models.Bookmark](cfg, remote, storages, bookmarkCodec, log, opts...)

	return &ClientServices{
		Bookmarks: engine,
		SyncJob:   NewClientSyncJob(engine),
	}
}

var _ ClientSyncService[models.Bookmark] = (*SyncEngine[models.Bookmark])(nil)
