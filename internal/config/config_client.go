package config

import (
	"fmt"
	"time"
)

const (
	defaultClientDSN         = "sync.db"
	defaultRecordType        = "Bookmark"
	defaultPageSize          = 200
	defaultRetryDelay        = 5 * time.Second
	defaultRemoteConcurrency = 4
	defaultSyncInterval      = 5 * time.Minute
	defaultReconnectDelay    = 5 * time.Second
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	LogLevel   string
	LogFile    string
	ImportFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the record store address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the account token.
	Token string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is a SQLite file path, a ".json" file path or ":memory:".
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync holds the sync engine settings.
type ClientSync struct {
	RecordType        string
	Zone              string
	PageSize          int
	DefaultRetryDelay time.Duration
	RemoteConcurrency int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the periodic sync job runs.
	SyncInterval time.Duration
	// ReconnectDelay is the pause before the notification listener redials.
	ReconnectDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the record store address, timeout and token.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains sync engine settings.
	Sync ClientSync
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg to a [ClientConfig], filling defaults for unset
// fields. The zone defaults to the record type.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	recordType := withDefault(cfg.Sync.RecordType, defaultRecordType)

	return &ClientConfig{
		App: ClientApp{
			LogLevel:   cfg.App.LogLevel,
			LogFile:    cfg.App.LogFile,
			ImportFile: cfg.App.ImportFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: withDefault(cfg.Adapter.RequestTimeout, defaultRequestTimeout),
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: withDefault(cfg.Storage.DB.DSN, defaultClientDSN),
			},
		},
		Sync: ClientSync{
			RecordType:        recordType,
			Zone:              withDefault(cfg.Sync.Zone, recordType),
			PageSize:          withDefault(cfg.Sync.PageSize, defaultPageSize),
			DefaultRetryDelay: withDefault(cfg.Sync.DefaultRetryDelay, defaultRetryDelay),
			RemoteConcurrency: withDefault(cfg.Sync.RemoteConcurrency, defaultRemoteConcurrency),
		},
		Workers: ClientWorkers{
			SyncInterval:   withDefault(cfg.Workers.SyncInterval, defaultSyncInterval),
			ReconnectDelay: withDefault(cfg.Workers.ReconnectDelay, defaultReconnectDelay),
		},
	}
}
