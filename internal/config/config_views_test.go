package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── server view ───────────────────────────────────────────────────────────────

func TestNewServerConfig_Defaults(t *testing.T) {
	cfg := NewServerConfig(&StructuredConfig{App: App{TokenSignKey: "k"}})

	assert.Equal(t, defaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultMaxBatchSize, cfg.Server.MaxBatchSize)
	assert.Equal(t, defaultRetryAfter, cfg.Server.RetryAfter)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Empty(t, cfg.Storage.DSN)
	assert.NoError(t, cfg.validate())
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig {
		return NewServerConfig(&StructuredConfig{App: App{TokenSignKey: "k"}})
	}

	tests := []struct {
		name   string
		mutate func(cfg *ServerConfig)
		want   error
	}{
		{name: "valid", mutate: func(*ServerConfig) {}},
		{name: "no sign key", mutate: func(cfg *ServerConfig) { cfg.App.TokenSignKey = "" }, want: ErrInvalidAppConfigs},
		{name: "no address", mutate: func(cfg *ServerConfig) { cfg.Server.HTTPAddress = "" }, want: ErrInvalidServerConfigs},
		{name: "zero batch", mutate: func(cfg *ServerConfig) { cfg.Server.MaxBatchSize = 0 }, want: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetServerConfig_FromFlags(t *testing.T) {
	cfg, err := GetServerConfig([]string{"-a", "localhost:9999", "-token-sign-key", "secret", "-max-batch-size", "10"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 10, cfg.Server.MaxBatchSize)
}

func TestGetServerConfig_MissingKey(t *testing.T) {
	_, err := GetServerConfig([]string{"-a", "localhost:9999"})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── client view ───────────────────────────────────────────────────────────────

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg := NewClientConfig(&StructuredConfig{})

	assert.Equal(t, defaultClientDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, defaultRecordType, cfg.Sync.RecordType)
	assert.Equal(t, defaultRecordType, cfg.Sync.Zone)
	assert.Equal(t, defaultPageSize, cfg.Sync.PageSize)
	assert.Equal(t, defaultRetryDelay, cfg.Sync.DefaultRetryDelay)
	assert.Equal(t, defaultRemoteConcurrency, cfg.Sync.RemoteConcurrency)
	assert.Equal(t, defaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, defaultReconnectDelay, cfg.Workers.ReconnectDelay)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

func TestNewClientConfig_ZoneFollowsRecordType(t *testing.T) {
	cfg := NewClientConfig(&StructuredConfig{Sync: Sync{RecordType: "Note"}})
	assert.Equal(t, "Note", cfg.Sync.Zone)

	cfg = NewClientConfig(&StructuredConfig{Sync: Sync{RecordType: "Note", Zone: "Shared"}})
	assert.Equal(t, "Shared", cfg.Sync.Zone)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return NewClientConfig(&StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:8080", Token: "t"}})
	}

	tests := []struct {
		name   string
		mutate func(cfg *ClientConfig)
		want   error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "no dsn", mutate: func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "no token", mutate: func(cfg *ClientConfig) { cfg.Adapter.Token = "" }, want: ErrInvalidAdapterConfigs},
		{name: "zero page size", mutate: func(cfg *ClientConfig) { cfg.Sync.PageSize = 0 }, want: ErrInvalidSyncConfigs},
		{name: "zero interval", mutate: func(cfg *ClientConfig) { cfg.Workers.SyncInterval = 0 }, want: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://localhost:8080")
	t.Setenv("ADAPTER_TOKEN", "token")
	t.Setenv("WORKERS_SYNC_INTERVAL", "30s")

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)
}
