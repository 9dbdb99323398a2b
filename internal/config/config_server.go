package config

import (
	"fmt"
	"time"
)

const (
	defaultServerAddress  = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultMaxBatchSize   = 400
	defaultRetryAfter     = time.Second
	defaultTokenDuration  = 30 * 24 * time.Hour
	defaultTokenIssuer    = "go-record-sync"
)

// ServerApp holds the server's application-level settings.
type ServerApp struct {
	TokenSignKey       string
	TokenIssuer        string
	TokenDuration      time.Duration
	RestrictedAccounts []string
	Version            string
	LogLevel           string
}

// ServerHTTP holds listener settings and request limits.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	MaxBatchSize   int
	RetryAfter     time.Duration
}

// ServerStorage holds the server database settings. An empty DSN selects the
// in-memory record repository.
type ServerStorage struct {
	DSN string
}

// ServerConfig is the record store server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  ServerHTTP
	Storage ServerStorage
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration. args are the command-line arguments without the
// program name.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps cfg to a [ServerConfig], filling defaults for unset
// fields.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			TokenSignKey:       cfg.App.TokenSignKey,
			TokenIssuer:        withDefault(cfg.App.TokenIssuer, defaultTokenIssuer),
			TokenDuration:      withDefault(cfg.App.TokenDuration, defaultTokenDuration),
			RestrictedAccounts: cfg.App.RestrictedAccounts,
			Version:            cfg.App.Version,
			LogLevel:           cfg.App.LogLevel,
		},
		Server: ServerHTTP{
			HTTPAddress:    withDefault(cfg.Server.HTTPAddress, defaultServerAddress),
			RequestTimeout: withDefault(cfg.Server.RequestTimeout, defaultRequestTimeout),
			MaxBatchSize:   withDefault(cfg.Server.MaxBatchSize, defaultMaxBatchSize),
			RetryAfter:     withDefault(cfg.Server.RetryAfter, defaultRetryAfter),
		},
		Storage: ServerStorage{
			DSN: cfg.Storage.DB.DSN,
		},
	}
}

func withDefault[T comparable](value, fallback T) T {
	var zero T
	if value == zero {
		return fallback
	}
	return value
}
