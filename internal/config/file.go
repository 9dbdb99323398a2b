package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] in the layout accepted by
// JSON and YAML config files.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey       string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration      Duration `json:"token_duration" yaml:"token_duration"`
		RestrictedAccounts []string `json:"restricted_accounts" yaml:"restricted_accounts"`
		Version            string   `json:"version" yaml:"version"`
		LogLevel           string   `json:"log_level" yaml:"log_level"`
		LogFile            string   `json:"log_file" yaml:"log_file"`
		ImportFile         string   `json:"import_file" yaml:"import_file"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		MaxBatchSize   int      `json:"max_batch_size" yaml:"max_batch_size"`
		RetryAfter     Duration `json:"retry_after" yaml:"retry_after"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		Token          string   `json:"token" yaml:"token"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Sync struct {
		RecordType        string   `json:"record_type" yaml:"record_type"`
		Zone              string   `json:"zone" yaml:"zone"`
		PageSize          int      `json:"page_size" yaml:"page_size"`
		DefaultRetryDelay Duration `json:"default_retry_delay" yaml:"default_retry_delay"`
		RemoteConcurrency int      `json:"remote_concurrency" yaml:"remote_concurrency"`
	} `json:"sync,omitempty" yaml:"sync,omitempty"`

	Workers struct {
		SyncInterval   Duration `json:"sync_interval" yaml:"sync_interval"`
		ReconnectDelay Duration `json:"reconnect_delay" yaml:"reconnect_delay"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:       f.App.TokenSignKey,
			TokenIssuer:        f.App.TokenIssuer,
			TokenDuration:      time.Duration(f.App.TokenDuration),
			RestrictedAccounts: f.App.RestrictedAccounts,
			Version:            f.App.Version,
			LogLevel:           f.App.LogLevel,
			LogFile:            f.App.LogFile,
			ImportFile:         f.App.ImportFile,
		},
		Storage: Storage{
			DB: DB{DSN: f.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
			MaxBatchSize:   f.Server.MaxBatchSize,
			RetryAfter:     time.Duration(f.Server.RetryAfter),
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
			Token:          f.Adapter.Token,
		},
		Sync: Sync{
			RecordType:        f.Sync.RecordType,
			Zone:              f.Sync.Zone,
			PageSize:          f.Sync.PageSize,
			DefaultRetryDelay: time.Duration(f.Sync.DefaultRetryDelay),
			RemoteConcurrency: f.Sync.RemoteConcurrency,
		},
		Workers: Workers{
			SyncInterval:   time.Duration(f.Workers.SyncInterval),
			ReconnectDelay: time.Duration(f.Workers.ReconnectDelay),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h", "30s" in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalYAML accepts a duration string or an integer nanosecond count.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}

	var ns int64
	if err := node.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(ns))
	return nil
}
