// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the source-independent invariants of the merged
// [StructuredConfig]. Each binary validates its own view on top of this.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.MaxBatchSize < 0 || cfg.Server.RequestTimeout < 0 || cfg.Server.RetryAfter < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Sync.PageSize < 0 || cfg.Sync.RemoteConcurrency < 0 || cfg.Sync.DefaultRetryDelay < 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.SyncInterval < 0 || cfg.Workers.ReconnectDelay < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxBatchSize < 1 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.Token == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.RecordType == "" || cfg.Sync.Zone == "" || cfg.Sync.PageSize < 1 || cfg.Sync.RemoteConcurrency < 1 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
