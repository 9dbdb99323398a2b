package models

// ServerInfo describes a running record store: its build version and the
// limits a client should respect when batching modifications.
type ServerInfo struct {
	Version           string `json:"version"`
	MaxBatchSize      int    `json:"max_batch_size"`
	RetryAfterSeconds int    `json:"retry_after_seconds,omitempty"`
}
