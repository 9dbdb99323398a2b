package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.ServerApp{}, config.ServerHTTP{MaxBatchSize: 10}, logger.Nop())

	assert.Nil(t, svc)
	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ─────────────────────────────────────────────
// GetServerInfo
// ─────────────────────────────────────────────

func TestGetServerInfo(t *testing.T) {
	tests := []struct {
		name   string
		limits config.ServerHTTP
		want   models.ServerInfo
	}{
		{
			name:   "whole seconds",
			limits: config.ServerHTTP{MaxBatchSize: 400, RetryAfter: 2 * time.Second},
			want:   models.ServerInfo{Version: "1.0.0", MaxBatchSize: 400, RetryAfterSeconds: 2},
		},
		{
			name:   "retry after is rounded up",
			limits: config.ServerHTTP{MaxBatchSize: 5, RetryAfter: 1500 * time.Millisecond},
			want:   models.ServerInfo{Version: "1.0.0", MaxBatchSize: 5, RetryAfterSeconds: 2},
		},
		{
			name:   "no retry hint",
			limits: config.ServerHTTP{MaxBatchSize: 1},
			want:   models.ServerInfo{Version: "1.0.0", MaxBatchSize: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.ServerApp{Version: "1.0.0"}, tt.limits, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, tt.want, svc.GetServerInfo(context.Background()))
		})
	}
}

func TestGetServerInfo_IgnoresCancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.ServerApp{Version: "v1.2.3-beta+build.42"}, config.ServerHTTP{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetServerInfo(ctx).Version)
}
