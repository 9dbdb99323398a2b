package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/service"
)

func TestNewHandlers_WithAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.ServerHTTP{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.ServerHTTP{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_NoServices(t *testing.T) {
	h, err := NewHandlers(nil, config.ServerHTTP{HTTPAddress: ":8080"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServices)
	assert.Nil(t, h)
}
