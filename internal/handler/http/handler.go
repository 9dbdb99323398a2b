package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/service"
	"github.com/MKhiriev/go-record-sync/internal/utils"
)

const (
	defaultPingInterval = 30 * time.Second
	writeWait           = 10 * time.Second
)

type Handler struct {
	services *service.Services

	upgrader     websocket.Upgrader
	pingInterval time.Duration
	ids          *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// clients are native sync engines, not browsers
			CheckOrigin: func(*http.Request) bool { return true },
		},
		pingInterval: defaultPingInterval,
		ids:          utils.NewUUIDGenerator(),
		logger:       logger,
	}
}
