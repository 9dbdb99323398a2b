package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-record-sync/internal/logger"
)

// notifications upgrades the request to a websocket and streams every
// notification published for the caller's account as a JSON text message.
// The server pings every pingInterval; the client's pongs and any message it
// sends are read and discarded.
func (h *Handler) notifications(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := accountID(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the request
		log.Err(err).Str("func", "Handler.notifications").Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	stream, cancel := h.services.NotificationService.Subscribe(id)
	defer cancel()

	log.Info().Str("func", "Handler.notifications").Msg("notification stream opened")

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(h.pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			log.Info().Str("func", "Handler.notifications").Msg("notification stream closed by client")
			return
		case <-r.Context().Done():
			return
		case notification, ok := <-stream:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(writeWait))
				return
			}
			payload, err := json.Marshal(notification)
			if err != nil {
				log.Err(err).Str("func", "Handler.notifications").Msg("failed to encode notification")
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err = conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Err(err).Str("func", "Handler.notifications").Msg("failed to push notification")
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Debug().Err(err).Str("func", "Handler.notifications").Msg("ping failed")
				return
			}
		}
	}
}
