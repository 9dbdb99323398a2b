package service

import (
	"sync"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/models"
)

// NotificationHub fans notifications out to every open stream of an account.
// Streams are unbounded, so a slow client never blocks a write.
type NotificationHub struct {
	mu     sync.Mutex
	buses  map[string]*accountBus
	closed bool

	logger *logger.Logger
}

type accountBus struct {
	bus  *eventBus[models.Notification]
	refs int
}

func NewNotificationHub(logger *logger.Logger) *NotificationHub {
	return &NotificationHub{
		buses:  make(map[string]*accountBus),
		logger: logger,
	}
}

func (h *NotificationHub) Subscribe(accountID string) (<-chan models.Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		closed := make(chan models.Notification)
		close(closed)
		return closed, func() {}
	}

	b, ok := h.buses[accountID]
	if !ok {
		b = &accountBus{bus: newEventBus[models.Notification]()}
		h.buses[accountID] = b
	}
	b.refs++

	ch, cancel := b.bus.subscribe()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			cancel()
			h.release(accountID, b)
		})
	}
}

func (h *NotificationHub) Publish(accountID string, notification models.Notification) {
	h.mu.Lock()
	b, ok := h.buses[accountID]
	h.mu.Unlock()

	if !ok {
		return
	}

	h.logger.Debug().
		Str("func", "NotificationHub.Publish").
		Str("zone", notification.Zone).
		Str("subscription_id", notification.SubscriptionID).
		Str("reason", string(notification.Reason)).
		Msg("publishing notification")

	b.bus.publish(notification)
}

// Close ends every open stream.
func (h *NotificationHub) Close() {
	h.mu.Lock()
	buses := h.buses
	h.buses = make(map[string]*accountBus)
	h.closed = true
	h.mu.Unlock()

	for _, b := range buses {
		b.bus.close()
	}
}

func (h *NotificationHub) release(accountID string, b *accountBus) {
	h.mu.Lock()
	defer h.mu.Unlock()

	b.refs--
	if b.refs == 0 && h.buses[accountID] == b {
		delete(h.buses, accountID)
		b.bus.close()
	}
}
