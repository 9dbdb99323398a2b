package service

import (
	"testing"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestNotificationHub_DeliversPerAccount(t *testing.T) {
	hub := NewNotificationHub(logger.Nop())
	defer hub.Close()

	mine, cancelMine := hub.Subscribe("a")
	defer cancelMine()
	theirs, cancelTheirs := hub.Subscribe("b")
	defer cancelTheirs()

	hub.Publish("a", models.Notification{ID: "1"})
	hub.Publish("b", models.Notification{ID: "2"})

	assert.Equal(t, "1", receive(t, mine).ID)
	assert.Equal(t, "2", receive(t, theirs).ID)
}

func TestNotificationHub_ReleasesIdleAccounts(t *testing.T) {
	hub := NewNotificationHub(logger.Nop())
	defer hub.Close()

	first, cancelFirst := hub.Subscribe("a")
	second, cancelSecond := hub.Subscribe("a")

	cancelFirst()
	cancelFirst()
	requireClosed(t, first)

	hub.Publish("a", models.Notification{ID: "still-open"})
	assert.Equal(t, "still-open", receive(t, second).ID)

	cancelSecond()
	requireClosed(t, second)

	hub.mu.Lock()
	assert.Empty(t, hub.buses)
	hub.mu.Unlock()

	hub.Publish("a", models.Notification{ID: "nobody-listens"})
}

func TestNotificationHub_Close(t *testing.T) {
	hub := NewNotificationHub(logger.Nop())

	stream, cancel := hub.Subscribe("a")
	hub.Close()
	requireClosed(t, stream)
	cancel()

	late, cancelLate := hub.Subscribe("a")
	defer cancelLate()
	requireClosed(t, late)
}
