package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[E any](t *testing.T, ch <-chan E) E {
	t.Helper()

	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	panic("unreachable")
}

func requireClosed[E any](t *testing.T, ch <-chan E) {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel was not closed")
		}
	}
}

func TestEventBus_PublishNeverBlocksOnSlowReader(t *testing.T) {
	bus := newEventBus[int]()
	defer bus.close()

	ch, cancel := bus.subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 1000 {
			bus.publish(i)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on an idle subscriber")
	}

	for i := range 1000 {
		assert.Equal(t, i, receive(t, ch))
	}
}

func TestEventBus_FanOut(t *testing.T) {
	bus := newEventBus[string]()
	defer bus.close()

	a, cancelA := bus.subscribe()
	defer cancelA()
	b, cancelB := bus.subscribe()
	defer cancelB()

	bus.publish("x")

	assert.Equal(t, "x", receive(t, a))
	assert.Equal(t, "x", receive(t, b))
}

func TestEventBus_CancelClosesOnlyThatSubscriber(t *testing.T) {
	bus := newEventBus[int]()
	defer bus.close()

	a, cancelA := bus.subscribe()
	b, cancelB := bus.subscribe()
	defer cancelB()

	cancelA()
	cancelA()
	requireClosed(t, a)

	bus.publish(1)
	assert.Equal(t, 1, receive(t, b))
}

func TestEventBus_CloseEndsEverySubscription(t *testing.T) {
	bus := newEventBus[int]()

	a, cancelA := bus.subscribe()
	bus.close()
	requireClosed(t, a)
	cancelA()

	late, cancelLate := bus.subscribe()
	defer cancelLate()
	requireClosed(t, late)

	bus.publish(1)
}
