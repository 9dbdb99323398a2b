package service

import (
	"sync"
)

// eventBus fans events out to subscribers. Every subscriber has its own
// unbounded queue, so a slow reader never blocks the publisher or the other
// readers.
type eventBus[E any] struct {
	mu     sync.Mutex
	subs   map[uint64]*subscriber[E]
	next   uint64
	closed bool
}

type subscriber[E any] struct {
	out  chan E
	wake chan struct{}
	done chan struct{}
	once sync.Once

	mu    sync.Mutex
	queue []E
}

func newEventBus[E any]() *eventBus[E] {
	return &eventBus[E]{subs: make(map[uint64]*subscriber[E])}
}

// subscribe returns the event channel and a function that cancels the
// subscription. The channel is closed after cancellation or bus shutdown.
func (b *eventBus[E]) subscribe() (<-chan E, func()) {
	s := &subscriber[E]{
		out:  make(chan E),
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(s.out)
		return s.out, func() {}
	}
	id := b.next
	b.next++
	b.subs[id] = s
	b.mu.Unlock()

	go s.deliver()

	return s.out, func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
		s.stop()
	}
}

func (b *eventBus[E]) publish(event E) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range b.subs {
		s.push(event)
	}
}

func (b *eventBus[E]) close() {
	b.mu.Lock()
	subs := b.subs
	b.subs = make(map[uint64]*subscriber[E])
	b.closed = true
	b.mu.Unlock()

	for _, s := range subs {
		s.stop()
	}
}

func (s *subscriber[E]) push(event E) {
	s.mu.Lock()
	s.queue = append(s.queue, event)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber[E]) pop() (E, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero E
	if len(s.queue) == 0 {
		return zero, false
	}
	event := s.queue[0]
	s.queue[0] = zero
	s.queue = s.queue[1:]
	return event, true
}

func (s *subscriber[E]) stop() {
	s.once.Do(func() { close(s.done) })
}

func (s *subscriber[E]) deliver() {
	defer close(s.out)

	for {
		event, ok := s.pop()
		if !ok {
			select {
			case <-s.wake:
				continue
			case <-s.done:
				return
			}
		}

		select {
		case s.out <- event:
		case <-s.done:
			return
		}
	}
}
