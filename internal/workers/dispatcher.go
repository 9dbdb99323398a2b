// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"golang.org/x/sync/semaphore"
)

// ErrDispatcherStopped is returned by blocking calls made after Stop.
var ErrDispatcherStopped = errors.New("dispatcher is stopped")

const defaultRemoteConcurrency = 4

// Dispatcher owns two execution contexts:
//
//   - a serial queue: tasks passed to Submit, SubmitAfter and SubmitAndWait
//     run one at a time, in submission order, on a single goroutine;
//   - a bounded remote executor: functions passed to Go run concurrently,
//     at most remoteConcurrency at a time.
//
// Submit never blocks the caller. Remote functions must not touch state owned
// by the serial queue; they hand their results back with Submit.
//
// Dispatcher implements [Worker]: Run starts the serial goroutine. Tasks
// submitted before Run are kept and executed once it starts.
type Dispatcher struct {
	name string
	sem  *semaphore.Weighted

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	queue   []func()
	timers  map[*time.Timer]struct{}
	pending int
	idle    chan struct{}
	stopped bool

	started bool
	wake    chan struct{}
	done    chan struct{}

	logger *logger.Logger
}

// NewDispatcher creates an idle dispatcher. remoteConcurrency <= 0 falls back
// to a default of 4 concurrent remote calls.
func NewDispatcher(name string, remoteConcurrency int, log *logger.Logger) *Dispatcher {
	if remoteConcurrency <= 0 {
		remoteConcurrency = defaultRemoteConcurrency
	}
	if log == nil {
		log = logger.Nop()
	}

	ctx, cancel := context.WithCancel(context.Background())

	idle := make(chan struct{})
	close(idle)

	return &Dispatcher{
		name:   name,
		sem:    semaphore.NewWeighted(int64(remoteConcurrency)),
		ctx:    ctx,
		cancel: cancel,
		timers: make(map[*time.Timer]struct{}),
		idle:   idle,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		logger: log,
	}
}

// Run starts the serial goroutine. Calling Run more than once has no effect.
func (d *Dispatcher) Run() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.stopped {
		return
	}
	d.started = true
	go d.loop()
	d.signal()
}

// Stop cancels pending timers and the context passed to remote functions,
// drops queued tasks and waits for the serial goroutine to exit. It must not
// be called from a task running on the serial queue.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	for t := range d.timers {
		t.Stop()
	}
	d.timers = nil
	d.queue = nil
	d.pending = 0
	d.closeIdleLocked()
	started := d.started
	d.mu.Unlock()

	d.cancel()

	if !started {
		close(d.done)
		return
	}
	<-d.done
}

// Context is cancelled when the dispatcher stops.
func (d *Dispatcher) Context() context.Context {
	return d.ctx
}

// Submit appends task to the serial queue.
func (d *Dispatcher) Submit(task func()) {
	if !d.enqueue(task) {
		return
	}
	d.signal()
}

// SubmitAfter appends task to the serial queue once delay has elapsed. The
// pending timer counts as outstanding work for WaitIdle.
func (d *Dispatcher) SubmitAfter(delay time.Duration, task func()) {
	if delay <= 0 {
		d.Submit(task)
		return
	}

	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.acquireLocked()

	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		d.mu.Lock()
		if d.timers != nil {
			delete(d.timers, t)
		}
		d.mu.Unlock()

		d.Submit(task)
		d.release()
	})
	d.timers[t] = struct{}{}
	d.mu.Unlock()
}

// SubmitAndWait runs task on the serial queue and blocks until it returns.
// It must not be called from a task running on the serial queue.
func (d *Dispatcher) SubmitAndWait(ctx context.Context, task func()) error {
	finished := make(chan struct{})
	if !d.enqueue(func() {
		defer close(finished)
		task()
	}) {
		return ErrDispatcherStopped
	}
	d.signal()

	select {
	case <-finished:
		return nil
	case <-d.done:
		return ErrDispatcherStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Go runs fn on the remote executor. fn receives the dispatcher context and
// is expected to hand its result back to the serial queue with Submit.
func (d *Dispatcher) Go(fn func(ctx context.Context)) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.acquireLocked()
	d.mu.Unlock()

	go func() {
		defer d.release()

		if err := d.sem.Acquire(d.ctx, 1); err != nil {
			return
		}
		defer d.sem.Release(1)

		defer d.recoverPanic("remote")
		fn(d.ctx)
	}()
}

// Await runs fn on the remote executor's capacity and blocks the caller until
// it returns. It is the only blocking wait allowed on the serial queue.
func (d *Dispatcher) Await(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := d.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer d.sem.Release(1)

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(d.ctx, cancel)
	defer stop()

	return fn(callCtx)
}

// WaitIdle blocks until no task is queued or running, no timer is pending and
// no remote function is in flight.
func (d *Dispatcher) WaitIdle(ctx context.Context) error {
	for {
		d.mu.Lock()
		if d.pending == 0 {
			d.mu.Unlock()
			return nil
		}
		idle := d.idle
		d.mu.Unlock()

		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (d *Dispatcher) loop() {
	defer close(d.done)

	for {
		select {
		case <-d.ctx.Done():
			return
		case <-d.wake:
		}

		for {
			task, ok := d.pop()
			if !ok {
				break
			}
			d.execute(task)
			d.release()
		}
	}
}

func (d *Dispatcher) execute(task func()) {
	defer d.recoverPanic("serial")
	task()
}

func (d *Dispatcher) recoverPanic(queue string) {
	if r := recover(); r != nil {
		d.logger.Error().
			Str("func", "Dispatcher.recoverPanic").
			Str("dispatcher", d.name).
			Str("queue", queue).
			Any("panic", r).
			Msg("task panicked")
	}
}

func (d *Dispatcher) enqueue(task func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return false
	}
	d.queue = append(d.queue, task)
	d.acquireLocked()
	return true
}

func (d *Dispatcher) pop() (func(), bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || len(d.queue) == 0 {
		return nil, false
	}
	task := d.queue[0]
	d.queue[0] = nil
	d.queue = d.queue[1:]
	return task, true
}

func (d *Dispatcher) signal() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

func (d *Dispatcher) acquireLocked() {
	if d.pending == 0 {
		d.idle = make(chan struct{})
	}
	d.pending++
}

func (d *Dispatcher) release() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || d.pending == 0 {
		return
	}
	d.pending--
	if d.pending == 0 {
		d.closeIdleLocked()
	}
}

func (d *Dispatcher) closeIdleLocked() {
	select {
	case <-d.idle:
	default:
		close(d.idle)
	}
}
