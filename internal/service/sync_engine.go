// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/MKhiriev/go-record-sync/internal/adapter"
	"github.com/MKhiriev/go-record-sync/internal/codec"
	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/internal/workers"
	"github.com/MKhiriev/go-record-sync/models"
)

const (
	defaultPageSize   = 200
	defaultRetryDelay = 5 * time.Second
)

// SyncEngineOption customizes a [SyncEngine].
type SyncEngineOption[T models.Record] func(*SyncEngine[T])

// WithConflictResolver replaces [LatestModifiedResolver].
func WithConflictResolver[T models.Record](resolver ConflictResolver[T]) SyncEngineOption[T] {
	return func(e *SyncEngine[T]) {
		if resolver != nil {
			e.resolver = resolver
		}
	}
}

// WithInitialRecords seeds the upload buffer on Run with the records that
// were never synced.
func WithInitialRecords[T models.Record](records []T) SyncEngineOption[T] {
	return func(e *SyncEngine[T]) {
		e.initial = append(e.initial, records...)
	}
}

// SyncEngine keeps one zone of records of type T in sync with a remote
// record store.
//
// Upload, Delete, ForceSync and ProcessRemoteNotification only enqueue work
// and return at once. Every decision is taken on the engine's serial queue;
// remote calls run on a bounded executor and hand their results back to that
// queue. Outcomes are observable through Subscribe and the logs.
type SyncEngine[T models.Record] struct {
	zone              string
	recordType        string
	subscriptionID    string
	pageSize          int
	defaultRetryDelay time.Duration

	remote   adapter.RecordStore
	codec    codec.Codec[T]
	state    store.SyncStateRepository
	resolver ConflictResolver[T]
	initial  []T

	uploads *uploadContext[T]
	deletes *deleteContext[T]

	dispatcher *workers.Dispatcher
	ctx        context.Context
	events     *eventBus[models.ModelChange[T]]
	statuses   *eventBus[models.AccountStatus]

	// owned by the serial queue
	zoneVerified          bool
	subscriptionVerified  bool
	bootstrapRetryPending bool
	fetchInFlight         bool
	fetchAgain            bool
	flights               map[string]*inFlight

	mu        sync.RWMutex
	bootstrap BootstrapState
	account   models.AccountStatus

	logger *logger.Logger
}

// NewSyncEngine creates an idle engine for cfg.Zone. Call Run to start it.
func NewSyncEngine[T models.Record](
	cfg config.ClientSync,
	remote adapter.RecordStore,
	storages store.SyncStorages,
	recordCodec codec.Codec[T],
	log *logger.Logger,
	opts ...SyncEngineOption[T],
) *SyncEngine[T] {
	if log == nil {
		log = logger.Nop()
	}

	zone := cfg.Zone
	if zone == "" {
		zone = cfg.RecordType
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	retryDelay := cfg.DefaultRetryDelay
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}

	engineLog := log.WithStr("zone", zone)
	dispatcher := workers.NewDispatcher("sync-"+zone, cfg.RemoteConcurrency, engineLog)

	e := &SyncEngine[T]{
		zone:              zone,
		recordType:        cfg.RecordType,
		subscriptionID:    SubscriptionID(zone),
		pageSize:          pageSize,
		defaultRetryDelay: retryDelay,
		remote:            remote,
		codec:             recordCodec,
		state:             storages.State,
		resolver:          LatestModifiedResolver[T],
		dispatcher:        dispatcher,
		ctx:               engineLog.WithContext(dispatcher.Context()),
		events:            newEventBus[models.ModelChange[T]](),
		statuses:          newEventBus[models.AccountStatus](),
		account:           models.AccountStatusUnknown,
		flights:           make(map[string]*inFlight),
		logger:            engineLog,
	}

	e.uploads = newUploadContext(storages.Uploads, recordCodec, e.emit, engineLog)
	e.deletes = newDeleteContext(storages.Deletes, e.emit, engineLog)

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// SubscriptionID is the id of the push subscription an engine registers for
// zone.
func SubscriptionID(zone string) string {
	return zone + ".subscription"
}

// Run implements [workers.Worker]. It starts the serial queue, seeds the
// initial records, refreshes the account status and sets up the zone before
// a first full sync.
func (e *SyncEngine[T]) Run() {
	e.dispatcher.Run()

	e.dispatcher.Submit(e.seedInitialRecords)
	e.dispatcher.Submit(e.setupCloudEnvironment)
	e.RefreshAccountStatus()
}

// Stop implements [workers.Stopper]. Pending retries are dropped; buffered
// mutations stay persisted for the next run.
func (e *SyncEngine[T]) Stop() {
	e.dispatcher.Stop()
	e.events.close()
	e.statuses.close()
}

// Zone returns the name of the synchronized zone.
func (e *SyncEngine[T]) Zone() string {
	return e.zone
}

// Upload buffers records for saving and starts sending the upload buffer.
// The latest call for an identity wins.
func (e *SyncEngine[T]) Upload(records ...T) {
	if len(records) == 0 {
		return
	}

	e.dispatcher.Submit(func() {
		if err := e.uploads.buffer(e.ctx, records); err != nil {
			e.logger.Err(err).Str("func", "SyncEngine.Upload").Msg("failed to buffer records for upload")
			return
		}
		e.uploadPending()
	})
}

// Delete buffers the identities of records for deletion, dropping any of
// them still waiting to be uploaded, and starts sending the delete buffer.
func (e *SyncEngine[T]) Delete(records ...T) {
	if len(records) == 0 {
		return
	}

	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.RecordName())
	}

	e.dispatcher.Submit(func() {
		if err := e.uploads.removeFromBuffer(e.ctx, names); err != nil {
			e.logger.Err(err).Str("func", "SyncEngine.Delete").Msg("failed to purge pending uploads")
			return
		}
		if err := e.deletes.buffer(e.ctx, names); err != nil {
			e.logger.Err(err).Str("func", "SyncEngine.Delete").Msg("failed to buffer records for delete")
			return
		}
		e.deletePending()
	})
}

// ForceSync sends the upload buffer, then the delete buffer, then fetches
// remote changes.
func (e *SyncEngine[T]) ForceSync() {
	e.dispatcher.Submit(e.setupCloudEnvironment)
}

// ProcessRemoteNotification schedules a fetch when payload is a notification
// for this engine's subscription. It reports whether the payload was handled.
func (e *SyncEngine[T]) ProcessRemoteNotification(payload []byte) bool {
	var notification models.Notification
	if err := json.Unmarshal(payload, &notification); err != nil {
		e.logger.Debug().Err(err).
			Str("func", "SyncEngine.ProcessRemoteNotification").
			Msg("payload is not a notification")
		return false
	}
	if notification.SubscriptionID != e.subscriptionID {
		return false
	}

	e.logger.Debug().
		Str("func", "SyncEngine.ProcessRemoteNotification").
		Str("notification_id", notification.ID).
		Str("reason", string(notification.Reason)).
		Msg("remote notification received")

	if notification.Reason == models.NotificationReasonZoneDeleted {
		e.dispatcher.Submit(func() {
			e.invalidateZone()
			e.setupCloudEnvironment()
		})
		return true
	}

	e.dispatcher.Submit(e.fetchRemoteChanges)
	return true
}

// Subscribe returns a stream of model changes and a function that ends the
// subscription. Events are queued per subscriber without bound.
func (e *SyncEngine[T]) Subscribe() (<-chan models.ModelChange[T], func()) {
	return e.events.subscribe()
}

// BootstrapState returns how far the zone setup got in this process.
func (e *SyncEngine[T]) BootstrapState() BootstrapState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.bootstrap
}

// WaitIdle blocks until no work is queued, running, scheduled or in flight.
func (e *SyncEngine[T]) WaitIdle(ctx context.Context) error {
	return e.dispatcher.WaitIdle(ctx)
}

func (e *SyncEngine[T]) seedInitialRecords() {
	if len(e.initial) == 0 {
		return
	}

	unsynced := make([]T, 0, len(e.initial))
	for _, record := range e.initial {
		if len(record.SystemFields()) == 0 {
			unsynced = append(unsynced, record)
		}
	}
	e.initial = nil

	if len(unsynced) == 0 {
		return
	}
	if err := e.uploads.buffer(e.ctx, unsynced); err != nil {
		e.logger.Err(err).Str("func", "SyncEngine.seedInitialRecords").Msg("failed to buffer initial records")
		return
	}

	e.logger.Info().
		Str("func", "SyncEngine.seedInitialRecords").
		Int("count", len(unsynced)).
		Msg("initial records buffered for upload")
}

// setupCloudEnvironment bootstraps the zone and drains both buffers before
// fetching remote changes.
func (e *SyncEngine[T]) setupCloudEnvironment() {
	if !e.ensureBootstrapped() {
		return
	}

	e.uploadPending()
	e.deletePending()
	e.fetchRemoteChanges()
}

func (e *SyncEngine[T]) uploadPending() {
	save, err := e.uploads.recordsToSave(e.ctx)
	if err != nil {
		e.logger.Err(err).Str("func", "SyncEngine.uploadPending").Msg("failed to load upload buffer")
		return
	}
	save, _ = e.inFlightOf(e.uploads).pending(save, nil)
	e.modifyRecords(save, nil, e.uploads)
}

func (e *SyncEngine[T]) deletePending() {
	names, err := e.deletes.recordIDsToDelete(e.ctx)
	if err != nil {
		e.logger.Err(err).Str("func", "SyncEngine.deletePending").Msg("failed to load delete buffer")
		return
	}
	_, names = e.inFlightOf(e.deletes).pending(nil, names)
	e.modifyRecords(nil, names, e.deletes)
}

func (e *SyncEngine[T]) emit(change models.ModelChange[T]) {
	e.logger.Debug().
		Str("func", "SyncEngine.emit").
		Str("kind", change.Kind.String()).
		Int("updated", len(change.Updated)).
		Int("deleted", len(change.Deleted)).
		Msg("model change")

	e.events.publish(change)
}
