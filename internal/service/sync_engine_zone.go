package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-record-sync/models"
)

// BootstrapState tracks the zone and subscription setup of the running
// process. Nothing but bootstrap traffic is sent before BootstrapReady.
type BootstrapState int

const (
	BootstrapUnconfigured BootstrapState = iota
	BootstrapZonePending
	BootstrapZoneReady
	BootstrapSubscriptionPending
	BootstrapReady
)

// String implements fmt.Stringer.
func (s BootstrapState) String() string {
	switch s {
	case BootstrapUnconfigured:
		return "unconfigured"
	case BootstrapZonePending:
		return "zone_pending"
	case BootstrapZoneReady:
		return "zone_ready"
	case BootstrapSubscriptionPending:
		return "subscription_pending"
	case BootstrapReady:
		return "ready"
	default:
		return "unknown"
	}
}

func (e *SyncEngine[T]) setBootstrapState(state BootstrapState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bootstrap = state
}

// ensureBootstrapped creates or verifies the zone and then the subscription.
// It runs on the serial queue and waits for each remote call, so dependent
// traffic is only issued once it returns true.
func (e *SyncEngine[T]) ensureBootstrapped() bool {
	if e.zoneVerified && e.subscriptionVerified {
		return true
	}
	if !e.ensureZone() {
		return false
	}
	return e.ensureSubscription()
}

func (e *SyncEngine[T]) ensureZone() bool {
	if e.zoneVerified {
		return true
	}

	created, err := e.state.ZoneCreated(e.ctx)
	if err != nil {
		e.logger.Err(err).Str("func", "SyncEngine.ensureZone").Msg("failed to read zone flag")
		return false
	}

	if created {
		err = e.dispatcher.Await(e.ctx, func(ctx context.Context) error {
			_, err := e.remote.FetchZone(ctx, e.zone)
			return err
		})
		if err == nil {
			e.zoneVerified = true
			e.setBootstrapState(BootstrapZoneReady)
			return true
		}
		if e.stopping() {
			return false
		}

		c := ClassifyError(err, e.defaultRetryDelay)
		switch c.Kind {
		case KindZoneMissing, KindUnknownItem, KindFatal:
			e.logger.Warn().Err(err).
				Str("func", "SyncEngine.ensureZone").
				Msg("zone is gone remotely, recreating it")
			if err = e.state.SetZoneCreated(e.ctx, false); err != nil {
				e.logger.Err(err).Str("func", "SyncEngine.ensureZone").Msg("failed to clear zone flag")
				return false
			}
		default:
			e.bootstrapFailed("fetch zone", err, c)
			return false
		}
	}

	e.setBootstrapState(BootstrapZonePending)

	err = e.dispatcher.Await(e.ctx, func(ctx context.Context) error {
		_, err := e.remote.CreateZone(ctx, e.zone)
		return err
	})
	if err != nil {
		e.bootstrapFailed("create zone", err, ClassifyError(err, e.defaultRetryDelay))
		return false
	}

	// a new zone has no history for the old token and no subscription
	if err = e.state.SetToken(e.ctx, nil); err != nil {
		e.logger.Err(err).Str("func", "SyncEngine.ensureZone").Msg("failed to reset change token")
		return false
	}
	if err = e.state.SetSubscriptionCreated(e.ctx, false); err != nil {
		e.logger.Err(err).Str("func", "SyncEngine.ensureZone").Msg("failed to clear subscription flag")
		return false
	}
	if err = e.state.SetZoneCreated(e.ctx, true); err != nil {
		e.logger.Err(err).Str("func", "SyncEngine.ensureZone").Msg("failed to store zone flag")
		return false
	}

	e.logger.Info().Str("func", "SyncEngine.ensureZone").Msg("zone created")

	e.zoneVerified = true
	e.subscriptionVerified = false
	e.setBootstrapState(BootstrapZoneReady)
	return true
}

func (e *SyncEngine[T]) ensureSubscription() bool {
	if e.subscriptionVerified {
		return true
	}

	created, err := e.state.SubscriptionCreated(e.ctx)
	if err != nil {
		e.logger.Err(err).Str("func", "SyncEngine.ensureSubscription").Msg("failed to read subscription flag")
		return false
	}

	e.setBootstrapState(BootstrapSubscriptionPending)

	if created {
		err = e.dispatcher.Await(e.ctx, func(ctx context.Context) error {
			_, err := e.remote.FetchSubscription(ctx, e.zone, e.subscriptionID)
			return err
		})
		if err == nil {
			e.subscriptionVerified = true
			e.setBootstrapState(BootstrapReady)
			return true
		}
		if e.stopping() {
			return false
		}

		c := ClassifyError(err, e.defaultRetryDelay)
		switch c.Kind {
		case KindUnknownItem, KindFatal:
			e.logger.Warn().Err(err).
				Str("func", "SyncEngine.ensureSubscription").
				Msg("subscription is gone remotely, recreating it")
			if err = e.state.SetSubscriptionCreated(e.ctx, false); err != nil {
				e.logger.Err(err).Str("func", "SyncEngine.ensureSubscription").Msg("failed to clear subscription flag")
				return false
			}
		default:
			e.bootstrapFailed("fetch subscription", err, c)
			return false
		}
	}

	err = e.dispatcher.Await(e.ctx, func(ctx context.Context) error {
		_, err := e.remote.CreateSubscription(ctx, models.Subscription{
			ID:         e.subscriptionID,
			Zone:       e.zone,
			RecordType: e.recordType,
		})
		return err
	})
	if err != nil {
		e.bootstrapFailed("create subscription", err, ClassifyError(err, e.defaultRetryDelay))
		return false
	}

	if err = e.state.SetSubscriptionCreated(e.ctx, true); err != nil {
		e.logger.Err(err).Str("func", "SyncEngine.ensureSubscription").Msg("failed to store subscription flag")
		return false
	}

	e.logger.Info().Str("func", "SyncEngine.ensureSubscription").Msg("subscription created")

	e.subscriptionVerified = true
	e.setBootstrapState(BootstrapReady)
	return true
}

func (e *SyncEngine[T]) stopping() bool {
	return e.ctx.Err() != nil
}

// invalidateZone forgets the zone so the next bootstrap creates it again.
func (e *SyncEngine[T]) invalidateZone() {
	e.zoneVerified = false
	e.subscriptionVerified = false
	e.setBootstrapState(BootstrapUnconfigured)

	if err := e.state.SetZoneCreated(e.ctx, false); err != nil {
		e.logger.Err(err).Str("func", "SyncEngine.invalidateZone").Msg("failed to clear zone flag")
	}
}

// bootstrapFailed ends the current attempt. Retryable failures schedule one
// more attempt; the others wait for the next trigger.
func (e *SyncEngine[T]) bootstrapFailed(op string, err error, c Classification) {
	switch c.Kind {
	case KindZoneMissing:
		e.invalidateZone()
		e.scheduleBootstrap(op, err, e.defaultRetryDelay)
	case KindRetryableWithDelay:
		e.scheduleBootstrap(op, err, c.RetryAfter)
	default:
		e.logger.Err(err).
			Str("func", "SyncEngine.bootstrapFailed").
			Str("op", op).
			Str("kind", c.Kind.String()).
			Msg("bootstrap failed, waiting for the next sync")
	}
}

func (e *SyncEngine[T]) scheduleBootstrap(op string, err error, delay time.Duration) {
	e.logger.Warn().Err(err).
		Str("func", "SyncEngine.scheduleBootstrap").
		Str("op", op).
		Dur("retry_after", delay).
		Msg("bootstrap failed, retrying")

	if e.bootstrapRetryPending {
		return
	}
	e.bootstrapRetryPending = true

	e.dispatcher.SubmitAfter(delay, func() {
		e.bootstrapRetryPending = false
		e.setupCloudEnvironment()
	})
}
