package service

import (
	"context"

	"github.com/MKhiriev/go-record-sync/models"
)

// AccountStatus returns the last known availability of the remote account.
func (e *SyncEngine[T]) AccountStatus() models.AccountStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.account
}

// SubscribeAccountStatus streams every account status change.
func (e *SyncEngine[T]) SubscribeAccountStatus() (<-chan models.AccountStatus, func()) {
	return e.statuses.subscribe()
}

// RefreshAccountStatus asks the store for the account status. Becoming
// available after any other known status sets the zone up and forces a sync.
func (e *SyncEngine[T]) RefreshAccountStatus() {
	e.dispatcher.Go(func(ctx context.Context) {
		status, err := e.remote.AccountStatus(ctx)
		e.dispatcher.Submit(func() {
			e.applyAccountStatus(status, err)
		})
	})
}

func (e *SyncEngine[T]) applyAccountStatus(status models.AccountStatus, err error) {
	if err != nil {
		e.logger.Warn().Err(err).
			Str("func", "SyncEngine.applyAccountStatus").
			Msg("could not determine account status")
		status = models.AccountStatusCouldNotDetermine
	}

	e.mu.Lock()
	previous := e.account
	e.account = status
	e.mu.Unlock()

	if previous == status {
		return
	}

	e.logger.Info().
		Str("func", "SyncEngine.applyAccountStatus").
		Str("previous", previous.String()).
		Str("status", status.String()).
		Msg("account status changed")

	e.statuses.publish(status)

	if status == models.AccountStatusAvailable && previous != models.AccountStatusUnknown {
		e.setupCloudEnvironment()
	}
}
