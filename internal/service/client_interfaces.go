package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-record-sync/models"
)

// ClientSyncService is the part of a [SyncEngine] driven by the client
// application: local mutations, sync triggers and remote notifications.
type ClientSyncService[T models.Record] interface {
	// Upload buffers records for saving. The latest call for an identity wins.
	Upload(records ...T)

	// Delete buffers the identities of records for deletion.
	Delete(records ...T)

	// ForceSync sends both buffers and then fetches remote changes.
	ForceSync()

	// ProcessRemoteNotification schedules a fetch when payload addresses the
	// engine's subscription. It reports whether the payload was handled.
	ProcessRemoteNotification(payload []byte) bool

	// Subscribe streams model changes until the returned func is called.
	Subscribe() (<-chan models.ModelChange[T], func())

	// AccountStatus returns the last known account availability.
	AccountStatus() models.AccountStatus

	// RefreshAccountStatus asks the remote store for the account status.
	RefreshAccountStatus()
}

// SyncTrigger is what the periodic sync job pokes on every tick.
type SyncTrigger interface {
	RefreshAccountStatus()
	ForceSync()
}

// ClientSyncJob defines the contract for a background worker that
// periodically refreshes the account status and forces a sync.
type ClientSyncJob interface {
	// Start launches the background goroutine. It ticks every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
