package store

import (
	"context"

	"github.com/MKhiriev/go-record-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the client's durable local storage. A missing key reads as
// nil bytes or false.
type KeyValueStore interface {
	GetBytes(ctx context.Context, key string) ([]byte, error)
	SetBytes(ctx context.Context, key string, value []byte) error
	GetBool(ctx context.Context, key string) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// UploadBufferRepository persists the records waiting to be saved remotely.
type UploadBufferRepository interface {
	Load(ctx context.Context) (models.UploadBuffer, error)
	Save(ctx context.Context, buffer models.UploadBuffer) error
}

// DeleteBufferRepository persists the identities waiting to be deleted
// remotely.
type DeleteBufferRepository interface {
	Load(ctx context.Context) (models.DeleteBuffer, error)
	Save(ctx context.Context, buffer models.DeleteBuffer) error
}

// SyncStateRepository persists the zone bootstrap flags and the change token.
type SyncStateRepository interface {
	Token(ctx context.Context) ([]byte, error)
	// SetToken stores token; a nil token removes it.
	SetToken(ctx context.Context, token []byte) error
	ZoneCreated(ctx context.Context) (bool, error)
	SetZoneCreated(ctx context.Context, created bool) error
	SubscriptionCreated(ctx context.Context) (bool, error)
	SetSubscriptionCreated(ctx context.Context, created bool) error
}

// RecordRepository is the record store server's persistence layer. Every
// method is scoped to one account.
type RecordRepository interface {
	// CreateZone creates the zone or returns the live one. Recreating a
	// deleted zone bumps its generation.
	CreateZone(ctx context.Context, accountID, zone string) (models.Zone, error)
	GetZone(ctx context.Context, accountID, zone string) (models.Zone, error)
	// DeleteZone drops the zone's records and subscriptions.
	DeleteZone(ctx context.Context, accountID, zone string) error

	SaveSubscription(ctx context.Context, accountID string, subscription models.Subscription) error
	GetSubscription(ctx context.Context, accountID, zone, id string) (models.Subscription, error)
	ListSubscriptions(ctx context.Context, accountID, zone string) ([]models.Subscription, error)

	// GetRecords returns the live records among names, keyed by name.
	GetRecords(ctx context.Context, accountID, zone string, names []string) (map[string]models.RemoteRecord, error)
	// SaveRecords upserts records and appends each write to the change log.
	SaveRecords(ctx context.Context, accountID, zone string, records []models.RemoteRecord) error
	// DeleteRecords turns the named records into tombstones.
	DeleteRecords(ctx context.Context, accountID, zone string, names []string) error
	// GetChanges returns up to limit change log entries after afterSeq in
	// ascending order.
	GetChanges(ctx context.Context, accountID, zone string, afterSeq int64, limit int) ([]models.RecordChange, error)
}
