package service

import (
	"context"

	"github.com/MKhiriev/go-record-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordStoreService is the record store server's business layer. Every
// method acts on behalf of accountID and reports failures as
// *models.RemoteError so the transport can forward them unchanged.
type RecordStoreService interface {
	CreateZone(ctx context.Context, accountID string, zone models.Zone) (models.Zone, error)
	FetchZone(ctx context.Context, accountID, zone string) (models.Zone, error)
	DeleteZone(ctx context.Context, accountID, zone string) error

	CreateSubscription(ctx context.Context, accountID string, subscription models.Subscription) (models.Subscription, error)
	FetchSubscription(ctx context.Context, accountID, zone, id string) (models.Subscription, error)

	// ModifyRecords applies a batch record by record. When some records fail
	// the response lists every accepted item and the error is a
	// PARTIAL_FAILURE carrying the per-record errors.
	ModifyRecords(ctx context.Context, accountID string, req models.ModifyRequest) (models.ModifyResponse, error)

	// FetchChanges returns the changes after req.Token, oldest first.
	FetchChanges(ctx context.Context, accountID string, req models.ChangesRequest) (models.ChangesResponse, error)
}

// NotificationService delivers push notifications to the connected clients
// of an account.
type NotificationService interface {
	// Subscribe returns the account's notification stream and a function
	// that ends the subscription.
	Subscribe(accountID string) (<-chan models.Notification, func())
	Publish(accountID string, notification models.Notification)
	Close()
}

type AuthService interface {
	CreateToken(ctx context.Context, accountID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// AccountStatus reports whether accountID may sync. An empty id means
	// the caller presented no token.
	AccountStatus(ctx context.Context, accountID string) models.AccountStatus
}

// AppInfoService describes the running server to clients.
type AppInfoService interface {
	GetServerInfo(ctx context.Context) models.ServerInfo
}
