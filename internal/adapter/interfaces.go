// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the remote record
// store.
//
// The primary abstraction is [RecordStore], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRecordStore]) built on resty and a websocket
// [NotificationListener] that delivers push notifications.
//
// Every failure returned by a [RecordStore] method is a *[models.RemoteError].
// Error bodies sent by the server are decoded as is; transport failures and
// bare HTTP statuses are mapped onto the same error codes so the engine can
// classify them without knowing the protocol.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-record-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_store_mock.go -package=mock

// RecordStore defines transport-agnostic communication with the remote record
// store. All methods act on behalf of the account whose token the
// implementation carries.
type RecordStore interface {
	// CreateZone creates the zone, or returns it when it already exists.
	CreateZone(ctx context.Context, zone string) (models.Zone, error)

	// FetchZone returns the zone or a ZONE_NOT_FOUND error.
	FetchZone(ctx context.Context, zone string) (models.Zone, error)

	// CreateSubscription registers a push subscription on its zone.
	CreateSubscription(ctx context.Context, subscription models.Subscription) (models.Subscription, error)

	// FetchSubscription returns the subscription or an UNKNOWN_ITEM error.
	FetchSubscription(ctx context.Context, zone, id string) (models.Subscription, error)

	// ModifyRecords sends one save/delete batch. On PARTIAL_FAILURE the
	// returned response still lists every accepted item.
	ModifyRecords(ctx context.Context, req models.ModifyRequest) (models.ModifyResponse, error)

	// FetchChanges returns one page of changes after req.Token.
	FetchChanges(ctx context.Context, req models.ChangesRequest) (models.ChangesResponse, error)

	// AccountStatus reports whether the account may sync.
	AccountStatus(ctx context.Context) (models.AccountStatus, error)
}
