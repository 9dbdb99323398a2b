package store

import (
	"context"
)

type syncStateRepository struct {
	kv                     KeyValueStore
	tokenKey               string
	zoneCreatedKey         string
	subscriptionCreatedKey string
}

// NewSyncStateRepository binds a [SyncStateRepository] to zone.
func NewSyncStateRepository(kv KeyValueStore, zone string) SyncStateRepository {
	return &syncStateRepository{
		kv:                     kv,
		tokenKey:               zoneKey(changeTokenKeyPrefix, zone),
		zoneCreatedKey:         zoneKey(zoneCreatedKeyPrefix, zone),
		subscriptionCreatedKey: zoneKey(subscriptionCreatedKeyPrefix, zone),
	}
}

func (r *syncStateRepository) Token(ctx context.Context) ([]byte, error) {
	token, err := r.kv.GetBytes(ctx, r.tokenKey)
	if err != nil || len(token) == 0 {
		return nil, err
	}
	return token, nil
}

func (r *syncStateRepository) SetToken(ctx context.Context, token []byte) error {
	if len(token) == 0 {
		return r.kv.Delete(ctx, r.tokenKey)
	}
	return r.kv.SetBytes(ctx, r.tokenKey, token)
}

func (r *syncStateRepository) ZoneCreated(ctx context.Context) (bool, error) {
	return r.kv.GetBool(ctx, r.zoneCreatedKey)
}

func (r *syncStateRepository) SetZoneCreated(ctx context.Context, created bool) error {
	return r.kv.SetBool(ctx, r.zoneCreatedKey, created)
}

func (r *syncStateRepository) SubscriptionCreated(ctx context.Context) (bool, error) {
	return r.kv.GetBool(ctx, r.subscriptionCreatedKey)
}

func (r *syncStateRepository) SetSubscriptionCreated(ctx context.Context, created bool) error {
	return r.kv.SetBool(ctx, r.subscriptionCreatedKey, created)
}
