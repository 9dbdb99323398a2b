package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncStateRepository_Token(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	repo := NewSyncStateRepository(kv, "Bookmark")

	token, err := repo.Token(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)

	require.NoError(t, repo.SetToken(ctx, []byte("t1")))
	token, err = repo.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("t1"), token)

	raw, err := kv.GetBytes(ctx, "TOKEN-Bookmark")
	require.NoError(t, err)
	assert.Equal(t, []byte("t1"), raw)

	require.NoError(t, repo.SetToken(ctx, nil))
	token, err = repo.Token(ctx)
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestSyncStateRepository_Flags(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	repo := NewSyncStateRepository(kv, "Bookmark")

	zoneCreated, err := repo.ZoneCreated(ctx)
	require.NoError(t, err)
	assert.False(t, zoneCreated)

	require.NoError(t, repo.SetZoneCreated(ctx, true))
	require.NoError(t, repo.SetSubscriptionCreated(ctx, true))

	zoneCreated, err = repo.ZoneCreated(ctx)
	require.NoError(t, err)
	assert.True(t, zoneCreated)

	subscriptionCreated, err := repo.SubscriptionCreated(ctx)
	require.NoError(t, err)
	assert.True(t, subscriptionCreated)

	for _, key := range []string{"CREATEDZONE-Bookmark", "CREATEDSUBDB-Bookmark"} {
		flag, err := kv.GetBool(ctx, key)
		require.NoError(t, err)
		assert.True(t, flag, key)
	}

	require.NoError(t, repo.SetSubscriptionCreated(ctx, false))
	subscriptionCreated, err = repo.SubscriptionCreated(ctx)
	require.NoError(t, err)
	assert.False(t, subscriptionCreated)
}
