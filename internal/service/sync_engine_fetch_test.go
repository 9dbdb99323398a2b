package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-record-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func changedRecord(t *testing.T, f *engineFixture, id, title string) models.RemoteRecord {
	t.Helper()

	r, err := f.codec.Encode(bookmark(id, title))
	require.NoError(t, err)
	r.ChangeTag = "tag-" + id
	return r
}

func eventNames(events []models.ModelChange[models.Bookmark]) (updated, deleted []string) {
	for _, ev := range events {
		for _, b := range ev.Updated {
			updated = append(updated, b.RecordName())
		}
		deleted = append(deleted, ev.Deleted...)
	}
	return updated, deleted
}

// ── Fetch ────────────────────────────────────────────────────────────────────

func TestSyncEngine_Fetch_TokenContinuity(t *testing.T) {
	f := newEngineFixture(t)
	f.ready(t)
	require.NoError(t, f.storages.State.SetToken(context.Background(), []byte("t0")))

	gomock.InOrder(
		f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.ChangesRequest) (models.ChangesResponse, error) {
				assert.Equal(t, testZone, req.Zone)
				assert.Equal(t, []byte("t0"), req.Token)
				assert.Equal(t, 2, req.Limit)
				return models.ChangesResponse{
					Changed:    []models.RemoteRecord{changedRecord(t, f, "r1", "one")},
					Deleted:    []models.DeletedRecord{{Name: "r2", Type: testRecordType}},
					Token:      []byte("t1"),
					MoreComing: true,
				}, nil
			}),
		f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.ChangesRequest) (models.ChangesResponse, error) {
				assert.Equal(t, []byte("t1"), req.Token, "the next page starts at the checkpoint")
				return models.ChangesResponse{
					Changed: []models.RemoteRecord{changedRecord(t, f, "r3", "three")},
					Token:   []byte("t2"),
				}, nil
			}),
	)

	f.engine.ForceSync()
	f.waitIdle(t)

	assert.Equal(t, []byte("t2"), f.token(t))

	updated, deleted := eventNames(collectEvents(t, f.events, 3))
	assert.ElementsMatch(t, []string{"r1", "r3"}, updated)
	assert.Equal(t, []string{"r2"}, deleted)
}

func TestSyncEngine_Fetch_CheckpointSurvivesLaterFailure(t *testing.T) {
	f := newEngineFixture(t)
	f.ready(t)

	gomock.InOrder(
		f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
			Return(models.ChangesResponse{
				Changed:    []models.RemoteRecord{changedRecord(t, f, "r1", "one")},
				Token:      []byte("t1"),
				MoreComing: true,
			}, nil),
		f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
			Return(models.ChangesResponse{}, remoteErr(models.ErrorCodeNetworkFailure)),
	)

	f.engine.ForceSync()
	f.waitIdle(t)

	assert.Equal(t, []byte("t1"), f.token(t))

	updated, _ := eventNames(collectEvents(t, f.events, 1))
	assert.Equal(t, []string{"r1"}, updated)
}

func TestSyncEngine_Fetch_TokenExpiredRefetchesEverything(t *testing.T) {
	f := newEngineFixture(t)
	f.ready(t)
	require.NoError(t, f.storages.State.SetToken(context.Background(), []byte("old")))

	gomock.InOrder(
		f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.ChangesRequest) (models.ChangesResponse, error) {
				assert.Equal(t, []byte("old"), req.Token)
				return models.ChangesResponse{}, remoteErr(models.ErrorCodeChangeTokenExpired)
			}),
		f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.ChangesRequest) (models.ChangesResponse, error) {
				assert.Nil(t, req.Token, "an expired token is discarded")
				return models.ChangesResponse{
					Changed: []models.RemoteRecord{changedRecord(t, f, "r1", "one")},
					Token:   []byte("fresh"),
				}, nil
			}),
	)

	f.engine.ForceSync()
	f.waitIdle(t)

	assert.Equal(t, []byte("fresh"), f.token(t))
	collectEvents(t, f.events, 1)
}

func TestSyncEngine_Fetch_RetryableRefetchesWholeRun(t *testing.T) {
	f := newEngineFixture(t)
	f.ready(t)

	gomock.InOrder(
		f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
			Return(models.ChangesResponse{}, remoteErr(models.ErrorCodeRequestRateLimited)),
		f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.ChangesRequest) (models.ChangesResponse, error) {
				assert.Nil(t, req.Token)
				return models.ChangesResponse{Token: []byte("t1")}, nil
			}),
	)

	f.engine.ForceSync()
	f.waitIdle(t)

	assert.Equal(t, []byte("t1"), f.token(t))
}

func TestSyncEngine_Fetch_IgnoresOtherRecordTypes(t *testing.T) {
	f := newEngineFixture(t)
	f.ready(t)

	other := changedRecord(t, f, "n1", "note")
	other.Type = "Note"

	f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
		Return(models.ChangesResponse{
			Changed: []models.RemoteRecord{other, changedRecord(t, f, "r1", "one")},
			Deleted: []models.DeletedRecord{{Name: "n2", Type: "Note"}, {Name: "r2", Type: testRecordType}},
			Token:   []byte("t1"),
		}, nil)

	f.engine.ForceSync()
	f.waitIdle(t)

	updated, deleted := eventNames(collectEvents(t, f.events, 2))
	assert.Equal(t, []string{"r1"}, updated)
	assert.Equal(t, []string{"r2"}, deleted)
	assertNoEvent(t, f.events)
}

func TestSyncEngine_Fetch_SkipsUndecodableRecords(t *testing.T) {
	f := newEngineFixture(t)
	f.ready(t)

	broken := changedRecord(t, f, "bad", "x")
	broken.Fields["title"] = json.RawMessage(`42`)

	f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
		Return(models.ChangesResponse{
			Changed: []models.RemoteRecord{broken, changedRecord(t, f, "r1", "one")},
			Token:   []byte("t1"),
		}, nil)

	f.engine.ForceSync()
	f.waitIdle(t)

	updated, _ := eventNames(collectEvents(t, f.events, 1))
	assert.Equal(t, []string{"r1"}, updated)
	assert.Equal(t, []byte("t1"), f.token(t))
}

func TestSyncEngine_Fetch_CoalescesTriggers(t *testing.T) {
	f := newEngineFixture(t)
	f.ready(t)

	release := make(chan struct{})
	gomock.InOrder(
		f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ models.ChangesRequest) (models.ChangesResponse, error) {
				<-release
				return models.ChangesResponse{Token: []byte("t1")}, nil
			}),
		f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req models.ChangesRequest) (models.ChangesResponse, error) {
				assert.Equal(t, []byte("t1"), req.Token)
				return models.ChangesResponse{Token: []byte("t2")}, nil
			}),
	)

	notification := []byte(`{"id":"n","subscription_id":"Bookmark.subscription","reason":"records_changed"}`)
	require.True(t, f.engine.ProcessRemoteNotification(notification))

	// let the first run start before piling up more triggers
	ctx := context.Background()
	require.NoError(t, f.engine.dispatcher.SubmitAndWait(ctx, func() {}))
	for range 3 {
		f.engine.ProcessRemoteNotification(notification)
	}
	require.NoError(t, f.engine.dispatcher.SubmitAndWait(ctx, func() {}))

	close(release)
	f.waitIdle(t)

	assert.Equal(t, []byte("t2"), f.token(t))
}

func TestSyncEngine_Fetch_ZoneMissingWithFailedRecreateLeavesNoFollowUp(t *testing.T) {
	f := newEngineFixture(t)
	f.ready(t)

	release := make(chan struct{})
	f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.ChangesRequest) (models.ChangesResponse, error) {
			<-release
			return models.ChangesResponse{}, remoteErr(models.ErrorCodeZoneNotFound)
		})
	refused := f.remote.EXPECT().CreateZone(gomock.Any(), testZone).
		Return(models.Zone{}, remoteErr(models.ErrorCodeInvalidArguments))

	notification := []byte(`{"id":"n","subscription_id":"Bookmark.subscription","reason":"records_changed"}`)
	require.True(t, f.engine.ProcessRemoteNotification(notification))

	ctx := context.Background()
	require.NoError(t, f.engine.dispatcher.SubmitAndWait(ctx, func() {}))
	f.engine.ProcessRemoteNotification(notification)
	require.NoError(t, f.engine.dispatcher.SubmitAndWait(ctx, func() {}))

	close(release)
	f.waitIdle(t)
	assert.NotEqual(t, BootstrapReady, f.engine.BootstrapState())

	// the next trigger sets the zone up and runs exactly one fetch
	f.remote.EXPECT().CreateZone(gomock.Any(), testZone).Return(models.Zone{Name: testZone}, nil).After(refused)
	f.remote.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).Return(models.Subscription{}, nil)
	f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
		Return(models.ChangesResponse{Token: []byte("t1")}, nil).Times(1)

	require.True(t, f.engine.ProcessRemoteNotification(notification))
	f.waitIdle(t)

	assert.Equal(t, []byte("t1"), f.token(t))
	assert.Equal(t, BootstrapReady, f.engine.BootstrapState())
}

func TestSyncEngine_Fetch_ZoneDeletedNotificationRecreatesZone(t *testing.T) {
	f := newEngineFixture(t)
	f.ready(t)

	ctx := context.Background()
	require.NoError(t, f.storages.State.SetToken(ctx, []byte("old")))

	// first notification verifies the zone and fetches
	f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
		Return(models.ChangesResponse{Token: []byte("t1")}, nil)
	require.True(t, f.engine.ProcessRemoteNotification([]byte(`{"subscription_id":"Bookmark.subscription","reason":"records_changed"}`)))
	f.waitIdle(t)

	f.remote.EXPECT().CreateZone(gomock.Any(), testZone).Return(models.Zone{Name: testZone}, nil)
	f.remote.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).Return(models.Subscription{}, nil)
	f.remote.EXPECT().FetchChanges(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ChangesRequest) (models.ChangesResponse, error) {
			assert.Nil(t, req.Token)
			return models.ChangesResponse{Token: []byte("g2")}, nil
		})

	require.True(t, f.engine.ProcessRemoteNotification([]byte(`{"subscription_id":"Bookmark.subscription","reason":"zone_deleted"}`)))
	f.waitIdle(t)

	assert.Equal(t, []byte("g2"), f.token(t))
	assert.Equal(t, BootstrapReady, f.engine.BootstrapState())
}
