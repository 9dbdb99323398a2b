package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-record-sync/internal/codec"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/mock"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type emitted []models.ModelChange[models.Bookmark]

func (e *emitted) emit(change models.ModelChange[models.Bookmark]) {
	*e = append(*e, change)
}

func newTestUploadContext(t *testing.T) (*uploadContext[models.Bookmark], store.UploadBufferRepository, *emitted) {
	t.Helper()

	repo := store.NewUploadBufferRepository(store.NewMemoryKeyValueStore(), testZone)
	events := &emitted{}
	c := newUploadContext(repo, codec.Codec[models.Bookmark](codec.NewJSONCodec[models.Bookmark](testZone, testRecordType)), events.emit, logger.Nop())
	return c, repo, events
}

// ── upload context ───────────────────────────────────────────────────────────

func TestUploadContext_BufferSkipsUnencodableRecords(t *testing.T) {
	c, repo, _ := newTestUploadContext(t)
	ctx := context.Background()

	require.NoError(t, c.buffer(ctx, []models.Bookmark{bookmark("r1", "ok"), {Title: "no id"}}))

	buf, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, buf, 1)
	assert.Contains(t, buf, "r1")
}

func TestUploadContext_AcknowledgeRemovesUnchangedEntries(t *testing.T) {
	c, repo, events := newTestUploadContext(t)
	ctx := context.Background()

	require.NoError(t, c.buffer(ctx, []models.Bookmark{bookmark("r1", "v1"), bookmark("r2", "v1")}))
	sent, err := c.recordsToSave(ctx)
	require.NoError(t, err)

	// r2 is edited while the batch is in flight
	require.NoError(t, c.buffer(ctx, []models.Bookmark{bookmark("r2", "v2")}))

	c.modelChangeForUpdatedRecords(ctx, accept(models.ModifyRequest{Save: sent}).Saved, nil)

	buf, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, buf, 1)
	assert.Equal(t, "tag-r2", buf["r2"].ChangeTag, "the newer edit is rebased onto the accepted version")
	assert.JSONEq(t, `"v2"`, string(buf["r2"].Fields["title"]))

	require.Len(t, *events, 1)
	assert.Len(t, (*events)[0].Updated, 2)
}

func TestUploadContext_ResolvedReplacesClientVersion(t *testing.T) {
	c, repo, _ := newTestUploadContext(t)
	ctx := context.Background()

	require.NoError(t, c.buffer(ctx, []models.Bookmark{bookmark("r1", "client")}))
	sent, err := c.recordsToSave(ctx)
	require.NoError(t, err)

	resolved := sent[0].Clone()
	resolved.ChangeTag = "server-tag"
	c.resolved(ctx, sent[0], resolved)

	buf, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "server-tag", buf["r1"].ChangeTag)
}

func TestUploadContext_FailedRecordsAreDropped(t *testing.T) {
	c, repo, events := newTestUploadContext(t)
	ctx := context.Background()

	require.NoError(t, c.buffer(ctx, []models.Bookmark{bookmark("r1", "x"), bookmark("r2", "y")}))
	sent, err := c.recordsToSave(ctx)
	require.NoError(t, err)

	c.failedToUpdateRecords(ctx, sent[:1], nil)

	buf, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.NotContains(t, buf, "r1")
	assert.Contains(t, buf, "r2")
	assert.Empty(t, *events)
}

func TestUploadContext_BufferPropagatesStorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUploadBufferRepository(ctrl)
	storageErr := errors.New("disk full")

	c := newUploadContext(repo, codec.Codec[models.Bookmark](codec.NewJSONCodec[models.Bookmark](testZone, testRecordType)), func(models.ModelChange[models.Bookmark]) {}, logger.Nop())

	repo.EXPECT().Load(gomock.Any()).Return(models.UploadBuffer{}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(storageErr)

	err := c.buffer(context.Background(), []models.Bookmark{bookmark("r1", "x")})
	assert.ErrorIs(t, err, storageErr)

	repo.EXPECT().Load(gomock.Any()).Return(nil, storageErr)
	_, err = c.recordsToSave(context.Background())
	assert.ErrorIs(t, err, storageErr)
}

// ── delete context ───────────────────────────────────────────────────────────

func TestDeleteContext(t *testing.T) {
	repo := store.NewDeleteBufferRepository(store.NewMemoryKeyValueStore(), testZone)
	events := &emitted{}
	c := newDeleteContext[models.Bookmark](repo, events.emit, logger.Nop())
	ctx := context.Background()

	assert.Equal(t, models.SavePolicyAllKeys, c.savePolicy())

	require.NoError(t, c.buffer(ctx, []string{"a", "b", "a"}))
	names, err := c.recordIDsToDelete(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	c.modelChangeForUpdatedRecords(ctx, nil, []string{"a"})
	c.failedToUpdateRecords(ctx, nil, []string{"b"})

	names, err = c.recordIDsToDelete(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.Len(t, *events, 1)
	assert.Equal(t, models.ChangeDeleted, (*events)[0].Kind)
	assert.Equal(t, []string{"a"}, (*events)[0].Deleted)
}

// ── bisect ───────────────────────────────────────────────────────────────────

func TestBisect(t *testing.T) {
	records := func(n int) []models.RemoteRecord {
		out := make([]models.RemoteRecord, n)
		for i := range out {
			out[i] = models.RemoteRecord{Name: string(rune('a' + i%26))}
		}
		return out
	}
	names := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = string(rune('A' + i%26))
		}
		return out
	}

	tests := []struct {
		name       string
		save, del  int
		splittable bool
	}{
		{"empty", 0, 0, false},
		{"single save", 1, 0, false},
		{"single delete", 0, 1, false},
		{"one of each", 1, 1, true},
		{"saves only", 3000, 0, true},
		{"deletes only", 0, 5, true},
		{"mixed odd", 3, 4, true},
		{"one save many deletes", 1, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second, ok := bisect(records(tt.save), names(tt.del))
			require.Equal(t, tt.splittable, ok)
			if !ok {
				return
			}

			assert.Positive(t, len(first.save)+len(first.delete))
			assert.Positive(t, len(second.save)+len(second.delete))
			assert.Equal(t, tt.save, len(first.save)+len(second.save))
			assert.Equal(t, tt.del, len(first.delete)+len(second.delete))
		})
	}
}

func TestBisect_HalvesEvenly(t *testing.T) {
	save := make([]models.RemoteRecord, 3000)
	first, second, ok := bisect(save, nil)
	require.True(t, ok)
	assert.Len(t, first.save, 1500)
	assert.Len(t, second.save, 1500)
}
