package service

import (
	"context"

	"github.com/MKhiriev/go-record-sync/internal/codec"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/models"
)

type uploadContext[T models.Record] struct {
	repo   store.UploadBufferRepository
	codec  codec.Codec[T]
	emit   func(models.ModelChange[T])
	logger *logger.Logger
}

func newUploadContext[T models.Record](repo store.UploadBufferRepository, c codec.Codec[T], emit func(models.ModelChange[T]), log *logger.Logger) *uploadContext[T] {
	return &uploadContext[T]{repo: repo, codec: c, emit: emit, logger: log}
}

func (c *uploadContext[T]) name() string {
	return "upload"
}

func (c *uploadContext[T]) savePolicy() models.SavePolicy {
	return models.SavePolicyIfServerRecordUnchanged
}

// buffer encodes records into the upload buffer, replacing older versions of
// the same identity. Records that fail to encode are skipped.
func (c *uploadContext[T]) buffer(ctx context.Context, records []T) error {
	buf, err := c.repo.Load(ctx)
	if err != nil {
		return err
	}

	for _, record := range records {
		encoded, err := c.codec.Encode(record)
		if err != nil {
			c.logger.Err(err).
				Str("func", "uploadContext.buffer").
				Str("record", record.RecordName()).
				Msg("failed to encode record, skipping")
			continue
		}
		buf[encoded.Name] = encoded
	}

	return c.repo.Save(ctx, buf)
}

// removeFromBuffer evicts names from the upload buffer.
func (c *uploadContext[T]) removeFromBuffer(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	buf, err := c.repo.Load(ctx)
	if err != nil {
		return err
	}

	before := len(buf)
	for _, name := range names {
		delete(buf, name)
	}
	if len(buf) == before {
		return nil
	}

	return c.repo.Save(ctx, buf)
}

func (c *uploadContext[T]) recordsToSave(ctx context.Context) ([]models.RemoteRecord, error) {
	buf, err := c.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return buf.Records(), nil
}

func (c *uploadContext[T]) recordIDsToDelete(context.Context) ([]string, error) {
	return nil, nil
}

// modelChangeForUpdatedRecords removes acknowledged entries. An entry that
// was replaced while its save was in flight stays buffered and takes over
// the new change tag so its next save is accepted.
func (c *uploadContext[T]) modelChangeForUpdatedRecords(ctx context.Context, saved []models.RemoteRecord, _ []string) {
	if len(saved) == 0 {
		return
	}

	buf, err := c.repo.Load(ctx)
	if err != nil {
		c.logger.Err(err).
			Str("func", "uploadContext.modelChangeForUpdatedRecords").
			Msg("failed to load upload buffer")
	}

	updated := make([]T, 0, len(saved))
	for _, record := range saved {
		if entry, ok := buf[record.Name]; ok {
			if sameFields(entry.Fields, record.Fields) {
				delete(buf, record.Name)
			} else {
				entry.ChangeTag = record.ChangeTag
				entry.CreatedAt = record.CreatedAt
				entry.ModifiedAt = record.ModifiedAt
				buf[record.Name] = entry
			}
		}

		value, err := c.codec.Decode(record)
		if err != nil {
			c.logger.Err(err).
				Str("func", "uploadContext.modelChangeForUpdatedRecords").
				Str("record", record.Name).
				Msg("failed to decode saved record")
			continue
		}
		updated = append(updated, value)
	}

	if buf != nil {
		if err = c.repo.Save(ctx, buf); err != nil {
			c.logger.Err(err).
				Str("func", "uploadContext.modelChangeForUpdatedRecords").
				Msg("failed to save upload buffer")
		}
	}

	if len(updated) > 0 {
		c.emit(models.Updated(updated))
	}
}

func (c *uploadContext[T]) failedToUpdateRecords(ctx context.Context, saved []models.RemoteRecord, _ []string) {
	if len(saved) == 0 {
		return
	}

	c.logger.Warn().
		Str("func", "uploadContext.failedToUpdateRecords").
		Strs("records", recordNames(saved)).
		Msg("records failed permanently and were dropped from the upload buffer")

	c.discard(ctx, saved, nil)
}

func (c *uploadContext[T]) discard(ctx context.Context, saved []models.RemoteRecord, _ []string) {
	if err := c.removeFromBuffer(ctx, recordNames(saved)); err != nil {
		c.logger.Err(err).
			Str("func", "uploadContext.discard").
			Msg("failed to update upload buffer")
	}
}

func (c *uploadContext[T]) resolved(ctx context.Context, client, resolved models.RemoteRecord) {
	buf, err := c.repo.Load(ctx)
	if err != nil {
		c.logger.Err(err).
			Str("func", "uploadContext.resolved").
			Msg("failed to load upload buffer")
		return
	}

	entry, ok := buf[client.Name]
	if !ok || !sameFields(entry.Fields, client.Fields) {
		return
	}
	buf[client.Name] = resolved

	if err = c.repo.Save(ctx, buf); err != nil {
		c.logger.Err(err).
			Str("func", "uploadContext.resolved").
			Msg("failed to save upload buffer")
	}
}
