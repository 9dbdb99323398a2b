package service

import (
	"context"

	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/store"
	"github.com/MKhiriev/go-record-sync/models"
)

type deleteContext[T models.Record] struct {
	repo   store.DeleteBufferRepository
	emit   func(models.ModelChange[T])
	logger *logger.Logger
}

func newDeleteContext[T models.Record](repo store.DeleteBufferRepository, emit func(models.ModelChange[T]), log *logger.Logger) *deleteContext[T] {
	return &deleteContext[T]{repo: repo, emit: emit, logger: log}
}

func (c *deleteContext[T]) name() string {
	return "delete"
}

func (c *deleteContext[T]) savePolicy() models.SavePolicy {
	return models.SavePolicyAllKeys
}

func (c *deleteContext[T]) buffer(ctx context.Context, names []string) error {
	buf, err := c.repo.Load(ctx)
	if err != nil {
		return err
	}
	return c.repo.Save(ctx, buf.Add(names...))
}

func (c *deleteContext[T]) removeFromBuffer(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	buf, err := c.repo.Load(ctx)
	if err != nil {
		return err
	}
	return c.repo.Save(ctx, buf.Remove(names...))
}

func (c *deleteContext[T]) recordsToSave(context.Context) ([]models.RemoteRecord, error) {
	return nil, nil
}

func (c *deleteContext[T]) recordIDsToDelete(ctx context.Context) ([]string, error) {
	buf, err := c.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), buf...), nil
}

func (c *deleteContext[T]) modelChangeForUpdatedRecords(ctx context.Context, _ []models.RemoteRecord, deleted []string) {
	if len(deleted) == 0 {
		return
	}

	if err := c.removeFromBuffer(ctx, deleted); err != nil {
		c.logger.Err(err).
			Str("func", "deleteContext.modelChangeForUpdatedRecords").
			Msg("failed to update delete buffer")
	}

	c.emit(models.Deleted[T](append([]string(nil), deleted...)))
}

func (c *deleteContext[T]) failedToUpdateRecords(ctx context.Context, _ []models.RemoteRecord, deleted []string) {
	if len(deleted) == 0 {
		return
	}

	c.logger.Warn().
		Str("func", "deleteContext.failedToUpdateRecords").
		Strs("records", deleted).
		Msg("deletes failed permanently and were dropped from the delete buffer")

	c.discard(ctx, nil, deleted)
}

func (c *deleteContext[T]) discard(ctx context.Context, _ []models.RemoteRecord, deleted []string) {
	if err := c.removeFromBuffer(ctx, deleted); err != nil {
		c.logger.Err(err).
			Str("func", "deleteContext.discard").
			Msg("failed to update delete buffer")
	}
}

func (c *deleteContext[T]) resolved(context.Context, models.RemoteRecord, models.RemoteRecord) {}
