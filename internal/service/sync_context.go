package service

import (
	"bytes"
	"context"
	"encoding/json"
	"maps"

	"github.com/MKhiriev/go-record-sync/models"
)

// recordContext owns one mutation buffer. The modification pipeline reads
// the batch from it and routes every outcome back to it.
type recordContext interface {
	name() string
	savePolicy() models.SavePolicy

	recordsToSave(ctx context.Context) ([]models.RemoteRecord, error)
	recordIDsToDelete(ctx context.Context) ([]string, error)

	// modelChangeForUpdatedRecords acknowledges the accepted items: they
	// leave the buffer and are emitted as model changes.
	modelChangeForUpdatedRecords(ctx context.Context, saved []models.RemoteRecord, deleted []string)
	// failedToUpdateRecords drops items that will never be accepted.
	failedToUpdateRecords(ctx context.Context, saved []models.RemoteRecord, deleted []string)
	// discard drops items without reporting them.
	discard(ctx context.Context, saved []models.RemoteRecord, deleted []string)
	// resolved replaces the buffered client version of a conflicting record
	// with the outcome of conflict resolution.
	resolved(ctx context.Context, client, resolved models.RemoteRecord)
}

func recordNames(records []models.RemoteRecord) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	return names
}

func sameFields(a, b map[string]json.RawMessage) bool {
	return maps.EqualFunc(a, b, func(x, y json.RawMessage) bool {
		return bytes.Equal(x, y)
	})
}
