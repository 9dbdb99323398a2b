package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-record-sync/models"
	"github.com/golang/snappy"
)

// uploadBufferRepository keeps a zone's [models.UploadBuffer] under
// "UPLOADBUFFER-<zone>" as snappy-compressed JSON.
type uploadBufferRepository struct {
	kv  KeyValueStore
	key string
}

// NewUploadBufferRepository binds an [UploadBufferRepository] to zone.
func NewUploadBufferRepository(kv KeyValueStore, zone string) UploadBufferRepository {
	return &uploadBufferRepository{kv: kv, key: zoneKey(uploadBufferKeyPrefix, zone)}
}

func (r *uploadBufferRepository) Load(ctx context.Context) (models.UploadBuffer, error) {
	buffer := make(models.UploadBuffer)
	if err := loadBlob(ctx, r.kv, r.key, &buffer); err != nil {
		return nil, err
	}
	if buffer == nil {
		buffer = make(models.UploadBuffer)
	}
	return buffer, nil
}

func (r *uploadBufferRepository) Save(ctx context.Context, buffer models.UploadBuffer) error {
	if len(buffer) == 0 {
		return r.kv.Delete(ctx, r.key)
	}
	return saveBlob(ctx, r.kv, r.key, buffer)
}

// deleteBufferRepository keeps a zone's [models.DeleteBuffer] under
// "DELETEBUFFER-<zone>".
type deleteBufferRepository struct {
	kv  KeyValueStore
	key string
}

// NewDeleteBufferRepository binds a [DeleteBufferRepository] to zone.
func NewDeleteBufferRepository(kv KeyValueStore, zone string) DeleteBufferRepository {
	return &deleteBufferRepository{kv: kv, key: zoneKey(deleteBufferKeyPrefix, zone)}
}

func (r *deleteBufferRepository) Load(ctx context.Context) (models.DeleteBuffer, error) {
	var buffer models.DeleteBuffer
	if err := loadBlob(ctx, r.kv, r.key, &buffer); err != nil {
		return nil, err
	}
	return buffer, nil
}

func (r *deleteBufferRepository) Save(ctx context.Context, buffer models.DeleteBuffer) error {
	if len(buffer) == 0 {
		return r.kv.Delete(ctx, r.key)
	}
	return saveBlob(ctx, r.kv, r.key, buffer)
}

func loadBlob(ctx context.Context, kv KeyValueStore, key string, dst any) error {
	blob, err := kv.GetBytes(ctx, key)
	if err != nil {
		return err
	}
	if len(blob) == 0 {
		return nil
	}

	raw, err := snappy.Decode(nil, blob)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorruptedBlob, key, err)
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorruptedBlob, key, err)
	}
	return nil
}

func saveBlob(ctx context.Context, kv KeyValueStore, key string, src any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.SetBytes(ctx, key, snappy.Encode(nil, raw))
}
