// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec maps application records to and from the remote store's
// native [models.RemoteRecord] representation.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-record-sync/models"
)

var (
	// ErrEmptyRecordName is returned when a record has no identity.
	ErrEmptyRecordName = errors.New("record name is empty")
	// ErrRecordTypeMismatch is returned when decoding a record of another type.
	ErrRecordTypeMismatch = errors.New("record type mismatch")
)

// Codec converts a single record. Both directions fail per record.
type Codec[T models.Record] interface {
	Encode(value T) (models.RemoteRecord, error)
	Decode(record models.RemoteRecord) (T, error)
}

// Syncable is a record that can be rebuilt with new system fields.
type Syncable[T any] interface {
	models.Record
	WithSystemFields(blob []byte) T
}

// JSONCodec stores every exported field of T as a JSON value in
// [models.RemoteRecord.Fields].
type JSONCodec[T Syncable[T]] struct {
	zone       string
	recordType string
}

// NewJSONCodec creates a codec for records of recordType living in zone.
func NewJSONCodec[T Syncable[T]](zone, recordType string) *JSONCodec[T] {
	return &JSONCodec[T]{zone: zone, recordType: recordType}
}

// Encode implements [Codec].
func (c *JSONCodec[T]) Encode(value T) (models.RemoteRecord, error) {
	name := value.RecordName()
	if name == "" {
		return models.RemoteRecord{}, ErrEmptyRecordName
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("encode %s %q: %w", c.recordType, name, err)
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(payload, &fields); err != nil {
		return models.RemoteRecord{}, fmt.Errorf("encode %s %q: value is not a JSON object: %w", c.recordType, name, err)
	}

	record := models.RemoteRecord{
		Name:   name,
		Zone:   c.zone,
		Type:   c.recordType,
		Fields: fields,
	}

	record, err = record.WithSystemFields(value.SystemFields())
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("encode %s %q: %w", c.recordType, name, err)
	}

	return record, nil
}

// Decode implements [Codec].
func (c *JSONCodec[T]) Decode(record models.RemoteRecord) (T, error) {
	var value T

	if record.Type != c.recordType {
		return value, fmt.Errorf("%w: want %s, got %s", ErrRecordTypeMismatch, c.recordType, record.Type)
	}

	payload, err := json.Marshal(record.Fields)
	if err != nil {
		return value, fmt.Errorf("decode %s %q: %w", c.recordType, record.Name, err)
	}
	if err = json.Unmarshal(payload, &value); err != nil {
		return value, fmt.Errorf("decode %s %q: %w", c.recordType, record.Name, err)
	}

	return value.WithSystemFields(record.SystemFields()), nil
}
