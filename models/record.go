// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Record is implemented by every application value that can be synchronized
// with the remote record store.
//
// RecordName must be stable for the lifetime of the value and unique within
// its sync zone. SystemFields returns the opaque blob produced by
// [RemoteRecord.SystemFields] after the last successful round trip through the
// remote store, or nil for a record that has never been synced.
type Record interface {
	RecordName() string
	SystemFields() []byte
}

// RemoteRecord is the remote store's native representation of a record.
//
// Application fields travel as raw JSON values keyed by field name; the
// remaining fields are assigned by the server and together make up the
// record's system fields.
type RemoteRecord struct {
	// Name is the record identity inside Zone.
	Name string `json:"name"`

	// Zone is the sync zone the record belongs to.
	Zone string `json:"zone"`

	// Type is the record type, usually the application model name.
	Type string `json:"type"`

	// ChangeTag is the server-assigned concurrency version. It is empty for a
	// record the server has never stored.
	ChangeTag string `json:"change_tag,omitempty"`

	// CreatedAt is the time the server first stored the record.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// ModifiedAt is the time of the last accepted write.
	ModifiedAt *time.Time `json:"modified_at,omitempty"`

	// Fields holds the application payload.
	Fields map[string]json.RawMessage `json:"fields,omitempty"`
}

// SystemFieldsInfo is the decoded form of the opaque system-fields blob.
type SystemFieldsInfo struct {
	Name       string     `json:"name"`
	Zone       string     `json:"zone"`
	Type       string     `json:"type"`
	ChangeTag  string     `json:"change_tag"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}

// SystemFields serializes the server-assigned metadata of r into an opaque
// blob that applications store next to their own values. It returns nil for a
// record without a change tag.
func (r RemoteRecord) SystemFields() []byte {
	if r.ChangeTag == "" {
		return nil
	}

	blob, err := json.Marshal(SystemFieldsInfo{
		Name:       r.Name,
		Zone:       r.Zone,
		Type:       r.Type,
		ChangeTag:  r.ChangeTag,
		CreatedAt:  r.CreatedAt,
		ModifiedAt: r.ModifiedAt,
	})
	if err != nil {
		return nil
	}

	return blob
}

// WithSystemFields returns a copy of r with the server metadata taken from
// blob. A nil or empty blob clears the metadata.
func (r RemoteRecord) WithSystemFields(blob []byte) (RemoteRecord, error) {
	if len(blob) == 0 {
		r.ChangeTag = ""
		r.CreatedAt = nil
		r.ModifiedAt = nil
		return r, nil
	}

	info, err := ParseSystemFields(blob)
	if err != nil {
		return r, err
	}

	r.ChangeTag = info.ChangeTag
	r.CreatedAt = info.CreatedAt
	r.ModifiedAt = info.ModifiedAt
	return r, nil
}

// Clone returns a deep copy of r.
func (r RemoteRecord) Clone() RemoteRecord {
	out := r
	if r.Fields != nil {
		out.Fields = make(map[string]json.RawMessage, len(r.Fields))
		for k, v := range r.Fields {
			out.Fields[k] = append(json.RawMessage(nil), v...)
		}
	}
	return out
}

// ParseSystemFields decodes a blob produced by [RemoteRecord.SystemFields].
func ParseSystemFields(blob []byte) (SystemFieldsInfo, error) {
	var info SystemFieldsInfo
	if err := json.Unmarshal(blob, &info); err != nil {
		return SystemFieldsInfo{}, fmt.Errorf("decode system fields: %w", err)
	}
	return info, nil
}

// LastModified returns the server modification time stored in blob. The
// boolean is false when the blob is empty, malformed or carries no time.
func LastModified(blob []byte) (time.Time, bool) {
	if len(blob) == 0 {
		return time.Time{}, false
	}

	info, err := ParseSystemFields(blob)
	if err != nil || info.ModifiedAt == nil {
		return time.Time{}, false
	}

	return *info.ModifiedAt, true
}
