// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"sort"
)

// UploadBuffer maps record identity to the encoded record still waiting to be
// saved remotely.
type UploadBuffer map[string]RemoteRecord

// Records returns the buffered records ordered by name.
func (b UploadBuffer) Records() []RemoteRecord {
	records := make([]RemoteRecord, 0, len(b))
	for _, r := range b {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records
}

// DeleteBuffer is the ordered, duplicate-free list of identities still
// waiting to be deleted remotely.
type DeleteBuffer []string

// Add appends names that are not already present.
func (b DeleteBuffer) Add(names ...string) DeleteBuffer {
	for _, name := range names {
		if !slices.Contains(b, name) {
			b = append(b, name)
		}
	}
	return b
}

// Remove drops every occurrence of names.
func (b DeleteBuffer) Remove(names ...string) DeleteBuffer {
	if len(names) == 0 {
		return b
	}
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		drop[name] = struct{}{}
	}

	out := b[:0:0]
	for _, name := range b {
		if _, ok := drop[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}
