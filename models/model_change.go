// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangeKind tags a [ModelChange].
type ChangeKind int

const (
	// ChangeUpdated carries records that were created or modified remotely or
	// confirmed by the remote store.
	ChangeUpdated ChangeKind = iota
	// ChangeDeleted carries identities of records removed remotely.
	ChangeDeleted
)

// String implements fmt.Stringer.
func (k ChangeKind) String() string {
	switch k {
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// ModelChange is emitted whenever local state should be reconciled with
// confirmed remote state. Consumers apply each change on top of what they
// already have: a change is never a full snapshot.
type ModelChange[T any] struct {
	Kind    ChangeKind
	Updated []T
	Deleted []string
}

// Updated builds a [ChangeUpdated] change.
func Updated[T any](records []T) ModelChange[T] {
	return ModelChange[T]{Kind: ChangeUpdated, Updated: records}
}

// Deleted builds a [ChangeDeleted] change.
func Deleted[T any](names []string) ModelChange[T] {
	return ModelChange[T]{Kind: ChangeDeleted, Deleted: names}
}
