// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the bookmark sync client runtime.
//
// It wires local storage, the record store adapter, the sync engine, the
// push notification listener and the periodic sync job into a single process
// lifecycle, and logs every confirmed model change.
package client
