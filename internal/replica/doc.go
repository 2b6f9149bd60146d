// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package replica holds the local in-memory copy of the address book: the
// flat folder list and one ordered contact bucket per folder, plus a
// per-folder status flag for the UI.
//
// All reads go through selectors, which are pure and return deep copies;
// all writes go through reducers — the only code paths permitted to mutate
// the collections. Every reducer that changes the shape of the folder list
// re-derives the folder tree (depth, path, child linkage) from the full
// current list, never partially, so derived fields can never be read stale.
package replica
