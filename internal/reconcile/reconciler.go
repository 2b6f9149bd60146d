// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reconcile merges server-pushed deltas into the replica store.
//
// Events are applied strictly in arrival order and never batched across
// event boundaries: a modified event that logically follows a created
// event for the same id must observe the created state first. A push
// event referencing an id the replica does not hold is silently no-op'd —
// the server's later state always wins over a missed intermediate step.
package reconcile

import (
	"context"
	"fmt"

	"github.com/dkotenko/abook/internal/adapter"
	"github.com/dkotenko/abook/internal/logger"
	"github.com/dkotenko/abook/internal/normalize"
	"github.com/dkotenko/abook/internal/replica"
	"github.com/dkotenko/abook/models"
)

// Reconciler consumes the push-notification stream and merges each event
// into the replica store, resolving conflicts against optimistic state
// still pending. It is driven by a single goroutine (the stream consumer),
// so events cannot interleave with each other.
type Reconciler struct {
	store   *replica.Store
	channel adapter.Channel
	cursor  Cursor
	logger  *logger.Logger
}

// NewReconciler wires a reconciler to the replica store and the RPC
// channel used for re-fetching full contact records.
func NewReconciler(store *replica.Store, channel adapter.Channel, log *logger.Logger) *Reconciler {
	return &Reconciler{store: store, channel: channel, logger: log}
}

// Cursor exposes the sync cursor, primarily for the stream lifecycle to
// reset it on disconnect.
func (r *Reconciler) Cursor() *Cursor {
	return &r.cursor
}

// Apply merges one notification into the replica. A full refresh is always
// applied and initializes the cursor; any other delta arriving before the
// first refresh is dropped, because the replica has nothing to merge into
// yet.
func (r *Reconciler) Apply(ctx context.Context, n models.Notification) error {
	if n.Refresh != nil {
		r.applyRefresh(*n.Refresh)
	}

	if !r.cursor.Ready() {
		if !n.Empty() && n.Refresh == nil {
			r.logger.Debug().Int64("seq", n.Seq).Msg("dropping delta before initial refresh")
		}
		return nil
	}

	if n.Created != nil {
		if err := r.applyChanges(ctx, n.Created); err != nil {
			return fmt.Errorf("apply created: %w", err)
		}
	}
	if n.Modified != nil {
		if err := r.applyChanges(ctx, n.Modified); err != nil {
			return fmt.Errorf("apply modified: %w", err)
		}
	}
	if n.Deleted != nil {
		r.applyDeleted(n.Deleted)
	}
	return nil
}

// applyRefresh normalizes and flattens the pushed folder snapshot and
// wholesale-replaces the folder list. This is the recovery path after
// reconnect or initial load, and the only path that fully trusts the
// server's view over local optimistic state: a mutation still in flight
// when the refresh lands is superseded, and its later commit or rollback
// becomes a no-op against the replaced slices.
func (r *Reconciler) applyRefresh(root models.WireFolder) {
	flat := normalize.FlattenTree(root)
	r.store.ReplaceFolders(flat)
	r.cursor.markInitialized()
	r.logger.Info().Int("folders", len(flat)).Msg("applied full refresh")
}

// applyChanges handles created and modified deltas, which share a shape:
// folder changes carry full records, contact changes carry only ids and
// are re-fetched in one batched call.
func (r *Reconciler) applyChanges(ctx context.Context, ch *models.Changes) error {
	for _, wf := range ch.Folders {
		folder := normalize.NormalizeFolder(wf)
		if r.store.FolderByID(folder.ID) != nil {
			if err := r.store.UpdateFolder(folder.ID, folder); err != nil {
				r.logger.Debug().Str("folder", folder.ID).Err(err).Msg("skipping folder delta")
			}
			continue
		}
		r.store.AddFolders(folder)
	}

	if len(ch.ContactIDs) == 0 {
		return nil
	}

	records, err := r.channel.GetContacts(ctx, ch.ContactIDs)
	if err != nil {
		return fmt.Errorf("refetch contacts: %w", err)
	}
	for _, w := range records {
		r.store.UpsertContact(normalize.NormalizeContact(w))
	}
	return nil
}

// applyDeleted removes the named ids from whichever buckets or list
// positions currently hold them. Unknown ids are a silent no-op.
func (r *Reconciler) applyDeleted(d *models.Deleted) {
	if len(d.ContactIDs) > 0 {
		r.store.RemoveContacts(d.ContactIDs)
	}
	if len(d.FolderIDs) > 0 {
		r.store.RemoveFolders(d.FolderIDs)
	}
}
