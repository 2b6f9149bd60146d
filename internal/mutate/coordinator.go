// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mutate implements the optimistic mutation protocol: every
// state-changing remote operation is applied to the replica first, then
// confirmed by the remote store, and either committed or rolled back to a
// snapshot captured at apply time.
package mutate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkotenko/abook/internal/adapter"
	"github.com/dkotenko/abook/internal/logger"
	"github.com/dkotenko/abook/internal/normalize"
	"github.com/dkotenko/abook/internal/replica"
	"github.com/dkotenko/abook/models"
)

// Coordinator drives each mutation through the Idle → Applied →
// Committed/RolledBack state machine. Every operation settles exactly once:
// the remote call either resolves (commit) or fails (rollback + one
// user-visible notification).
//
// Rollback is snapshot-and-replace at the slice level. Two in-flight
// mutations touching the same folder do not serialize: the later one's
// rollback restores a snapshot that predates the earlier one's commit and
// silently discards it. This is a known sharp edge of the design, kept
// deliberately coarse.
type Coordinator struct {
	store   *replica.Store
	channel adapter.Channel
	notify  Notifier
	logger  *logger.Logger
}

// NewCoordinator wires a coordinator to the replica store, the RPC channel
// and a user-notification sink. A nil notifier falls back to log-only.
func NewCoordinator(store *replica.Store, channel adapter.Channel, notify Notifier, log *logger.Logger) *Coordinator {
	if notify == nil {
		notify = &logNotifier{logger: log}
	}
	return &Coordinator{store: store, channel: channel, notify: notify, logger: log}
}

// contactSnapshot captures every slice a contact mutation can touch.
type contactSnapshot struct {
	buckets map[string][]models.Contact
	folders []models.Folder
}

func (c *Coordinator) snapshotContacts(folderIDs ...string) contactSnapshot {
	snap := contactSnapshot{buckets: make(map[string][]models.Contact, len(folderIDs))}
	for _, id := range folderIDs {
		if _, ok := snap.buckets[id]; !ok {
			snap.buckets[id] = c.store.SnapshotBucket(id)
		}
	}
	snap.folders = c.store.SnapshotFolders()
	return snap
}

func (c *Coordinator) restoreContacts(snap contactSnapshot) {
	for id, bucket := range snap.buckets {
		c.store.RestoreBucket(id, bucket)
	}
	c.store.RestoreFolders(snap.folders)
}

// MoveContacts optimistically moves contacts between folders and confirms
// the move with one batched remote call.
func (c *Coordinator) MoveContacts(ctx context.Context, ids []string, from, to string) error {
	snap := c.snapshotContacts(from, to)

	c.store.SetStatus(from, replica.StatusPending)
	c.store.SetStatus(to, replica.StatusPending)
	c.store.MoveContacts(ids, from, to)

	err := c.channel.ContactAction(ctx, models.ContactActionRequest{
		Op:       models.ContactOpMove,
		IDs:      ids,
		FolderID: to,
	})
	if err != nil {
		c.restoreContacts(snap)
		c.store.SetStatus(from, replica.StatusFailed)
		c.store.SetStatus(to, replica.StatusIdle)
		c.notify.Failure("could not move contacts")
		return fmt.Errorf("move contacts: %w", err)
	}

	c.store.SetStatus(from, replica.StatusIdle)
	c.store.SetStatus(to, replica.StatusIdle)
	c.notify.Success("contacts moved")
	return nil
}

// DeleteContacts moves contacts to trash, optimistically. Deleting records
// already in the trash is permanent: the local effect is applied
// immediately and a failure is only reported, never rolled back — there is
// no prior folder to restore the records into.
func (c *Coordinator) DeleteContacts(ctx context.Context, ids []string, from string) error {
	if from == models.TrashFolderID {
		return c.deletePermanently(ctx, ids)
	}

	snap := c.snapshotContacts(from, models.TrashFolderID)

	c.store.SetStatus(from, replica.StatusPending)
	c.store.MoveContacts(ids, from, models.TrashFolderID)

	err := c.channel.ContactAction(ctx, models.ContactActionRequest{
		Op:       models.ContactOpMove,
		IDs:      ids,
		FolderID: models.TrashFolderID,
	})
	if err != nil {
		c.restoreContacts(snap)
		c.store.SetStatus(from, replica.StatusFailed)
		c.notify.Failure("could not delete contacts")
		return fmt.Errorf("delete contacts: %w", err)
	}

	c.store.SetStatus(from, replica.StatusIdle)
	c.notify.Success("contacts moved to trash")
	return nil
}

func (c *Coordinator) deletePermanently(ctx context.Context, ids []string) error {
	c.store.RemoveContacts(ids)

	err := c.channel.ContactAction(ctx, models.ContactActionRequest{
		Op:  models.ContactOpDelete,
		IDs: ids,
	})
	if err != nil {
		// irreversible: report only, local removal stands
		c.notify.Failure("could not delete contacts permanently")
		return fmt.Errorf("delete contacts permanently: %w", err)
	}

	c.notify.Success("contacts deleted permanently")
	return nil
}

// CreateContact inserts a provisional (id-less) record, asks the server to
// create it, and on success swaps the provisional record for the confirmed
// one in place — never a second visible row.
func (c *Coordinator) CreateContact(ctx context.Context, contact models.Contact) error {
	contact.ID = ""
	if contact.ParentFolderID == "" {
		contact.ParentFolderID = models.ContactsFolderID
	}
	folderID := contact.ParentFolderID

	snap := c.snapshotContacts(folderID)

	c.store.SetStatus(folderID, replica.StatusPending)
	c.store.AddContacts(folderID, contact)

	confirmed, err := c.channel.CreateContact(ctx, normalize.DenormalizeContact(contact))
	if err != nil {
		c.restoreContacts(snap)
		c.store.SetStatus(folderID, replica.StatusFailed)
		c.notify.Failure("could not create contact")
		return fmt.Errorf("create contact: %w", err)
	}

	c.store.ConfirmContact(folderID, normalize.NormalizeContact(confirmed))
	c.store.SetStatus(folderID, replica.StatusIdle)
	return nil
}

// TagContacts applies or removes one tag on a batch of contacts: one
// remote call, one commit or rollback for the whole batch.
func (c *Coordinator) TagContacts(ctx context.Context, ids []string, folderID, tagID string, apply bool) error {
	snap := c.snapshotContacts(folderID)

	op := models.ContactOpTag
	if !apply {
		op = models.ContactOpUntag
	}

	c.store.SetStatus(folderID, replica.StatusPending)
	c.store.TagContacts(folderID, ids, tagID, apply)

	err := c.channel.ContactAction(ctx, models.ContactActionRequest{
		Op:    op,
		IDs:   ids,
		TagID: tagID,
	})
	if err != nil {
		c.restoreContacts(snap)
		c.store.SetStatus(folderID, replica.StatusFailed)
		c.notify.Failure("could not update tags")
		return fmt.Errorf("tag contacts: %w", err)
	}

	c.store.SetStatus(folderID, replica.StatusIdle)
	return nil
}

// CreateFolder inserts a placeholder folder under a locally generated id
// and swaps it for the server-confirmed folder on commit.
func (c *Coordinator) CreateFolder(ctx context.Context, label string, color int, parentID string) error {
	if parentID == "" {
		parentID = models.RootFolderID
	}
	placeholderID := "local-" + uuid.NewString()

	snap := c.store.SnapshotFolders()

	c.store.AddFolders(models.Folder{
		ID:       placeholderID,
		Label:    label,
		Color:    color,
		ParentID: parentID,
	})
	c.store.SetStatus(placeholderID, replica.StatusPending)

	created, err := c.channel.CreateFolder(ctx, models.CreateFolderRequest{
		Name:     label,
		Color:    color,
		ParentID: parentID,
		View:     models.FolderViewContact,
	})
	if err != nil {
		c.store.SetStatus(placeholderID, replica.StatusIdle)
		c.store.RestoreFolders(snap)
		c.notify.Failure("could not create folder")
		return fmt.Errorf("create folder: %w", err)
	}

	c.store.ReplacePlaceholderFolder(placeholderID, normalize.NormalizeFolder(created))
	c.store.SetStatus(created.ID, replica.StatusIdle)
	return nil
}

// RenameFolder optimistically renames a folder.
func (c *Coordinator) RenameFolder(ctx context.Context, id, label string) error {
	return c.folderAction(ctx,
		models.Folder{Label: label},
		models.FolderActionRequest{Op: models.FolderOpRename, ID: id, Name: label},
		"could not rename folder", "")
}

// MoveFolder optimistically re-parents a folder. Moves confirm on success.
func (c *Coordinator) MoveFolder(ctx context.Context, id, newParentID string) error {
	return c.folderAction(ctx,
		models.Folder{ParentID: newParentID},
		models.FolderActionRequest{Op: models.FolderOpMove, ID: id, ParentID: newParentID},
		"could not move folder", "folder moved")
}

// folderAction is the shared apply/commit/rollback shape of single-folder
// mutations expressed as an UpdateFolder patch.
func (c *Coordinator) folderAction(ctx context.Context, patch models.Folder, req models.FolderActionRequest, failMsg, okMsg string) error {
	snap := c.store.SnapshotFolders()

	c.store.SetStatus(req.ID, replica.StatusPending)
	if err := c.store.UpdateFolder(req.ID, patch); err != nil {
		c.store.SetStatus(req.ID, replica.StatusIdle)
		return err
	}

	if err := c.channel.FolderAction(ctx, req); err != nil {
		c.store.RestoreFolders(snap)
		c.store.SetStatus(req.ID, replica.StatusFailed)
		c.notify.Failure(failMsg)
		return fmt.Errorf("%s %s: %w", req.Op, req.ID, err)
	}

	c.store.SetStatus(req.ID, replica.StatusIdle)
	if okMsg != "" {
		c.notify.Success(okMsg)
	}
	return nil
}

// DeleteFolder moves a folder to trash, optimistically. A folder already
// under trash is deleted permanently with the same no-rollback policy as
// trashed contacts.
func (c *Coordinator) DeleteFolder(ctx context.Context, id string) error {
	folder := c.store.FolderByID(id)
	if folder == nil {
		return fmt.Errorf("delete folder %s: %w", id, replica.ErrFolderNotFound)
	}

	if folder.ParentID == models.TrashFolderID {
		c.store.RemoveFolders([]string{id})
		err := c.channel.FolderAction(ctx, models.FolderActionRequest{Op: models.FolderOpDelete, ID: id})
		if err != nil {
			c.notify.Failure("could not delete folder permanently")
			return fmt.Errorf("delete folder permanently %s: %w", id, err)
		}
		c.notify.Success("folder deleted permanently")
		return nil
	}

	return c.folderAction(ctx,
		models.Folder{ParentID: models.TrashFolderID},
		models.FolderActionRequest{Op: models.FolderOpMove, ID: id, ParentID: models.TrashFolderID},
		"could not delete folder", "folder moved to trash")
}

// EmptyFolder drops every contact in the folder and confirms with the
// remote store. Used for "empty trash".
func (c *Coordinator) EmptyFolder(ctx context.Context, id string) error {
	snap := c.snapshotContacts(id)

	c.store.SetStatus(id, replica.StatusPending)
	var ids []string
	for _, contact := range c.store.ContactsInFolder(id) {
		if contact.ID != "" {
			ids = append(ids, contact.ID)
		}
	}
	c.store.RemoveContacts(ids)

	if err := c.channel.FolderAction(ctx, models.FolderActionRequest{Op: models.FolderOpEmpty, ID: id}); err != nil {
		c.restoreContacts(snap)
		c.store.SetStatus(id, replica.StatusFailed)
		c.notify.Failure("could not empty folder")
		return fmt.Errorf("empty folder %s: %w", id, err)
	}

	c.store.SetStatus(id, replica.StatusIdle)
	c.notify.Success("folder emptied")
	return nil
}

// GrantFolderAccess optimistically adds an access-control entry to a
// shared folder. Shares confirm on success.
func (c *Coordinator) GrantFolderAccess(ctx context.Context, id string, grant models.Grant) error {
	folder := c.store.FolderByID(id)
	if folder == nil {
		return fmt.Errorf("grant on folder %s: %w", id, replica.ErrFolderNotFound)
	}

	snap := c.store.SnapshotFolders()

	c.store.SetStatus(id, replica.StatusPending)
	if err := c.store.ReplaceFolderGrants(id, append(folder.Grants, grant)); err != nil {
		c.store.SetStatus(id, replica.StatusIdle)
		return err
	}

	err := c.channel.FolderAction(ctx, models.FolderActionRequest{
		Op:        models.FolderOpGrant,
		ID:        id,
		GranteeID: grant.GranteeID,
		Perm:      grant.Perm,
	})
	if err != nil {
		c.store.RestoreFolders(snap)
		c.store.SetStatus(id, replica.StatusFailed)
		c.notify.Failure("could not share folder")
		return fmt.Errorf("grant on folder %s: %w", id, err)
	}

	c.store.SetStatus(id, replica.StatusIdle)
	c.notify.Success("folder shared")
	return nil
}

// RevokeFolderAccess optimistically removes a grantee's access-control
// entry from a shared folder.
func (c *Coordinator) RevokeFolderAccess(ctx context.Context, id, granteeID string) error {
	folder := c.store.FolderByID(id)
	if folder == nil {
		return fmt.Errorf("revoke grant on folder %s: %w", id, replica.ErrFolderNotFound)
	}

	remaining := make([]models.Grant, 0, len(folder.Grants))
	for _, g := range folder.Grants {
		if g.GranteeID != granteeID {
			remaining = append(remaining, g)
		}
	}

	snap := c.store.SnapshotFolders()

	c.store.SetStatus(id, replica.StatusPending)
	if err := c.store.ReplaceFolderGrants(id, remaining); err != nil {
		c.store.SetStatus(id, replica.StatusIdle)
		return err
	}

	err := c.channel.FolderAction(ctx, models.FolderActionRequest{
		Op:        models.FolderOpRevokeGrant,
		ID:        id,
		GranteeID: granteeID,
	})
	if err != nil {
		c.store.RestoreFolders(snap)
		c.store.SetStatus(id, replica.StatusFailed)
		c.notify.Failure("could not revoke folder access")
		return fmt.Errorf("revoke grant on folder %s: %w", id, err)
	}

	c.store.SetStatus(id, replica.StatusIdle)
	c.notify.Success("folder access revoked")
	return nil
}
