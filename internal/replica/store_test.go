package replica

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkotenko/abook/internal/logger"
	"github.com/dkotenko/abook/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(logger.Nop())
	s.AddFolders(
		models.Folder{ID: "1", Label: "root", ParentID: "0"},
		models.Folder{ID: "7", Label: "Contacts", ParentID: "1"},
		models.Folder{ID: "3", Label: "Trash", ParentID: "1"},
	)
	return s
}

func contact(id, folderID, fileAs string) models.Contact {
	return models.Contact{ID: id, ParentFolderID: folderID, FileAs: fileAs}
}

func bucketIDs(s *Store, folderID string) []string {
	var ids []string
	for _, c := range s.ContactsInFolder(folderID) {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestAddContacts_SortedInsert(t *testing.T) {
	s := newTestStore(t)

	s.AddContacts("7", contact("c2", "7", "Borman"))
	s.AddContacts("7", contact("c1", "7", "Abel"), contact("c3", "7", "Zeiss"))

	assert.Equal(t, []string{"c1", "c2", "c3"}, bucketIDs(s, "7"))
	assert.Equal(t, 3, s.FolderByID("7").ItemsCount)
}

func TestAddContacts_ExistingIDUpdatedInPlace(t *testing.T) {
	s := newTestStore(t)

	s.AddContacts("7", contact("c1", "7", "Abel"))
	updated := contact("c1", "7", "Abel")
	updated.Notes = "updated"
	s.AddContacts("7", updated)

	contacts := s.ContactsInFolder("7")
	require.Len(t, contacts, 1)
	assert.Equal(t, "updated", contacts[0].Notes)
	assert.Equal(t, 1, s.FolderByID("7").ItemsCount)
}

func TestSelectors_ReturnCopies(t *testing.T) {
	s := newTestStore(t)
	s.AddContacts("7", contact("c1", "7", "Abel"))

	got := s.ContactByID("7", "c1")
	require.NotNil(t, got)
	got.Notes = "mutated by caller"

	assert.Empty(t, s.ContactByID("7", "c1").Notes)

	folder := s.FolderByID("7")
	require.NotNil(t, folder)
	folder.Label = "mutated"
	assert.Equal(t, "Contacts", s.FolderByID("7").Label)
}

func TestContactByID_Absent(t *testing.T) {
	s := newTestStore(t)
	assert.Nil(t, s.ContactByID("7", "ghost"))
	assert.Nil(t, s.FolderByID("ghost"))
	assert.Nil(t, s.ContactsInFolder("ghost"))
}

func TestMoveContacts_Atomic(t *testing.T) {
	s := newTestStore(t)
	s.AddContacts("7", contact("c1", "7", "Abel"), contact("c2", "7", "Borman"))

	moved := s.MoveContacts([]string{"c1"}, "7", "3")

	assert.Equal(t, 1, moved)
	// в пункте назначения и не в источнике — никогда в обоих, никогда ни в одном
	assert.Equal(t, []string{"c2"}, bucketIDs(s, "7"))
	assert.Equal(t, []string{"c1"}, bucketIDs(s, "3"))
	assert.Equal(t, "3", s.ContactByID("3", "c1").ParentFolderID)

	assert.Equal(t, 1, s.FolderByID("7").ItemsCount)
	assert.Equal(t, 1, s.FolderByID("3").ItemsCount)
}

func TestMoveContacts_UnknownIDsMoveNothing(t *testing.T) {
	s := newTestStore(t)
	s.AddContacts("7", contact("c1", "7", "Abel"))

	assert.Zero(t, s.MoveContacts([]string{"ghost"}, "7", "3"))
	assert.Equal(t, []string{"c1"}, bucketIDs(s, "7"))
}

func TestRemoveContacts_SweepsProvisional(t *testing.T) {
	s := newTestStore(t)
	s.AddContacts("7", contact("c1", "7", "Abel"))
	s.AddContacts("7", models.Contact{ParentFolderID: "7", FileAs: "Draft"})

	s.RemoveContacts(nil)

	assert.Equal(t, []string{"c1"}, bucketIDs(s, "7"))
	assert.Equal(t, 1, s.FolderByID("7").ItemsCount)
}

func TestRemoveContacts_ByID(t *testing.T) {
	s := newTestStore(t)
	s.AddContacts("7", contact("c1", "7", "Abel"))
	s.AddContacts("3", contact("c2", "3", "Borman"))

	s.RemoveContacts([]string{"c1", "c2"})

	assert.Empty(t, bucketIDs(s, "7"))
	assert.Empty(t, bucketIDs(s, "3"))
	assert.Zero(t, s.FolderByID("7").ItemsCount)
}

func TestUpsertContact_InsertThenIdempotent(t *testing.T) {
	s := newTestStore(t)

	c := contact("c9", "7", "Nine")
	s.UpsertContact(c)
	s.UpsertContact(c)

	// повторное применение created-уведомления оставляет ровно одну запись
	assert.Equal(t, []string{"c9"}, bucketIDs(s, "7"))
	assert.Equal(t, 1, s.FolderByID("7").ItemsCount)
}

func TestUpsertContact_ParentChangeMovesBuckets(t *testing.T) {
	s := newTestStore(t)
	s.AddContacts("7", contact("c1", "7", "Abel"))

	moved := contact("c1", "3", "Abel")
	s.UpsertContact(moved)

	assert.Empty(t, bucketIDs(s, "7"))
	assert.Equal(t, []string{"c1"}, bucketIDs(s, "3"))
	assert.Zero(t, s.FolderByID("7").ItemsCount)
	assert.Equal(t, 1, s.FolderByID("3").ItemsCount)
}

func TestConfirmContact_ReplacesProvisional(t *testing.T) {
	s := newTestStore(t)
	s.AddContacts("7", models.Contact{ParentFolderID: "7", FileAs: "Doe, John"})

	s.ConfirmContact("7", contact("c5", "7", "Doe, John"))

	assert.Equal(t, []string{"c5"}, bucketIDs(s, "7"))
	assert.Equal(t, 1, s.FolderByID("7").ItemsCount)
}

func TestConfirmContact_NotificationRaceLeavesOneRow(t *testing.T) {
	s := newTestStore(t)
	s.AddContacts("7", models.Contact{ParentFolderID: "7", FileAs: "Doe, John"})
	// push-уведомление успело доставить подтверждённую запись раньше коммита
	s.UpsertContact(contact("c5", "7", "Doe, John"))

	s.ConfirmContact("7", contact("c5", "7", "Doe, John"))

	assert.Equal(t, []string{"c5"}, bucketIDs(s, "7"))
	assert.Equal(t, 1, s.FolderByID("7").ItemsCount)
}

func TestTagContacts_ApplyAndRemove(t *testing.T) {
	s := newTestStore(t)
	s.AddContacts("7", contact("c1", "7", "Abel"), contact("c2", "7", "Borman"))

	s.TagContacts("7", []string{"c1", "c2"}, "101", true)
	s.TagContacts("7", []string{"c1", "c2"}, "101", true) // идемпотентно

	assert.Equal(t, []string{"101"}, s.ContactByID("7", "c1").TagIDs)
	assert.Equal(t, []string{"101"}, s.ContactByID("7", "c2").TagIDs)

	s.TagContacts("7", []string{"c1"}, "101", false)
	assert.Empty(t, s.ContactByID("7", "c1").TagIDs)
	assert.Equal(t, []string{"101"}, s.ContactByID("7", "c2").TagIDs)
}

func TestUpdateFolder_MergesPatch(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateFolder("7", models.Folder{Label: "Renamed", Color: 5})
	require.NoError(t, err)

	f := s.FolderByID("7")
	assert.Equal(t, "Renamed", f.Label)
	assert.Equal(t, 5, f.Color)
	assert.Equal(t, "1", f.ParentID, "untouched fields survive the merge")
	assert.Equal(t, "/Renamed", f.Path, "tree re-derived after patch")
}

func TestUpdateFolder_Missing(t *testing.T) {
	s := newTestStore(t)
	err := s.UpdateFolder("ghost", models.Folder{Label: "x"})
	require.ErrorIs(t, err, ErrFolderNotFound)
}

func TestReplaceFolders_DropsVanishedBuckets(t *testing.T) {
	s := newTestStore(t)
	s.AddContacts("7", contact("c1", "7", "Abel"))
	s.AddFolders(models.Folder{ID: "300", Label: "Old", ParentID: "1"})
	s.AddContacts("300", contact("c2", "300", "Borman"))
	s.SetStatus("300", StatusPending)

	s.ReplaceFolders([]models.Folder{
		{ID: "1", Label: "root", ParentID: "0"},
		{ID: "7", Label: "Contacts", ParentID: "1", ItemsCount: 1},
		{ID: "3", Label: "Trash", ParentID: "1"},
	})

	assert.Equal(t, []string{"c1"}, bucketIDs(s, "7"), "surviving bucket kept")
	assert.Nil(t, s.ContactsInFolder("300"), "vanished bucket dropped")
	assert.Equal(t, StatusIdle, s.Status("300"))
	assert.Nil(t, s.FolderByID("300"))
}

func TestReplacePlaceholderFolder(t *testing.T) {
	s := newTestStore(t)
	s.AddFolders(models.Folder{ID: "local-abc", Label: "New", ParentID: "1"})
	s.SetStatus("local-abc", StatusPending)

	s.ReplacePlaceholderFolder("local-abc", models.Folder{ID: "310", Label: "New", ParentID: "1"})

	assert.Nil(t, s.FolderByID("local-abc"))
	require.NotNil(t, s.FolderByID("310"))
	assert.Equal(t, StatusPending, s.Status("310"), "status carries over")
}

func TestSnapshotRestore_Exactness(t *testing.T) {
	s := newTestStore(t)
	s.AddContacts("7", contact("c1", "7", "Abel"), contact("c2", "7", "Borman"))

	bucketSnap := s.SnapshotBucket("7")
	folderSnap := s.SnapshotFolders()

	s.MoveContacts([]string{"c1"}, "7", "3")
	s.RemoveContacts([]string{"c2"})

	s.RestoreBucket("7", bucketSnap)
	s.RestoreBucket("3", nil)
	s.RestoreFolders(folderSnap)

	assert.Equal(t, bucketSnap, s.ContactsInFolder("7"))
	assert.Equal(t, folderSnap, s.SnapshotFolders())
	assert.Nil(t, s.ContactsInFolder("3"))
}

func TestStatusFlags(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, StatusIdle, s.Status("7"))
	s.SetStatus("7", StatusPending)
	assert.Equal(t, StatusPending, s.Status("7"))
	s.SetStatus("7", StatusFailed)
	assert.Equal(t, StatusFailed, s.Status("7"))
	s.SetStatus("7", StatusIdle)
	assert.Equal(t, StatusIdle, s.Status("7"))
}

func TestReplaceFolderGrants(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.UpdateFolder("7", models.Folder{Grants: []models.Grant{{GranteeID: "z1", Perm: "r"}}}))

	require.NoError(t, s.ReplaceFolderGrants("7", nil))
	assert.Empty(t, s.FolderByID("7").Grants)

	require.ErrorIs(t, s.ReplaceFolderGrants("ghost", nil), ErrFolderNotFound)
}
