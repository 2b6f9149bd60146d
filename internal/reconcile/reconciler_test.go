package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dkotenko/abook/internal/logger"
	"github.com/dkotenko/abook/internal/mock"
	"github.com/dkotenko/abook/internal/replica"
	"github.com/dkotenko/abook/models"
)

func newTestReconciler(t *testing.T) (*Reconciler, *replica.Store, *mock.MockChannel) {
	t.Helper()

	ctrl := gomock.NewController(t)
	channel := mock.NewMockChannel(ctrl)
	store := replica.NewStore(logger.Nop())

	return NewReconciler(store, channel, logger.Nop()), store, channel
}

// refreshNotification builds the canonical snapshot: root "1" holding the
// contacts folder "7" and the trash "3".
func refreshNotification() models.Notification {
	root := models.WireFolder{
		ID:   models.RootFolderID,
		Name: "USER_ROOT",
		Folders: []models.WireFolder{
			{ID: models.ContactsFolderID, Name: "Contacts", ParentID: models.RootFolderID, View: models.FolderViewContact, ItemsCount: 2},
			{ID: models.TrashFolderID, Name: "Trash", ParentID: models.RootFolderID},
		},
	}
	return models.Notification{Seq: 1, Refresh: &root}
}

func TestApply_RefreshInitializesCursor(t *testing.T) {
	r, store, _ := newTestReconciler(t)

	require.False(t, r.Cursor().Ready())

	err := r.Apply(context.Background(), refreshNotification())
	require.NoError(t, err)

	assert.True(t, r.Cursor().Ready())
	require.NotNil(t, store.FolderByID(models.ContactsFolderID))
	require.NotNil(t, store.FolderByID(models.TrashFolderID))
	assert.Nil(t, store.FolderByID(models.RootFolderID), "root node is not a contact folder")
}

func TestApply_DeltaBeforeRefreshIsDropped(t *testing.T) {
	r, store, _ := newTestReconciler(t)

	// no GetContacts expectation on the mock: the delta must not reach
	// the channel at all
	err := r.Apply(context.Background(), models.Notification{
		Seq:     5,
		Created: &models.Changes{ContactIDs: []string{"c9"}},
	})
	require.NoError(t, err)

	assert.Empty(t, store.ContactsInFolder(models.ContactsFolderID))
	assert.False(t, r.Cursor().Ready())
}

func TestApply_CreatedRefetchesAndInserts(t *testing.T) {
	r, store, channel := newTestReconciler(t)
	require.NoError(t, r.Apply(context.Background(), refreshNotification()))

	wire := []models.WireContact{{ID: "c9", FolderID: models.ContactsFolderID, FileAs: "Able, Ann"}}
	channel.EXPECT().GetContacts(gomock.Any(), []string{"c9"}).Return(wire, nil).Times(2)

	created := models.Notification{Seq: 2, Created: &models.Changes{ContactIDs: []string{"c9"}}}
	require.NoError(t, r.Apply(context.Background(), created))

	got := store.ContactsInFolder(models.ContactsFolderID)
	require.Len(t, got, 1)
	assert.Equal(t, "c9", got[0].ID)
	assert.Equal(t, "Able, Ann", got[0].FileAs)

	// повторная доставка того же события не должна дублировать запись
	require.NoError(t, r.Apply(context.Background(), created))
	assert.Len(t, store.ContactsInFolder(models.ContactsFolderID), 1)
}

func TestApply_ModifiedMovesContactBetweenBuckets(t *testing.T) {
	r, store, channel := newTestReconciler(t)
	require.NoError(t, r.Apply(context.Background(), refreshNotification()))

	store.AddContacts(models.ContactsFolderID, models.Contact{
		ID: "c1", ParentFolderID: models.ContactsFolderID, FileAs: "Baker, Bob",
	})

	wire := []models.WireContact{{ID: "c1", FolderID: models.TrashFolderID, FileAs: "Baker, Bob"}}
	channel.EXPECT().GetContacts(gomock.Any(), []string{"c1"}).Return(wire, nil)

	err := r.Apply(context.Background(), models.Notification{
		Seq:      3,
		Modified: &models.Changes{ContactIDs: []string{"c1"}},
	})
	require.NoError(t, err)

	assert.Empty(t, store.ContactsInFolder(models.ContactsFolderID))
	got := store.ContactsInFolder(models.TrashFolderID)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
}

func TestApply_FolderDeltaCreateThenRename(t *testing.T) {
	r, store, _ := newTestReconciler(t)
	require.NoError(t, r.Apply(context.Background(), refreshNotification()))

	created := models.WireFolder{ID: "42", Name: "Clients", ParentID: models.ContactsFolderID, View: models.FolderViewContact}
	err := r.Apply(context.Background(), models.Notification{
		Seq:     4,
		Created: &models.Changes{Folders: []models.WireFolder{created}},
	})
	require.NoError(t, err)

	f := store.FolderByID("42")
	require.NotNil(t, f)
	assert.Equal(t, "Clients", f.Label)

	renamed := created
	renamed.Name = "Customers"
	err = r.Apply(context.Background(), models.Notification{
		Seq:      5,
		Modified: &models.Changes{Folders: []models.WireFolder{renamed}},
	})
	require.NoError(t, err)

	f = store.FolderByID("42")
	require.NotNil(t, f)
	assert.Equal(t, "Customers", f.Label)
	assert.Len(t, store.AllFolders(), 3)
}

func TestApply_DeletedRemovesAndIgnoresUnknown(t *testing.T) {
	r, store, _ := newTestReconciler(t)
	require.NoError(t, r.Apply(context.Background(), refreshNotification()))

	store.AddContacts(models.ContactsFolderID, models.Contact{
		ID: "c1", ParentFolderID: models.ContactsFolderID, FileAs: "Baker, Bob",
	})

	err := r.Apply(context.Background(), models.Notification{
		Seq:     6,
		Deleted: &models.Deleted{ContactIDs: []string{"c1", "never-seen"}, FolderIDs: []string{"ghost"}},
	})
	require.NoError(t, err)

	assert.Empty(t, store.ContactsInFolder(models.ContactsFolderID))
	assert.Len(t, store.AllFolders(), 2)
}

func TestApply_CreatedThenDeletedInOneNotification(t *testing.T) {
	r, store, channel := newTestReconciler(t)
	require.NoError(t, r.Apply(context.Background(), refreshNotification()))

	wire := []models.WireContact{{ID: "c9", FolderID: models.ContactsFolderID, FileAs: "Able, Ann"}}
	channel.EXPECT().GetContacts(gomock.Any(), []string{"c9"}).Return(wire, nil)

	// created применяется раньше deleted, поэтому итог — запись удалена
	err := r.Apply(context.Background(), models.Notification{
		Seq:     7,
		Created: &models.Changes{ContactIDs: []string{"c9"}},
		Deleted: &models.Deleted{ContactIDs: []string{"c9"}},
	})
	require.NoError(t, err)

	assert.Empty(t, store.ContactsInFolder(models.ContactsFolderID))
}

func TestApply_RefetchFailurePropagates(t *testing.T) {
	r, store, channel := newTestReconciler(t)
	require.NoError(t, r.Apply(context.Background(), refreshNotification()))

	channel.EXPECT().GetContacts(gomock.Any(), []string{"c9"}).
		Return(nil, errors.New("bad gateway"))

	err := r.Apply(context.Background(), models.Notification{
		Seq:     8,
		Created: &models.Changes{ContactIDs: []string{"c9"}},
	})
	require.Error(t, err)
	assert.Empty(t, store.ContactsInFolder(models.ContactsFolderID))
}

func TestApply_SecondRefreshSupersedesLocalState(t *testing.T) {
	r, store, _ := newTestReconciler(t)
	require.NoError(t, r.Apply(context.Background(), refreshNotification()))

	store.AddFolders(models.Folder{ID: "42", Label: "Clients", ParentID: models.ContactsFolderID})
	require.Len(t, store.AllFolders(), 3)

	// свежий снимок без папки "42" — она исчезает целиком
	require.NoError(t, r.Apply(context.Background(), refreshNotification()))
	assert.Len(t, store.AllFolders(), 2)
	assert.Nil(t, store.FolderByID("42"))
}

func TestCursor_ResetDropsSubsequentDeltas(t *testing.T) {
	r, store, _ := newTestReconciler(t)
	require.NoError(t, r.Apply(context.Background(), refreshNotification()))
	require.True(t, r.Cursor().Ready())

	r.Cursor().Reset()

	err := r.Apply(context.Background(), models.Notification{
		Seq:     9,
		Created: &models.Changes{ContactIDs: []string{"c9"}},
	})
	require.NoError(t, err)
	assert.Empty(t, store.ContactsInFolder(models.ContactsFolderID))
}
