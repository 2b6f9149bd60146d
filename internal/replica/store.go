package replica

import (
	"fmt"
	"sort"
	"sync"

	"dario.cat/mergo"

	"github.com/dkotenko/abook/internal/logger"
	"github.com/dkotenko/abook/models"
)

// Status is the per-folder mutation status flag exposed to the UI for
// spinner/disable-button logic.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusFailed
)

// Store is the replica of the remote address book. It is safe for
// concurrent use; reducers run to completion under the write lock, so a
// mutation is never observable half-applied.
type Store struct {
	mu      sync.RWMutex
	folders []*models.Folder
	buckets map[string][]*models.Contact
	status  map[string]Status

	logger *logger.Logger
}

// NewStore returns an empty replica store.
func NewStore(log *logger.Logger) *Store {
	return &Store{
		buckets: make(map[string][]*models.Contact),
		status:  make(map[string]Status),
		logger:  log,
	}
}

// ── selectors ────────────────────────────────────────────────────────────────

// ContactsInFolder returns deep copies of the folder's contacts in display
// order, or nil when the folder has no bucket.
func (s *Store) ContactsInFolder(folderID string) []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket, ok := s.buckets[folderID]
	if !ok {
		return nil
	}
	out := make([]models.Contact, 0, len(bucket))
	for _, c := range bucket {
		out = append(out, *c.Clone())
	}
	return out
}

// ContactByID returns a deep copy of the contact with the given id in the
// given folder, or nil when absent.
func (s *Store) ContactByID(folderID, id string) *models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.buckets[folderID] {
		if c.ID == id {
			return c.Clone()
		}
	}
	return nil
}

// FolderByID returns a deep copy of the folder with derived fields current,
// or nil when absent. The copy's Items links point into a cloned forest.
func (s *Store) FolderByID(id string) *models.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.cloneForestLocked() {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// AllFolders returns a deep copy of the flat folder list with derived
// fields current. Child links connect the returned copies to each other.
func (s *Store) AllFolders() []*models.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cloneForestLocked()
}

// Status returns the folder's mutation status, StatusIdle when unknown.
func (s *Store) Status(folderID string) Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.status[folderID]
}

// cloneForestLocked deep-copies the flat list and re-derives the tree on
// the copies, so returned folders never alias store state.
func (s *Store) cloneForestLocked() []*models.Folder {
	out := make([]*models.Folder, 0, len(s.folders))
	for _, f := range s.folders {
		out = append(out, f.Clone())
	}
	rebuildTree(out)
	return out
}

// ── contact reducers ─────────────────────────────────────────────────────────

// AddContacts inserts contacts into the folder's bucket at their sorted
// display position and bumps the folder's cached ItemsCount per actual
// insert. A contact whose non-empty id is already present in the bucket is
// updated in place instead of duplicated.
func (s *Store) AddContacts(folderID string, contacts ...models.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range contacts {
		c := contacts[i].Clone()
		c.ParentFolderID = folderID
		if c.ID != "" {
			if idx := indexByIDLocked(s.buckets[folderID], c.ID); idx >= 0 {
				s.buckets[folderID][idx] = c
				continue
			}
		}
		s.insertSortedLocked(folderID, c)
		s.adjustCountLocked(folderID, 1)
	}
}

// UpsertContact merges one re-fetched contact into the replica:
//   - present in its own folder's bucket — replaced at its sorted position;
//   - present in another bucket (parent changed) — removed from the old
//     bucket and appended to the new one;
//   - absent — inserted at its sorted position.
//
// Applying the same record twice leaves exactly one row for its id.
func (s *Store) UpsertContact(c models.Contact) {
	if c.ID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	clone := c.Clone()
	for folderID, bucket := range s.buckets {
		idx := indexByIDLocked(bucket, c.ID)
		if idx < 0 {
			continue
		}
		if folderID == c.ParentFolderID {
			s.buckets[folderID] = append(bucket[:idx], bucket[idx+1:]...)
			s.insertSortedLocked(folderID, clone)
			return
		}
		// parent changed: remove from the old bucket, append to the new
		s.buckets[folderID] = append(bucket[:idx], bucket[idx+1:]...)
		s.adjustCountLocked(folderID, -1)
		s.buckets[c.ParentFolderID] = append(s.buckets[c.ParentFolderID], clone)
		s.adjustCountLocked(c.ParentFolderID, 1)
		return
	}

	s.insertSortedLocked(c.ParentFolderID, clone)
	s.adjustCountLocked(c.ParentFolderID, 1)
}

// RemoveContacts removes the named ids from whichever buckets currently
// hold them. A nil id list acts as a sweep that drops every provisional
// (id-less) record — used during rollback of failed creates.
func (s *Store) RemoveContacts(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var want map[string]bool
	if ids != nil {
		want = make(map[string]bool, len(ids))
		for _, id := range ids {
			want[id] = true
		}
	}

	for folderID, bucket := range s.buckets {
		kept := bucket[:0]
		removed := 0
		for _, c := range bucket {
			drop := false
			if want == nil {
				drop = c.Provisional()
			} else {
				drop = c.ID != "" && want[c.ID]
			}
			if drop {
				removed++
				continue
			}
			kept = append(kept, c)
		}
		if removed > 0 {
			s.buckets[folderID] = kept
			s.adjustCountLocked(folderID, -removed)
		}
	}
}

// MoveContacts atomically moves the named contacts from the origin bucket
// to the destination bucket: removal and insertion happen under one lock
// acquisition, so no reader ever observes a contact in both buckets or in
// neither. Cached counts are adjusted by the number actually moved.
// Returns that number.
func (s *Store) MoveContacts(ids []string, from, to string) int {
	if from == to {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	bucket := s.buckets[from]
	kept := bucket[:0]
	var moved []*models.Contact
	for _, c := range bucket {
		if c.ID != "" && want[c.ID] {
			moved = append(moved, c)
			continue
		}
		kept = append(kept, c)
	}
	if len(moved) == 0 {
		return 0
	}
	s.buckets[from] = kept

	for _, c := range moved {
		c.ParentFolderID = to
		s.insertSortedLocked(to, c)
	}

	s.adjustCountLocked(from, -len(moved))
	s.adjustCountLocked(to, len(moved))
	return len(moved)
}

// ConfirmContact commits an optimistic create: the provisional record in
// the folder's bucket is replaced by the server-confirmed one rather than
// re-inserted, so no duplicate row becomes visible. If a push notification
// already delivered the confirmed id, the provisional record is simply
// dropped.
func (s *Store) ConfirmContact(folderID string, confirmed models.Contact) {
	if confirmed.ID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.buckets[folderID]

	provIdx := -1
	key := confirmed.DisplayKey()
	for i, c := range bucket {
		if !c.Provisional() {
			continue
		}
		if c.DisplayKey() == key {
			provIdx = i
			break
		}
		if provIdx < 0 {
			provIdx = i
		}
	}

	clone := confirmed.Clone()
	clone.ParentFolderID = folderID

	confirmedIdx := indexByIDLocked(bucket, confirmed.ID)

	if provIdx >= 0 {
		bucket = append(bucket[:provIdx], bucket[provIdx+1:]...)
		s.buckets[folderID] = bucket
		if confirmedIdx > provIdx {
			confirmedIdx--
		}
	}

	if confirmedIdx >= 0 {
		// a push notification already delivered the confirmed record
		bucket[confirmedIdx] = clone
		if provIdx >= 0 {
			s.adjustCountLocked(folderID, -1)
		}
		return
	}

	if provIdx < 0 {
		s.adjustCountLocked(folderID, 1)
	}
	s.insertSortedLocked(folderID, clone)
}

// TagContacts applies or removes tagID on every named contact in the
// folder's bucket. Unknown ids are skipped.
func (s *Store) TagContacts(folderID string, ids []string, tagID string, apply bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	for _, c := range s.buckets[folderID] {
		if c.ID == "" || !want[c.ID] {
			continue
		}
		if apply {
			if !c.HasTag(tagID) {
				c.TagIDs = append(c.TagIDs, tagID)
			}
			continue
		}
		for i, id := range c.TagIDs {
			if id == tagID {
				c.TagIDs = append(c.TagIDs[:i], c.TagIDs[i+1:]...)
				break
			}
		}
	}
}

// ── folder reducers ──────────────────────────────────────────────────────────

// AddFolders adds folders to the flat list (updating any already present by
// id) and re-derives the tree.
func (s *Store) AddFolders(folders ...models.Folder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range folders {
		f := folders[i].Clone()
		if idx := s.folderIndexLocked(f.ID); idx >= 0 {
			s.folders[idx] = f
			continue
		}
		s.folders = append(s.folders, f)
	}
	rebuildTree(s.folders)
}

// RemoveFolders removes the named folders, drops their contact buckets and
// status entries, and re-derives the tree.
func (s *Store) RemoveFolders(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	kept := s.folders[:0]
	for _, f := range s.folders {
		if want[f.ID] {
			delete(s.buckets, f.ID)
			delete(s.status, f.ID)
			continue
		}
		kept = append(kept, f)
	}
	s.folders = kept
	rebuildTree(s.folders)
}

// UpdateFolder merges patch into the folder with the given id: non-zero
// patch fields override current values (mergo semantics — clearing a field
// to its zero value requires a dedicated reducer such as
// ReplaceFolderGrants). The tree is re-derived afterwards.
func (s *Store) UpdateFolder(id string, patch models.Folder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.folderIndexLocked(id)
	if idx < 0 {
		return fmt.Errorf("update folder %s: %w", id, ErrFolderNotFound)
	}

	updated := s.folders[idx].Clone()
	patch.ID = ""
	patch.Items = nil
	if err := mergo.Merge(updated, patch.Clone(), mergo.WithOverride); err != nil {
		return fmt.Errorf("merge folder patch %s: %w", id, err)
	}

	s.folders[idx] = updated
	rebuildTree(s.folders)
	return nil
}

// ReplaceFolderGrants wholesale-replaces the folder's access-control list.
// Needed because a mergo patch cannot clear a slice.
func (s *Store) ReplaceFolderGrants(id string, grants []models.Grant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.folderIndexLocked(id)
	if idx < 0 {
		return fmt.Errorf("replace grants on folder %s: %w", id, ErrFolderNotFound)
	}

	s.folders[idx].Grants = append([]models.Grant(nil), grants...)
	return nil
}

// ReplaceFolders wholesale-replaces the flat folder list — the full-refresh
// path. Buckets and status flags of folders that vanished are dropped; the
// rest are kept so contact state survives a refresh.
func (s *Store) ReplaceFolders(folders []models.Folder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]*models.Folder, 0, len(folders))
	alive := make(map[string]bool, len(folders))
	for i := range folders {
		next = append(next, folders[i].Clone())
		alive[folders[i].ID] = true
	}

	for id := range s.buckets {
		if !alive[id] {
			delete(s.buckets, id)
		}
	}
	for id := range s.status {
		if !alive[id] {
			delete(s.status, id)
		}
	}

	s.folders = next
	rebuildTree(s.folders)
}

// ReplacePlaceholderFolder commits an optimistic folder create: the locally
// generated placeholder is removed and the server-confirmed folder takes
// its place. Status carries over from the placeholder id.
func (s *Store) ReplacePlaceholderFolder(placeholderID string, confirmed models.Folder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.folderIndexLocked(placeholderID); idx >= 0 {
		s.folders = append(s.folders[:idx], s.folders[idx+1:]...)
	}
	if st, ok := s.status[placeholderID]; ok {
		delete(s.status, placeholderID)
		s.status[confirmed.ID] = st
	}
	delete(s.buckets, placeholderID)

	if idx := s.folderIndexLocked(confirmed.ID); idx >= 0 {
		s.folders[idx] = confirmed.Clone()
	} else {
		s.folders = append(s.folders, confirmed.Clone())
	}
	rebuildTree(s.folders)
}

// SetStatus sets the folder's mutation status flag.
func (s *Store) SetStatus(folderID string, st Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st == StatusIdle {
		delete(s.status, folderID)
		return
	}
	s.status[folderID] = st
}

// ── snapshots ────────────────────────────────────────────────────────────────

// SnapshotBucket captures a deep copy of one folder's contact bucket for a
// pending mutation. The nil/empty distinction is preserved so a rollback
// restores the exact pre-mutation shape.
func (s *Store) SnapshotBucket(folderID string) []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket, ok := s.buckets[folderID]
	if !ok {
		return nil
	}
	snap := make([]models.Contact, 0, len(bucket))
	for _, c := range bucket {
		snap = append(snap, *c.Clone())
	}
	return snap
}

// RestoreBucket wholesale-replaces one folder's bucket from a snapshot.
// Restoring is last-writer-wins at the bucket level: a concurrent mutation
// that committed into the same bucket after the snapshot was taken is
// discarded along with the rolled-back change.
func (s *Store) RestoreBucket(folderID string, snap []models.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap == nil {
		delete(s.buckets, folderID)
		return
	}
	bucket := make([]*models.Contact, 0, len(snap))
	for i := range snap {
		bucket = append(bucket, snap[i].Clone())
	}
	s.buckets[folderID] = bucket
}

// SnapshotFolders captures a deep copy of the flat folder list (cached
// counts included, derived child links dropped).
func (s *Store) SnapshotFolders() []models.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := make([]models.Folder, 0, len(s.folders))
	for _, f := range s.folders {
		snap = append(snap, *f.Clone())
	}
	return snap
}

// RestoreFolders wholesale-replaces the flat folder list from a snapshot
// and re-derives the tree. Buckets are left untouched; callers restore the
// buckets they snapshotted.
func (s *Store) RestoreFolders(snap []models.Folder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]*models.Folder, 0, len(snap))
	for i := range snap {
		next = append(next, snap[i].Clone())
	}
	s.folders = next
	rebuildTree(s.folders)
}

// ── internal helpers ─────────────────────────────────────────────────────────

func (s *Store) insertSortedLocked(folderID string, c *models.Contact) {
	bucket := s.buckets[folderID]
	key := c.DisplayKey()
	pos := sort.Search(len(bucket), func(i int) bool {
		return bucket[i].DisplayKey() >= key
	})
	bucket = append(bucket, nil)
	copy(bucket[pos+1:], bucket[pos:])
	bucket[pos] = c
	s.buckets[folderID] = bucket
}

func (s *Store) folderIndexLocked(id string) int {
	for i, f := range s.folders {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) adjustCountLocked(folderID string, delta int) {
	idx := s.folderIndexLocked(folderID)
	if idx < 0 {
		return
	}
	s.folders[idx].ItemsCount += delta
	if s.folders[idx].ItemsCount < 0 {
		s.folders[idx].ItemsCount = 0
	}
}

func indexByIDLocked(bucket []*models.Contact, id string) int {
	for i, c := range bucket {
		if c.ID == id {
			return i
		}
	}
	return -1
}
