package models

import "strconv"

// Well-known system folder ids issued by the server. System folders have
// small fixed numeric ids and sort before user folders.
const (
	// RootFolderID is the sentinel id of the account root. It never appears
	// as a selectable folder; every top-level folder names it as parent.
	RootFolderID = "1"

	// TrashFolderID is the fixed id of the trash folder. A delete issued
	// against a record already in trash is permanent.
	TrashFolderID = "3"

	// ContactsFolderID is the fixed id of the default contacts folder.
	ContactsFolderID = "7"
)

// Grant is one access-control entry on a shared folder.
type Grant struct {
	GranteeID   string `json:"granteeId"`
	GranteeName string `json:"granteeName,omitempty"`
	Perm        string `json:"perm"`
}

// Folder is the canonical local representation of one address-book folder.
//
// Depth, Path and Items are derived fields: they are a pure function of the
// current flat folder list and are recomputed by the tree builder after any
// structural change. A folder must never be read with stale derived fields.
type Folder struct {
	// ID is the server-issued identifier, or a locally generated placeholder
	// id while an optimistic create is in flight.
	ID string `json:"id"`

	Label string `json:"label"`
	Color int    `json:"color,omitempty"`

	// ItemsCount is a cached count of contacts in the folder, maintained
	// incrementally by the replica reducers. It may briefly diverge from the
	// literal bucket length for partially synced folders; a full refresh is
	// the authority that corrects drift.
	ItemsCount int `json:"itemsCount"`

	// ParentID names the containing folder, or RootFolderID for top-level
	// folders. The folder collection forms a forest.
	ParentID string `json:"parent"`

	// Sharing metadata for folders mounted from or shared with other users.
	Owner  string  `json:"owner,omitempty"`
	Grants []Grant `json:"grants,omitempty"`
	Perm   string  `json:"perm,omitempty"`

	// Derived fields, see the type comment.
	Depth int       `json:"depth"`
	Path  string    `json:"path"`
	Items []*Folder `json:"-"`
}

// IsSystem reports whether the folder is one of the fixed system folders.
func (f *Folder) IsSystem() bool {
	return f.ID == RootFolderID || f.ID == TrashFolderID || f.ID == ContactsFolderID
}

// SortKey returns the sibling ordering key: numeric ids ascending first
// (system folders have small fixed ids and therefore sort before user
// folders), non-numeric ids after, compared lexically among themselves.
func (f *Folder) SortKey() (num int64, lexical string, numeric bool) {
	n, err := strconv.ParseInt(f.ID, 10, 64)
	if err != nil {
		return 0, f.ID, false
	}
	return n, "", true
}

// Clone returns a deep copy of the folder without its derived child links.
// Items is deliberately dropped: clones are taken for snapshots of the flat
// list, and the tree builder rebuilds child linkage from scratch.
func (f *Folder) Clone() *Folder {
	out := *f
	out.Items = nil
	if f.Grants != nil {
		out.Grants = append([]Grant(nil), f.Grants...)
	}
	return &out
}
