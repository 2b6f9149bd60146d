package models

// Notification is one push event from the out-of-band stream. Exactly the
// keys present in the payload are set; all pointers are optional.
//
// Notifications must be applied strictly in arrival order: a Modified for an
// id logically following a Created for the same id must observe the created
// state first.
type Notification struct {
	// Seq is the server-side sequence number of the event, informational.
	Seq int64 `json:"seq,omitempty"`

	// Refresh carries a complete folder snapshot (the account root node with
	// its recursive subtree). It supersedes all locally derived folder state
	// and marks the sync cursor as initialized.
	Refresh *WireFolder `json:"refresh,omitempty"`

	Created  *Changes `json:"created,omitempty"`
	Modified *Changes `json:"modified,omitempty"`
	Deleted  *Deleted `json:"deleted,omitempty"`
}

// Changes lists created or modified entities of both kinds. Contact changes
// carry only ids — full records are re-fetched by the reconciler — while
// folder changes carry the full remote record.
type Changes struct {
	ContactIDs []string     `json:"cn,omitempty"`
	Folders    []WireFolder `json:"folder,omitempty"`
}

// Deleted lists removed entity ids per kind.
type Deleted struct {
	ContactIDs []string `json:"cn,omitempty"`
	FolderIDs  []string `json:"folder,omitempty"`
}

// Empty reports whether the notification carries no payload at all.
func (n *Notification) Empty() bool {
	return n.Refresh == nil && n.Created == nil && n.Modified == nil && n.Deleted == nil
}
