package models

// Wire-format shapes as the remote store sends them. They are decoded and
// validated by the normalize package and never stored in the replica
// directly; transport-only fields (revision, modified-date) are dropped
// during normalization.

// WireContact is the remote representation of a contact: a thin envelope
// plus a flat attribute bag keyed by slot names such as "firstName",
// "email2" or "mobilePhone".
type WireContact struct {
	ID       string `json:"id"`
	FolderID string `json:"l"`
	FileAs   string `json:"fileAsStr,omitempty"`

	// Tags is a comma-separated list of tag ids.
	Tags string `json:"t,omitempty"`

	// Revision and Date are transport-only and dropped on normalization.
	Revision int64 `json:"rev,omitempty"`
	Date     int64 `json:"d,omitempty"`

	Attrs map[string]string `json:"_attrs,omitempty"`
}

// FolderViewContact marks folders holding contacts in the remote tree;
// folders of any other view are filtered out during flattening.
const FolderViewContact = "contact"

// WireFolder is the remote representation of a folder node. The initial
// snapshot and every full refresh deliver a recursive tree of these:
// Folders holds owned children, Links holds mountpoints of folders shared
// by other users.
type WireFolder struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ParentID   string `json:"l"`
	Color      int    `json:"color,omitempty"`
	ItemsCount int    `json:"n"`
	View       string `json:"view,omitempty"`

	Owner string      `json:"owner,omitempty"`
	Perm  string      `json:"perm,omitempty"`
	ACL   *WireACL    `json:"acl,omitempty"`
	UUID  string      `json:"uuid,omitempty"`

	Folders []WireFolder `json:"folder,omitempty"`
	Links   []WireFolder `json:"link,omitempty"`
}

// WireACL wraps the grant list of a shared folder.
type WireACL struct {
	Grants []WireGrant `json:"grant,omitempty"`
}

// WireGrant is one access-control entry in remote form.
type WireGrant struct {
	GranteeID   string `json:"zid"`
	GranteeName string `json:"d,omitempty"`
	Perm        string `json:"perm"`
}
