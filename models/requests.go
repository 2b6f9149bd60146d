package models

// ContactOp is the operation code of a batched ContactAction request.
type ContactOp string

const (
	ContactOpMove   ContactOp = "move"
	ContactOpDelete ContactOp = "delete"
	ContactOpTag    ContactOp = "tag"
	ContactOpUntag  ContactOp = "!tag"
)

// FolderOp is the operation code of a FolderAction request.
type FolderOp string

const (
	FolderOpMove        FolderOp = "move"
	FolderOpRename      FolderOp = "rename"
	FolderOpDelete      FolderOp = "delete"
	FolderOpEmpty       FolderOp = "empty"
	FolderOpGrant       FolderOp = "grant"
	FolderOpRevokeGrant FolderOp = "!grant"
)

// SearchRequest is a paged, folder-scoped contact listing query.
type SearchRequest struct {
	FolderID string `json:"folderId"`
	Query    string `json:"query,omitempty"`
	SortBy   string `json:"sortBy,omitempty"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

// SearchResponse is one page of search results.
type SearchResponse struct {
	Contacts []WireContact `json:"cn,omitempty"`
	Offset   int           `json:"offset"`
	More     bool          `json:"more"`
}

// ContactActionRequest applies Op to every contact in IDs in one remote
// call. FolderID is the destination for move, TagID the tag for tag/!tag.
type ContactActionRequest struct {
	Op       ContactOp `json:"op"`
	IDs      []string  `json:"ids"`
	FolderID string    `json:"l,omitempty"`
	TagID    string    `json:"tag,omitempty"`
}

// CreateFolderRequest asks the server to create a folder. View is always
// FolderViewContact for this application.
type CreateFolderRequest struct {
	Name     string `json:"name"`
	Color    int    `json:"color,omitempty"`
	ParentID string `json:"l"`
	View     string `json:"view"`
}

// FolderActionRequest applies Op to the folder identified by ID. The
// remaining fields are op-specific: Name for rename, ParentID for move,
// GranteeID/Perm for grant and !grant.
type FolderActionRequest struct {
	Op        FolderOp `json:"op"`
	ID        string   `json:"id"`
	Name      string   `json:"name,omitempty"`
	ParentID  string   `json:"l,omitempty"`
	GranteeID string   `json:"zid,omitempty"`
	Perm      string   `json:"perm,omitempty"`
}
