package models

// AutoCompleteMatch is one parsed match from the autocomplete response.
// The wire form is an XML attribute bag where every value is a string and
// isGroup is encoded as "1" or absent; the adapter derives the boolean.
type AutoCompleteMatch struct {
	Email     string `json:"email,omitempty"`
	First     string `json:"first,omitempty"`
	Last      string `json:"last,omitempty"`
	Middle    string `json:"middle,omitempty"`
	Nickname  string `json:"nickname,omitempty"`
	Company   string `json:"company,omitempty"`
	FileAs    string `json:"fileas,omitempty"`
	FullName  string `json:"full,omitempty"`
	Type      string `json:"type,omitempty"`
	Ranking   string `json:"ranking,omitempty"`
	ContactID string `json:"id,omitempty"`
	FolderID  string `json:"l,omitempty"`
	IsGroup   bool   `json:"isGroup"`
}
