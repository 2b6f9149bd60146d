package models

import "strings"

// Contact is the canonical local representation of a single address-book
// entry. It is denormalized from the remote attribute-bag format by the
// normalize package and is the only contact shape the replica store holds.
type Contact struct {
	// ID is the server-issued identifier. It is empty for a provisional
	// record that was created optimistically and has not yet been confirmed
	// by the server.
	ID string `json:"id,omitempty"`

	// ParentFolderID names the folder that owns this contact. A contact
	// belongs to exactly one folder at any instant.
	ParentFolderID string `json:"parent"`

	// FileAs is the display key the server computed for list ordering.
	FileAs string `json:"fileAs,omitempty"`

	NamePrefix string `json:"namePrefix,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	NameSuffix string `json:"nameSuffix,omitempty"`
	Nickname   string `json:"nickname,omitempty"`

	JobTitle   string `json:"jobTitle,omitempty"`
	Department string `json:"department,omitempty"`
	Company    string `json:"company,omitempty"`

	// Multi-valued fields, each keyed by a locally-unique slot id
	// (e.g. "email", "email2", "mobilePhone", "workURL", "home").
	Emails    map[string]string        `json:"emails,omitempty"`
	Phones    map[string]string        `json:"phones,omitempty"`
	URLs      map[string]string        `json:"urls,omitempty"`
	Addresses map[string]PostalAddress `json:"addresses,omitempty"`

	Notes string `json:"notes,omitempty"`

	// TagIDs lists ids of tags applied to this contact.
	TagIDs []string `json:"tags,omitempty"`
}

// PostalAddress is one structured postal address slot of a contact.
type PostalAddress struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Provisional reports whether the contact exists only locally, between an
// optimistic create and its server confirmation.
func (c *Contact) Provisional() bool {
	return c.ID == ""
}

// DisplayKey returns the normalized, case-insensitive key used for sorted
// insertion into a folder bucket. FileAs wins when the server provided it;
// otherwise the key is composed from last/first name, then company.
func (c *Contact) DisplayKey() string {
	if c.FileAs != "" {
		return strings.ToLower(c.FileAs)
	}
	if c.LastName != "" || c.FirstName != "" {
		return strings.ToLower(strings.TrimSpace(c.LastName + ", " + c.FirstName))
	}
	return strings.ToLower(c.Company)
}

// HasTag reports whether tagID is present in the contact's tag list.
func (c *Contact) HasTag(tagID string) bool {
	for _, id := range c.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the contact. Maps and slices are copied so
// that mutating the clone never aliases the original.
func (c *Contact) Clone() *Contact {
	out := *c
	out.Emails = cloneStringMap(c.Emails)
	out.Phones = cloneStringMap(c.Phones)
	out.URLs = cloneStringMap(c.URLs)
	if c.Addresses != nil {
		out.Addresses = make(map[string]PostalAddress, len(c.Addresses))
		for k, v := range c.Addresses {
			out.Addresses[k] = v
		}
	}
	if c.TagIDs != nil {
		out.TagIDs = append([]string(nil), c.TagIDs...)
	}
	return &out
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
