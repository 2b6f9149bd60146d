package normalize

import (
	"strings"

	"github.com/dkotenko/abook/models"
)

// Address slot prefixes and component suffixes recognized in the remote
// attribute bag (e.g. "homeStreet", "workPostalCode").
var addressPrefixes = []string{"home", "work", "other"}

const (
	compStreet     = "Street"
	compCity       = "City"
	compState      = "State"
	compPostalCode = "PostalCode"
	compCountry    = "Country"
)

// NormalizeContact converts a wire contact into the canonical local shape.
// Transport-only fields (revision, modified date) are dropped; empty
// attribute values are omitted rather than stored as empty strings.
func NormalizeContact(w models.WireContact) models.Contact {
	c := models.Contact{
		ID:             w.ID,
		ParentFolderID: w.FolderID,
		FileAs:         w.FileAs,
	}
	if w.Tags != "" {
		c.TagIDs = strings.Split(w.Tags, ",")
	}

	for k, v := range w.Attrs {
		if v == "" {
			continue
		}
		switch k {
		case "namePrefix":
			c.NamePrefix = v
		case "firstName":
			c.FirstName = v
		case "middleName":
			c.MiddleName = v
		case "lastName":
			c.LastName = v
		case "nameSuffix":
			c.NameSuffix = v
		case "nickname":
			c.Nickname = v
		case "jobTitle":
			c.JobTitle = v
		case "department":
			c.Department = v
		case "company":
			c.Company = v
		case "notes":
			c.Notes = v
		default:
			normalizeSlot(&c, k, v)
		}
	}

	return c
}

func normalizeSlot(c *models.Contact, k, v string) {
	switch {
	case isEmailSlot(k):
		if c.Emails == nil {
			c.Emails = make(map[string]string)
		}
		c.Emails[k] = v
	case strings.HasSuffix(k, "URL"):
		if c.URLs == nil {
			c.URLs = make(map[string]string)
		}
		c.URLs[k] = v
	case strings.HasSuffix(k, "Phone"):
		if c.Phones == nil {
			c.Phones = make(map[string]string)
		}
		c.Phones[k] = v
	default:
		if prefix, comp, ok := splitAddressAttr(k); ok {
			if c.Addresses == nil {
				c.Addresses = make(map[string]models.PostalAddress)
			}
			addr := c.Addresses[prefix]
			switch comp {
			case compStreet:
				addr.Street = v
			case compCity:
				addr.City = v
			case compState:
				addr.State = v
			case compPostalCode:
				addr.PostalCode = v
			case compCountry:
				addr.Country = v
			}
			c.Addresses[prefix] = addr
		}
		// unrecognized attrs are dropped, not round-tripped
	}
}

// isEmailSlot matches "email", "email2", "email3", ... but not attrs that
// merely start with the word (e.g. "emailVerified" is not a slot).
func isEmailSlot(k string) bool {
	if k == "email" {
		return true
	}
	rest, found := strings.CutPrefix(k, "email")
	if !found || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func splitAddressAttr(k string) (prefix, comp string, ok bool) {
	for _, p := range addressPrefixes {
		rest, found := strings.CutPrefix(k, p)
		if !found {
			continue
		}
		switch rest {
		case compStreet, compCity, compState, compPostalCode, compCountry:
			return p, rest, true
		}
	}
	return "", "", false
}

// DenormalizeContact converts a canonical contact back into the wire
// attribute-bag form for CreateContact requests. The inverse of
// NormalizeContact for every attribute the local shape retains.
func DenormalizeContact(c models.Contact) models.WireContact {
	w := models.WireContact{
		ID:       c.ID,
		FolderID: c.ParentFolderID,
		FileAs:   c.FileAs,
		Tags:     strings.Join(c.TagIDs, ","),
		Attrs:    make(map[string]string),
	}

	put := func(k, v string) {
		if v != "" {
			w.Attrs[k] = v
		}
	}

	put("namePrefix", c.NamePrefix)
	put("firstName", c.FirstName)
	put("middleName", c.MiddleName)
	put("lastName", c.LastName)
	put("nameSuffix", c.NameSuffix)
	put("nickname", c.Nickname)
	put("jobTitle", c.JobTitle)
	put("department", c.Department)
	put("company", c.Company)
	put("notes", c.Notes)

	for k, v := range c.Emails {
		put(k, v)
	}
	for k, v := range c.Phones {
		put(k, v)
	}
	for k, v := range c.URLs {
		put(k, v)
	}
	for prefix, addr := range c.Addresses {
		put(prefix+compStreet, addr.Street)
		put(prefix+compCity, addr.City)
		put(prefix+compState, addr.State)
		put(prefix+compPostalCode, addr.PostalCode)
		put(prefix+compCountry, addr.Country)
	}

	if len(w.Attrs) == 0 {
		w.Attrs = nil
	}
	return w
}
