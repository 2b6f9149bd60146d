package normalize

import (
	"github.com/dkotenko/abook/models"
)

// NormalizeFolder converts a single wire folder node into the canonical
// local shape. Child nodes are not followed — use [FlattenTree] for a
// recursive remote tree. Derived fields (Depth, Path, Items) are left zero;
// they belong to the tree builder.
func NormalizeFolder(w models.WireFolder) models.Folder {
	f := models.Folder{
		ID:         w.ID,
		Label:      w.Name,
		Color:      w.Color,
		ItemsCount: w.ItemsCount,
		ParentID:   w.ParentID,
		Owner:      w.Owner,
		Perm:       w.Perm,
	}

	if w.ACL != nil && len(w.ACL.Grants) > 0 {
		f.Grants = make([]models.Grant, 0, len(w.ACL.Grants))
		for _, g := range w.ACL.Grants {
			f.Grants = append(f.Grants, models.Grant{
				GranteeID:   g.GranteeID,
				GranteeName: g.GranteeName,
				Perm:        g.Perm,
			})
		}
	}

	return f
}

// FlattenTree walks the remote folder/link tree and returns the flat list
// of folders this application cares about: contact-view folders at any
// depth, plus the trash folder by its fixed id. Link (shared mountpoint)
// subtrees are traversed the same as owned subtrees.
//
// The walk uses an explicit worklist so that stack depth stays bounded
// regardless of server-reported nesting.
func FlattenTree(root models.WireFolder) []models.Folder {
	var out []models.Folder

	stack := make([]*models.WireFolder, 0, 16)
	stack = append(stack, &root)

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.View == models.FolderViewContact || node.ID == models.TrashFolderID {
			out = append(out, NormalizeFolder(*node))
		}

		for i := range node.Folders {
			stack = append(stack, &node.Folders[i])
		}
		for i := range node.Links {
			stack = append(stack, &node.Links[i])
		}
	}

	return out
}
