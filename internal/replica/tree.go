package replica

import (
	"sort"
	"strings"

	"github.com/dkotenko/abook/models"
)

// rebuildTree re-derives every folder's Depth, Path and Items from the
// current flat list, in place. It must be called after any structural
// change to the list; the whole derived set is rebuilt every time to avoid
// cumulative drift.
//
// Children are grouped in a single pass over the list rather than by
// repeated scans per folder — shared and trash subtrees can be deep enough
// for the quadratic relink to hurt. Sibling ties are broken by numeric id
// ascending, so well-known system folders with small fixed ids sort first.
func rebuildTree(folders []*models.Folder) {
	byID := make(map[string]*models.Folder, len(folders))
	for _, f := range folders {
		f.Items = nil
		byID[f.ID] = f
	}

	children := make(map[string][]*models.Folder, len(folders))
	for _, f := range folders {
		children[f.ParentID] = append(children[f.ParentID], f)
	}

	for parentID, group := range children {
		sort.SliceStable(group, func(i, j int) bool {
			return lessSibling(group[i], group[j])
		})
		if parent, ok := byID[parentID]; ok {
			parent.Items = group
		}
	}

	for _, f := range folders {
		f.Depth, f.Path = deriveDepthPath(f, byID)
	}
}

// deriveDepthPath walks parent links upward, accumulating ancestor labels
// and counting hops. A folder whose parent cannot be resolved is treated as
// directly under the root (depth 1). The walk guards against cycles, so a
// malformed parent chain degrades instead of hanging.
func deriveDepthPath(f *models.Folder, byID map[string]*models.Folder) (int, string) {
	depth := 1
	var labels []string
	if f.ID != models.RootFolderID {
		labels = append(labels, f.Label)
	}

	seen := map[string]bool{f.ID: true}
	cur := f
	for {
		parent, ok := byID[cur.ParentID]
		if !ok || seen[parent.ID] {
			break
		}
		seen[parent.ID] = true
		depth++
		if parent.ID != models.RootFolderID {
			labels = append(labels, parent.Label)
		}
		cur = parent
	}

	// labels were collected leaf-first; the path reads root-most first
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return depth, "/" + strings.Join(labels, "/")
}

func lessSibling(a, b *models.Folder) bool {
	an, as, aNumeric := a.SortKey()
	bn, bs, bNumeric := b.SortKey()

	switch {
	case aNumeric && bNumeric:
		return an < bn
	case aNumeric != bNumeric:
		return aNumeric
	default:
		return as < bs
	}
}
