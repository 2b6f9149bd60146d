package replica

import "errors"

// Sentinel errors returned by reducers. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrFolderNotFound is returned when a reducer targets a folder id that
	// is not present in the flat list.
	ErrFolderNotFound = errors.New("folder not found")
)
