// Package types defines every cross‑package data structure used by the trr CLI.
package types

const (
	NodeTypeFile       = "file"
	NodeTypeDirectory  = "directory"
	NodeTypeExcluded   = "excluded"
	NodeTypeUnreadable = "unreadable"

	CommandTree = "tree"

	SortByName    = "name"
	SortByListing = "none"
)

// TreeEventKind identifies what a tree event describes.
type TreeEventKind int

const (
	// TreeEventDirectory announces a directory that is about to be listed.
	TreeEventDirectory TreeEventKind = iota
	// TreeEventFile announces a non-directory entry.
	TreeEventFile
	// TreeEventExcluded announces an entry whose name is in the exclusion set.
	TreeEventExcluded
	// TreeEventUnreadable announces a directory whose listing failed.
	TreeEventUnreadable
)

// String returns the node type label for the event kind.
func (kind TreeEventKind) String() string {
	switch kind {
	case TreeEventDirectory:
		return NodeTypeDirectory
	case TreeEventFile:
		return NodeTypeFile
	case TreeEventExcluded:
		return NodeTypeExcluded
	case TreeEventUnreadable:
		return NodeTypeUnreadable
	default:
		return "unknown"
	}
}

// TreeEvent is one pre-order step of a directory walk.
// Depth is zero for the root directory.
type TreeEvent struct {
	Kind  TreeEventKind
	Path  string
	Name  string
	Depth int
	Err   error
}

// IsSupportedSortOrder reports whether the provided sort order is recognized.
func IsSupportedSortOrder(sortOrder string) bool {
	switch sortOrder {
	case SortByName, SortByListing:
		return true
	default:
		return false
	}
}
