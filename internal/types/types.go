// Package types defines every cross-package data structure used by the tree CLI.
package types

// EntryKind classifies a directory entry discovered during traversal.
type EntryKind string

const (
	EntryKindDirectory EntryKind = "directory"
	EntryKindFile      EntryKind = "file"
	EntryKindSymlink   EntryKind = "symlink"
	EntryKindOther     EntryKind = "other"

	SortOrderBytes   = "bytes"
	SortOrderNatural = "natural"
)

// DirectoryEntry is one node of the in-memory tree built by a single walk.
// Children is populated only for directories that were expanded.
type DirectoryEntry struct {
	Name      string
	Kind      EntryKind
	Truncated bool
	Children  []*DirectoryEntry
}

// IsDirectory reports whether the entry is a directory.
func (entry *DirectoryEntry) IsDirectory() bool {
	return entry != nil && entry.Kind == EntryKindDirectory
}

// RenderLine is one flattened, filtered and pruned line of rendered output.
type RenderLine struct {
	Depth       int
	Name        string
	IsDirectory bool
}
