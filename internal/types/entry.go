// Package types defines the data structures shared across the copy-path tool.
package types

// EntryKind distinguishes files from folders in the vault.
type EntryKind string

const (
	// KindFile marks an entry backed by a regular file.
	KindFile EntryKind = "file"
	// KindFolder marks an entry backed by a directory.
	KindFolder EntryKind = "folder"
)

// Entry is a path-bearing handle to a file or folder in the vault.
// Path is always vault-relative with forward slashes.
type Entry struct {
	Path string    `json:"path"`
	Kind EntryKind `json:"kind"`
}

// IsPathBearing reports whether the entry carries a usable path, i.e.
// whether it is a known file or folder.
func (e Entry) IsPathBearing() bool {
	return e.Kind == KindFile || e.Kind == KindFolder
}
