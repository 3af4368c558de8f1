// Package pathfmt formats vault entry paths for the clipboard.
package pathfmt

import (
	"strings"

	"github.com/logos1012/obsidian-copy-path/internal/types"
)

// Separator joins formatted paths in the clipboard output.
const Separator = ", "

// Collect extracts the path of every file or folder entry, in input
// order, without deduplication. Entries of an unknown kind are skipped.
func Collect(entries []types.Entry) []string {
	var paths []string
	for _, entry := range entries {
		if entry.IsPathBearing() {
			paths = append(paths, entry.Path)
		}
	}
	return paths
}

// Format wraps each path in the style's quote character and joins them
// with ", ". The same quote character is used for every path in one
// invocation.
func Format(paths []string, style types.QuoteStyle) string {
	quote := style.Char()
	quoted := make([]string, len(paths))
	for i, path := range paths {
		quoted[i] = quote + path + quote
	}
	return strings.Join(quoted, Separator)
}
