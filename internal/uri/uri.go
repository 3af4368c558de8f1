// Package uri generates obsidian:// URIs for vault files.
package uri

import (
	"net/url"
	"strings"
)

// Generate builds an obsidian://open URI addressing a file by vault
// name and vault-relative path, the form Obsidian's URI handler
// accepts from outside the app.
func Generate(vaultName, filePath string) string {
	cleanPath := strings.TrimPrefix(filePath, "/")

	// Obsidian resolves .md files without the extension.
	cleanPath = strings.TrimSuffix(cleanPath, ".md")

	params := url.Values{}
	params.Set("vault", vaultName)
	params.Set("file", cleanPath)

	return "obsidian://open?" + params.Encode()
}
