// Package vault resolves paths against an Obsidian vault on disk.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/logos1012/obsidian-copy-path/internal/logger"
	"github.com/logos1012/obsidian-copy-path/internal/types"
)

// Service resolves vault-relative paths and classifies entries.
type Service struct {
	vaultPath string
}

// New creates a Service rooted at vaultPath.
func New(vaultPath string) *Service {
	absPath, _ := filepath.Abs(vaultPath)
	return &Service{vaultPath: absPath}
}

// ResolvePath resolves a vault-relative path to an absolute one and
// validates that it stays inside the vault.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	relativePath = strings.TrimPrefix(relativePath, "/")

	fullPath := filepath.Join(s.vaultPath, filepath.FromSlash(relativePath))
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", err
	}

	// Security check: ensure path is within vault
	relPath, err := filepath.Rel(s.vaultPath, absPath)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

// Resolve stats a vault-relative path and returns it as a typed entry.
// The returned entry keeps the normalized forward-slash relative path.
func (s *Service) Resolve(path string) (types.Entry, error) {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return types.Entry{}, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.Entry{}, fmt.Errorf("entry not found: %s", path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return types.Entry{}, fmt.Errorf("permission denied: %s", path)
		}
		return types.Entry{}, fmt.Errorf("failed to stat entry: %s - %w", path, err)
	}

	relPath, err := filepath.Rel(s.vaultPath, fullPath)
	if err != nil {
		return types.Entry{}, err
	}

	entry := types.Entry{Path: filepath.ToSlash(relPath)}
	if info.IsDir() {
		entry.Kind = types.KindFolder
	} else {
		entry.Kind = types.KindFile
	}
	return entry, nil
}

// ResolveAll resolves every path in input order, silently skipping
// paths that no longer resolve to a file or folder.
func (s *Service) ResolveAll(paths []string) []types.Entry {
	entries := make([]types.Entry, 0, len(paths))
	for _, path := range paths {
		entry, err := s.Resolve(path)
		if err != nil {
			logger.Debug("skipping unresolvable path", "path", path, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Exists checks if a vault-relative path exists.
func (s *Service) Exists(path string) bool {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return false
	}
	_, err = os.Stat(fullPath)
	return err == nil
}

// Name returns the vault's display name, the base of its directory.
// Obsidian identifies vaults by this name in obsidian:// URIs.
func (s *Service) Name() string {
	return filepath.Base(s.vaultPath)
}

// Path returns the absolute vault path.
func (s *Service) Path() string {
	return s.vaultPath
}
