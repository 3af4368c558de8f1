// Package workspace reads Obsidian's persisted workspace layout.
//
// The layout lives in .obsidian/workspace.json and is host-internal
// state with no stability guarantee, so every lookup here is defensive:
// a missing file, unparseable JSON, or an unexpected shape yields "no
// active file" or "no selection" rather than an error.
package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const workspaceFile = "workspace.json"

// Service answers selection queries against a vault's workspace state.
type Service struct {
	vaultPath string
}

// New creates a Service for the vault at vaultPath.
func New(vaultPath string) *Service {
	return &Service{vaultPath: vaultPath}
}

// ActiveFile returns the vault-relative path of the currently focused
// file, or false if no file is focused or the layout cannot be read.
func (s *Service) ActiveFile() (string, bool) {
	root, ok := s.load()
	if !ok {
		return "", false
	}

	activeID, ok := asString(root["active"])
	if !ok || activeID == "" {
		return "", false
	}

	for _, leaf := range collectLeaves(root["main"]) {
		id, _ := asString(leaf["id"])
		if id != activeID {
			continue
		}
		state, ok := asMap(leaf["state"])
		if !ok {
			return "", false
		}
		viewState, ok := asMap(state["state"])
		if !ok {
			return "", false
		}
		file, ok := asString(viewState["file"])
		return file, ok && file != ""
	}

	return "", false
}

// SelectedPaths returns the paths marked selected in the file-explorer
// view. Absence of the explorer leaf or of a recognizable selection
// list is treated as an empty selection, never as an error.
func (s *Service) SelectedPaths() []string {
	root, ok := s.load()
	if !ok {
		return nil
	}

	leaves := collectLeaves(root["main"])
	leaves = append(leaves, collectLeaves(root["left"])...)

	for _, leaf := range leaves {
		state, ok := asMap(leaf["state"])
		if !ok {
			continue
		}
		viewType, _ := asString(state["type"])
		if viewType != "file-explorer" {
			continue
		}
		viewState, ok := asMap(state["state"])
		if !ok {
			return nil
		}
		items, ok := viewState["selectedPaths"].([]any)
		if !ok {
			return nil
		}
		var paths []string
		for _, item := range items {
			if path, ok := asString(item); ok && path != "" {
				paths = append(paths, path)
			}
		}
		return paths
	}

	return nil
}

func (s *Service) load() (map[string]any, bool) {
	data, err := os.ReadFile(filepath.Join(s.vaultPath, ".obsidian", workspaceFile))
	if err != nil {
		return nil, false
	}
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, false
	}
	return root, true
}

// collectLeaves walks a split/tabs/leaf tree and returns every leaf node.
func collectLeaves(node any) []map[string]any {
	m, ok := asMap(node)
	if !ok {
		return nil
	}

	nodeType, _ := asString(m["type"])
	if nodeType == "leaf" {
		return []map[string]any{m}
	}

	children, ok := m["children"].([]any)
	if !ok {
		return nil
	}
	var leaves []map[string]any
	for _, child := range children {
		leaves = append(leaves, collectLeaves(child)...)
	}
	return leaves
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
