package vault

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/logos1012/obsidian-copy-path/internal/types"
)

func setupTestVault(t *testing.T) (string, *Service) {
	t.Helper()
	tmpDir := t.TempDir()

	if err := os.MkdirAll(filepath.Join(tmpDir, "notes", "sub"), 0o755); err != nil {
		t.Fatalf("Failed to create dirs: %v", err)
	}
	for _, name := range []string{"notes/a.md", "notes/b.md", "notes/sub/c.md"} {
		path := filepath.Join(tmpDir, filepath.FromSlash(name))
		if err := os.WriteFile(path, []byte("# "+name), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	return tmpDir, New(tmpDir)
}

func TestResolve(t *testing.T) {
	_, svc := setupTestVault(t)

	tests := []struct {
		name string
		path string
		want types.Entry
	}{
		{
			name: "file",
			path: "notes/a.md",
			want: types.Entry{Path: "notes/a.md", Kind: types.KindFile},
		},
		{
			name: "folder",
			path: "notes/sub",
			want: types.Entry{Path: "notes/sub", Kind: types.KindFolder},
		},
		{
			name: "leading slash trimmed",
			path: "/notes/b.md",
			want: types.Entry{Path: "notes/b.md", Kind: types.KindFile},
		},
		{
			name: "surrounding whitespace trimmed",
			path: "  notes/a.md  ",
			want: types.Entry{Path: "notes/a.md", Kind: types.KindFile},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Resolve(tt.path)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolve_Missing(t *testing.T) {
	_, svc := setupTestVault(t)

	if _, err := svc.Resolve("notes/ghost.md"); err == nil {
		t.Error("Resolve() error = nil, want not-found error")
	}
}

func TestResolvePath_TraversalDenied(t *testing.T) {
	_, svc := setupTestVault(t)

	for _, path := range []string{"../outside.md", "notes/../../outside.md", ".."} {
		if _, err := svc.ResolvePath(path); err == nil {
			t.Errorf("ResolvePath(%q) error = nil, want traversal error", path)
		}
	}
}

func TestResolveAll_SkipsUnresolvable(t *testing.T) {
	_, svc := setupTestVault(t)

	got := svc.ResolveAll([]string{"notes/a.md", "missing.md", "../escape", "notes/sub"})
	want := []types.Entry{
		{Path: "notes/a.md", Kind: types.KindFile},
		{Path: "notes/sub", Kind: types.KindFolder},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveAll() = %+v, want %+v", got, want)
	}
}

func TestExists(t *testing.T) {
	_, svc := setupTestVault(t)

	if !svc.Exists("notes/a.md") {
		t.Error("Exists(notes/a.md) = false, want true")
	}
	if svc.Exists("notes/ghost.md") {
		t.Error("Exists(notes/ghost.md) = true, want false")
	}
	if svc.Exists("../escape") {
		t.Error("Exists(../escape) = true, want false")
	}
}

func TestName(t *testing.T) {
	tmpDir, _ := setupTestVault(t)
	svc := New(tmpDir)

	if got, want := svc.Name(), filepath.Base(tmpDir); got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}
