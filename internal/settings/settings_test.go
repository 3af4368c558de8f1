package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/logos1012/obsidian-copy-path/internal/types"
)

func writeBlob(t *testing.T, vaultPath, content string) {
	t.Helper()
	dir := filepath.Join(vaultPath, ".obsidian", "plugins", "copy-path")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create plugin dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "data.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write data.json: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	store := NewStore(t.TempDir())

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !got.ShowNotice {
		t.Error("ShowNotice = false, want default true")
	}
	if got.QuoteStyle != types.QuoteSingle {
		t.Errorf("QuoteStyle = %q, want single", got.QuoteStyle)
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want types.Settings
	}{
		{
			name: "full blob",
			blob: `{"showNotice": false, "quoteStyle": "double"}`,
			want: types.Settings{ShowNotice: false, QuoteStyle: types.QuoteDouble},
		},
		{
			name: "missing quoteStyle falls back to single",
			blob: `{"showNotice": false}`,
			want: types.Settings{ShowNotice: false, QuoteStyle: types.QuoteSingle},
		},
		{
			name: "stale quoteStyle falls back to single",
			blob: `{"showNotice": true, "quoteStyle": "fancy"}`,
			want: types.Settings{ShowNotice: true, QuoteStyle: types.QuoteSingle},
		},
		{
			name: "empty object keeps all defaults",
			blob: `{}`,
			want: types.DefaultSettings(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vaultPath := t.TempDir()
			writeBlob(t, vaultPath, tt.blob)

			got, err := NewStore(vaultPath).Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoad_CorruptBlobKeepsDefaults(t *testing.T) {
	vaultPath := t.TempDir()
	writeBlob(t, vaultPath, `{not json`)

	got, err := NewStore(vaultPath).Load()
	if err == nil {
		t.Error("Load() error = nil, want parse error")
	}
	if got != types.DefaultSettings() {
		t.Errorf("Load() = %+v, want defaults on corrupt blob", got)
	}
}

func TestSave_WritesThrough(t *testing.T) {
	vaultPath := t.TempDir()
	store := NewStore(vaultPath)

	want := types.Settings{ShowNotice: false, QuoteStyle: types.QuoteDouble}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// The blob must be readable immediately, including by a fresh store.
	got, err := NewStore(vaultPath).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("Load() after Save() = %+v, want %+v", got, want)
	}

	if _, err := os.Stat(store.Path()); err != nil {
		t.Errorf("settings blob missing at %s: %v", store.Path(), err)
	}
}
