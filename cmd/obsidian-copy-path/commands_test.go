package main

import (
	"errors"
	"testing"

	"github.com/logos1012/obsidian-copy-path/internal/copier"
	"github.com/logos1012/obsidian-copy-path/internal/types"
)

func TestApplySetting(t *testing.T) {
	base := types.DefaultSettings()

	tests := []struct {
		name    string
		key     string
		value   string
		want    types.Settings
		wantErr bool
	}{
		{
			name:  "showNotice off",
			key:   "showNotice",
			value: "false",
			want:  types.Settings{ShowNotice: false, QuoteStyle: types.QuoteSingle},
		},
		{
			name:  "quoteStyle double",
			key:   "quoteStyle",
			value: "double",
			want:  types.Settings{ShowNotice: true, QuoteStyle: types.QuoteDouble},
		},
		{
			name:    "bogus bool",
			key:     "showNotice",
			value:   "maybe",
			wantErr: true,
		},
		{
			name:    "bogus quote style",
			key:     "quoteStyle",
			value:   "backtick",
			wantErr: true,
		},
		{
			name:    "unknown key",
			key:     "theme",
			value:   "dark",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applySetting(base, tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatal("applySetting() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("applySetting() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("applySetting() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSwallowCopyErr(t *testing.T) {
	if err := swallowCopyErr(copier.ErrNoPaths); err != nil {
		t.Errorf("swallowCopyErr(ErrNoPaths) = %v, want nil", err)
	}
	if err := swallowCopyErr(copier.ErrNoActiveFile); err != nil {
		t.Errorf("swallowCopyErr(ErrNoActiveFile) = %v, want nil", err)
	}
	if err := swallowCopyErr(&copier.ClipboardError{Err: errors.New("rejected")}); err != nil {
		t.Errorf("swallowCopyErr(ClipboardError) = %v, want nil", err)
	}
	other := errors.New("vault unreadable")
	if err := swallowCopyErr(other); !errors.Is(err, other) {
		t.Errorf("swallowCopyErr(other) = %v, want passthrough", err)
	}
}
