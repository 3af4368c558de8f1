package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// CopyActiveInput has no parameters; the active file comes from
	// the vault's workspace state.
	CopyActiveInput struct{}

	// CopySelectedInput has no parameters; the selection comes from
	// the vault's file-explorer state.
	CopySelectedInput struct{}

	// CopyPathsInput contains explicit entries to copy, bypassing
	// selection-state queries.
	CopyPathsInput struct {
		Paths []string `json:"paths" jsonschema:"Vault-relative paths of the entries to copy"`
	}

	// CopyOutput contains the result of a copy operation.
	CopyOutput struct {
		Success bool   `json:"success"`
		Text    string `json:"text,omitempty"`
		Count   int    `json:"count"`
		Notice  string `json:"notice,omitempty"`
	}

	// CopyActiveURIInput has no parameters.
	CopyActiveURIInput struct{}

	// GetSettingsInput has no parameters.
	GetSettingsInput struct{}

	// SettingsOutput mirrors the persisted settings blob.
	SettingsOutput struct {
		ShowNotice bool   `json:"showNotice"`
		QuoteStyle string `json:"quoteStyle"`
	}

	// SetSettingsInput contains the fields to change. Omitted fields
	// keep their current values.
	SetSettingsInput struct {
		ShowNotice *bool  `json:"showNotice,omitempty" jsonschema:"Whether to show a notice after copying"`
		QuoteStyle string `json:"quoteStyle,omitempty" jsonschema:"Quote character for copied paths: single or double"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "copy-active-file-path",
		Description: "Copy the path of the currently focused vault file to the system clipboard, formatted with the configured quote style.",
	}, handleCopyActive)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "copy-selected-files-path",
		Description: "Copy the paths of the entries selected in the file explorer, falling back to the active file when nothing is selected.",
	}, handleCopySelected)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "copy-paths",
		Description: "Copy the paths of explicitly named vault entries (files or folders). Entries that no longer resolve are silently skipped.",
	}, handleCopyPaths)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "copy-active-file-uri",
		Description: "Copy an obsidian://open URI addressing the currently focused file.",
	}, handleCopyActiveURI)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get-settings",
		Description: "Read the current copy settings: showNotice and quoteStyle.",
	}, handleGetSettings)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set-settings",
		Description: "Update copy settings. Changes are persisted to the vault immediately and take effect on the next copy.",
	}, handleSetSettings)
}
