package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/logos1012/obsidian-copy-path/internal/types"
	"github.com/logos1012/obsidian-copy-path/internal/uri"
)

func copyOutput(result types.CopyResult) CopyOutput {
	return CopyOutput{
		Success: result.Success,
		Text:    result.Text,
		Count:   result.Count,
		Notice:  result.Notice,
	}
}

func handleCopyActive(ctx context.Context, req *mcp.CallToolRequest, input CopyActiveInput) (*mcp.CallToolResult, CopyOutput, error) {
	entry, ok := application.activeEntry()
	if !ok {
		return &mcp.CallToolResult{IsError: true}, CopyOutput{}, application.copier().ReportNoActiveFile()
	}

	result, err := application.copier().CopyEntries([]types.Entry{entry})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, copyOutput(result), err
	}
	return nil, copyOutput(result), nil
}

func handleCopySelected(ctx context.Context, req *mcp.CallToolRequest, input CopySelectedInput) (*mcp.CallToolResult, CopyOutput, error) {
	entries := application.selectedEntries()
	if len(entries) == 0 {
		return &mcp.CallToolResult{IsError: true}, CopyOutput{}, application.copier().ReportNoActiveFile()
	}

	result, err := application.copier().CopyEntries(entries)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, copyOutput(result), err
	}
	return nil, copyOutput(result), nil
}

func handleCopyPaths(ctx context.Context, req *mcp.CallToolRequest, input CopyPathsInput) (*mcp.CallToolResult, CopyOutput, error) {
	entries := application.vault.ResolveAll(input.Paths)

	result, err := application.copier().CopyEntries(entries)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, copyOutput(result), err
	}
	return nil, copyOutput(result), nil
}

func handleCopyActiveURI(ctx context.Context, req *mcp.CallToolRequest, input CopyActiveURIInput) (*mcp.CallToolResult, CopyOutput, error) {
	entry, ok := application.activeEntry()
	if !ok {
		return &mcp.CallToolResult{IsError: true}, CopyOutput{}, application.copier().ReportNoActiveFile()
	}

	link := uri.Generate(application.vault.Name(), entry.Path)
	result, err := application.copier().CopyText(link, 1)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, copyOutput(result), err
	}
	return nil, copyOutput(result), nil
}

func handleGetSettings(ctx context.Context, req *mcp.CallToolRequest, input GetSettingsInput) (*mcp.CallToolResult, SettingsOutput, error) {
	s := application.settings
	return nil, SettingsOutput{
		ShowNotice: s.ShowNotice,
		QuoteStyle: string(s.QuoteStyle),
	}, nil
}

func handleSetSettings(ctx context.Context, req *mcp.CallToolRequest, input SetSettingsInput) (*mcp.CallToolResult, SettingsOutput, error) {
	updated := application.settings

	if input.ShowNotice != nil {
		updated.ShowNotice = *input.ShowNotice
	}
	if input.QuoteStyle != "" {
		style := types.QuoteStyle(input.QuoteStyle)
		if !style.Valid() {
			return &mcp.CallToolResult{IsError: true}, SettingsOutput{},
				fmt.Errorf("quoteStyle must be single or double, got %q", input.QuoteStyle)
		}
		updated.QuoteStyle = style
	}

	if err := application.updateSettings(updated); err != nil {
		return &mcp.CallToolResult{IsError: true}, SettingsOutput{}, err
	}

	return nil, SettingsOutput{
		ShowNotice: updated.ShowNotice,
		QuoteStyle: string(updated.QuoteStyle),
	}, nil
}
