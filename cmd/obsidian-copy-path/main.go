// Package main implements the copy-path tool for Obsidian vaults.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/logos1012/obsidian-copy-path/internal/clipboard"
	"github.com/logos1012/obsidian-copy-path/internal/config"
	"github.com/logos1012/obsidian-copy-path/internal/copier"
	"github.com/logos1012/obsidian-copy-path/internal/logger"
	"github.com/logos1012/obsidian-copy-path/internal/notice"
	"github.com/logos1012/obsidian-copy-path/internal/settings"
	"github.com/logos1012/obsidian-copy-path/internal/types"
	"github.com/logos1012/obsidian-copy-path/internal/vault"
	"github.com/logos1012/obsidian-copy-path/internal/workspace"
)

// app wires the services every action needs. The settings object is
// loaded once at startup, read by every action, and written only by
// the settings commands.
type app struct {
	vault     *vault.Service
	workspace *workspace.Service
	store     *settings.Store
	settings  types.Settings
	clip      clipboard.Writer
	notifier  notice.Notifier
}

var application *app

func newApp(vaultPath string, n notice.Notifier) (*app, error) {
	vs := vault.New(vaultPath)
	store := settings.NewStore(vs.Path())
	loaded, err := store.Load()
	if err != nil {
		// A broken blob falls back to defaults; copying still works.
		logger.Warn("settings unreadable, using defaults", "error", err)
	}

	return &app{
		vault:     vs,
		workspace: workspace.New(vs.Path()),
		store:     store,
		settings:  loaded,
		clip:      clipboard.NewSystem(),
		notifier:  n,
	}, nil
}

// copier builds a Copier over the current settings. Actions go through
// this so settings changes take effect immediately.
func (a *app) copier() *copier.Copier {
	return copier.New(a.clip, a.notifier, a.settings)
}

func (a *app) updateSettings(s types.Settings) error {
	if err := a.store.Save(s); err != nil {
		return err
	}
	a.settings = s
	return nil
}

var (
	flagVault   string
	flagVerbose bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "obsidian-copy-path",
		Short: "Copy Obsidian vault paths to the clipboard",
		Long: `obsidian-copy-path copies file and folder paths from an Obsidian
vault to the system clipboard, wrapped in a configurable quote style.
Without a subcommand it runs as a Model Context Protocol (MCP) server
over stdio, exposing the copy actions as tools.`,
		Example: "obsidian-copy-path --vault ~/obsidian copy-active-file-path",
		RunE:    runServer,
	}

	cmd.PersistentFlags().StringVar(&flagVault, "vault", "", "vault path (defaults to config file, then current directory)")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newCopyActiveCmd(),
		newCopySelectedCmd(),
		newCopyCmd(),
		newCopyActiveURICmd(),
		newSettingsCmd(),
	)

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

// setup resolves the vault, initializes logging, and wires the
// application services. Every command runs through this.
func setup(n notice.Notifier) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(logger.Options{Verbose: flagVerbose || cfg.Verbose})

	vaultPath := flagVault
	if vaultPath == "" {
		vaultPath = cfg.Vault
	}
	if vaultPath == "" {
		vaultPath, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	application, err = newApp(vaultPath, n)
	return err
}

func runServer(cmd *cobra.Command, args []string) error {
	// Notices travel in tool outputs in server mode.
	if err := setup(notice.Discard{}); err != nil {
		return err
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "obsidian-copy-path",
		Version: version,
	}, nil)

	registerTools(server)

	logger.Debug("serving", "vault", application.vault.Path())
	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
