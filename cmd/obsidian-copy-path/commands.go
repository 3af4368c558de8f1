package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/logos1012/obsidian-copy-path/internal/copier"
	"github.com/logos1012/obsidian-copy-path/internal/logger"
	"github.com/logos1012/obsidian-copy-path/internal/notice"
	"github.com/logos1012/obsidian-copy-path/internal/types"
	"github.com/logos1012/obsidian-copy-path/internal/uri"
)

// activeEntry resolves the currently focused file from the workspace
// state. A stale focus entry that no longer resolves counts as no
// active file.
func (a *app) activeEntry() (types.Entry, bool) {
	file, ok := a.workspace.ActiveFile()
	if !ok {
		return types.Entry{}, false
	}
	entry, err := a.vault.Resolve(file)
	if err != nil {
		logger.Debug("active file did not resolve", "path", file, "error", err)
		return types.Entry{}, false
	}
	return entry, true
}

// selectedEntries resolves the explorer selection, falling back to the
// active file when nothing is selected.
func (a *app) selectedEntries() []types.Entry {
	entries := a.vault.ResolveAll(a.workspace.SelectedPaths())
	if len(entries) > 0 {
		return entries
	}
	if entry, ok := a.activeEntry(); ok {
		return []types.Entry{entry}
	}
	return nil
}

// swallowCopyErr turns the copy error taxonomy into a normal return;
// the notice has already been shown. Anything else propagates.
func swallowCopyErr(err error) error {
	var clipErr *copier.ClipboardError
	if errors.Is(err, copier.ErrNoPaths) || errors.Is(err, copier.ErrNoActiveFile) || errors.As(err, &clipErr) {
		return nil
	}
	return err
}

func newCopyActiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy-active-file-path",
		Short: "Copy active file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(notice.NewStderr()); err != nil {
				return err
			}
			entry, ok := application.activeEntry()
			if !ok {
				return swallowCopyErr(application.copier().ReportNoActiveFile())
			}
			_, err := application.copier().CopyEntries([]types.Entry{entry})
			return swallowCopyErr(err)
		},
	}
}

func newCopySelectedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy-selected-files-path",
		Short: "Copy selected files path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(notice.NewStderr()); err != nil {
				return err
			}
			entries := application.selectedEntries()
			if len(entries) == 0 {
				return swallowCopyErr(application.copier().ReportNoActiveFile())
			}
			_, err := application.copier().CopyEntries(entries)
			return swallowCopyErr(err)
		},
	}
}

func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <path>...",
		Short: "Copy the paths of the given entries",
		Long: `Copy the paths of the given vault entries, the command-line analog
of the "Copy path" and "Copy paths" context-menu actions. Paths that
no longer resolve to a file or folder are silently skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(notice.NewStderr()); err != nil {
				return err
			}
			entries := application.vault.ResolveAll(args)
			_, err := application.copier().CopyEntries(entries)
			return swallowCopyErr(err)
		},
	}
}

func newCopyActiveURICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy-active-file-uri",
		Short: "Copy an obsidian:// URI for the active file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(notice.NewStderr()); err != nil {
				return err
			}
			entry, ok := application.activeEntry()
			if !ok {
				return swallowCopyErr(application.copier().ReportNoActiveFile())
			}
			link := uri.Generate(application.vault.Name(), entry.Path)
			_, err := application.copier().CopyText(link, 1)
			return swallowCopyErr(err)
		},
	}
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change copy settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(notice.NewStderr()); err != nil {
				return err
			}
			s := application.settings
			fmt.Fprintf(cmd.OutOrStdout(), "showNotice: %t\nquoteStyle: %s\n", s.ShowNotice, s.QuoteStyle)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting and persist it immediately",
		Example: `obsidian-copy-path settings set quoteStyle double
obsidian-copy-path settings set showNotice false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(notice.NewStderr()); err != nil {
				return err
			}
			updated, err := applySetting(application.settings, args[0], args[1])
			if err != nil {
				return err
			}
			return application.updateSettings(updated)
		},
	})

	return cmd
}

func applySetting(s types.Settings, key, value string) (types.Settings, error) {
	switch key {
	case "showNotice":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return s, fmt.Errorf("showNotice must be true or false, got %q", value)
		}
		s.ShowNotice = v
	case "quoteStyle":
		style := types.QuoteStyle(value)
		if !style.Valid() {
			return s, fmt.Errorf("quoteStyle must be single or double, got %q", value)
		}
		s.QuoteStyle = style
	default:
		return s, fmt.Errorf("unknown setting %q (known: showNotice, quoteStyle)", key)
	}
	return s, nil
}
