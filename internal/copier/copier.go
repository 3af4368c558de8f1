// Package copier drives the copy-to-clipboard flow and user feedback.
package copier

import (
	"errors"
	"fmt"

	"github.com/logos1012/obsidian-copy-path/internal/clipboard"
	"github.com/logos1012/obsidian-copy-path/internal/logger"
	"github.com/logos1012/obsidian-copy-path/internal/notice"
	"github.com/logos1012/obsidian-copy-path/internal/pathfmt"
	"github.com/logos1012/obsidian-copy-path/internal/types"
)

var (
	// ErrNoActiveFile is returned when active-file resolution finds
	// no focused file.
	ErrNoActiveFile = errors.New("no active file")
	// ErrNoPaths is returned when no entry yielded a path.
	ErrNoPaths = errors.New("no paths to copy")
)

// Notice texts. These are user-facing contract strings.
const (
	NoticeNoActiveFile = "No active file"
	NoticeNoPaths      = "No paths to copy"
	NoticeCopyFailed   = "Failed to copy to clipboard"
)

// ClipboardError wraps a rejected clipboard write.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return "failed to copy to clipboard: " + e.Err.Error()
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// Copier formats entry paths and writes them to a clipboard, showing
// notices according to the settings. Each call is single-shot: no
// retries, no state carried between invocations.
type Copier struct {
	clipboard clipboard.Writer
	notifier  notice.Notifier
	settings  types.Settings
}

// New creates a Copier.
func New(w clipboard.Writer, n notice.Notifier, settings types.Settings) *Copier {
	return &Copier{
		clipboard: w,
		notifier:  n,
		settings:  settings,
	}
}

// CopyEntries formats the paths of the given entries with the
// configured quote style and copies the result to the clipboard.
//
// An empty path list signals ErrNoPaths without touching the
// clipboard. On success the "copied" notice is shown only when
// ShowNotice is set; the failure notice is always shown.
func (c *Copier) CopyEntries(entries []types.Entry) (types.CopyResult, error) {
	paths := pathfmt.Collect(entries)
	if len(paths) == 0 {
		c.notifier.Notify(NoticeNoPaths)
		return types.CopyResult{Notice: NoticeNoPaths}, ErrNoPaths
	}

	text := pathfmt.Format(paths, c.settings.QuoteStyle)
	return c.copy(text, len(paths), copiedNotice(len(paths)))
}

// CopyText copies a preformatted string, reporting count paths in the
// success notice. Used for the obsidian:// URI action.
func (c *Copier) CopyText(text string, count int) (types.CopyResult, error) {
	return c.copy(text, count, copiedNotice(count))
}

// ReportNoActiveFile surfaces the no-active-file notice and returns
// ErrNoActiveFile. No clipboard write is attempted.
func (c *Copier) ReportNoActiveFile() error {
	c.notifier.Notify(NoticeNoActiveFile)
	return ErrNoActiveFile
}

func (c *Copier) copy(text string, count int, successNotice string) (types.CopyResult, error) {
	if err := c.clipboard.Write(text); err != nil {
		logger.Error("clipboard write failed", "error", err, "paths", count)
		c.notifier.Notify(NoticeCopyFailed)
		return types.CopyResult{Count: count, Notice: NoticeCopyFailed}, &ClipboardError{Err: err}
	}

	result := types.CopyResult{
		Success: true,
		Text:    text,
		Count:   count,
	}
	if c.settings.ShowNotice {
		c.notifier.Notify(successNotice)
		result.Notice = successNotice
	}
	return result, nil
}

func copiedNotice(count int) string {
	if count == 1 {
		return "Path copied"
	}
	return fmt.Sprintf("%d paths copied", count)
}
