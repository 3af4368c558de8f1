// Package clipboard wraps the system clipboard behind a writable interface.
package clipboard

import (
	"fmt"
	"runtime"

	"github.com/atotto/clipboard"
)

// Writer puts a single text payload onto a clipboard.
type Writer interface {
	Write(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// NewSystem returns the system clipboard writer.
func NewSystem() *System {
	return &System{}
}

// Write copies text to the system clipboard.
func (s *System) Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}
	return nil
}
