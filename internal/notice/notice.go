// Package notice surfaces transient, non-blocking messages to the user.
package notice

import (
	"fmt"
	"io"
	"os"
)

// Notifier shows a transient message. Implementations must not block
// and must not fail the calling operation.
type Notifier interface {
	Notify(message string)
}

// Stderr writes notices to a stream, one per line. The zero value is
// not usable; use NewStderr.
type Stderr struct {
	out io.Writer
}

// NewStderr returns a Notifier writing to standard error.
func NewStderr() *Stderr {
	return &Stderr{out: os.Stderr}
}

// NewWriter returns a Notifier writing to w. Used by tests.
func NewWriter(w io.Writer) *Stderr {
	return &Stderr{out: w}
}

// Notify prints the message.
func (s *Stderr) Notify(message string) {
	fmt.Fprintln(s.out, message)
}

// Discard is a Notifier that drops every message.
type Discard struct{}

// Notify does nothing.
func (Discard) Notify(string) {}
