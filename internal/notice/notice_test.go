package notice

import (
	"bytes"
	"testing"
)

func TestStderrNotify(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriter(&buf)

	n.Notify("Path copied")
	n.Notify("2 paths copied")

	want := "Path copied\n2 paths copied\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic; messages go nowhere.
	Discard{}.Notify("anything")
}
