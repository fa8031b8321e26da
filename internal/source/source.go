// Package source provides the data-source adapters behind the menu:
// each adapter lists (name, detail) pairs from an external tool and
// knows how to run the selected entry in the foreground.
package source

import (
	"context"
	"os"
	"os/exec"

	"github.com/kk-code-lab/pick/internal/menu"
)

// Result is the outcome of a fetch. A failed or empty query degrades
// to zero items plus a human-readable reason; fetch never returns an
// error to the caller.
type Result struct {
	Items       []menu.Item
	EmptyReason string
}

// Source is the capability interface the menu controller consumes.
type Source interface {
	// Layout describes how the frame presents this source.
	Layout() menu.Layout
	// Fetch lists the items, once, at startup.
	Fetch(ctx context.Context) Result
	// Run executes the named item attached to the real terminal so the
	// tool's own interactive output stays visible. It blocks until the
	// external process exits.
	Run(name string) error
}

// runForeground execs a command with inherited stdio.
func runForeground(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
