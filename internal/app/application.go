// Package app owns the interactive menu loop: it fetches items from a
// data source, renders the frame, maps keys to navigation, and hands
// off to the external tool when an item is activated.
package app

import (
	"go.uber.org/atomic"

	"github.com/kk-code-lab/pick/internal/menu"
	"github.com/kk-code-lab/pick/internal/source"
	"github.com/kk-code-lab/pick/internal/ui/render"
	"github.com/kk-code-lab/pick/internal/ui/term"
)

// Menu drives one interactive session over a single data source.
type Menu struct {
	src    source.Source
	trm    *term.Terminal
	theme  render.Theme
	layout menu.Layout

	// interrupted is set by the signal watcher and read by the loop,
	// the only state shared across a goroutine boundary.
	interrupted *atomic.Bool
}

// New builds a controller for the given source over the given terminal.
func New(src source.Source, trm *term.Terminal) *Menu {
	return &Menu{
		src:         src,
		trm:         trm,
		theme:       render.DefaultTheme(),
		layout:      src.Layout(),
		interrupted: atomic.NewBool(false),
	}
}

// Injection points for tests running against an in-memory terminal.
var (
	isInteractive = func(t *term.Terminal) bool { return t.Interactive() }
	enterRaw      = func(t *term.Terminal) (func(), error) { return t.EnterRaw() }
)
