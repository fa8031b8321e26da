package app

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/kk-code-lab/pick/internal/menu"
	"github.com/kk-code-lab/pick/internal/ui/render"
	"github.com/kk-code-lab/pick/internal/ui/term"
)

// Run executes the full session and returns the process exit code:
// 0 for a normal quit or a completed selection, 1 when the terminal is
// not interactive. The item list is fetched exactly once; an empty
// result prints a plain message and never enters raw mode.
func (m *Menu) Run(ctx context.Context) int {
	if !isInteractive(m.trm) {
		m.trm.WriteString("❌ This menu requires an interactive terminal.\n")
		m.trm.WriteString("Run it directly in bash/zsh, not via piping or redirection.\n")
		m.trm.Flush()
		return 1
	}

	result := m.src.Fetch(ctx)
	if len(result.Items) == 0 {
		reason := result.EmptyReason
		if reason == "" {
			reason = m.layout.EmptyMessage
		}
		m.trm.Printf("❌ %s\n", reason)
		m.trm.Flush()
		return 0
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, interruptSignals()...)
	defer func() {
		signal.Stop(sigCh)
		close(sigCh)
	}()
	go func() {
		for range sigCh {
			m.interrupted.Store(true)
		}
	}()

	geo := m.trm.Size()
	state := menu.NewState(result.Items, geo.Rows)

	selected, code := m.browse(state, geo)
	if selected == "" {
		if m.interrupted.Load() {
			m.trm.Printf("%s⚠️  Menu interrupted by user%s\n", m.theme.Warn, m.theme.Reset)
			m.trm.Flush()
			return code
		}
		if code != 0 {
			m.trm.WriteString("⚠️  Interactive mode not available in this terminal environment.\n")
			m.trm.Flush()
		}
		return code
	}

	m.activate(selected)
	return 0
}

// browse runs the raw-mode navigation loop. It returns the activated
// item name, or "" when the user quit. Terminal mode, cursor and
// screen are restored on every exit path, including key-read failures.
func (m *Menu) browse(state *menu.State, geo term.Geometry) (selected string, code int) {
	restore, err := enterRaw(m.trm)
	if err != nil {
		return "", 1
	}
	defer func() {
		restore()
		m.trm.ShowCursor()
		m.trm.ClearScreen()
		m.trm.Flush()
	}()
	m.trm.HideCursor()

	for {
		if m.interrupted.Load() {
			return "", 0
		}

		m.drawFrame(state, geo)

		key, err := m.trm.ReadKey()
		if err != nil {
			return "", 1
		}

		switch key.Kind {
		case term.KeyUp:
			state.MoveUp()
		case term.KeyDown:
			state.MoveDown()
		case term.KeyEnter:
			return state.Selected().Name, 0
		case term.KeyQuit, term.KeyEscape, term.KeyCtrlC:
			return "", 0
		default:
			// ignore everything else
		}
	}
}

// drawFrame repaints the whole menu. Lines end with CRLF because the
// terminal is in raw mode while the frame is on screen.
func (m *Menu) drawFrame(state *menu.State, geo term.Geometry) {
	m.trm.ClearScreen()
	lines := render.Render(state, m.layout, m.theme, geo.Cols)
	m.trm.WriteString(strings.Join(lines, "\r\n"))
	m.trm.WriteString("\r\n")
	m.trm.Flush()
}
