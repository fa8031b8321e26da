package app

import (
	"errors"
	"os/exec"
)

// activate runs the selected item in the foreground with the terminal
// back in its normal mode, reports the outcome, and waits for one
// acknowledging keypress before returning.
func (m *Menu) activate(name string) {
	m.trm.Printf("%s%s: %s%s%s\n\n", m.theme.Banner, m.layout.RunVerb, m.theme.Target, name, m.theme.Reset)
	m.trm.Flush()

	err := m.src.Run(name)
	m.reportRun(name, err)

	m.trm.Printf("\n%sPress any key to exit...%s\n", m.theme.Prompt, m.theme.Reset)
	m.trm.Flush()
	m.awaitKeypress()
}

// reportRun prints one status line for the finished run. A non-zero
// exit is a warning, not an error; only a failed invocation (tool
// missing, not executable) is reported as an error. None of these
// change the process exit code.
func (m *Menu) reportRun(name string, err error) {
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		m.trm.Printf("\n%s✅ '%s' completed successfully!%s\n", m.theme.Success, name, m.theme.Reset)
	case m.interrupted.Load() || exitedByInterrupt(err):
		m.trm.Printf("\n%s⚠️  '%s' interrupted by user%s\n", m.theme.Warn, name, m.theme.Reset)
	case errors.As(err, &exitErr):
		m.trm.Printf("\n%s⚠️  '%s' completed with exit code %d%s\n", m.theme.Warn, name, exitErr.ExitCode(), m.theme.Reset)
	default:
		m.trm.Printf("\n%s❌ Error running '%s': %v%s\n", m.theme.Error, name, err, m.theme.Reset)
	}
	m.trm.Flush()
}

// awaitKeypress re-enters raw mode just long enough to consume a
// single key. Failing to do so (terminal gone) simply returns.
func (m *Menu) awaitKeypress() {
	restore, err := enterRaw(m.trm)
	if err != nil {
		return
	}
	defer restore()
	_, _ = m.trm.ReadKey()
}
