package source

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/kk-code-lab/pick/internal/menu"
)

const tmuxListTimeout = 5 * time.Second

var (
	tmuxLookPath = exec.LookPath
	tmuxList     = func(ctx context.Context) ([]byte, error) {
		return exec.CommandContext(ctx, "tmux", "ls").Output()
	}
)

// Tmux lists active tmux sessions and attaches to the selected one.
type Tmux struct{}

func (Tmux) Layout() menu.Layout {
	return menu.Layout{
		Title:        "🪟 tmux Sessions",
		Noun:         "sessions",
		NameDivisor:  3,
		SelectVerb:   "Attach",
		RunVerb:      "🔗 Attaching to session",
		EmptyMessage: "No tmux sessions found.",
	}
}

func (Tmux) Fetch(ctx context.Context) Result {
	if _, err := tmuxLookPath("tmux"); err != nil {
		return Result{EmptyReason: "tmux not found on PATH."}
	}

	ctx, cancel := context.WithTimeout(ctx, tmuxListTimeout)
	defer cancel()

	out, err := tmuxList(ctx)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Result{EmptyReason: "tmux ls timed out."}
	}
	if err != nil {
		return Result{EmptyReason: tmuxFailureReason(err)}
	}

	items := parseTmuxSessions(out)
	if len(items) == 0 {
		return Result{EmptyReason: "tmux returned no sessions."}
	}
	return Result{Items: items}
}

func (Tmux) Run(name string) error {
	return runForeground("tmux", "attach", "-t", name)
}

// tmuxFailureReason distinguishes "no server" from other tmux errors
// using the stderr the command captured.
func tmuxFailureReason(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		if strings.Contains(strings.ToLower(stderr), "no server running") {
			return "No tmux server running. Start a session first."
		}
		if stderr != "" {
			return stderr
		}
	}
	return "Failed to query tmux sessions."
}

// parseTmuxSessions splits `tmux ls` lines into (name, details) at the
// first colon.
func parseTmuxSessions(out []byte) []menu.Item {
	var items []menu.Item
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, rest, found := strings.Cut(line, ":")
		if !found {
			items = append(items, menu.Item{Name: line})
			continue
		}
		items = append(items, menu.Item{
			Name:   strings.TrimSpace(name),
			Detail: strings.TrimSpace(rest),
		})
	}
	return items
}
