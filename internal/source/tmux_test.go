package source

import (
	"context"
	"errors"
	"os/exec"
	"testing"
)

func TestParseTmuxSessions(t *testing.T) {
	out := []byte(`main: 3 windows (created Mon Aug 31 10:02:11 2026) (attached)
scratch: 1 windows (created Mon Aug 31 11:15:00 2026)
bare-line
`)
	items := parseTmuxSessions(out)
	if len(items) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(items))
	}
	if items[0].Name != "main" || items[0].Detail != "3 windows (created Mon Aug 31 10:02:11 2026) (attached)" {
		t.Fatalf("unexpected first session %+v", items[0])
	}
	if items[2].Name != "bare-line" || items[2].Detail != "" {
		t.Fatalf("colon-free line mishandled: %+v", items[2])
	}
}

func TestTmuxFailureReasonNoServer(t *testing.T) {
	err := &exec.ExitError{Stderr: []byte("no server running on /tmp/tmux-1000/default\n")}
	if got := tmuxFailureReason(err); got != "No tmux server running. Start a session first." {
		t.Fatalf("unexpected reason %q", got)
	}
}

func TestTmuxFailureReasonPassesStderrThrough(t *testing.T) {
	err := &exec.ExitError{Stderr: []byte("error connecting to socket\n")}
	if got := tmuxFailureReason(err); got != "error connecting to socket" {
		t.Fatalf("unexpected reason %q", got)
	}
}

func TestTmuxFailureReasonFallback(t *testing.T) {
	if got := tmuxFailureReason(errors.New("boom")); got != "Failed to query tmux sessions." {
		t.Fatalf("unexpected reason %q", got)
	}
}

func TestTmuxFetchMissingBinary(t *testing.T) {
	origLook := tmuxLookPath
	t.Cleanup(func() { tmuxLookPath = origLook })
	tmuxLookPath = func(string) (string, error) { return "", errors.New("not found") }

	result := Tmux{}.Fetch(context.Background())
	if result.EmptyReason != "tmux not found on PATH." {
		t.Fatalf("unexpected reason %q", result.EmptyReason)
	}
}

func TestTmuxFetchParsesSessions(t *testing.T) {
	origLook, origList := tmuxLookPath, tmuxList
	t.Cleanup(func() {
		tmuxLookPath, tmuxList = origLook, origList
	})
	tmuxLookPath = func(string) (string, error) { return "/usr/bin/tmux", nil }
	tmuxList = func(context.Context) ([]byte, error) {
		return []byte("dev: 2 windows (created Sat Aug 29 09:00:00 2026)\n"), nil
	}

	result := Tmux{}.Fetch(context.Background())
	if result.EmptyReason != "" {
		t.Fatalf("unexpected reason %q", result.EmptyReason)
	}
	if len(result.Items) != 1 || result.Items[0].Name != "dev" {
		t.Fatalf("unexpected items %+v", result.Items)
	}
}

func TestTmuxFetchEmptyOutput(t *testing.T) {
	origLook, origList := tmuxLookPath, tmuxList
	t.Cleanup(func() {
		tmuxLookPath, tmuxList = origLook, origList
	})
	tmuxLookPath = func(string) (string, error) { return "/usr/bin/tmux", nil }
	tmuxList = func(context.Context) ([]byte, error) { return nil, nil }

	result := Tmux{}.Fetch(context.Background())
	if result.EmptyReason != "tmux returned no sessions." {
		t.Fatalf("unexpected reason %q", result.EmptyReason)
	}
}
