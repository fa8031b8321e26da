//go:build !windows

package app

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

func interruptSignals() []os.Signal {
	return []os.Signal{unix.SIGINT, unix.SIGTERM}
}

// exitedByInterrupt reports whether the child process died from
// SIGINT, which happens when the user hits Ctrl-C while the external
// tool owns the terminal.
func exitedByInterrupt(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		return false
	}
	ws := unix.WaitStatus(status)
	return ws.Signaled() && ws.Signal() == unix.SIGINT
}
