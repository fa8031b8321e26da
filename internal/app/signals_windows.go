//go:build windows

package app

import "os"

func interruptSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}

// Windows has no wait-status signal information; interrupted runs are
// detected through the session-wide interrupt flag instead.
func exitedByInterrupt(err error) bool {
	return false
}
