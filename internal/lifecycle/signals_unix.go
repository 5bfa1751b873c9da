//go:build !windows
// +build !windows

package lifecycle

import (
	"os"

	"golang.org/x/sys/unix"
)

func terminationSignals() []os.Signal {
	return []os.Signal{unix.SIGINT, unix.SIGTERM}
}
