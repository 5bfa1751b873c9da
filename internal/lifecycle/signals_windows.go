//go:build windows
// +build windows

package lifecycle

import "os"

func terminationSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
