// Command midi-devices lists the MIDI devices available on the host.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/rbelouin/midi-hub/internal/logger"
	"github.com/rbelouin/midi-hub/sdk/contracts"
	"github.com/rbelouin/midi-hub/sdk/hub"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logger.New(*debug)
	err := run(log, os.Stdout)
	if err != nil {
		log.Error("could not list MIDI devices", zap.Error(err))
	}
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run keeps all resource cleanup on deferred calls so every exit path closes
// the host before main decides the exit code.
func run(log *zap.Logger, out io.Writer) error {
	host, err := hub.NewHost(contracts.WithLogger(log))
	if err != nil {
		return fmt.Errorf("initialize the MIDI host: %w", err)
	}
	defer host.Close()

	devices, err := host.Devices()
	if err != nil {
		return fmt.Errorf("list MIDI devices: %w", err)
	}

	if len(devices) == 0 {
		fmt.Fprintln(out, "No MIDI devices found.")
		return nil
	}
	for _, device := range devices {
		switch {
		case device.IsInput:
			fmt.Fprintf(out, "Found input: %s\n", device.Name)
		case device.IsOutput:
			fmt.Fprintf(out, "Found output: %s\n", device.Name)
		default:
			fmt.Fprintf(out, "Found device with no usable direction: %s\n", device.Name)
		}
	}
	return nil
}
