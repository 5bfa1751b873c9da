// Package directory enumerates the host's MIDI devices and opens a stream
// per device. The resulting Collection is a snapshot: it is never mutated
// after Enumerate returns, so the polling loop may read it without locking.
package directory

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/rbelouin/midi-hub/sdk/contracts"
)

// Input is a discovered input-capable device with its open stream.
type Input struct {
	ID     int
	Name   string
	Stream contracts.InputStream
}

// Output is a discovered output-capable device with its open stream.
type Output struct {
	ID     int
	Name   string
	Stream contracts.OutputStream
}

// Collection holds the opened devices in host enumeration order.
type Collection struct {
	Inputs  []Input
	Outputs []Output
}

// Config carries the enumeration settings.
type Config struct {
	Capacity int         // Event capacity requested for each stream.
	Filter   string      // Substring filter on device names; empty keeps all.
	Stdout   io.Writer   // Receives one "Found input/output: <name>" line per device.
	Logger   *zap.Logger // Receives warnings about skipped devices.
}

// Enumerate queries the host for its device snapshot and opens one stream per
// usable device. A device that fails to open, that is already held open by
// another application, or that is neither input- nor output-capable, is
// logged and excluded; enumeration continues with the remaining devices.
func Enumerate(host contracts.Host, cfg Config) (*Collection, error) {
	infos, err := host.Devices()
	if err != nil {
		return nil, fmt.Errorf("enumerate MIDI devices: %w", err)
	}

	collection := &Collection{}
	for _, info := range infos {
		if cfg.Filter != "" && !strings.Contains(info.Name, cfg.Filter) {
			continue
		}
		if info.IsOpen {
			cfg.Logger.Warn("device is already in use, skipping",
				zap.Int("device", info.ID),
				zap.String("name", info.Name))
			continue
		}

		switch {
		case info.IsInput:
			stream, err := host.OpenInput(info.ID, cfg.Capacity)
			if err != nil {
				cfg.Logger.Warn("could not open input device, skipping",
					zap.Int("device", info.ID),
					zap.String("name", info.Name),
					zap.Error(err))
				continue
			}
			collection.Inputs = append(collection.Inputs, Input{ID: info.ID, Name: info.Name, Stream: stream})
			fmt.Fprintf(cfg.Stdout, "Found input: %s\n", info.Name)
		case info.IsOutput:
			stream, err := host.OpenOutput(info.ID, cfg.Capacity)
			if err != nil {
				cfg.Logger.Warn("could not open output device, skipping",
					zap.Int("device", info.ID),
					zap.String("name", info.Name),
					zap.Error(err))
				continue
			}
			collection.Outputs = append(collection.Outputs, Output{ID: info.ID, Name: info.Name, Stream: stream})
			fmt.Fprintf(cfg.Stdout, "Found output: %s\n", info.Name)
		default:
			cfg.Logger.Warn("device is neither input nor output, skipping",
				zap.Int("device", info.ID),
				zap.String("name", info.Name))
		}
	}
	return collection, nil
}

// Close closes every stream in the collection, input streams first. All
// streams are attempted even when some of them fail; the errors are combined.
func (c *Collection) Close() error {
	var err error
	for _, in := range c.Inputs {
		err = multierr.Append(err, in.Stream.Close())
	}
	for _, out := range c.Outputs {
		err = multierr.Append(err, out.Stream.Close())
	}
	return err
}
