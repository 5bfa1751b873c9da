// Package hub assembles the MIDI hub: it enumerates the host's devices, wires
// the polling router to a sink, and runs the loop until termination.
package hub

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"

	"github.com/rbelouin/midi-hub/internal/directory"
	"github.com/rbelouin/midi-hub/internal/lifecycle"
	"github.com/rbelouin/midi-hub/internal/router"
	"github.com/rbelouin/midi-hub/sdk/contracts"
)

// Hub owns the device snapshot, the polling loop, and the host it was built
// from. Close releases all of them.
type Hub struct {
	host       contracts.Host
	devices    *directory.Collection
	controller *lifecycle.Controller
	options    contracts.HubOptions
	closeOnce  sync.Once
	closeErr   error
}

// NewForwarder builds a hub that forwards every input's events to every
// output, verbatim.
func NewForwarder(host contracts.Host, opts ...contracts.Option) (*Hub, error) {
	return newHub(host, func(devices *directory.Collection, options *contracts.HubOptions) router.Sink {
		return &router.FanOut{Outputs: devices.Outputs, Logger: options.Logger}
	}, opts...)
}

// NewMonitor builds a hub that decodes every input's events and prints one
// Event(status,data1,data2) line per event.
func NewMonitor(host contracts.Host, opts ...contracts.Option) (*Hub, error) {
	return newHub(host, func(devices *directory.Collection, options *contracts.HubOptions) router.Sink {
		return &router.Trace{W: options.Stdout}
	}, opts...)
}

func newHub(host contracts.Host, sinkFor func(*directory.Collection, *contracts.HubOptions) router.Sink, opts ...contracts.Option) (*Hub, error) {
	options := applyDefaultOptions(opts...)

	devices, err := directory.Enumerate(host, directory.Config{
		Capacity: options.BufferCapacity,
		Filter:   options.DeviceFilter,
		Stdout:   options.Stdout,
		Logger:   options.Logger,
	})
	if err != nil {
		return nil, err
	}

	r := router.New(devices.Inputs, sinkFor(devices, &options), options.Logger)
	return &Hub{
		host:       host,
		devices:    devices,
		controller: lifecycle.New(options.PollInterval, r, options.Logger),
		options:    options,
	}, nil
}

// Run starts the polling loop once the device snapshot is complete, and
// blocks until the context is cancelled or a termination signal arrives.
func (h *Hub) Run(ctx context.Context) error {
	fmt.Fprintln(h.options.Stdout, "Press ^C or send SIGINT to terminate the program")
	return h.controller.Run(ctx)
}

// Close closes every open stream and releases the host, on all exit paths.
// It is safe to call more than once.
func (h *Hub) Close() error {
	h.closeOnce.Do(func() {
		h.closeErr = multierr.Append(h.devices.Close(), h.host.Close())
	})
	return h.closeErr
}
