package contracts

import (
	"io"
	"time"

	"go.uber.org/zap"
)

// HubOptions defines the configuration options shared by the hub and the
// platform MIDI hosts.
type HubOptions struct {
	Logger         *zap.Logger   // Logger for events and errors.
	PollInterval   time.Duration // Period of the input polling loop.
	BufferCapacity int           // Event capacity requested for each stream.
	ClientName     string        // Name the host subsystem registers us under.
	DeviceFilter   string        // Substring filter on device names; empty keeps all.
	Stdout         io.Writer     // Destination for device discovery and monitor lines.
}

// Option is a function that modifies HubOptions.
type Option func(*HubOptions)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(opts *HubOptions) {
		opts.Logger = l
	}
}

// WithPollInterval sets the period of the input polling loop.
func WithPollInterval(interval time.Duration) Option {
	return func(opts *HubOptions) {
		opts.PollInterval = interval
	}
}

// WithBufferCapacity sets the event capacity requested when opening streams.
func WithBufferCapacity(capacity int) Option {
	return func(opts *HubOptions) {
		opts.BufferCapacity = capacity
	}
}

// WithClientName sets the name the host subsystem registers the client under.
func WithClientName(name string) Option {
	return func(opts *HubOptions) {
		opts.ClientName = name
	}
}

// WithDeviceFilter keeps only devices whose name contains the given substring.
func WithDeviceFilter(filter string) Option {
	return func(opts *HubOptions) {
		opts.DeviceFilter = filter
	}
}

// WithStdout sets the writer for device discovery and monitor lines.
func WithStdout(w io.Writer) Option {
	return func(opts *HubOptions) {
		opts.Stdout = w
	}
}
