// Package router implements the periodic event routing loop: each tick polls
// every input stream and hands any pending events to a sink.
package router

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/rbelouin/midi-hub/internal/directory"
	"github.com/rbelouin/midi-hub/sdk/contracts"
)

// After this many consecutive read failures on one input, further failures
// are no longer logged. The counter resets on the next successful read.
const readFailureLogLimit = 5

// Sink consumes one batch of events read from an input stream.
type Sink interface {
	Consume(batch []contracts.Event)
}

// FanOut writes every batch to all output streams, in enumeration order.
// A failing output is logged and does not prevent delivery to the others.
type FanOut struct {
	Outputs []directory.Output
	Logger  *zap.Logger
}

func (f *FanOut) Consume(batch []contracts.Event) {
	for _, out := range f.Outputs {
		if err := out.Stream.Write(batch); err != nil {
			f.Logger.Warn("could not write to output device",
				zap.Int("device", out.ID),
				zap.String("name", out.Name),
				zap.Error(err))
		}
	}
}

// Trace prints one line per event, in read order.
type Trace struct {
	W io.Writer
}

func (t *Trace) Consume(batch []contracts.Event) {
	for _, event := range batch {
		fmt.Fprintf(t.W, "Event(%d,%d,%d)\n",
			event.Message.Status(),
			event.Message.Data1(),
			event.Message.Data2())
	}
}

// Router polls input streams and feeds a sink. Tick must only be called from
// a single goroutine; the read buffer is reused across ticks.
type Router struct {
	inputs       []directory.Input
	sink         Sink
	logger       *zap.Logger
	buffer       [contracts.BufferSize]contracts.Event
	readFailures []int
}

// New returns a router polling the given inputs.
func New(inputs []directory.Input, sink Sink, logger *zap.Logger) *Router {
	return &Router{
		inputs:       inputs,
		sink:         sink,
		logger:       logger,
		readFailures: make([]int, len(inputs)),
	}
}

// Tick polls every input in enumeration order. Each input's batch is handed
// to the sink before the next input is polled. A read error is logged and the
// input is retried on the next tick; it never stops the loop.
func (r *Router) Tick() {
	for i := range r.inputs {
		in := &r.inputs[i]
		n, err := in.Stream.Read(r.buffer[:])
		if err != nil {
			r.readFailures[i]++
			if r.readFailures[i] <= readFailureLogLimit {
				r.logger.Warn("could not read from input device",
					zap.Int("device", in.ID),
					zap.String("name", in.Name),
					zap.Error(err))
			}
			if r.readFailures[i] == readFailureLogLimit {
				r.logger.Warn("input device keeps failing, muting further read errors",
					zap.Int("device", in.ID),
					zap.String("name", in.Name))
			}
			continue
		}
		r.readFailures[i] = 0
		if n == 0 {
			continue
		}
		r.sink.Consume(r.buffer[:n])
	}
}
