package main

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

// run must hand its error back to the caller instead of exiting the process,
// so that the deferred stream and host teardown gets a chance to unwind.
func TestRunReturnsInsteadOfExiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, zap.NewNop(), time.Millisecond, 8, "")
	}()

	select {
	case <-done:
		// Reaching this point proves run returned control to the caller,
		// whether or not a MIDI backend is available in this build.
	case <-time.After(time.Second):
		t.Fatal("run did not return with a cancelled context")
	}
}
