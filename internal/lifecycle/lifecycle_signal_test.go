//go:build !windows
// +build !windows

package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

func TestRunStopsOnRepeatedTerminationSignals(t *testing.T) {
	// Keep our own SIGTERM registration alive for the whole test so the
	// default handler stays disabled regardless of when Run uninstalls its
	// own on the way out.
	guard := make(chan os.Signal, 2)
	signal.Notify(guard, unix.SIGTERM)
	defer signal.Stop(guard)

	ticker := &countingTicker{}
	controller := New(time.Millisecond, ticker, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- controller.Run(context.Background()) }()

	// Give Run a moment to install its handler, then terminate twice in
	// quick succession.
	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 2; i++ {
		if err := unix.Kill(os.Getpid(), unix.SIGTERM); err != nil {
			t.Fatalf("kill: %v", err)
		}
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after SIGTERM")
	}
}
