// Command midi-forward opens every MIDI device on the host and forwards
// events from all inputs to all outputs until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/rbelouin/midi-hub/internal/logger"
	"github.com/rbelouin/midi-hub/sdk/contracts"
	"github.com/rbelouin/midi-hub/sdk/hub"
)

func main() {
	interval := flag.Duration("interval", 10*time.Millisecond, "input polling interval")
	buffer := flag.Int("buffer", contracts.BufferSize, "stream buffer capacity, in events")
	filter := flag.String("filter", "", "only use devices whose name contains this substring")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logger.New(*debug)
	err := run(context.Background(), log, *interval, *buffer, *filter)
	if err != nil {
		log.Error("forwarder stopped", zap.Error(err))
	}
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// run keeps all resource cleanup on deferred calls so every exit path closes
// the streams and the host before main decides the exit code.
func run(ctx context.Context, log *zap.Logger, interval time.Duration, buffer int, filter string) error {
	host, err := hub.NewHost(contracts.WithLogger(log))
	if err != nil {
		return fmt.Errorf("initialize the MIDI host: %w", err)
	}

	h, err := hub.NewForwarder(host,
		contracts.WithLogger(log),
		contracts.WithPollInterval(interval),
		contracts.WithBufferCapacity(buffer),
		contracts.WithDeviceFilter(filter),
	)
	if err != nil {
		_ = host.Close()
		return fmt.Errorf("set up the forwarder: %w", err)
	}
	defer h.Close()

	return h.Run(ctx)
}
