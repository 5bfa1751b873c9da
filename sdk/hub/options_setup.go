package hub

import (
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/rbelouin/midi-hub/sdk/contracts"
)

// DefaultPollInterval is the period of the input polling loop.
const DefaultPollInterval = 10 * time.Millisecond

// applyDefaultOptions sets default values for HubOptions if not explicitly
// provided.
func applyDefaultOptions(opts ...contracts.Option) contracts.HubOptions {
	options := contracts.HubOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.PollInterval <= 0 {
		options.PollInterval = DefaultPollInterval
	}
	if options.BufferCapacity <= 0 {
		options.BufferCapacity = contracts.BufferSize
	}
	if options.ClientName == "" {
		options.ClientName = "midi-hub"
	}
	if options.Stdout == nil {
		options.Stdout = os.Stdout
	}
	return options
}
