package hub

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/rbelouin/midi-hub/internal/midi/mididarwin"
	"github.com/rbelouin/midi-hub/internal/midi/midiportmidi"
	"github.com/rbelouin/midi-hub/sdk/contracts"
)

// ErrUnsupportedOS is returned when no MIDI host backend exists for the
// operating system.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// hostInitializers maps OS names to corresponding MIDI host initializers.
// macOS uses CoreMIDI directly; the other systems go through PortMidi.
var hostInitializers = map[string]func(*contracts.HubOptions) (contracts.Host, error){
	"darwin":  mididarwin.NewHost,
	"linux":   midiportmidi.NewHost,
	"windows": midiportmidi.NewHost,
}

// NewHost initializes the MIDI host backend for the current operating system.
func NewHost(opts ...contracts.Option) (contracts.Host, error) {
	options := applyDefaultOptions(opts...)
	if initializer, exists := hostInitializers[runtime.GOOS]; exists {
		return initializer(&options)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, runtime.GOOS)
}
