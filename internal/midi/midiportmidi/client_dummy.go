//go:build !portmidi
// +build !portmidi

package midiportmidi

import (
	"errors"

	"github.com/rbelouin/midi-hub/sdk/contracts"
)

// NewHost requires the native PortMidi library. Build with -tags portmidi
// (and libportmidi installed) to enable it.
func NewHost(options *contracts.HubOptions) (contracts.Host, error) {
	return nil, errors.New("portmidi support is not included in this build (build with -tags portmidi)")
}
