//go:build !darwin
// +build !darwin

package mididarwin

import (
	"errors"

	"github.com/rbelouin/midi-hub/sdk/contracts"
)

// NewHost is only available on macOS, where CoreMIDI exists.
func NewHost(options *contracts.HubOptions) (contracts.Host, error) {
	return nil, errors.New("CoreMIDI is only available on macOS")
}
