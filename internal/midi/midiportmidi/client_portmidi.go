//go:build portmidi
// +build portmidi

package midiportmidi

import (
	"fmt"

	"github.com/rakyll/portmidi"
	"go.uber.org/zap"

	"github.com/rbelouin/midi-hub/sdk/contracts"
)

// Host exposes the PortMidi library through the stream contract. PortMidi
// reports input and output capability as separate device entries, so the
// snapshot maps 1:1 onto PortMidi device IDs.
type Host struct {
	logger *zap.Logger
}

// NewHost initializes the PortMidi library. Close must be called to release
// it again.
func NewHost(options *contracts.HubOptions) (contracts.Host, error) {
	if err := portmidi.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portmidi: %w", err)
	}
	options.Logger.Debug("portmidi initialized", zap.Int("devices", portmidi.CountDevices()))
	return &Host{logger: options.Logger}, nil
}

func (h *Host) Devices() ([]contracts.DeviceInfo, error) {
	count := portmidi.CountDevices()
	infos := make([]contracts.DeviceInfo, 0, count)
	for i := 0; i < count; i++ {
		info := portmidi.Info(portmidi.DeviceID(i))
		if info == nil {
			h.logger.Warn("portmidi returned no info for device", zap.Int("device", i))
			continue
		}
		infos = append(infos, contracts.DeviceInfo{
			ID:       i,
			Name:     info.Name,
			IsInput:  info.IsInputAvailable,
			IsOutput: info.IsOutputAvailable,
			IsOpen:   info.IsOpened,
		})
	}
	return infos, nil
}

func (h *Host) OpenInput(deviceID, capacity int) (contracts.InputStream, error) {
	stream, err := portmidi.NewInputStream(portmidi.DeviceID(deviceID), int64(capacity))
	if err != nil {
		return nil, fmt.Errorf("open input stream %d: %w", deviceID, err)
	}
	return &inputStream{stream: stream}, nil
}

func (h *Host) OpenOutput(deviceID, capacity int) (contracts.OutputStream, error) {
	stream, err := portmidi.NewOutputStream(portmidi.DeviceID(deviceID), int64(capacity), 0)
	if err != nil {
		return nil, fmt.Errorf("open output stream %d: %w", deviceID, err)
	}
	return &outputStream{stream: stream}, nil
}

func (h *Host) Close() error {
	return portmidi.Terminate()
}

type inputStream struct {
	stream *portmidi.Stream
}

func (s *inputStream) Read(buf []contracts.Event) (int, error) {
	events, err := s.stream.Read(len(buf))
	if err != nil {
		return 0, err
	}
	for i, event := range events {
		buf[i] = contracts.Event{
			Message:   contracts.NewMessage(byte(event.Status), byte(event.Data1), byte(event.Data2)),
			Timestamp: contracts.Timestamp(event.Timestamp),
		}
	}
	return len(events), nil
}

func (s *inputStream) Close() error {
	return s.stream.Close()
}

type outputStream struct {
	stream *portmidi.Stream
}

func (s *outputStream) Write(batch []contracts.Event) error {
	events := make([]portmidi.Event, len(batch))
	for i, event := range batch {
		events[i] = portmidi.Event{
			Timestamp: portmidi.Timestamp(event.Timestamp),
			Status:    int64(event.Message.Status()),
			Data1:     int64(event.Message.Data1()),
			Data2:     int64(event.Message.Data2()),
		}
	}
	return s.stream.Write(events)
}

func (s *outputStream) Close() error {
	return s.stream.Close()
}
