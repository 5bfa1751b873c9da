//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/youpy/go-coremidi"
	"go.uber.org/zap"

	"github.com/rbelouin/midi-hub/sdk/contracts"
)

// Error definitions for MIDI connection and handling issues.
var (
	ErrInvalidDevice        = errors.New("invalid MIDI device")
	ErrCreateInputPort      = errors.New("error creating input port")
	ErrCreateOutputPort     = errors.New("error creating output port")
	ErrMIDIConnectionError  = errors.New("error connecting to MIDI device")
	ErrIncompleteMIDIPacket = errors.New("incomplete MIDI packet")
)

// portConnection is the part of a CoreMIDI port connection we need to release.
type portConnection interface {
	Disconnect()
}

// Host exposes CoreMIDI sources and destinations through the poll-based
// stream contract. Sources receive IDs 0..len(sources)-1, destinations the
// IDs after that, so the snapshot enumerates inputs first.
type Host struct {
	logger       *zap.Logger
	client       coremidi.Client
	clientName   string
	sources      []coremidi.Source
	destinations []coremidi.Destination
}

// NewHost creates a CoreMIDI client and takes the device snapshot.
func NewHost(options *contracts.HubOptions) (contracts.Host, error) {
	client, err := coremidi.NewClient(options.ClientName)
	if err != nil {
		return nil, fmt.Errorf("create CoreMIDI client: %w", err)
	}
	sources, err := coremidi.AllSources()
	if err != nil {
		return nil, fmt.Errorf("list CoreMIDI sources: %w", err)
	}
	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return nil, fmt.Errorf("list CoreMIDI destinations: %w", err)
	}

	options.Logger.Debug("CoreMIDI client created",
		zap.Int("sources", len(sources)),
		zap.Int("destinations", len(destinations)))

	return &Host{
		logger:       options.Logger,
		client:       client,
		clientName:   options.ClientName,
		sources:      sources,
		destinations: destinations,
	}, nil
}

func (h *Host) Devices() ([]contracts.DeviceInfo, error) {
	infos := make([]contracts.DeviceInfo, 0, len(h.sources)+len(h.destinations))
	for i, source := range h.sources {
		infos = append(infos, contracts.DeviceInfo{ID: i, Name: source.Name(), IsInput: true})
	}
	for i, destination := range h.destinations {
		infos = append(infos, contracts.DeviceInfo{
			ID:       len(h.sources) + i,
			Name:     destination.Name(),
			IsOutput: true,
		})
	}
	return infos, nil
}

func (h *Host) OpenInput(deviceID, capacity int) (contracts.InputStream, error) {
	if deviceID < 0 || deviceID >= len(h.sources) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDevice, deviceID)
	}

	stream := &inputStream{
		logger: h.logger,
		events: make(chan contracts.Event, capacity),
		opened: time.Now(),
	}
	port, err := coremidi.NewInputPort(h.client, h.clientName, stream.handlePacket)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateInputPort, err)
	}
	conn, err := port.Connect(h.sources[deviceID])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMIDIConnectionError, err)
	}
	stream.conn = conn
	return stream, nil
}

func (h *Host) OpenOutput(deviceID, capacity int) (contracts.OutputStream, error) {
	index := deviceID - len(h.sources)
	if index < 0 || index >= len(h.destinations) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDevice, deviceID)
	}

	port, err := coremidi.NewOutputPort(h.client, h.clientName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateOutputPort, err)
	}
	return &outputStream{port: port, destination: h.destinations[index]}, nil
}

// Close releases nothing: CoreMIDI clients are reclaimed with the process,
// and per-stream connections are released by the streams themselves.
func (h *Host) Close() error {
	return nil
}

// inputStream buffers packets delivered on the CoreMIDI callback thread so
// the polling loop can drain them without blocking.
type inputStream struct {
	logger    *zap.Logger
	events    chan contracts.Event
	conn      portConnection
	opened    time.Time
	closeOnce sync.Once
}

func (s *inputStream) handlePacket(source coremidi.Source, packet coremidi.Packet) {
	if len(packet.Data) < 3 {
		s.logger.Warn(ErrIncompleteMIDIPacket.Error(), zap.String("source", source.Name()))
		return
	}
	event := contracts.Event{
		Message:   contracts.NewMessage(packet.Data[0], packet.Data[1], packet.Data[2]),
		Timestamp: contracts.Timestamp(time.Since(s.opened).Milliseconds()),
	}
	select {
	case s.events <- event:
	default:
		s.logger.Warn("event buffer full, dropping MIDI event", zap.String("source", source.Name()))
	}
}

func (s *inputStream) Read(buf []contracts.Event) (int, error) {
	for n := 0; n < len(buf); n++ {
		select {
		case event := <-s.events:
			buf[n] = event
		default:
			return n, nil
		}
	}
	return len(buf), nil
}

func (s *inputStream) Close() error {
	s.closeOnce.Do(func() {
		if s.conn != nil {
			s.conn.Disconnect()
		}
	})
	return nil
}

type outputStream struct {
	port        coremidi.OutputPort
	destination coremidi.Destination
}

func (s *outputStream) Write(events []contracts.Event) error {
	for _, event := range events {
		packet := coremidi.NewPacket([]byte{
			event.Message.Status(),
			event.Message.Data1(),
			event.Message.Data2(),
		}, 0)
		if err := packet.Send(&s.port, &s.destination); err != nil {
			return fmt.Errorf("send packet to %s: %w", s.destination.Name(), err)
		}
	}
	return nil
}

func (s *outputStream) Close() error {
	return nil
}
