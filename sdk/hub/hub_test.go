package hub

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rbelouin/midi-hub/sdk/contracts"
)

type fakeInputStream struct {
	mu      sync.Mutex
	pending []contracts.Event
	reads   int
	closed  bool
}

func (s *fakeInputStream) Read(buf []contracts.Event) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	n := copy(buf, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

func (s *fakeInputStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

type fakeOutputStream struct {
	mu     sync.Mutex
	events []contracts.Event
	closed bool
}

func (s *fakeOutputStream) Write(events []contracts.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
	return nil
}

func (s *fakeOutputStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

type fakeHost struct {
	devices []contracts.DeviceInfo
	input   *fakeInputStream
	output  *fakeOutputStream
	closed  bool
}

func (h *fakeHost) Devices() ([]contracts.DeviceInfo, error) { return h.devices, nil }

func (h *fakeHost) OpenInput(deviceID, capacity int) (contracts.InputStream, error) {
	return h.input, nil
}

func (h *fakeHost) OpenOutput(deviceID, capacity int) (contracts.OutputStream, error) {
	return h.output, nil
}

func (h *fakeHost) Close() error { h.closed = true; return nil }

func newFakeHost() *fakeHost {
	return &fakeHost{
		devices: []contracts.DeviceInfo{
			{ID: 0, Name: "Keyboard", IsInput: true},
			{ID: 1, Name: "Synth", IsOutput: true},
		},
		input:  &fakeInputStream{},
		output: &fakeOutputStream{},
	}
}

func TestNewForwarderAnnouncesDevices(t *testing.T) {
	host := newFakeHost()
	var stdout bytes.Buffer

	h, err := NewForwarder(host, contracts.WithStdout(&stdout))
	if err != nil {
		t.Fatalf("NewForwarder error: %v", err)
	}
	defer h.Close()

	want := "Found input: Keyboard\nFound output: Synth\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestForwarderRunForwardsAndShutsDownCleanly(t *testing.T) {
	host := newFakeHost()
	host.input.pending = []contracts.Event{
		{Message: contracts.NewMessage(0x90, 60, 127)},
		{Message: contracts.NewMessage(0x80, 60, 0)},
	}

	var stdout bytes.Buffer
	h, err := NewForwarder(host,
		contracts.WithStdout(&stdout),
		contracts.WithPollInterval(time.Millisecond),
	)
	if err != nil {
		t.Fatalf("NewForwarder error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := h.Run(ctx); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if host.input.reads == 0 {
		t.Error("the input stream was never polled")
	}
	if len(host.output.events) != 2 {
		t.Errorf("output received %d events, want 2", len(host.output.events))
	}

	if err := h.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if !host.input.closed || !host.output.closed || !host.closed {
		t.Error("Close must release every stream and the host")
	}
	// Closing twice must not close anything a second time or fail.
	if err := h.Close(); err != nil {
		t.Errorf("second Close error: %v", err)
	}
}

func TestMonitorRunPrintsEvents(t *testing.T) {
	host := newFakeHost()
	host.input.pending = []contracts.Event{
		{Message: contracts.NewMessage(0x90, 60, 127)},
	}

	var stdout syncBuffer
	h, err := NewMonitor(host,
		contracts.WithStdout(&stdout),
		contracts.WithPollInterval(time.Millisecond),
	)
	if err != nil {
		t.Fatalf("NewMonitor error: %v", err)
	}
	defer h.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := h.Run(ctx); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if !strings.Contains(stdout.String(), "Event(144,60,127)") {
		t.Errorf("monitor output missing event line: %q", stdout.String())
	}
}

// syncBuffer guards a bytes.Buffer written from the polling goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
