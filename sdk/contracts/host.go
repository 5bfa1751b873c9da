package contracts

// DeviceInfo describes one endpoint reported by the host MIDI subsystem.
type DeviceInfo struct {
	ID       int    // Stable handle assigned by the host subsystem.
	Name     string // Human-readable device name.
	IsInput  bool   // Device can produce MIDI events.
	IsOutput bool   // Device can consume MIDI events.
	IsOpen   bool   // Device is already held open by another client.
}

// Host is the MIDI subsystem collaborator. Implementations wrap a platform
// library (CoreMIDI, PortMidi); tests substitute mocks.
//
// Devices returns a snapshot taken at startup, in host enumeration order.
// Hotplug after the snapshot is not reflected.
type Host interface {
	Devices() ([]DeviceInfo, error)
	OpenInput(deviceID, capacity int) (InputStream, error)
	OpenOutput(deviceID, capacity int) (OutputStream, error)
	Close() error
}

// InputStream is an open, readable channel to a single device.
type InputStream interface {
	// Read fills buf with pending events and returns how many were read.
	// It never blocks: with no events pending it returns 0, nil.
	Read(buf []Event) (int, error)
	Close() error
}

// OutputStream is an open, writable channel to a single device.
type OutputStream interface {
	// Write delivers a batch of events to the device.
	Write(events []Event) error
	Close() error
}
