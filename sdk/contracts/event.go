package contracts

// BufferSize is the number of events read from an input stream in one poll,
// and the default capacity requested when opening a stream.
const BufferSize = 1024

// Message is a MIDI short message packed into a single word, using the
// PortMidi layout: status in bits 0-7, data1 in bits 8-15, data2 in bits 16-23.
type Message uint32

// NewMessage packs a status byte and two data bytes into a Message.
func NewMessage(status, data1, data2 byte) Message {
	return Message(uint32(status) | uint32(data1)<<8 | uint32(data2)<<16)
}

// Status returns the status byte (e.g. 0x90 for Note On, channel 1).
func (m Message) Status() byte {
	return byte(m & 0xFF)
}

// Data1 returns the first data byte (note number, controller number, ...).
func (m Message) Data1() byte {
	return byte((m >> 8) & 0xFF)
}

// Data2 returns the second data byte (velocity, controller value, ...).
func (m Message) Data2() byte {
	return byte((m >> 16) & 0xFF)
}

// Timestamp is the host subsystem's event clock, in milliseconds.
type Timestamp int32

// Event is one timestamped MIDI message as produced by an input stream.
// Events are plain values; they are copied, never shared.
type Event struct {
	Message   Message
	Timestamp Timestamp
}
