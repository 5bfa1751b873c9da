package contracts

import "testing"

func TestMessageDecode(t *testing.T) {
	m := NewMessage(0x90, 60, 127)
	if m.Status() != 0x90 {
		t.Errorf("Status() = %#x, want 0x90", m.Status())
	}
	if m.Data1() != 60 {
		t.Errorf("Data1() = %d, want 60", m.Data1())
	}
	if m.Data2() != 127 {
		t.Errorf("Data2() = %d, want 127", m.Data2())
	}
}

func TestMessageRawWordLayout(t *testing.T) {
	// 0x7F3C90 is velocity 127, note 60, status 0x90 in PortMidi's packing.
	m := Message(0x7F3C90)
	if m != NewMessage(0x90, 60, 127) {
		t.Errorf("Message(0x7F3C90) = %#x, want %#x", uint32(m), uint32(NewMessage(0x90, 60, 127)))
	}
}
