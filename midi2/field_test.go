package midi2

import (
	"errors"
	"testing"
)

func TestBoundedConstructorsAccept(t *testing.T) {
	tests := []struct {
		name string
		new  func() error
	}{
		{"group max", func() error { _, err := NewGroup(0x0f); return err }},
		{"channel max", func() error { _, err := NewChannel(0x0f); return err }},
		{"note max", func() error { _, err := NewNote(0x7f); return err }},
		{"bank max", func() error { _, err := NewBank(0x7f); return err }},
		{"controller max", func() error { _, err := NewController(0x7f); return err }},
		{"controller index max", func() error { _, err := NewControllerIndex(0x7f); return err }},
		{"song max", func() error { _, err := NewSong(0x7f); return err }},
		{"position max", func() error { _, err := NewPosition(0x3fff); return err }},
		{"program max", func() error { _, err := NewProgram(0x7f); return err }},
		{"program bank max", func() error { _, err := NewProgramBank(0x3fff); return err }},
		{"quarter frame data max", func() error { _, err := NewQuarterFrameData(0x0f); return err }},
		{"pitch max", func() error { _, err := NewPitch(0x7f); return err }},
		{"pitch fraction max", func() error { _, err := NewPitchFraction(0x1ff); return err }},
		{"zero", func() error { _, err := NewNote(0); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.new(); err != nil {
				t.Errorf("expected success, got %v", err)
			}
		})
	}
}

func TestBoundedConstructorsReject(t *testing.T) {
	tests := []struct {
		name      string
		new       func() error
		wantValue uint64
		wantWidth uint8
	}{
		{"group", func() error { _, err := NewGroup(0x10); return err }, 0x10, 4},
		{"channel", func() error { _, err := NewChannel(0xff); return err }, 0xff, 4},
		{"note", func() error { _, err := NewNote(200); return err }, 200, 7},
		{"bank", func() error { _, err := NewBank(0x80); return err }, 0x80, 7},
		{"controller", func() error { _, err := NewController(0x80); return err }, 0x80, 7},
		{"controller index", func() error { _, err := NewControllerIndex(0xc0); return err }, 0xc0, 7},
		{"song", func() error { _, err := NewSong(128); return err }, 128, 7},
		{"position", func() error { _, err := NewPosition(0x4000); return err }, 0x4000, 14},
		{"program", func() error { _, err := NewProgram(0x90); return err }, 0x90, 7},
		{"program bank", func() error { _, err := NewProgramBank(0xffff); return err }, 0xffff, 14},
		{"quarter frame data", func() error { _, err := NewQuarterFrameData(0x10); return err }, 0x10, 4},
		{"pitch", func() error { _, err := NewPitch(0xff); return err }, 0xff, 7},
		{"pitch fraction", func() error { _, err := NewPitchFraction(0x200); return err }, 0x200, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.new()
			var overflow *OverflowError
			if !errors.As(err, &overflow) {
				t.Fatalf("expected OverflowError, got %v", err)
			}
			if overflow.Value != tt.wantValue {
				t.Errorf("expected value %d, got %d", tt.wantValue, overflow.Value)
			}
			if overflow.Width != tt.wantWidth {
				t.Errorf("expected width %d, got %d", tt.wantWidth, overflow.Width)
			}
		})
	}
}

func TestErrorStrings(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"conversion", &ConversionError{Code: 0x07}, "conversion: code 0x07 is not a defined variant"},
		{"overflow", &OverflowError{Value: 200, Width: 7}, "overflow: value 200 does not fit in a 7 bit field"},
		{"size", &SizeError{ExpectedBits: 64, ActualBits: 32}, "size: expected a packet of 64 bits, found 32 bits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"message type", MessageTypeVoice.String(), "Voice"},
		{"message type unknown", MessageType(0x2).String(), "Unknown"},
		{"status", StatusTimingClock.String(), "TimingClock"},
		{"status unknown", Status(0x00).String(), "Unknown"},
		{"opcode", OpcodeNoteOn.String(), "NoteOn"},
		{"opcode unknown", Opcode(0x7).String(), "Unknown"},
		{"attribute type", AttributeTypePitch79.String(), "Pitch79"},
		{"quarter frame type", SecondsHigh.String(), "SecondsHigh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, tt.got)
			}
		})
	}
}
