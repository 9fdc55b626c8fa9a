package midi2

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Run("system timing clock", func(t *testing.T) {
		m, err := Classify([]uint32{0x10f80000})
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		clock, ok := m.(TimingClock)
		if !ok {
			t.Fatalf("expected TimingClock, got %T", m)
		}
		s, err := clock.Status()
		if err != nil {
			t.Fatalf("Status failed: %v", err)
		}
		if s != StatusTimingClock {
			t.Errorf("expected StatusTimingClock, got %v", s)
		}
	})

	t.Run("system reset high group", func(t *testing.T) {
		m, err := Classify([]uint32{0x1fff0000})
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if _, ok := m.(Reset); !ok {
			t.Errorf("expected Reset, got %T", m)
		}
	})

	t.Run("voice note on", func(t *testing.T) {
		m, err := Classify([]uint32{0x43954000, 0x7fe90000})
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		noteOn, ok := m.(NoteOn)
		if !ok {
			t.Fatalf("expected NoteOn, got %T", m)
		}
		note, err := noteOn.Note()
		if err != nil {
			t.Fatalf("Note failed: %v", err)
		}
		if note != 64 {
			t.Errorf("expected note 64, got %d", note)
		}
		if v := noteOn.Velocity(); v != 32745 {
			t.Errorf("expected velocity 32745, got %d", v)
		}
	})
}

func TestClassifyRejectsUncoveredMessageTypes(t *testing.T) {
	tests := []struct {
		name string
		word uint32
		code uint8
	}{
		{"utility", 0x00000000, 0x0},
		{"undefined 0x2", 0x20000000, 0x2},
		{"system exclusive data", 0x30000000, 0x3},
		{"data", 0x50000000, 0x5},
		{"undefined 0x6", 0x60000000, 0x6},
		{"flex data", 0xd0000000, 0xd},
		{"stream", 0xf0000000, 0xf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify([]uint32{tt.word})
			var conv *ConversionError
			if !errors.As(err, &conv) {
				t.Fatalf("expected ConversionError, got %v", err)
			}
			if conv.Code != tt.code {
				t.Errorf("expected rejected code %#02x, got %#02x", tt.code, conv.Code)
			}
		})
	}
}

func TestClassifyRejectsUndefinedSystemStatus(t *testing.T) {
	_, err := Classify([]uint32{0x10000000})
	var conv *ConversionError
	if !errors.As(err, &conv) {
		t.Fatalf("expected ConversionError, got %v", err)
	}
	if conv.Code != 0x00 {
		t.Errorf("expected rejected code 0x00, got %#02x", conv.Code)
	}
}

func TestClassifySizeValidation(t *testing.T) {
	t.Run("empty buffer", func(t *testing.T) {
		_, err := Classify(nil)
		var size *SizeError
		if !errors.As(err, &size) {
			t.Fatalf("expected SizeError, got %v", err)
		}
		if size.ExpectedBits != 32 || size.ActualBits != 0 {
			t.Errorf("expected Size(32, 0), got Size(%d, %d)", size.ExpectedBits, size.ActualBits)
		}
	})

	t.Run("system over two words", func(t *testing.T) {
		_, err := Classify([]uint32{0x10f80000, 0})
		var size *SizeError
		if !errors.As(err, &size) {
			t.Fatalf("expected SizeError, got %v", err)
		}
		if size.ExpectedBits != 32 || size.ActualBits != 64 {
			t.Errorf("expected Size(32, 64), got Size(%d, %d)", size.ExpectedBits, size.ActualBits)
		}
	})

	t.Run("voice over one word", func(t *testing.T) {
		_, err := Classify([]uint32{0x43954000})
		var size *SizeError
		if !errors.As(err, &size) {
			t.Fatalf("expected SizeError, got %v", err)
		}
		if size.ExpectedBits != 64 || size.ActualBits != 32 {
			t.Errorf("expected Size(64, 32), got Size(%d, %d)", size.ExpectedBits, size.ActualBits)
		}
	})
}

// Classified messages borrow the caller's buffer, so mutations through
// the typed handle must be visible in it.
func TestClassifiedMessageSharesBuffer(t *testing.T) {
	words := []uint32{0x10f80000}
	m, err := Classify(words)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	clock, ok := m.(TimingClock)
	if !ok {
		t.Fatalf("expected TimingClock, got %T", m)
	}

	clock.SetGroup(0x7)
	if words[0] != 0x17f80000 {
		t.Errorf("expected word 0x17f80000, got %#08x", words[0])
	}
	if &m.Words()[0] != &words[0] {
		t.Error("expected classified message to borrow the original buffer")
	}
}
