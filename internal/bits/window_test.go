package bits

import "testing"

func TestLen(t *testing.T) {
	tests := []struct {
		name  string
		words []uint32
		want  int
	}{
		{"empty", nil, 0},
		{"one word", make([]uint32, 1), 32},
		{"two words", make([]uint32, 2), 64},
		{"four words", make([]uint32, 4), 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := View(tt.words).Len(); got != tt.want {
				t.Errorf("expected length %d, got %d", tt.want, got)
			}
		})
	}
}

func TestUint(t *testing.T) {
	tests := []struct {
		name       string
		words      []uint32
		start, end int
		want       uint32
	}{
		{"top nibble", []uint32{0x43954000}, 0, 3, 0x4},
		{"second nibble", []uint32{0x43954000}, 4, 7, 0x3},
		{"mid byte", []uint32{0x10f80000}, 8, 15, 0xf8},
		{"whole word", []uint32{0xdeadbeef}, 0, 31, 0xdeadbeef},
		{"second word", []uint32{0, 0x7fe90000}, 32, 47, 0x7fe9},
		{"single bit set", []uint32{0x00000001}, 31, 31, 1},
		{"single bit clear", []uint32{0xfffffffe}, 31, 31, 0},
		{"spanning words", []uint32{0x00000003, 0xc0000000}, 30, 33, 0xf},
		{"spanning words asym", []uint32{0x00000001, 0x80000000}, 24, 39, 0x0180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := View(tt.words).Uint(tt.start, tt.end); got != tt.want {
				t.Errorf("expected %#x, got %#x", tt.want, got)
			}
		})
	}
}

func TestSetUint(t *testing.T) {
	tests := []struct {
		name       string
		words      []uint32
		start, end int
		v          uint32
		want       []uint32
	}{
		{"top nibble", []uint32{0}, 0, 3, 0x4, []uint32{0x40000000}},
		{"mid byte", []uint32{0x10000000}, 8, 15, 0xf8, []uint32{0x10f80000}},
		{"whole word", []uint32{0}, 0, 31, 0xdeadbeef, []uint32{0xdeadbeef}},
		{"second word", []uint32{0, 0}, 32, 47, 0x7fe9, []uint32{0, 0x7fe90000}},
		{"spanning words", []uint32{0, 0}, 30, 33, 0xf, []uint32{0x00000003, 0xc0000000}},
		{"oversized value masked", []uint32{0}, 4, 7, 0xff, []uint32{0x0f000000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := View(tt.words)
			w.SetUint(tt.start, tt.end, tt.v)
			for i, want := range tt.want {
				if tt.words[i] != want {
					t.Errorf("word %d: expected %#08x, got %#08x", i, want, tt.words[i])
				}
			}
		})
	}
}

// Stores must not disturb bits outside the written range.
func TestSetUintPreservesNeighbors(t *testing.T) {
	words := []uint32{0xffffffff, 0xffffffff}
	w := View(words)

	w.SetUint(8, 15, 0x00)
	if words[0] != 0xff00ffff {
		t.Errorf("expected 0xff00ffff, got %#08x", words[0])
	}
	if words[1] != 0xffffffff {
		t.Errorf("expected second word untouched, got %#08x", words[1])
	}

	w.SetUint(30, 33, 0x0)
	if words[0] != 0xff00fffc {
		t.Errorf("expected 0xff00fffc, got %#08x", words[0])
	}
	if words[1] != 0x3fffffff {
		t.Errorf("expected 0x3fffffff, got %#08x", words[1])
	}
}

func TestUintSetUintRoundTrip(t *testing.T) {
	words := make([]uint32, 2)
	w := View(words)

	w.SetUint(16, 23, 0x40)
	w.SetUint(32, 47, 0x7fe9)

	if got := w.Uint(16, 23); got != 0x40 {
		t.Errorf("expected 0x40, got %#x", got)
	}
	if got := w.Uint(32, 47); got != 0x7fe9 {
		t.Errorf("expected 0x7fe9, got %#x", got)
	}
}

func TestReset(t *testing.T) {
	words := []uint32{0xdeadbeef, 0xcafebabe}
	View(words).Reset()
	for i, word := range words {
		if word != 0 {
			t.Errorf("word %d: expected 0, got %#08x", i, word)
		}
	}
}

// The window borrows the slice: callers must see mutations directly.
func TestViewShares(t *testing.T) {
	words := make([]uint32, 1)
	w := View(words)
	w.SetUint(0, 3, 0x4)
	if words[0] != 0x40000000 {
		t.Errorf("expected mutation visible in original slice, got %#08x", words[0])
	}
	if &w.Words()[0] != &words[0] {
		t.Error("expected Words to return the backing slice")
	}
}
