// Package bits provides bit-level access to buffers of 32-bit words.
//
// Bits are addressed as one flat sequence numbered from 0 across word
// boundaries, bit 0 being the most significant bit of word 0. This is
// the addressing scheme the Universal MIDI Packet format is specified
// in.
package bits

// Window is a mutable bit-level view over a sequence of 32-bit words.
// It does not own the words; mutations through the window are visible
// in the original slice immediately.
type Window struct {
	words []uint32
}

// View wraps words in a Window without copying.
func View(words []uint32) Window {
	return Window{words: words}
}

// Len returns the total number of addressable bits.
func (w Window) Len() int {
	return len(w.words) * 32
}

// Words returns the underlying word slice.
func (w Window) Words() []uint32 {
	return w.words
}

// Uint loads the inclusive bit range [start, end] as a big-endian
// unsigned integer: bit start becomes the most significant bit of the
// result. The range must be at most 32 bits wide and lie inside the
// window; both are fixed contracts of the field tables that call it.
func (w Window) Uint(start, end int) uint32 {
	width := end - start + 1
	word := start / 32
	bit := start % 32

	if bit+width <= 32 {
		return (w.words[word] >> (32 - bit - width)) & mask(width)
	}

	// Range spans two words: the high part comes from the tail of the
	// first word, the low part from the head of the second.
	low := bit + width - 32
	hi := w.words[word] & mask(32-bit)
	lo := w.words[word+1] >> (32 - low)
	return hi<<low | lo
}

// SetUint stores v big-endian into the inclusive bit range [start, end],
// leaving every bit outside the range untouched. Bits of v above the
// range width are discarded.
func (w Window) SetUint(start, end int, v uint32) {
	width := end - start + 1
	v &= mask(width)
	word := start / 32
	bit := start % 32

	if bit+width <= 32 {
		shift := 32 - bit - width
		w.words[word] = w.words[word]&^(mask(width)<<shift) | v<<shift
		return
	}

	low := bit + width - 32
	w.words[word] = w.words[word]&^mask(32-bit) | v>>low
	w.words[word+1] = w.words[word+1]&^(mask(low)<<(32-low)) | (v&mask(low))<<(32-low)
}

// Reset zeroes every word in the window.
func (w Window) Reset() {
	for i := range w.words {
		w.words[i] = 0
	}
}

// mask returns a value with the low width bits set.
func mask(width int) uint32 {
	if width >= 32 {
		return ^uint32(0)
	}
	return 1<<width - 1
}
