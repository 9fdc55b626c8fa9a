package midi2

import "github.com/robert-malhotra/go-midi2/internal/bits"

// field describes one value slot inside a packet: the inclusive bit
// range it occupies and the declared width of the values it holds.
// The declared width may be narrower than the range — a 7-bit value
// carried in an 8-bit slot — in which case loads of out-of-width raw
// bits fail with an OverflowError.
//
// Field tables are fixed at definition time alongside the message
// kinds that own them; range shape is never re-checked at run time,
// only values are.
type field struct {
	start, end int
	width      int
}

// read loads the field big-endian and validates it against the
// declared width.
func (f field) read(w bits.Window) (uint32, error) {
	v := w.Uint(f.start, f.end)
	if f.width < f.end-f.start+1 && v >= 1<<f.width {
		return 0, &OverflowError{Value: uint64(v), Width: uint8(f.width)}
	}
	return v, nil
}

// load is the total variant of read, for fields whose declared width
// fills the whole range. Every raw bit pattern is a valid value.
func (f field) load(w bits.Window) uint32 {
	return w.Uint(f.start, f.end)
}

// write stores v big-endian into the field's range, leaving all other
// bits of the window untouched. Values come from validated field types,
// so write cannot fail.
func (f field) write(w bits.Window, v uint32) {
	w.SetUint(f.start, f.end, v)
}

// boundedUint validates that v fits in width bits. It backs the
// exported field value constructors.
func boundedUint(v uint64, width uint8) error {
	if v >= 1<<width {
		return &OverflowError{Value: v, Width: width}
	}
	return nil
}
