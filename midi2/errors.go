// Package midi2 implements a typed codec for MIDI 2.0 Universal MIDI
// Packets (UMP).
//
// A packet is one to four consecutive 32-bit words. Message kinds wrap
// a borrowed word buffer and expose typed, validated accessors for the
// bit-range fields the format defines. Buffers can be built in place
// through a kind's New function and chained setters, or discriminated
// into a concrete kind with Classify when the shape is not known up
// front.
//
// Only MIDI 2.0 protocol messages are covered; MIDI 1.0 legacy message
// types carried over UMP are not implemented.
package midi2

import "fmt"

// ConversionError is returned when a decoded discriminant or
// enumeration code has no defined variant.
type ConversionError struct {
	Code uint8 // the rejected raw code
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion: code %#02x is not a defined variant", e.Code)
}

// OverflowError is returned when a value does not fit the declared bit
// width of its field.
type OverflowError struct {
	Value uint64 // the rejected value
	Width uint8  // the field's declared width in bits
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("overflow: value %d does not fit in a %d bit field", e.Value, e.Width)
}

// SizeError is returned when a buffer's bit length does not match the
// word count fixed for the message kind being constructed.
type SizeError struct {
	ExpectedBits int
	ActualBits   int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("size: expected a packet of %d bits, found %d bits", e.ExpectedBits, e.ActualBits)
}
