package midi2

import "github.com/robert-malhotra/go-midi2/internal/bits"

// Message is implemented by every concrete UMP message kind.
type Message interface {
	// Words returns the packet's backing words.
	Words() []uint32
	// MessageType reads the top-level discriminant.
	MessageType() (MessageType, error)
	isMessage()
}

// Classify discriminates words into a concrete message kind. It reads
// the 4-bit message type first, then dispatches into the System or
// Voice sub-family, each of which validates the buffer's size against
// its fixed word count before reading its own discriminant. Message
// types outside the covered set fail with a ConversionError carrying
// the rejected code; failures deeper in the dispatch propagate from
// the level that rejected the buffer.
func Classify(words []uint32) (Message, error) {
	if len(words) == 0 {
		return nil, &SizeError{ExpectedBits: 32, ActualBits: 0}
	}
	t, err := newMessageType(uint8(messageTypeField.load(bits.View(words))))
	if err != nil {
		return nil, err
	}
	switch t {
	case MessageTypeSystem:
		return ClassifySystem(words)
	case MessageTypeVoice:
		return ClassifyVoice(words)
	}
	return nil, &ConversionError{Code: uint8(t)}
}
