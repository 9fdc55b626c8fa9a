package midi2

import "github.com/robert-malhotra/go-midi2/internal/bits"

// Fields present at the head of every packet.
var (
	messageTypeField = field{start: 0, end: 3, width: 4}
	groupField       = field{start: 4, end: 7, width: 4}
)

// packet is the borrowed storage shared by every message kind. It
// wraps a caller-supplied word buffer; all mutations are visible in
// that buffer immediately, and the packet never re-checks its size
// after construction.
type packet struct {
	w bits.Window
}

// newPacket wraps words, checking that it holds exactly wordCount
// 32-bit words.
func newPacket(words []uint32, wordCount int) (packet, error) {
	if len(words) != wordCount {
		return packet{}, &SizeError{
			ExpectedBits: wordCount * 32,
			ActualBits:   len(words) * 32,
		}
	}
	return packet{w: bits.View(words)}, nil
}

// Words returns the packet's backing words.
func (p packet) Words() []uint32 {
	return p.w.Words()
}

// Clear zeroes the backing packet in place, discarding every field
// value including the discriminants. A cleared packet is no longer a
// valid message of its kind; reinitialize it with the kind's New
// function before further use.
func (p packet) Clear() {
	p.w.Reset()
}

// MessageType reads the 4-bit top-level discriminant.
func (p packet) MessageType() (MessageType, error) {
	return newMessageType(uint8(messageTypeField.load(p.w)))
}

// Group reads the 4-bit group field.
func (p packet) Group() Group {
	return Group(groupField.load(p.w))
}

func (p packet) setMessageType(t MessageType) {
	messageTypeField.write(p.w, uint32(t))
}

func (p packet) setGroup(g Group) {
	groupField.write(p.w, uint32(g))
}

func (p packet) isMessage() {}
