package midi2

// Voice messages occupy two 32-bit words.
const voiceWords = 2

// VoicePacket returns a zeroed word buffer sized for a Voice message.
func VoicePacket() []uint32 {
	return make([]uint32, voiceWords)
}

// Opcode is the 4-bit discriminant of a MIDI 2.0 Channel Voice
// message. Every code except 0x7 is defined.
type Opcode uint8

const (
	OpcodeRegisteredPerNoteController  Opcode = 0x0
	OpcodeAssignablePerNoteController  Opcode = 0x1
	OpcodeRegisteredController         Opcode = 0x2
	OpcodeAssignableController         Opcode = 0x3
	OpcodeRelativeRegisteredController Opcode = 0x4
	OpcodeRelativeAssignableController Opcode = 0x5
	OpcodePerNotePitchBend             Opcode = 0x6
	OpcodeNoteOff                      Opcode = 0x8
	OpcodeNoteOn                       Opcode = 0x9
	OpcodePolyPressure                 Opcode = 0xa
	OpcodeControlChange                Opcode = 0xb
	OpcodeProgramChange                Opcode = 0xc
	OpcodeChannelPressure              Opcode = 0xd
	OpcodePitchBend                    Opcode = 0xe
	OpcodePerNoteManagement            Opcode = 0xf
)

// newOpcode validates code against the defined Voice opcodes.
func newOpcode(code uint8) (Opcode, error) {
	if code == 0x7 || code > 0xf {
		return 0, &ConversionError{Code: code}
	}
	return Opcode(code), nil
}

func (o Opcode) String() string {
	switch o {
	case OpcodeRegisteredPerNoteController:
		return "RegisteredPerNoteController"
	case OpcodeAssignablePerNoteController:
		return "AssignablePerNoteController"
	case OpcodeRegisteredController:
		return "RegisteredController"
	case OpcodeAssignableController:
		return "AssignableController"
	case OpcodeRelativeRegisteredController:
		return "RelativeRegisteredController"
	case OpcodeRelativeAssignableController:
		return "RelativeAssignableController"
	case OpcodePerNotePitchBend:
		return "PerNotePitchBend"
	case OpcodeNoteOff:
		return "NoteOff"
	case OpcodeNoteOn:
		return "NoteOn"
	case OpcodePolyPressure:
		return "PolyPressure"
	case OpcodeControlChange:
		return "ControlChange"
	case OpcodeProgramChange:
		return "ProgramChange"
	case OpcodeChannelPressure:
		return "ChannelPressure"
	case OpcodePitchBend:
		return "PitchBend"
	case OpcodePerNoteManagement:
		return "PerNoteManagement"
	}
	return "Unknown"
}

// Field slots shared across the Voice kinds. Several 7-bit values ride
// in 8-bit slots; their reads reject raw bytes with the top bit set.
var (
	opcodeField            = field{start: 8, end: 11, width: 4}
	channelField           = field{start: 12, end: 15, width: 4}
	noteField              = field{start: 16, end: 23, width: 7}
	bankField              = field{start: 16, end: 23, width: 7}
	controllerIndexField   = field{start: 16, end: 23, width: 7}
	controllerField        = field{start: 24, end: 31, width: 7}
	perNoteControllerField = field{start: 24, end: 31, width: 8}
	velocityField          = field{start: 32, end: 47, width: 16}
	dataField              = field{start: 32, end: 63, width: 32}
)

// Channel is the 4-bit channel field of a Voice message.
type Channel uint8

// NewChannel validates that v fits the 4-bit channel field.
func NewChannel(v uint8) (Channel, error) {
	if err := boundedUint(uint64(v), 4); err != nil {
		return 0, err
	}
	return Channel(v), nil
}

// Note is a 7-bit note number carried in an 8-bit slot.
type Note uint8

// NewNote validates that v fits the 7-bit note field.
func NewNote(v uint8) (Note, error) {
	if err := boundedUint(uint64(v), 7); err != nil {
		return 0, err
	}
	return Note(v), nil
}

// Bank is the 7-bit bank number of a controller message.
type Bank uint8

// NewBank validates that v fits the 7-bit bank field.
func NewBank(v uint8) (Bank, error) {
	if err := boundedUint(uint64(v), 7); err != nil {
		return 0, err
	}
	return Bank(v), nil
}

// Controller is the 7-bit controller number of a controller message.
type Controller uint8

// NewController validates that v fits the 7-bit controller field.
func NewController(v uint8) (Controller, error) {
	if err := boundedUint(uint64(v), 7); err != nil {
		return 0, err
	}
	return Controller(v), nil
}

// ControllerIndex is the 7-bit index of a Control Change message.
type ControllerIndex uint8

// NewControllerIndex validates that v fits the 7-bit index field.
func NewControllerIndex(v uint8) (ControllerIndex, error) {
	if err := boundedUint(uint64(v), 7); err != nil {
		return 0, err
	}
	return ControllerIndex(v), nil
}

// PerNoteController is the full 8-bit per-note controller number; any
// byte value is legal.
type PerNoteController uint8

// Velocity is the full 16-bit velocity of a Note On or Note Off; any
// value is legal.
type Velocity uint16

// Data is the full 32-bit data word of a Voice message; any value is
// legal.
type Data uint32

// voiceMessage is the common core of every Voice message kind.
type voiceMessage struct {
	packet
}

func newVoiceMessage(words []uint32) (voiceMessage, error) {
	p, err := newPacket(words, voiceWords)
	if err != nil {
		return voiceMessage{}, err
	}
	return voiceMessage{packet: p}, nil
}

// Opcode reads the 4-bit Voice opcode discriminant.
func (m voiceMessage) Opcode() (Opcode, error) {
	return newOpcode(uint8(opcodeField.load(m.w)))
}

// Channel reads the 4-bit channel field.
func (m voiceMessage) Channel() Channel {
	return Channel(channelField.load(m.w))
}

func (m voiceMessage) setOpcode(o Opcode) {
	opcodeField.write(m.w, uint32(o))
}

func (m voiceMessage) setChannel(c Channel) {
	channelField.write(m.w, uint32(c))
}

func (m voiceMessage) isVoice() {}

// initVoice wraps words, zeroes them, and writes the fixed
// discriminants for a Voice message with the given opcode.
func initVoice(words []uint32, op Opcode) (voiceMessage, error) {
	m, err := newVoiceMessage(words)
	if err != nil {
		return voiceMessage{}, err
	}
	m.Clear()
	m.setMessageType(MessageTypeVoice)
	m.setGroup(0)
	m.setOpcode(op)
	m.setChannel(0)
	return m, nil
}

// asVoice wraps an existing buffer as a Voice message of the given
// opcode, validating both discriminants against it.
func asVoice(words []uint32, op Opcode) (voiceMessage, error) {
	m, err := newVoiceMessage(words)
	if err != nil {
		return voiceMessage{}, err
	}
	t, err := m.MessageType()
	if err != nil {
		return voiceMessage{}, err
	}
	if t != MessageTypeVoice {
		return voiceMessage{}, &ConversionError{Code: uint8(t)}
	}
	o, err := m.Opcode()
	if err != nil {
		return voiceMessage{}, err
	}
	if o != op {
		return voiceMessage{}, &ConversionError{Code: uint8(o)}
	}
	return m, nil
}

// VoiceMessage is implemented by every MIDI 2.0 Channel Voice message
// kind.
type VoiceMessage interface {
	Message
	Opcode() (Opcode, error)
	Channel() Channel
	isVoice()
}

// ClassifyVoice discriminates words into a concrete Voice message kind
// via the opcode field. The undefined opcode 0x7 fails with a
// ConversionError carrying the rejected code.
func ClassifyVoice(words []uint32) (VoiceMessage, error) {
	m, err := newVoiceMessage(words)
	if err != nil {
		return nil, err
	}
	o, err := m.Opcode()
	if err != nil {
		return nil, err
	}
	switch o {
	case OpcodeRegisteredPerNoteController:
		return RegisteredPerNoteController{perNoteControllerMessage{m}}, nil
	case OpcodeAssignablePerNoteController:
		return AssignablePerNoteController{perNoteControllerMessage{m}}, nil
	case OpcodeRegisteredController:
		return RegisteredController{controllerMessage{m}}, nil
	case OpcodeAssignableController:
		return AssignableController{controllerMessage{m}}, nil
	case OpcodeRelativeRegisteredController:
		return RelativeRegisteredController{controllerMessage{m}}, nil
	case OpcodeRelativeAssignableController:
		return RelativeAssignableController{controllerMessage{m}}, nil
	case OpcodePerNotePitchBend:
		return PerNotePitchBend{m}, nil
	case OpcodeNoteOff:
		return NoteOff{m}, nil
	case OpcodeNoteOn:
		return NoteOn{m}, nil
	case OpcodePolyPressure:
		return PolyPressure{m}, nil
	case OpcodeControlChange:
		return ControlChange{m}, nil
	case OpcodeProgramChange:
		return ProgramChange{m}, nil
	case OpcodeChannelPressure:
		return ChannelPressure{m}, nil
	case OpcodePitchBend:
		return PitchBend{m}, nil
	case OpcodePerNoteManagement:
		return PerNoteManagement{m}, nil
	}
	return nil, &ConversionError{Code: uint8(o)}
}
