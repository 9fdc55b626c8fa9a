package midi2

// System messages occupy a single 32-bit word.
const systemWords = 1

// SystemPacket returns a zeroed word buffer sized for a System message.
func SystemPacket() []uint32 {
	return make([]uint32, systemWords)
}

// Status is the 8-bit discriminant of a System message. The defined
// codes split into the System Common range (0xf1-0xf6) and the System
// Real Time range (0xf8-0xff); codes outside the table below are not
// valid System messages.
type Status uint8

const (
	StatusMIDITimeCode        Status = 0xf1
	StatusSongPositionPointer Status = 0xf2
	StatusSongSelect          Status = 0xf3
	StatusTuneRequest         Status = 0xf6
	StatusTimingClock         Status = 0xf8
	StatusStart               Status = 0xfa
	StatusContinue            Status = 0xfb
	StatusStop                Status = 0xfc
	StatusActiveSensing       Status = 0xfe
	StatusReset               Status = 0xff
)

var statusField = field{start: 8, end: 15, width: 8}

// newStatus validates code against the defined System statuses.
func newStatus(code uint8) (Status, error) {
	switch s := Status(code); s {
	case StatusMIDITimeCode, StatusSongPositionPointer, StatusSongSelect,
		StatusTuneRequest, StatusTimingClock, StatusStart, StatusContinue,
		StatusStop, StatusActiveSensing, StatusReset:
		return s, nil
	}
	return 0, &ConversionError{Code: code}
}

func (s Status) String() string {
	switch s {
	case StatusMIDITimeCode:
		return "MIDITimeCode"
	case StatusSongPositionPointer:
		return "SongPositionPointer"
	case StatusSongSelect:
		return "SongSelect"
	case StatusTuneRequest:
		return "TuneRequest"
	case StatusTimingClock:
		return "TimingClock"
	case StatusStart:
		return "Start"
	case StatusContinue:
		return "Continue"
	case StatusStop:
		return "Stop"
	case StatusActiveSensing:
		return "ActiveSensing"
	case StatusReset:
		return "Reset"
	}
	return "Unknown"
}

// systemMessage is the common core of every System message kind.
type systemMessage struct {
	packet
}

func newSystemMessage(words []uint32) (systemMessage, error) {
	p, err := newPacket(words, systemWords)
	if err != nil {
		return systemMessage{}, err
	}
	return systemMessage{packet: p}, nil
}

// Status reads the 8-bit System status discriminant.
func (m systemMessage) Status() (Status, error) {
	return newStatus(uint8(statusField.load(m.w)))
}

func (m systemMessage) setStatus(s Status) {
	statusField.write(m.w, uint32(s))
}

func (m systemMessage) isSystem() {}

// initSystem wraps words, zeroes them, and writes the fixed
// discriminants for a System message with the given status.
func initSystem(words []uint32, status Status) (systemMessage, error) {
	m, err := newSystemMessage(words)
	if err != nil {
		return systemMessage{}, err
	}
	m.Clear()
	m.setMessageType(MessageTypeSystem)
	m.setGroup(0)
	m.setStatus(status)
	return m, nil
}

// asSystem wraps an existing buffer as a System message of the given
// status, validating both discriminants against it.
func asSystem(words []uint32, status Status) (systemMessage, error) {
	m, err := newSystemMessage(words)
	if err != nil {
		return systemMessage{}, err
	}
	t, err := m.MessageType()
	if err != nil {
		return systemMessage{}, err
	}
	if t != MessageTypeSystem {
		return systemMessage{}, &ConversionError{Code: uint8(t)}
	}
	s, err := m.Status()
	if err != nil {
		return systemMessage{}, err
	}
	if s != status {
		return systemMessage{}, &ConversionError{Code: uint8(s)}
	}
	return m, nil
}

// systemCommon and systemRealTime mark which sub-family a System kind
// belongs to.
type systemCommon struct {
	systemMessage
}

func (systemCommon) isSystemCommon() {}

type systemRealTime struct {
	systemMessage
}

func (systemRealTime) isSystemRealTime() {}

// SystemMessage is implemented by every System message kind.
type SystemMessage interface {
	Message
	Status() (Status, error)
	isSystem()
}

// SystemCommonMessage is implemented by the System Common kinds.
type SystemCommonMessage interface {
	SystemMessage
	isSystemCommon()
}

// SystemRealTimeMessage is implemented by the System Real Time kinds.
type SystemRealTimeMessage interface {
	SystemMessage
	isSystemRealTime()
}

// ClassifySystem discriminates words into a concrete System message
// kind via the status field, dispatching through the Common and Real
// Time sub-families. Undefined status codes fail with a
// ConversionError carrying the rejected code.
func ClassifySystem(words []uint32) (SystemMessage, error) {
	m, err := newSystemMessage(words)
	if err != nil {
		return nil, err
	}
	s, err := m.Status()
	if err != nil {
		return nil, err
	}
	switch s {
	case StatusMIDITimeCode, StatusSongPositionPointer, StatusSongSelect, StatusTuneRequest:
		return classifySystemCommon(m, s)
	}
	return classifySystemRealTime(m, s)
}

// ClassifySystemCommon discriminates words into a System Common kind.
// Real Time statuses, like undefined ones, fail with a ConversionError.
func ClassifySystemCommon(words []uint32) (SystemCommonMessage, error) {
	m, err := newSystemMessage(words)
	if err != nil {
		return nil, err
	}
	s, err := m.Status()
	if err != nil {
		return nil, err
	}
	return classifySystemCommon(m, s)
}

func classifySystemCommon(m systemMessage, s Status) (SystemCommonMessage, error) {
	switch s {
	case StatusMIDITimeCode:
		return MIDITimeCode{systemCommon{m}}, nil
	case StatusSongPositionPointer:
		return SongPositionPointer{systemCommon{m}}, nil
	case StatusSongSelect:
		return SongSelect{systemCommon{m}}, nil
	case StatusTuneRequest:
		return TuneRequest{systemCommon{m}}, nil
	}
	return nil, &ConversionError{Code: uint8(s)}
}

// ClassifySystemRealTime discriminates words into a System Real Time
// kind. Common statuses, like undefined ones, fail with a
// ConversionError.
func ClassifySystemRealTime(words []uint32) (SystemRealTimeMessage, error) {
	m, err := newSystemMessage(words)
	if err != nil {
		return nil, err
	}
	s, err := m.Status()
	if err != nil {
		return nil, err
	}
	return classifySystemRealTime(m, s)
}

func classifySystemRealTime(m systemMessage, s Status) (SystemRealTimeMessage, error) {
	switch s {
	case StatusTimingClock:
		return TimingClock{systemRealTime{m}}, nil
	case StatusStart:
		return Start{systemRealTime{m}}, nil
	case StatusContinue:
		return Continue{systemRealTime{m}}, nil
	case StatusStop:
		return Stop{systemRealTime{m}}, nil
	case StatusActiveSensing:
		return ActiveSensing{systemRealTime{m}}, nil
	case StatusReset:
		return Reset{systemRealTime{m}}, nil
	}
	return nil, &ConversionError{Code: uint8(s)}
}
