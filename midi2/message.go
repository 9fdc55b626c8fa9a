package midi2

// MessageType is the 4-bit discriminant present at the top of every
// UMP message. Only a subset of the sixteen possible codes is defined
// by the format.
type MessageType uint8

const (
	MessageTypeUtility             MessageType = 0x0
	MessageTypeSystem              MessageType = 0x1
	MessageTypeSystemExclusiveData MessageType = 0x3
	MessageTypeVoice               MessageType = 0x4
	MessageTypeData                MessageType = 0x5
	MessageTypeFlexData            MessageType = 0xd
	MessageTypeStream              MessageType = 0xf
)

// newMessageType validates code against the defined message types.
func newMessageType(code uint8) (MessageType, error) {
	switch t := MessageType(code); t {
	case MessageTypeUtility, MessageTypeSystem, MessageTypeSystemExclusiveData,
		MessageTypeVoice, MessageTypeData, MessageTypeFlexData, MessageTypeStream:
		return t, nil
	}
	return 0, &ConversionError{Code: code}
}

func (t MessageType) String() string {
	switch t {
	case MessageTypeUtility:
		return "Utility"
	case MessageTypeSystem:
		return "System"
	case MessageTypeSystemExclusiveData:
		return "SystemExclusiveData"
	case MessageTypeVoice:
		return "Voice"
	case MessageTypeData:
		return "Data"
	case MessageTypeFlexData:
		return "FlexData"
	case MessageTypeStream:
		return "Stream"
	}
	return "Unknown"
}

// Group is the 4-bit group field present on System and Voice messages.
type Group uint8

// NewGroup validates that v fits the 4-bit group field.
func NewGroup(v uint8) (Group, error) {
	if err := boundedUint(uint64(v), 4); err != nil {
		return 0, err
	}
	return Group(v), nil
}
