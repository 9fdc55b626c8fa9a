package midi2

// Field slots of the Program Change kind. The bank-valid flag is the
// low bit of the option byte; the 14-bit bank splits across bytes 7
// and 8 of the packet as two 7-bit halves.
var (
	bankValidField = field{start: 31, end: 31, width: 1}
	programField   = field{start: 32, end: 39, width: 7}
	bankMSBField   = field{start: 48, end: 55, width: 7}
	bankLSBField   = field{start: 56, end: 63, width: 7}
)

// Program is the 7-bit program number of a Program Change message.
type Program uint8

// NewProgram validates that v fits the 7-bit program field.
func NewProgram(v uint8) (Program, error) {
	if err := boundedUint(uint64(v), 7); err != nil {
		return 0, err
	}
	return Program(v), nil
}

// ProgramBank is the 14-bit bank of a Program Change message.
type ProgramBank uint16

// NewProgramBank validates that v fits the 14-bit bank field.
func NewProgramBank(v uint16) (ProgramBank, error) {
	if err := boundedUint(uint64(v), 14); err != nil {
		return 0, err
	}
	return ProgramBank(v), nil
}

// ProgramChange is the Voice message selecting a program, optionally
// with a bank.
type ProgramChange struct {
	voiceMessage
}

// NewProgramChange initializes words as a Program Change message with
// no bank selected.
func NewProgramChange(words []uint32, program Program) (ProgramChange, error) {
	m, err := initVoice(words, OpcodeProgramChange)
	if err != nil {
		return ProgramChange{}, err
	}
	return ProgramChange{m}.SetProgram(program), nil
}

// AsProgramChange wraps an existing buffer, validating its size and
// discriminants.
func AsProgramChange(words []uint32) (ProgramChange, error) {
	m, err := asVoice(words, OpcodeProgramChange)
	if err != nil {
		return ProgramChange{}, err
	}
	return ProgramChange{m}, nil
}

// Program reads the 7-bit program number.
func (m ProgramChange) Program() (Program, error) {
	v, err := programField.read(m.w)
	if err != nil {
		return 0, err
	}
	return Program(v), nil
}

// BankValid reads the flag indicating whether the bank field applies.
func (m ProgramChange) BankValid() bool {
	return bankValidField.load(m.w) != 0
}

// Bank reads the 14-bit bank. It is meaningful only when BankValid
// reports true.
func (m ProgramChange) Bank() (ProgramBank, error) {
	msb, err := bankMSBField.read(m.w)
	if err != nil {
		return 0, err
	}
	lsb, err := bankLSBField.read(m.w)
	if err != nil {
		return 0, err
	}
	return ProgramBank(msb<<7 | lsb), nil
}

// SetProgram writes the program number.
func (m ProgramChange) SetProgram(p Program) ProgramChange {
	programField.write(m.w, uint32(p))
	return m
}

// SetBank writes the bank and marks it valid.
func (m ProgramChange) SetBank(b ProgramBank) ProgramChange {
	bankValidField.write(m.w, 1)
	bankMSBField.write(m.w, uint32(b)>>7)
	bankLSBField.write(m.w, uint32(b)&0x7f)
	return m
}

// ClearBank zeroes the bank and marks it not valid.
func (m ProgramChange) ClearBank() ProgramChange {
	bankValidField.write(m.w, 0)
	bankMSBField.write(m.w, 0)
	bankLSBField.write(m.w, 0)
	return m
}

// SetGroup writes the group field.
func (m ProgramChange) SetGroup(g Group) ProgramChange {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m ProgramChange) SetChannel(c Channel) ProgramChange {
	m.setChannel(c)
	return m
}

// ChannelPressure is the Voice message reporting 32-bit channel-wide
// pressure.
type ChannelPressure struct {
	voiceMessage
}

// NewChannelPressure initializes words as a Channel Pressure message.
func NewChannelPressure(words []uint32) (ChannelPressure, error) {
	m, err := initVoice(words, OpcodeChannelPressure)
	if err != nil {
		return ChannelPressure{}, err
	}
	return ChannelPressure{m}, nil
}

// AsChannelPressure wraps an existing buffer, validating its size and
// discriminants.
func AsChannelPressure(words []uint32) (ChannelPressure, error) {
	m, err := asVoice(words, OpcodeChannelPressure)
	if err != nil {
		return ChannelPressure{}, err
	}
	return ChannelPressure{m}, nil
}

// Data reads the 32-bit pressure value.
func (m ChannelPressure) Data() Data {
	return Data(dataField.load(m.w))
}

// SetData writes the pressure value.
func (m ChannelPressure) SetData(d Data) ChannelPressure {
	dataField.write(m.w, uint32(d))
	return m
}

// SetGroup writes the group field.
func (m ChannelPressure) SetGroup(g Group) ChannelPressure {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m ChannelPressure) SetChannel(c Channel) ChannelPressure {
	m.setChannel(c)
	return m
}

// PitchBend is the Voice message bending the pitch of a whole channel
// with a 32-bit value centered on 0x80000000.
type PitchBend struct {
	voiceMessage
}

// NewPitchBend initializes words as a Pitch Bend message.
func NewPitchBend(words []uint32) (PitchBend, error) {
	m, err := initVoice(words, OpcodePitchBend)
	if err != nil {
		return PitchBend{}, err
	}
	return PitchBend{m}, nil
}

// AsPitchBend wraps an existing buffer, validating its size and
// discriminants.
func AsPitchBend(words []uint32) (PitchBend, error) {
	m, err := asVoice(words, OpcodePitchBend)
	if err != nil {
		return PitchBend{}, err
	}
	return PitchBend{m}, nil
}

// Data reads the 32-bit bend value.
func (m PitchBend) Data() Data {
	return Data(dataField.load(m.w))
}

// SetData writes the bend value.
func (m PitchBend) SetData(d Data) PitchBend {
	dataField.write(m.w, uint32(d))
	return m
}

// SetGroup writes the group field.
func (m PitchBend) SetGroup(g Group) PitchBend {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m PitchBend) SetChannel(c Channel) PitchBend {
	m.setChannel(c)
	return m
}
