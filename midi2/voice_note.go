package midi2

// Flag slots of the Per-Note Management kind: the low two bits of
// byte 4 of the first word.
var (
	detachField           = field{start: 30, end: 30, width: 1}
	resetControllersField = field{start: 31, end: 31, width: 1}
)

// NoteOn is the Voice message starting a note with a 16-bit velocity
// and an optional per-note attribute.
type NoteOn struct {
	voiceMessage
}

// NewNoteOn initializes words as a Note On message.
func NewNoteOn(words []uint32, note Note, velocity Velocity) (NoteOn, error) {
	m, err := initVoice(words, OpcodeNoteOn)
	if err != nil {
		return NoteOn{}, err
	}
	return NoteOn{m}.SetNote(note).SetVelocity(velocity), nil
}

// AsNoteOn wraps an existing buffer, validating its size and
// discriminants.
func AsNoteOn(words []uint32) (NoteOn, error) {
	m, err := asVoice(words, OpcodeNoteOn)
	if err != nil {
		return NoteOn{}, err
	}
	return NoteOn{m}, nil
}

// Note reads the 7-bit note number.
func (m NoteOn) Note() (Note, error) {
	v, err := noteField.read(m.w)
	if err != nil {
		return 0, err
	}
	return Note(v), nil
}

// Velocity reads the 16-bit velocity.
func (m NoteOn) Velocity() Velocity {
	return Velocity(velocityField.load(m.w))
}

// Attribute reads the per-note attribute composite.
func (m NoteOn) Attribute() (Attribute, error) {
	return readAttribute(m.w)
}

// SetNote writes the note number.
func (m NoteOn) SetNote(n Note) NoteOn {
	noteField.write(m.w, uint32(n))
	return m
}

// SetVelocity writes the velocity.
func (m NoteOn) SetVelocity(v Velocity) NoteOn {
	velocityField.write(m.w, uint32(v))
	return m
}

// SetAttribute writes the per-note attribute, tag first.
func (m NoteOn) SetAttribute(a Attribute) NoteOn {
	a.writeAttribute(m.w)
	return m
}

// SetGroup writes the group field.
func (m NoteOn) SetGroup(g Group) NoteOn {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m NoteOn) SetChannel(c Channel) NoteOn {
	m.setChannel(c)
	return m
}

// NoteOff is the Voice message ending a note. It carries the same
// fields as Note On.
type NoteOff struct {
	voiceMessage
}

// NewNoteOff initializes words as a Note Off message.
func NewNoteOff(words []uint32, note Note, velocity Velocity) (NoteOff, error) {
	m, err := initVoice(words, OpcodeNoteOff)
	if err != nil {
		return NoteOff{}, err
	}
	return NoteOff{m}.SetNote(note).SetVelocity(velocity), nil
}

// AsNoteOff wraps an existing buffer, validating its size and
// discriminants.
func AsNoteOff(words []uint32) (NoteOff, error) {
	m, err := asVoice(words, OpcodeNoteOff)
	if err != nil {
		return NoteOff{}, err
	}
	return NoteOff{m}, nil
}

// Note reads the 7-bit note number.
func (m NoteOff) Note() (Note, error) {
	v, err := noteField.read(m.w)
	if err != nil {
		return 0, err
	}
	return Note(v), nil
}

// Velocity reads the 16-bit velocity.
func (m NoteOff) Velocity() Velocity {
	return Velocity(velocityField.load(m.w))
}

// Attribute reads the per-note attribute composite.
func (m NoteOff) Attribute() (Attribute, error) {
	return readAttribute(m.w)
}

// SetNote writes the note number.
func (m NoteOff) SetNote(n Note) NoteOff {
	noteField.write(m.w, uint32(n))
	return m
}

// SetVelocity writes the velocity.
func (m NoteOff) SetVelocity(v Velocity) NoteOff {
	velocityField.write(m.w, uint32(v))
	return m
}

// SetAttribute writes the per-note attribute, tag first.
func (m NoteOff) SetAttribute(a Attribute) NoteOff {
	a.writeAttribute(m.w)
	return m
}

// SetGroup writes the group field.
func (m NoteOff) SetGroup(g Group) NoteOff {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m NoteOff) SetChannel(c Channel) NoteOff {
	m.setChannel(c)
	return m
}

// PolyPressure is the Voice message reporting 32-bit polyphonic key
// pressure for one note.
type PolyPressure struct {
	voiceMessage
}

// NewPolyPressure initializes words as a Poly Pressure message.
func NewPolyPressure(words []uint32, note Note) (PolyPressure, error) {
	m, err := initVoice(words, OpcodePolyPressure)
	if err != nil {
		return PolyPressure{}, err
	}
	return PolyPressure{m}.SetNote(note), nil
}

// AsPolyPressure wraps an existing buffer, validating its size and
// discriminants.
func AsPolyPressure(words []uint32) (PolyPressure, error) {
	m, err := asVoice(words, OpcodePolyPressure)
	if err != nil {
		return PolyPressure{}, err
	}
	return PolyPressure{m}, nil
}

// Note reads the 7-bit note number.
func (m PolyPressure) Note() (Note, error) {
	v, err := noteField.read(m.w)
	if err != nil {
		return 0, err
	}
	return Note(v), nil
}

// Data reads the 32-bit pressure value.
func (m PolyPressure) Data() Data {
	return Data(dataField.load(m.w))
}

// SetNote writes the note number.
func (m PolyPressure) SetNote(n Note) PolyPressure {
	noteField.write(m.w, uint32(n))
	return m
}

// SetData writes the pressure value.
func (m PolyPressure) SetData(d Data) PolyPressure {
	dataField.write(m.w, uint32(d))
	return m
}

// SetGroup writes the group field.
func (m PolyPressure) SetGroup(g Group) PolyPressure {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m PolyPressure) SetChannel(c Channel) PolyPressure {
	m.setChannel(c)
	return m
}

// PerNotePitchBend is the Voice message bending the pitch of one
// sounding note with a 32-bit value.
type PerNotePitchBend struct {
	voiceMessage
}

// NewPerNotePitchBend initializes words as a Per-Note Pitch Bend
// message.
func NewPerNotePitchBend(words []uint32, note Note) (PerNotePitchBend, error) {
	m, err := initVoice(words, OpcodePerNotePitchBend)
	if err != nil {
		return PerNotePitchBend{}, err
	}
	return PerNotePitchBend{m}.SetNote(note), nil
}

// AsPerNotePitchBend wraps an existing buffer, validating its size and
// discriminants.
func AsPerNotePitchBend(words []uint32) (PerNotePitchBend, error) {
	m, err := asVoice(words, OpcodePerNotePitchBend)
	if err != nil {
		return PerNotePitchBend{}, err
	}
	return PerNotePitchBend{m}, nil
}

// Note reads the 7-bit note number.
func (m PerNotePitchBend) Note() (Note, error) {
	v, err := noteField.read(m.w)
	if err != nil {
		return 0, err
	}
	return Note(v), nil
}

// Data reads the 32-bit bend value.
func (m PerNotePitchBend) Data() Data {
	return Data(dataField.load(m.w))
}

// SetNote writes the note number.
func (m PerNotePitchBend) SetNote(n Note) PerNotePitchBend {
	noteField.write(m.w, uint32(n))
	return m
}

// SetData writes the bend value.
func (m PerNotePitchBend) SetData(d Data) PerNotePitchBend {
	dataField.write(m.w, uint32(d))
	return m
}

// SetGroup writes the group field.
func (m PerNotePitchBend) SetGroup(g Group) PerNotePitchBend {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m PerNotePitchBend) SetChannel(c Channel) PerNotePitchBend {
	m.setChannel(c)
	return m
}

// PerNoteManagement is the Voice message controlling how per-note
// controllers apply to a note: detach them from previous notes of the
// same number, reset them to defaults, or both.
type PerNoteManagement struct {
	voiceMessage
}

// NewPerNoteManagement initializes words as a Per-Note Management
// message.
func NewPerNoteManagement(words []uint32, note Note) (PerNoteManagement, error) {
	m, err := initVoice(words, OpcodePerNoteManagement)
	if err != nil {
		return PerNoteManagement{}, err
	}
	return PerNoteManagement{m}.SetNote(note), nil
}

// AsPerNoteManagement wraps an existing buffer, validating its size
// and discriminants.
func AsPerNoteManagement(words []uint32) (PerNoteManagement, error) {
	m, err := asVoice(words, OpcodePerNoteManagement)
	if err != nil {
		return PerNoteManagement{}, err
	}
	return PerNoteManagement{m}, nil
}

// Note reads the 7-bit note number.
func (m PerNoteManagement) Note() (Note, error) {
	v, err := noteField.read(m.w)
	if err != nil {
		return 0, err
	}
	return Note(v), nil
}

// Detach reads the detach flag.
func (m PerNoteManagement) Detach() bool {
	return detachField.load(m.w) != 0
}

// ResetControllers reads the reset flag.
func (m PerNoteManagement) ResetControllers() bool {
	return resetControllersField.load(m.w) != 0
}

// SetNote writes the note number.
func (m PerNoteManagement) SetNote(n Note) PerNoteManagement {
	noteField.write(m.w, uint32(n))
	return m
}

// SetDetach writes the detach flag.
func (m PerNoteManagement) SetDetach(v bool) PerNoteManagement {
	detachField.write(m.w, flagBit(v))
	return m
}

// SetResetControllers writes the reset flag.
func (m PerNoteManagement) SetResetControllers(v bool) PerNoteManagement {
	resetControllersField.write(m.w, flagBit(v))
	return m
}

// SetGroup writes the group field.
func (m PerNoteManagement) SetGroup(g Group) PerNoteManagement {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m PerNoteManagement) SetChannel(c Channel) PerNoteManagement {
	m.setChannel(c)
	return m
}

func flagBit(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}
