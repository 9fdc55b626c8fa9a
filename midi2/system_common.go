package midi2

// Field slots of the System Common kinds. The two data bytes of a
// System Common message carry 7-bit values in 8-bit slots, so reads
// reject raw bytes with the top bit set.
var (
	quarterFrameTypeField = field{start: 17, end: 19, width: 3}
	quarterFrameDataField = field{start: 20, end: 23, width: 4}
	positionLSBField      = field{start: 16, end: 23, width: 7}
	positionMSBField      = field{start: 24, end: 31, width: 7}
	songField             = field{start: 16, end: 23, width: 7}
)

// QuarterFrameType identifies which timecode component a quarter-frame
// carries, and whether it is the low or high nibble of that component.
// All eight codes of the 3-bit field are defined.
type QuarterFrameType uint8

const (
	FramesLow QuarterFrameType = iota
	FramesHigh
	SecondsLow
	SecondsHigh
	MinutesLow
	MinutesHigh
	HoursLow
	HoursHigh
)

func (t QuarterFrameType) String() string {
	switch t {
	case FramesLow:
		return "FramesLow"
	case FramesHigh:
		return "FramesHigh"
	case SecondsLow:
		return "SecondsLow"
	case SecondsHigh:
		return "SecondsHigh"
	case MinutesLow:
		return "MinutesLow"
	case MinutesHigh:
		return "MinutesHigh"
	case HoursLow:
		return "HoursLow"
	case HoursHigh:
		return "HoursHigh"
	}
	return "Unknown"
}

// QuarterFrameData is the 4-bit data nibble of a quarter-frame.
type QuarterFrameData uint8

// NewQuarterFrameData validates that v fits the 4-bit data nibble.
func NewQuarterFrameData(v uint8) (QuarterFrameData, error) {
	if err := boundedUint(uint64(v), 4); err != nil {
		return 0, err
	}
	return QuarterFrameData(v), nil
}

// QuarterFrame pairs a timecode component tag with its data nibble.
// It is the composite value carried by a MIDI Time Code message: the
// tag is read first and selects how the nibble is interpreted.
type QuarterFrame struct {
	Type QuarterFrameType
	Data QuarterFrameData
}

// MIDITimeCode is the System Common message carrying one quarter-frame
// of MIDI Time Code.
type MIDITimeCode struct {
	systemCommon
}

// NewMIDITimeCode initializes words as a MIDI Time Code message.
func NewMIDITimeCode(words []uint32, qf QuarterFrame) (MIDITimeCode, error) {
	m, err := initSystem(words, StatusMIDITimeCode)
	if err != nil {
		return MIDITimeCode{}, err
	}
	return MIDITimeCode{systemCommon{m}}.SetQuarterFrame(qf), nil
}

// AsMIDITimeCode wraps an existing buffer, validating its size and
// discriminants.
func AsMIDITimeCode(words []uint32) (MIDITimeCode, error) {
	m, err := asSystem(words, StatusMIDITimeCode)
	if err != nil {
		return MIDITimeCode{}, err
	}
	return MIDITimeCode{systemCommon{m}}, nil
}

// QuarterFrame reads the quarter-frame composite: the component tag
// first, then the data nibble. Either the whole value is produced or
// the read fails.
func (m MIDITimeCode) QuarterFrame() (QuarterFrame, error) {
	t, err := quarterFrameTypeField.read(m.w)
	if err != nil {
		return QuarterFrame{}, err
	}
	d, err := quarterFrameDataField.read(m.w)
	if err != nil {
		return QuarterFrame{}, err
	}
	return QuarterFrame{Type: QuarterFrameType(t), Data: QuarterFrameData(d)}, nil
}

// SetQuarterFrame writes the component tag followed by the data nibble.
func (m MIDITimeCode) SetQuarterFrame(qf QuarterFrame) MIDITimeCode {
	quarterFrameTypeField.write(m.w, uint32(qf.Type))
	quarterFrameDataField.write(m.w, uint32(qf.Data))
	return m
}

// SetGroup writes the group field.
func (m MIDITimeCode) SetGroup(g Group) MIDITimeCode {
	m.setGroup(g)
	return m
}

// Position is the 14-bit song position carried by a Song Position
// Pointer message, counted in MIDI beats.
type Position uint16

// NewPosition validates that v fits the 14-bit position field.
func NewPosition(v uint16) (Position, error) {
	if err := boundedUint(uint64(v), 14); err != nil {
		return 0, err
	}
	return Position(v), nil
}

// SongPositionPointer is the System Common message carrying the
// current song position.
type SongPositionPointer struct {
	systemCommon
}

// NewSongPositionPointer initializes words as a Song Position Pointer
// message.
func NewSongPositionPointer(words []uint32, pos Position) (SongPositionPointer, error) {
	m, err := initSystem(words, StatusSongPositionPointer)
	if err != nil {
		return SongPositionPointer{}, err
	}
	return SongPositionPointer{systemCommon{m}}.SetPosition(pos), nil
}

// AsSongPositionPointer wraps an existing buffer, validating its size
// and discriminants.
func AsSongPositionPointer(words []uint32) (SongPositionPointer, error) {
	m, err := asSystem(words, StatusSongPositionPointer)
	if err != nil {
		return SongPositionPointer{}, err
	}
	return SongPositionPointer{systemCommon{m}}, nil
}

// Position reads the 14-bit position, split across the two 7-bit data
// slots with the low half in the first.
func (m SongPositionPointer) Position() (Position, error) {
	lsb, err := positionLSBField.read(m.w)
	if err != nil {
		return 0, err
	}
	msb, err := positionMSBField.read(m.w)
	if err != nil {
		return 0, err
	}
	return Position(msb<<7 | lsb), nil
}

// SetPosition writes the 14-bit position across the two data slots.
func (m SongPositionPointer) SetPosition(pos Position) SongPositionPointer {
	positionLSBField.write(m.w, uint32(pos)&0x7f)
	positionMSBField.write(m.w, uint32(pos)>>7)
	return m
}

// SetGroup writes the group field.
func (m SongPositionPointer) SetGroup(g Group) SongPositionPointer {
	m.setGroup(g)
	return m
}

// Song is the 7-bit song number carried by a Song Select message.
type Song uint8

// NewSong validates that v fits the 7-bit song field.
func NewSong(v uint8) (Song, error) {
	if err := boundedUint(uint64(v), 7); err != nil {
		return 0, err
	}
	return Song(v), nil
}

// SongSelect is the System Common message selecting a song.
type SongSelect struct {
	systemCommon
}

// NewSongSelect initializes words as a Song Select message.
func NewSongSelect(words []uint32, song Song) (SongSelect, error) {
	m, err := initSystem(words, StatusSongSelect)
	if err != nil {
		return SongSelect{}, err
	}
	return SongSelect{systemCommon{m}}.SetSong(song), nil
}

// AsSongSelect wraps an existing buffer, validating its size and
// discriminants.
func AsSongSelect(words []uint32) (SongSelect, error) {
	m, err := asSystem(words, StatusSongSelect)
	if err != nil {
		return SongSelect{}, err
	}
	return SongSelect{systemCommon{m}}, nil
}

// Song reads the 7-bit song number.
func (m SongSelect) Song() (Song, error) {
	v, err := songField.read(m.w)
	if err != nil {
		return 0, err
	}
	return Song(v), nil
}

// SetSong writes the song number.
func (m SongSelect) SetSong(song Song) SongSelect {
	songField.write(m.w, uint32(song))
	return m
}

// SetGroup writes the group field.
func (m SongSelect) SetGroup(g Group) SongSelect {
	m.setGroup(g)
	return m
}

// TuneRequest is the System Common message requesting analog tuning.
// It has no fields beyond the discriminants.
type TuneRequest struct {
	systemCommon
}

// NewTuneRequest initializes words as a Tune Request message.
func NewTuneRequest(words []uint32) (TuneRequest, error) {
	m, err := initSystem(words, StatusTuneRequest)
	if err != nil {
		return TuneRequest{}, err
	}
	return TuneRequest{systemCommon{m}}, nil
}

// AsTuneRequest wraps an existing buffer, validating its size and
// discriminants.
func AsTuneRequest(words []uint32) (TuneRequest, error) {
	m, err := asSystem(words, StatusTuneRequest)
	if err != nil {
		return TuneRequest{}, err
	}
	return TuneRequest{systemCommon{m}}, nil
}

// SetGroup writes the group field.
func (m TuneRequest) SetGroup(g Group) TuneRequest {
	m.setGroup(g)
	return m
}
