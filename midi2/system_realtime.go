package midi2

// The System Real Time kinds carry no fields beyond the discriminants;
// each is the fixed status code plus the group.

// TimingClock is the System Real Time message providing the 24 ppq
// clock pulse.
type TimingClock struct {
	systemRealTime
}

// NewTimingClock initializes words as a Timing Clock message.
func NewTimingClock(words []uint32) (TimingClock, error) {
	m, err := initSystem(words, StatusTimingClock)
	if err != nil {
		return TimingClock{}, err
	}
	return TimingClock{systemRealTime{m}}, nil
}

// AsTimingClock wraps an existing buffer, validating its size and
// discriminants.
func AsTimingClock(words []uint32) (TimingClock, error) {
	m, err := asSystem(words, StatusTimingClock)
	if err != nil {
		return TimingClock{}, err
	}
	return TimingClock{systemRealTime{m}}, nil
}

// SetGroup writes the group field.
func (m TimingClock) SetGroup(g Group) TimingClock {
	m.setGroup(g)
	return m
}

// Start is the System Real Time message starting playback.
type Start struct {
	systemRealTime
}

// NewStart initializes words as a Start message.
func NewStart(words []uint32) (Start, error) {
	m, err := initSystem(words, StatusStart)
	if err != nil {
		return Start{}, err
	}
	return Start{systemRealTime{m}}, nil
}

// AsStart wraps an existing buffer, validating its size and
// discriminants.
func AsStart(words []uint32) (Start, error) {
	m, err := asSystem(words, StatusStart)
	if err != nil {
		return Start{}, err
	}
	return Start{systemRealTime{m}}, nil
}

// SetGroup writes the group field.
func (m Start) SetGroup(g Group) Start {
	m.setGroup(g)
	return m
}

// Continue is the System Real Time message resuming playback.
type Continue struct {
	systemRealTime
}

// NewContinue initializes words as a Continue message.
func NewContinue(words []uint32) (Continue, error) {
	m, err := initSystem(words, StatusContinue)
	if err != nil {
		return Continue{}, err
	}
	return Continue{systemRealTime{m}}, nil
}

// AsContinue wraps an existing buffer, validating its size and
// discriminants.
func AsContinue(words []uint32) (Continue, error) {
	m, err := asSystem(words, StatusContinue)
	if err != nil {
		return Continue{}, err
	}
	return Continue{systemRealTime{m}}, nil
}

// SetGroup writes the group field.
func (m Continue) SetGroup(g Group) Continue {
	m.setGroup(g)
	return m
}

// Stop is the System Real Time message stopping playback.
type Stop struct {
	systemRealTime
}

// NewStop initializes words as a Stop message.
func NewStop(words []uint32) (Stop, error) {
	m, err := initSystem(words, StatusStop)
	if err != nil {
		return Stop{}, err
	}
	return Stop{systemRealTime{m}}, nil
}

// AsStop wraps an existing buffer, validating its size and
// discriminants.
func AsStop(words []uint32) (Stop, error) {
	m, err := asSystem(words, StatusStop)
	if err != nil {
		return Stop{}, err
	}
	return Stop{systemRealTime{m}}, nil
}

// SetGroup writes the group field.
func (m Stop) SetGroup(g Group) Stop {
	m.setGroup(g)
	return m
}

// ActiveSensing is the System Real Time keep-alive message.
type ActiveSensing struct {
	systemRealTime
}

// NewActiveSensing initializes words as an Active Sensing message.
func NewActiveSensing(words []uint32) (ActiveSensing, error) {
	m, err := initSystem(words, StatusActiveSensing)
	if err != nil {
		return ActiveSensing{}, err
	}
	return ActiveSensing{systemRealTime{m}}, nil
}

// AsActiveSensing wraps an existing buffer, validating its size and
// discriminants.
func AsActiveSensing(words []uint32) (ActiveSensing, error) {
	m, err := asSystem(words, StatusActiveSensing)
	if err != nil {
		return ActiveSensing{}, err
	}
	return ActiveSensing{systemRealTime{m}}, nil
}

// SetGroup writes the group field.
func (m ActiveSensing) SetGroup(g Group) ActiveSensing {
	m.setGroup(g)
	return m
}

// Reset is the System Real Time message resetting all receivers to
// their power-up state.
type Reset struct {
	systemRealTime
}

// NewReset initializes words as a Reset message.
func NewReset(words []uint32) (Reset, error) {
	m, err := initSystem(words, StatusReset)
	if err != nil {
		return Reset{}, err
	}
	return Reset{systemRealTime{m}}, nil
}

// AsReset wraps an existing buffer, validating its size and
// discriminants.
func AsReset(words []uint32) (Reset, error) {
	m, err := asSystem(words, StatusReset)
	if err != nil {
		return Reset{}, err
	}
	return Reset{systemRealTime{m}}, nil
}

// SetGroup writes the group field.
func (m Reset) SetGroup(g Group) Reset {
	m.setGroup(g)
	return m
}
