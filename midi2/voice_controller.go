package midi2

// controllerMessage is the shared shape of the four bank/controller
// kinds: a 7-bit bank, a 7-bit controller number, and a 32-bit data
// word.
type controllerMessage struct {
	voiceMessage
}

// Bank reads the 7-bit bank number.
func (m controllerMessage) Bank() (Bank, error) {
	v, err := bankField.read(m.w)
	if err != nil {
		return 0, err
	}
	return Bank(v), nil
}

// Controller reads the 7-bit controller number.
func (m controllerMessage) Controller() (Controller, error) {
	v, err := controllerField.read(m.w)
	if err != nil {
		return 0, err
	}
	return Controller(v), nil
}

// Data reads the 32-bit controller data.
func (m controllerMessage) Data() Data {
	return Data(dataField.load(m.w))
}

func (m controllerMessage) setBank(b Bank)             { bankField.write(m.w, uint32(b)) }
func (m controllerMessage) setController(c Controller) { controllerField.write(m.w, uint32(c)) }
func (m controllerMessage) setData(d Data)             { dataField.write(m.w, uint32(d)) }

func initController(words []uint32, op Opcode, bank Bank, controller Controller) (controllerMessage, error) {
	v, err := initVoice(words, op)
	if err != nil {
		return controllerMessage{}, err
	}
	m := controllerMessage{v}
	m.setBank(bank)
	m.setController(controller)
	return m, nil
}

// RegisteredController is the Voice message setting a registered
// (bank 0-127) controller to an absolute 32-bit value.
type RegisteredController struct {
	controllerMessage
}

// NewRegisteredController initializes words as a Registered Controller
// message.
func NewRegisteredController(words []uint32, bank Bank, controller Controller) (RegisteredController, error) {
	m, err := initController(words, OpcodeRegisteredController, bank, controller)
	if err != nil {
		return RegisteredController{}, err
	}
	return RegisteredController{m}, nil
}

// AsRegisteredController wraps an existing buffer, validating its size
// and discriminants.
func AsRegisteredController(words []uint32) (RegisteredController, error) {
	m, err := asVoice(words, OpcodeRegisteredController)
	if err != nil {
		return RegisteredController{}, err
	}
	return RegisteredController{controllerMessage{m}}, nil
}

// SetGroup writes the group field.
func (m RegisteredController) SetGroup(g Group) RegisteredController {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m RegisteredController) SetChannel(c Channel) RegisteredController {
	m.setChannel(c)
	return m
}

// SetBank writes the bank number.
func (m RegisteredController) SetBank(b Bank) RegisteredController {
	m.setBank(b)
	return m
}

// SetController writes the controller number.
func (m RegisteredController) SetController(c Controller) RegisteredController {
	m.setController(c)
	return m
}

// SetData writes the controller data.
func (m RegisteredController) SetData(d Data) RegisteredController {
	m.setData(d)
	return m
}

// AssignableController is the Voice message setting an assignable
// controller to an absolute 32-bit value.
type AssignableController struct {
	controllerMessage
}

// NewAssignableController initializes words as an Assignable
// Controller message.
func NewAssignableController(words []uint32, bank Bank, controller Controller) (AssignableController, error) {
	m, err := initController(words, OpcodeAssignableController, bank, controller)
	if err != nil {
		return AssignableController{}, err
	}
	return AssignableController{m}, nil
}

// AsAssignableController wraps an existing buffer, validating its size
// and discriminants.
func AsAssignableController(words []uint32) (AssignableController, error) {
	m, err := asVoice(words, OpcodeAssignableController)
	if err != nil {
		return AssignableController{}, err
	}
	return AssignableController{controllerMessage{m}}, nil
}

// SetGroup writes the group field.
func (m AssignableController) SetGroup(g Group) AssignableController {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m AssignableController) SetChannel(c Channel) AssignableController {
	m.setChannel(c)
	return m
}

// SetBank writes the bank number.
func (m AssignableController) SetBank(b Bank) AssignableController {
	m.setBank(b)
	return m
}

// SetController writes the controller number.
func (m AssignableController) SetController(c Controller) AssignableController {
	m.setController(c)
	return m
}

// SetData writes the controller data.
func (m AssignableController) SetData(d Data) AssignableController {
	m.setData(d)
	return m
}

// RelativeRegisteredController is the Voice message adjusting a
// registered controller by a relative amount.
type RelativeRegisteredController struct {
	controllerMessage
}

// NewRelativeRegisteredController initializes words as a Relative
// Registered Controller message.
func NewRelativeRegisteredController(words []uint32, bank Bank, controller Controller) (RelativeRegisteredController, error) {
	m, err := initController(words, OpcodeRelativeRegisteredController, bank, controller)
	if err != nil {
		return RelativeRegisteredController{}, err
	}
	return RelativeRegisteredController{m}, nil
}

// AsRelativeRegisteredController wraps an existing buffer, validating
// its size and discriminants.
func AsRelativeRegisteredController(words []uint32) (RelativeRegisteredController, error) {
	m, err := asVoice(words, OpcodeRelativeRegisteredController)
	if err != nil {
		return RelativeRegisteredController{}, err
	}
	return RelativeRegisteredController{controllerMessage{m}}, nil
}

// SetGroup writes the group field.
func (m RelativeRegisteredController) SetGroup(g Group) RelativeRegisteredController {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m RelativeRegisteredController) SetChannel(c Channel) RelativeRegisteredController {
	m.setChannel(c)
	return m
}

// SetBank writes the bank number.
func (m RelativeRegisteredController) SetBank(b Bank) RelativeRegisteredController {
	m.setBank(b)
	return m
}

// SetController writes the controller number.
func (m RelativeRegisteredController) SetController(c Controller) RelativeRegisteredController {
	m.setController(c)
	return m
}

// SetData writes the controller data.
func (m RelativeRegisteredController) SetData(d Data) RelativeRegisteredController {
	m.setData(d)
	return m
}

// RelativeAssignableController is the Voice message adjusting an
// assignable controller by a relative amount.
type RelativeAssignableController struct {
	controllerMessage
}

// NewRelativeAssignableController initializes words as a Relative
// Assignable Controller message.
func NewRelativeAssignableController(words []uint32, bank Bank, controller Controller) (RelativeAssignableController, error) {
	m, err := initController(words, OpcodeRelativeAssignableController, bank, controller)
	if err != nil {
		return RelativeAssignableController{}, err
	}
	return RelativeAssignableController{m}, nil
}

// AsRelativeAssignableController wraps an existing buffer, validating
// its size and discriminants.
func AsRelativeAssignableController(words []uint32) (RelativeAssignableController, error) {
	m, err := asVoice(words, OpcodeRelativeAssignableController)
	if err != nil {
		return RelativeAssignableController{}, err
	}
	return RelativeAssignableController{controllerMessage{m}}, nil
}

// SetGroup writes the group field.
func (m RelativeAssignableController) SetGroup(g Group) RelativeAssignableController {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m RelativeAssignableController) SetChannel(c Channel) RelativeAssignableController {
	m.setChannel(c)
	return m
}

// SetBank writes the bank number.
func (m RelativeAssignableController) SetBank(b Bank) RelativeAssignableController {
	m.setBank(b)
	return m
}

// SetController writes the controller number.
func (m RelativeAssignableController) SetController(c Controller) RelativeAssignableController {
	m.setController(c)
	return m
}

// SetData writes the controller data.
func (m RelativeAssignableController) SetData(d Data) RelativeAssignableController {
	m.setData(d)
	return m
}

// perNoteControllerMessage is the shared shape of the two per-note
// controller kinds: a 7-bit note, an 8-bit controller number, and a
// 32-bit data word.
type perNoteControllerMessage struct {
	voiceMessage
}

// Note reads the 7-bit note number.
func (m perNoteControllerMessage) Note() (Note, error) {
	v, err := noteField.read(m.w)
	if err != nil {
		return 0, err
	}
	return Note(v), nil
}

// PerNoteController reads the 8-bit per-note controller number.
func (m perNoteControllerMessage) PerNoteController() PerNoteController {
	return PerNoteController(perNoteControllerField.load(m.w))
}

// Data reads the 32-bit controller data.
func (m perNoteControllerMessage) Data() Data {
	return Data(dataField.load(m.w))
}

func (m perNoteControllerMessage) setNote(n Note) { noteField.write(m.w, uint32(n)) }
func (m perNoteControllerMessage) setPerNoteController(c PerNoteController) {
	perNoteControllerField.write(m.w, uint32(c))
}
func (m perNoteControllerMessage) setData(d Data) { dataField.write(m.w, uint32(d)) }

func initPerNoteController(words []uint32, op Opcode, note Note, controller PerNoteController) (perNoteControllerMessage, error) {
	v, err := initVoice(words, op)
	if err != nil {
		return perNoteControllerMessage{}, err
	}
	m := perNoteControllerMessage{v}
	m.setNote(note)
	m.setPerNoteController(controller)
	return m, nil
}

// RegisteredPerNoteController is the Voice message setting a
// registered controller scoped to one sounding note.
type RegisteredPerNoteController struct {
	perNoteControllerMessage
}

// NewRegisteredPerNoteController initializes words as a Registered
// Per-Note Controller message.
func NewRegisteredPerNoteController(words []uint32, note Note, controller PerNoteController) (RegisteredPerNoteController, error) {
	m, err := initPerNoteController(words, OpcodeRegisteredPerNoteController, note, controller)
	if err != nil {
		return RegisteredPerNoteController{}, err
	}
	return RegisteredPerNoteController{m}, nil
}

// AsRegisteredPerNoteController wraps an existing buffer, validating
// its size and discriminants.
func AsRegisteredPerNoteController(words []uint32) (RegisteredPerNoteController, error) {
	m, err := asVoice(words, OpcodeRegisteredPerNoteController)
	if err != nil {
		return RegisteredPerNoteController{}, err
	}
	return RegisteredPerNoteController{perNoteControllerMessage{m}}, nil
}

// SetGroup writes the group field.
func (m RegisteredPerNoteController) SetGroup(g Group) RegisteredPerNoteController {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m RegisteredPerNoteController) SetChannel(c Channel) RegisteredPerNoteController {
	m.setChannel(c)
	return m
}

// SetNote writes the note number.
func (m RegisteredPerNoteController) SetNote(n Note) RegisteredPerNoteController {
	m.setNote(n)
	return m
}

// SetPerNoteController writes the per-note controller number.
func (m RegisteredPerNoteController) SetPerNoteController(c PerNoteController) RegisteredPerNoteController {
	m.setPerNoteController(c)
	return m
}

// SetData writes the controller data.
func (m RegisteredPerNoteController) SetData(d Data) RegisteredPerNoteController {
	m.setData(d)
	return m
}

// AssignablePerNoteController is the Voice message setting an
// assignable controller scoped to one sounding note.
type AssignablePerNoteController struct {
	perNoteControllerMessage
}

// NewAssignablePerNoteController initializes words as an Assignable
// Per-Note Controller message.
func NewAssignablePerNoteController(words []uint32, note Note, controller PerNoteController) (AssignablePerNoteController, error) {
	m, err := initPerNoteController(words, OpcodeAssignablePerNoteController, note, controller)
	if err != nil {
		return AssignablePerNoteController{}, err
	}
	return AssignablePerNoteController{m}, nil
}

// AsAssignablePerNoteController wraps an existing buffer, validating
// its size and discriminants.
func AsAssignablePerNoteController(words []uint32) (AssignablePerNoteController, error) {
	m, err := asVoice(words, OpcodeAssignablePerNoteController)
	if err != nil {
		return AssignablePerNoteController{}, err
	}
	return AssignablePerNoteController{perNoteControllerMessage{m}}, nil
}

// SetGroup writes the group field.
func (m AssignablePerNoteController) SetGroup(g Group) AssignablePerNoteController {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m AssignablePerNoteController) SetChannel(c Channel) AssignablePerNoteController {
	m.setChannel(c)
	return m
}

// SetNote writes the note number.
func (m AssignablePerNoteController) SetNote(n Note) AssignablePerNoteController {
	m.setNote(n)
	return m
}

// SetPerNoteController writes the per-note controller number.
func (m AssignablePerNoteController) SetPerNoteController(c PerNoteController) AssignablePerNoteController {
	m.setPerNoteController(c)
	return m
}

// SetData writes the controller data.
func (m AssignablePerNoteController) SetData(d Data) AssignablePerNoteController {
	m.setData(d)
	return m
}

// ControlChange is the Voice message setting one of the 128 classic
// controllers to a 32-bit value.
type ControlChange struct {
	voiceMessage
}

// NewControlChange initializes words as a Control Change message.
func NewControlChange(words []uint32, index ControllerIndex) (ControlChange, error) {
	m, err := initVoice(words, OpcodeControlChange)
	if err != nil {
		return ControlChange{}, err
	}
	return ControlChange{m}.SetIndex(index), nil
}

// AsControlChange wraps an existing buffer, validating its size and
// discriminants.
func AsControlChange(words []uint32) (ControlChange, error) {
	m, err := asVoice(words, OpcodeControlChange)
	if err != nil {
		return ControlChange{}, err
	}
	return ControlChange{m}, nil
}

// Index reads the 7-bit controller index.
func (m ControlChange) Index() (ControllerIndex, error) {
	v, err := controllerIndexField.read(m.w)
	if err != nil {
		return 0, err
	}
	return ControllerIndex(v), nil
}

// Data reads the 32-bit controller data.
func (m ControlChange) Data() Data {
	return Data(dataField.load(m.w))
}

// SetIndex writes the controller index.
func (m ControlChange) SetIndex(index ControllerIndex) ControlChange {
	controllerIndexField.write(m.w, uint32(index))
	return m
}

// SetData writes the controller data.
func (m ControlChange) SetData(d Data) ControlChange {
	dataField.write(m.w, uint32(d))
	return m
}

// SetGroup writes the group field.
func (m ControlChange) SetGroup(g Group) ControlChange {
	m.setGroup(g)
	return m
}

// SetChannel writes the channel field.
func (m ControlChange) SetChannel(c Channel) ControlChange {
	m.setChannel(c)
	return m
}
