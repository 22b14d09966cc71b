package sim

// State is the discrete status of the simulated process. The name is what
// the display shows; the value is arbitrary.
type State struct {
	name  string
	value int
}

// Process states
var (
	StateDisconnected = State{name: "Disconnected", value: 0}
	StateIdle         = State{name: "Idle", value: 1}
	StateCycling      = State{name: "Cycling", value: 2}
	StateFaulted      = State{name: "Faulted", value: 3}
)

// States returns every State in declaration order.
func States() []State {
	return []State{StateDisconnected, StateIdle, StateCycling, StateFaulted}
}

// Name returns the display name.
func (s State) Name() string { return s.name }

// Value returns the integer value.
func (s State) Value() int { return s.value }

// String implements fmt.Stringer
func (s State) String() string { return s.name }

// Mode is the user-selectable operating mode. Only the members returned by
// Modes are valid; the zero Mode is not a member.
type Mode struct {
	name  string
	value int
}

// Operating modes
var (
	ModeDisabled = Mode{name: "Disabled", value: 22}
	ModeSetup    = Mode{name: "Setup", value: 44}
	ModeTest     = Mode{name: "Test", value: 33}
	ModeRun      = Mode{name: "Run", value: 11}
)

// Modes returns every Mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeDisabled, ModeSetup, ModeTest, ModeRun}
}

// Name returns the display name.
func (m Mode) Name() string { return m.name }

// Value returns the integer value.
func (m Mode) Value() int { return m.value }

// String implements fmt.Stringer
func (m Mode) String() string { return m.name }

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	for _, member := range Modes() {
		if m == member {
			return true
		}
	}
	return false
}

// ModeByName looks up a mode by its display name.
func ModeByName(name string) (Mode, bool) {
	for _, member := range Modes() {
		if member.name == name {
			return member, true
		}
	}
	return Mode{}, false
}
