package jump

// State is the top-level game state.
type State int

const (
	StateMainMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Hook runs on entering or exiting a state.
type Hook func(w *World)

// Machine holds the current state, at most one pending transition, and the
// hook lists run when states are entered and exited.
//
// Transitions requested during a tick take effect only when Apply is called
// at the end of that tick.
type Machine struct {
	current    State
	pending    State
	hasPending bool
	enter      map[State][]Hook
	exit       map[State][]Hook
}

// NewMachine creates a machine in StateMainMenu with no hooks.
func NewMachine() *Machine {
	return &Machine{
		current: StateMainMenu,
		enter:   make(map[State][]Hook),
		exit:    make(map[State][]Hook),
	}
}

// OnEnter appends hooks run, in order, when s is entered.
func (m *Machine) OnEnter(s State, hooks ...Hook) {
	m.enter[s] = append(m.enter[s], hooks...)
}

// OnExit appends hooks run, in order, when s is exited.
func (m *Machine) OnExit(s State, hooks ...Hook) {
	m.exit[s] = append(m.exit[s], hooks...)
}

// Current returns the active state.
func (m *Machine) Current() State {
	return m.current
}

// Pending returns the requested next state, if any.
func (m *Machine) Pending() (State, bool) {
	return m.pending, m.hasPending
}

// Start makes s current and runs its enter hooks without running any exit hooks.
func (m *Machine) Start(w *World, s State) {
	m.current = s
	m.hasPending = false
	m.run(w, m.enter[s])
}

// Request schedules a transition to s. Requesting the current state is
// ignored and leaves any earlier request in place. A later request for
// another state replaces an earlier one.
func (m *Machine) Request(s State) {
	if s == m.current {
		return
	}
	m.pending = s
	m.hasPending = true
}

// Apply performs the pending transition: exit hooks of the old state, then
// enter hooks of the new one. It reports whether a transition happened.
func (m *Machine) Apply(w *World) (from, to State, ok bool) {
	if !m.hasPending {
		return m.current, m.current, false
	}
	from, to = m.current, m.pending
	m.hasPending = false
	m.run(w, m.exit[from])
	m.current = to
	m.run(w, m.enter[to])
	return from, to, true
}

func (m *Machine) run(w *World, hooks []Hook) {
	for _, h := range hooks {
		h(w)
	}
}
