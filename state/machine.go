package state

// Screen is the top-level game screen.
type Screen int

const (
	StartScreen Screen = iota
	Playing
	Won
	Lost
)

func (s Screen) String() string {
	switch s {
	case StartScreen:
		return "start"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event is an input or game outcome that can move between screens.
type Event int

const (
	AnyKey Event = iota
	ReachedGoal
	Caught
)

func (e Event) String() string {
	switch e {
	case AnyKey:
		return "any-key"
	case ReachedGoal:
		return "reached-goal"
	case Caught:
		return "caught"
	default:
		return "unknown"
	}
}

// Transition is one row of the table.
type Transition struct {
	Next Screen
	// Reset asks the owner to rebuild the round: player, pursuer and grid.
	Reset bool
}

type key struct {
	from  Screen
	event Event
}

// DefaultTransitions is the game's screen flow.
var DefaultTransitions = map[Screen]map[Event]Transition{
	StartScreen: {AnyKey: {Next: Playing, Reset: true}},
	Playing: {
		ReachedGoal: {Next: Won},
		Caught:      {Next: Lost},
	},
	Won:  {AnyKey: {Next: StartScreen, Reset: true}},
	Lost: {AnyKey: {Next: StartScreen, Reset: true}},
}

// Machine holds the current screen. Events without a table entry are ignored.
type Machine struct {
	current Screen
	table   map[key]Transition
}

func NewMachine(initial Screen, transitions map[Screen]map[Event]Transition) *Machine {
	m := &Machine{current: initial, table: map[key]Transition{}}
	for from, events := range transitions {
		for ev, tr := range events {
			m.table[key{from, ev}] = tr
		}
	}
	return m
}

func (m *Machine) Current() Screen { return m.current }

// Fire applies ev. ok is false, and the screen unchanged, when the current
// screen does not react to ev.
func (m *Machine) Fire(ev Event) (tr Transition, ok bool) {
	tr, ok = m.table[key{m.current, ev}]
	if !ok {
		return Transition{}, false
	}
	m.current = tr.Next
	return tr, true
}
