package input

import (
	"slices"
	"time"
)

// Result is the outcome of processing one key press
type Result struct {
	Keys   []KeyEvent // Movement transitions, at most one key-down per press
	Action Action     // System action, ActionNone for movement or unbound keys
}

// Machine converts terminal key presses into key-down/key-up transitions
// Terminals deliver presses and auto-repeats but no releases, so a key is
// considered held until its deadline passes without a repeat. The first
// deadline after a press uses initialHold to bridge the terminal's repeat
// delay; once repeats arrive the shorter hold applies
type Machine struct {
	keyTable    *KeyTable
	hold        time.Duration
	initialHold time.Duration
	held        map[Binding]heldKey
}

type heldKey struct {
	deadline  time.Time // Release time absent further repeats
	repeating bool      // At least one auto-repeat seen since the press
}

// NewMachine creates a machine over kt; non-positive durations use the defaults
// initialHold is raised to hold when shorter
func NewMachine(kt *KeyTable, hold, initialHold time.Duration) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	if hold <= 0 {
		hold = DefaultHold
	}
	if initialHold <= 0 {
		initialHold = DefaultInitialHold
	}
	initialHold = max(initialHold, hold)
	return &Machine{
		keyTable:    kt,
		hold:        hold,
		initialHold: initialHold,
		held:        make(map[Binding]heldKey),
	}
}

// Release timeouts when none are configured
const (
	DefaultHold        = 150 * time.Millisecond
	DefaultInitialHold = 600 * time.Millisecond
)

func (m *Machine) KeyTable() *KeyTable {
	return m.keyTable
}

func (m *Machine) Hold() time.Duration {
	return m.hold
}

func (m *Machine) InitialHold() time.Duration {
	return m.initialHold
}

// Process handles one key press or auto-repeat at time now
func (m *Machine) Process(k Key, now time.Time) Result {
	entry, ok := m.keyTable.Lookup(k)
	if !ok {
		return Result{}
	}

	switch entry.Behavior {
	case BehaviorSystem:
		return Result{Action: entry.Action}

	case BehaviorMove:
		b := entry.Binding
		if _, wasHeld := m.held[b]; wasHeld {
			// Auto-repeat only extends the hold
			m.held[b] = heldKey{deadline: now.Add(m.hold), repeating: true}
			return Result{}
		}
		m.held[b] = heldKey{deadline: now.Add(m.initialHold)}
		return Result{Keys: []KeyEvent{{Binding: b, Down: true}}}
	}

	return Result{}
}

// Expire releases every key whose hold deadline is at or before now
func (m *Machine) Expire(now time.Time) []KeyEvent {
	var released []KeyEvent
	for b, k := range m.held {
		if !now.Before(k.deadline) {
			delete(m.held, b)
			released = append(released, KeyEvent{Binding: b})
		}
	}
	sortKeyEvents(released)
	return released
}

// ReleaseAll releases every held key and returns the key-ups
func (m *Machine) ReleaseAll() []KeyEvent {
	released := make([]KeyEvent, 0, len(m.held))
	for b := range m.held {
		released = append(released, KeyEvent{Binding: b})
	}
	clear(m.held)
	sortKeyEvents(released)
	return released
}

// Reset forgets every held key without reporting releases, used when the players are replaced
func (m *Machine) Reset() {
	clear(m.held)
}

// IsRepeating reports whether b is held and has seen an auto-repeat
func (m *Machine) IsRepeating(b Binding) bool {
	return m.held[b].repeating
}

// IsHeld reports whether b is currently held
func (m *Machine) IsHeld(b Binding) bool {
	_, ok := m.held[b]
	return ok
}

func sortKeyEvents(events []KeyEvent) {
	slices.SortFunc(events, func(a, b KeyEvent) int {
		if a.Binding.Player != b.Binding.Player {
			return a.Binding.Player - b.Binding.Player
		}
		return int(a.Binding.Intent) - int(b.Binding.Intent)
	})
}
