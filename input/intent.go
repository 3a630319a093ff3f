package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survivor/component"
)

// Action discriminates system-level commands that are not player movement
type Action uint8

const (
	ActionNone        Action = iota
	ActionQuit                      // Esc, Ctrl+C, q
	ActionRestart                   // r
	ActionToggleMute                // m
	ActionToggleStats               // F2
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionRestart:
		return "restart"
	case ActionToggleMute:
		return "toggle_mute"
	case ActionToggleStats:
		return "toggle_stats"
	}
	return "none"
}

// Binding targets one movement flag of one player
type Binding struct {
	Player int // 1 or 2
	Intent component.Intent
}

// KeyEvent is a synthesized key transition for a bound movement key
type KeyEvent struct {
	Binding Binding
	Down    bool
}

// Key identifies a physical key press as delivered by the terminal
// Code is tcell.KeyRune for printable keys, in which case Rune is set
type Key struct {
	Code tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// KeyFromEvent extracts the key identity from a tcell key event
func KeyFromEvent(ev *tcell.EventKey) Key {
	k := Key{Code: ev.Key(), Mod: ev.Modifiers()}
	if k.Code == tcell.KeyRune {
		k.Rune = ev.Rune()
	}
	return k
}

// RuneKey is shorthand for a printable key
func RuneKey(r rune) Key {
	return Key{Code: tcell.KeyRune, Rune: r}
}

// SpecialKey is shorthand for a non-printable key
func SpecialKey(code tcell.Key) Key {
	return Key{Code: code}
}
