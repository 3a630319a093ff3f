package input

import (
	"fmt"
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survivor/component"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone   KeyBehavior = iota
	BehaviorMove               // Held movement key bound to a player intent
	BehaviorSystem             // One-shot system action
)

// KeyEntry describes a key's behavior
type KeyEntry struct {
	Behavior KeyBehavior
	Binding  Binding
	Action   Action
}

func moveEntry(player int, intent component.Intent) KeyEntry {
	return KeyEntry{Behavior: BehaviorMove, Binding: Binding{Player: player, Intent: intent}}
}

func systemEntry(action Action) KeyEntry {
	return KeyEntry{Behavior: BehaviorSystem, Action: action}
}

// KeyTable maps physical keys to behaviors
// Rune entries are stored lowercase and matched case-insensitively
type KeyTable struct {
	SpecialKeys map[tcell.Key]KeyEntry
	Runes       map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings: arrows for player 1, WSAD for player 2
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     moveEntry(1, component.IntentForward),
			tcell.KeyDown:   moveEntry(1, component.IntentBackward),
			tcell.KeyLeft:   moveEntry(1, component.IntentRotateLeft),
			tcell.KeyRight:  moveEntry(1, component.IntentRotateRight),
			tcell.KeyEscape: systemEntry(ActionQuit),
			tcell.KeyCtrlC:  systemEntry(ActionQuit),
			tcell.KeyF2:     systemEntry(ActionToggleStats),
		},
		Runes: map[rune]KeyEntry{
			'w': moveEntry(2, component.IntentForward),
			's': moveEntry(2, component.IntentBackward),
			'a': moveEntry(2, component.IntentRotateLeft),
			'd': moveEntry(2, component.IntentRotateRight),
			'q': systemEntry(ActionQuit),
			'r': systemEntry(ActionRestart),
			'm': systemEntry(ActionToggleMute),
		},
	}
}

// Lookup resolves a key to its entry
func (kt *KeyTable) Lookup(k Key) (KeyEntry, bool) {
	if k.Code == tcell.KeyRune {
		// Some terminals report Ctrl+C as a modified rune
		if k.Mod&tcell.ModCtrl != 0 && unicode.ToLower(k.Rune) == 'c' {
			return systemEntry(ActionQuit), true
		}
		e, ok := kt.Runes[unicode.ToLower(k.Rune)]
		return e, ok
	}
	e, ok := kt.SpecialKeys[k.Code]
	return e, ok
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Bind assigns k to a player intent, replacing the intent's previous key
// Fails when k already serves another binding or a system action
func (kt *KeyTable) Bind(k Key, b Binding) error {
	entry := moveEntry(b.Player, b.Intent)

	if existing, ok := kt.Lookup(k); ok && existing != entry {
		return fmt.Errorf("key %s already bound to %s", k, existing)
	}

	kt.unbind(b)
	if k.Code == tcell.KeyRune {
		kt.Runes[unicode.ToLower(k.Rune)] = entry
	} else {
		kt.SpecialKeys[k.Code] = entry
	}
	return nil
}

// unbind removes every key mapped to b
func (kt *KeyTable) unbind(b Binding) {
	maps.DeleteFunc(kt.Runes, func(_ rune, e KeyEntry) bool {
		return e.Behavior == BehaviorMove && e.Binding == b
	})
	maps.DeleteFunc(kt.SpecialKeys, func(_ tcell.Key, e KeyEntry) bool {
		return e.Behavior == BehaviorMove && e.Binding == b
	})
}

// KeyFor returns the key currently bound to b
func (kt *KeyTable) KeyFor(b Binding) (Key, bool) {
	for code, e := range kt.SpecialKeys {
		if e.Behavior == BehaviorMove && e.Binding == b {
			return SpecialKey(code), true
		}
	}
	for r, e := range kt.Runes {
		if e.Behavior == BehaviorMove && e.Binding == b {
			return RuneKey(r), true
		}
	}
	return Key{}, false
}

func (e KeyEntry) String() string {
	switch e.Behavior {
	case BehaviorMove:
		return fmt.Sprintf("player %d %s", e.Binding.Player, e.Binding.Intent)
	case BehaviorSystem:
		return e.Action.String()
	}
	return "none"
}
