package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survivor/component"
)

// intentRegistry maps config intent names to movement intents
var intentRegistry = map[string]component.Intent{
	"forward":      component.IntentForward,
	"backward":     component.IntentBackward,
	"rotate_left":  component.IntentRotateLeft,
	"rotate_right": component.IntentRotateRight,
}

// keyNames maps lowercase key names to tcell keys, built from tcell's own name table
var keyNames map[string]tcell.Key

// Rune aliases for keys without a printable single-character name
var runeAliases = map[string]rune{
	"space": ' ',
}

func init() {
	keyNames = make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		if k == tcell.KeyRune {
			continue
		}
		keyNames[strings.ToLower(name)] = k
	}
	keyNames["esc"] = tcell.KeyEscape
}

// IntentByName resolves a config intent name
func IntentByName(name string) (component.Intent, bool) {
	in, ok := intentRegistry[strings.ToLower(strings.TrimSpace(name))]
	return in, ok
}

// String renders the key by name for error messages
func (k Key) String() string {
	if k.Code == tcell.KeyRune {
		if k.Rune == ' ' {
			return "Space"
		}
		return string(k.Rune)
	}
	if name, ok := tcell.KeyNames[k.Code]; ok {
		return name
	}
	return "Unknown"
}
