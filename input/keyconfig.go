package input

import (
	"fmt"
	"sort"
	"strings"
)

// ParseKey converts a key name ("Up", "F2", "w", "space") to a Key
func ParseKey(name string) (Key, error) {
	s := strings.TrimSpace(name)
	if s == "" {
		return Key{}, fmt.Errorf("empty key name")
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return RuneKey(runes[0]), nil
	}

	lower := strings.ToLower(s)
	if r, ok := runeAliases[lower]; ok {
		return RuneKey(r), nil
	}
	if code, ok := keyNames[lower]; ok {
		return SpecialKey(code), nil
	}
	return Key{}, fmt.Errorf("unknown key name: %q", name)
}

// ApplyBindings overrides player's movement keys from an intent name → key name map
// Returns a new table; base is left untouched
func ApplyBindings(base *KeyTable, player int, bindings map[string]string) (*KeyTable, error) {
	if player != 1 && player != 2 {
		return nil, fmt.Errorf("invalid player index %d", player)
	}

	kt := base.Clone()

	// Sorted for deterministic error reporting
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	// Drop overridden keys first so two intents can swap keys
	resolved := make(map[Binding]Key, len(names))
	for _, name := range names {
		intent, ok := IntentByName(name)
		if !ok {
			return nil, fmt.Errorf("player%d: unknown intent %q", player, name)
		}
		key, err := ParseKey(bindings[name])
		if err != nil {
			return nil, fmt.Errorf("player%d.%s: %w", player, name, err)
		}
		b := Binding{Player: player, Intent: intent}
		resolved[b] = key
		kt.unbind(b)
	}

	for _, name := range names {
		intent, _ := IntentByName(name)
		b := Binding{Player: player, Intent: intent}
		if err := kt.Bind(resolved[b], b); err != nil {
			return nil, fmt.Errorf("player%d.%s: %w", player, name, err)
		}
	}
	return kt, nil
}
