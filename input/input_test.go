package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survivor/component"
)

func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		key  Key
		want KeyEntry
	}{
		{"up", SpecialKey(tcell.KeyUp), moveEntry(1, component.IntentForward)},
		{"down", SpecialKey(tcell.KeyDown), moveEntry(1, component.IntentBackward)},
		{"left", SpecialKey(tcell.KeyLeft), moveEntry(1, component.IntentRotateLeft)},
		{"right", SpecialKey(tcell.KeyRight), moveEntry(1, component.IntentRotateRight)},
		{"w", RuneKey('w'), moveEntry(2, component.IntentForward)},
		{"W", RuneKey('W'), moveEntry(2, component.IntentForward)},
		{"s", RuneKey('s'), moveEntry(2, component.IntentBackward)},
		{"A", RuneKey('A'), moveEntry(2, component.IntentRotateLeft)},
		{"d", RuneKey('d'), moveEntry(2, component.IntentRotateRight)},
		{"esc", SpecialKey(tcell.KeyEscape), systemEntry(ActionQuit)},
		{"ctrl-c", SpecialKey(tcell.KeyCtrlC), systemEntry(ActionQuit)},
		{"ctrl rune c", Key{Code: tcell.KeyRune, Rune: 'c', Mod: tcell.ModCtrl}, systemEntry(ActionQuit)},
		{"q", RuneKey('q'), systemEntry(ActionQuit)},
		{"r", RuneKey('R'), systemEntry(ActionRestart)},
		{"m", RuneKey('m'), systemEntry(ActionToggleMute)},
		{"f2", SpecialKey(tcell.KeyF2), systemEntry(ActionToggleStats)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := kt.Lookup(tt.key)
			if !ok {
				t.Fatalf("Expected %s to be bound", tt.key)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestUnboundKeysIgnored(t *testing.T) {
	kt := DefaultKeyTable()
	for _, k := range []Key{RuneKey('x'), RuneKey('1'), SpecialKey(tcell.KeyEnter), SpecialKey(tcell.KeyF5)} {
		if e, ok := kt.Lookup(k); ok {
			t.Errorf("Expected %s unbound, got %s", k, e)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		want    Key
		wantErr bool
	}{
		{"Up", SpecialKey(tcell.KeyUp), false},
		{"up", SpecialKey(tcell.KeyUp), false},
		{"F2", SpecialKey(tcell.KeyF2), false},
		{"Esc", SpecialKey(tcell.KeyEscape), false},
		{"w", RuneKey('w'), false},
		{"space", RuneKey(' '), false},
		{"", Key{}, true},
		{"NoSuchKey", Key{}, true},
	}

	for _, tt := range tests {
		got, err := ParseKey(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKey(%q): expected error %v, got %v", tt.name, tt.wantErr, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseKey(%q): expected %+v, got %+v", tt.name, tt.want, got)
		}
	}
}

func TestApplyBindings(t *testing.T) {
	base := DefaultKeyTable()

	kt, err := ApplyBindings(base, 2, map[string]string{
		"forward":  "i",
		"backward": "k",
	})
	if err != nil {
		t.Fatalf("ApplyBindings failed: %v", err)
	}

	if e, ok := kt.Lookup(RuneKey('i')); !ok || e != moveEntry(2, component.IntentForward) {
		t.Errorf("Expected i bound to player 2 forward, got %s", e)
	}
	if _, ok := kt.Lookup(RuneKey('w')); ok {
		t.Error("Expected w to be released")
	}
	if e, ok := kt.Lookup(RuneKey('a')); !ok || e != moveEntry(2, component.IntentRotateLeft) {
		t.Errorf("Expected a unchanged, got %s", e)
	}
	if _, ok := base.Lookup(RuneKey('i')); ok {
		t.Error("Expected base table untouched")
	}
}

func TestApplyBindingsSwap(t *testing.T) {
	kt, err := ApplyBindings(DefaultKeyTable(), 1, map[string]string{
		"forward":  "Down",
		"backward": "Up",
	})
	if err != nil {
		t.Fatalf("Swap failed: %v", err)
	}
	if e, _ := kt.Lookup(SpecialKey(tcell.KeyUp)); e != moveEntry(1, component.IntentBackward) {
		t.Errorf("Expected Up = backward, got %s", e)
	}
	if k, ok := kt.KeyFor(Binding{Player: 1, Intent: component.IntentForward}); !ok || k != SpecialKey(tcell.KeyDown) {
		t.Errorf("Expected forward on Down, got %s", k)
	}
}

func TestApplyBindingsErrors(t *testing.T) {
	tests := []struct {
		name     string
		player   int
		bindings map[string]string
	}{
		{"bad player", 3, map[string]string{"forward": "x"}},
		{"unknown intent", 1, map[string]string{"jump": "x"}},
		{"unknown key", 1, map[string]string{"forward": "Hyper"}},
		{"conflict with other player", 1, map[string]string{"forward": "w"}},
		{"conflict with system", 2, map[string]string{"forward": "q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ApplyBindings(DefaultKeyTable(), tt.player, tt.bindings); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestMachinePressHoldRelease(t *testing.T) {
	m := NewMachine(nil, 150*time.Millisecond, 600*time.Millisecond)
	t0 := time.Unix(0, 0)
	fwd := Binding{Player: 1, Intent: component.IntentForward}

	res := m.Process(SpecialKey(tcell.KeyUp), t0)
	if len(res.Keys) != 1 || res.Keys[0] != (KeyEvent{Binding: fwd, Down: true}) {
		t.Fatalf("Expected key-down, got %+v", res.Keys)
	}

	// Auto-repeat extends the hold without another key-down
	res = m.Process(SpecialKey(tcell.KeyUp), t0.Add(100*time.Millisecond))
	if len(res.Keys) != 0 {
		t.Errorf("Expected no transition on repeat, got %+v", res.Keys)
	}

	if rel := m.Expire(t0.Add(200 * time.Millisecond)); len(rel) != 0 {
		t.Errorf("Expected key still held, got %+v", rel)
	}
	if !m.IsHeld(fwd) {
		t.Error("Expected forward held")
	}

	rel := m.Expire(t0.Add(250 * time.Millisecond))
	if len(rel) != 1 || rel[0] != (KeyEvent{Binding: fwd, Down: false}) {
		t.Errorf("Expected key-up, got %+v", rel)
	}
	if m.IsHeld(fwd) {
		t.Error("Expected forward released")
	}

	// Next press after release is a fresh key-down
	res = m.Process(SpecialKey(tcell.KeyUp), t0.Add(300*time.Millisecond))
	if len(res.Keys) != 1 || !res.Keys[0].Down {
		t.Errorf("Expected fresh key-down, got %+v", res.Keys)
	}
}

func TestMachineSystemActions(t *testing.T) {
	m := NewMachine(DefaultKeyTable(), 0, 0)
	if m.Hold() != DefaultHold {
		t.Errorf("Expected default hold %v, got %v", DefaultHold, m.Hold())
	}

	now := time.Unix(0, 0)
	if res := m.Process(RuneKey('r'), now); res.Action != ActionRestart || len(res.Keys) != 0 {
		t.Errorf("Expected restart action, got %+v", res)
	}
	if res := m.Process(RuneKey('z'), now); res.Action != ActionNone || len(res.Keys) != 0 {
		t.Errorf("Expected no-op for unbound key, got %+v", res)
	}
}

func TestMachineReleaseAllOrdered(t *testing.T) {
	m := NewMachine(nil, time.Second, 0)
	now := time.Unix(0, 0)

	m.Process(RuneKey('d'), now)
	m.Process(SpecialKey(tcell.KeyLeft), now)
	m.Process(RuneKey('w'), now)

	rel := m.ReleaseAll()
	want := []Binding{
		{Player: 1, Intent: component.IntentRotateLeft},
		{Player: 2, Intent: component.IntentForward},
		{Player: 2, Intent: component.IntentRotateRight},
	}
	if len(rel) != len(want) {
		t.Fatalf("Expected %d releases, got %d", len(want), len(rel))
	}
	for i := range want {
		if rel[i].Binding != want[i] || rel[i].Down {
			t.Errorf("Release %d: expected %+v up, got %+v", i, want[i], rel[i])
		}
	}
	if len(m.ReleaseAll()) != 0 {
		t.Error("Expected nothing held after ReleaseAll")
	}
}

func TestMachineInitialHoldBridgesRepeatDelay(t *testing.T) {
	m := NewMachine(nil, 150*time.Millisecond, 600*time.Millisecond)
	t0 := time.Unix(0, 0)
	up := SpecialKey(tcell.KeyUp)
	fwd := Binding{Player: 1, Intent: component.IntentForward}

	var downs, ups int
	nextRepeat := 500 * time.Millisecond
	for at := time.Duration(0); at <= time.Second; at += 20 * time.Millisecond {
		now := t0.Add(at)
		if at == 0 {
			downs += len(m.Process(up, now).Keys)
		}
		for nextRepeat <= at && nextRepeat <= time.Second {
			for _, k := range m.Process(up, t0.Add(nextRepeat)).Keys {
				if k.Down {
					downs++
				}
			}
			nextRepeat += 33 * time.Millisecond
		}
		ups += len(m.Expire(now))
	}

	if downs != 1 {
		t.Errorf("Expected exactly 1 key-down, got %d", downs)
	}
	if ups != 0 {
		t.Errorf("Expected no key-up while repeats arrive, got %d", ups)
	}
	if !m.IsRepeating(fwd) {
		t.Error("Expected forward marked repeating")
	}

	// Once repeating, the short hold applies after the last repeat
	last := t0.Add(nextRepeat - 33*time.Millisecond)
	if rel := m.Expire(last.Add(149 * time.Millisecond)); len(rel) != 0 {
		t.Errorf("Expected key held inside short hold, got %+v", rel)
	}
	if rel := m.Expire(last.Add(150 * time.Millisecond)); len(rel) != 1 {
		t.Errorf("Expected key-up after short hold, got %+v", rel)
	}
}

func TestMachineSinglePressUsesInitialHold(t *testing.T) {
	m := NewMachine(nil, 150*time.Millisecond, 600*time.Millisecond)
	t0 := time.Unix(0, 0)

	m.Process(RuneKey('w'), t0)
	if rel := m.Expire(t0.Add(599 * time.Millisecond)); len(rel) != 0 {
		t.Errorf("Expected key held before initial hold, got %+v", rel)
	}
	if rel := m.Expire(t0.Add(600 * time.Millisecond)); len(rel) != 1 || rel[0].Down {
		t.Errorf("Expected one key-up at initial hold, got %+v", rel)
	}
}

func TestMachineInitialHoldDefaults(t *testing.T) {
	m := NewMachine(nil, 0, 0)
	if m.InitialHold() != DefaultInitialHold {
		t.Errorf("Expected initial hold %v, got %v", DefaultInitialHold, m.InitialHold())
	}

	// Initial hold never undercuts the repeat hold
	m = NewMachine(nil, 300*time.Millisecond, 100*time.Millisecond)
	if m.InitialHold() != 300*time.Millisecond {
		t.Errorf("Expected initial hold raised to 300ms, got %v", m.InitialHold())
	}
}

func TestMachineResetForgetsHeldKeys(t *testing.T) {
	m := NewMachine(nil, 0, 0)
	t0 := time.Unix(0, 0)
	m.Process(SpecialKey(tcell.KeyDown), t0)

	m.Reset()

	if m.IsHeld(Binding{Player: 1, Intent: component.IntentBackward}) {
		t.Error("Expected backward forgotten after Reset")
	}
	if rel := m.Expire(t0.Add(time.Hour)); len(rel) != 0 {
		t.Errorf("Expected no releases after Reset, got %+v", rel)
	}
	if res := m.Process(SpecialKey(tcell.KeyDown), t0); len(res.Keys) != 1 || !res.Keys[0].Down {
		t.Errorf("Expected fresh key-down after Reset, got %+v", res.Keys)
	}
}
