package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/input"
	"github.com/lixenwraith/survivor/status"
)

func newTestApp(t *testing.T, seed int64) (*app, *engine.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Screen init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := config.Default()
	cfg.Seed = seed
	cfg.Audio.Enabled = false

	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	a, err := newApp(screen, cfg, clock)
	if err != nil {
		t.Fatalf("newApp failed: %v", err)
	}
	return a, clock
}

func TestHandleKeyHoldAndRelease(t *testing.T) {
	a, clock := newTestApp(t, 42)
	t0 := clock.Now()

	if !a.handleKey(input.SpecialKey(tcell.KeyUp), t0) {
		t.Fatal("Expected movement key to keep session running")
	}
	if !a.match.Player1.Forward {
		t.Error("Expected player 1 forward after Up press")
	}
	if a.match.Player2.Forward {
		t.Error("Expected player 2 untouched")
	}

	// Past the repeat hold but inside the first-repeat delay
	a.expire(t0.Add(a.machine.Hold() * 2))
	if !a.match.Player1.Forward {
		t.Error("Expected forward still held before initial timeout")
	}

	a.expire(t0.Add(a.machine.InitialHold()))
	if a.match.Player1.Forward {
		t.Error("Expected forward released after hold timeout")
	}
}

func TestPlayerTwoRunesCaseInsensitive(t *testing.T) {
	a, clock := newTestApp(t, 42)

	a.handleKey(input.RuneKey('A'), clock.Now())
	if !a.match.Player2.RotateLeft {
		t.Error("Expected player 2 rotate left after 'A'")
	}
}

func TestRestartResetsMatch(t *testing.T) {
	a, clock := newTestApp(t, 42)

	a.handleKey(input.RuneKey('d'), clock.Now())
	for i := 0; i < 5; i++ {
		a.sched.Step()
	}
	oldID := a.match.ID

	if !a.handleKey(input.RuneKey('r'), clock.Now()) {
		t.Fatal("Expected restart to keep session running")
	}
	if a.match.ID == oldID {
		t.Error("Expected new match ID after restart")
	}
	if a.match.Frame() != 0 {
		t.Errorf("Expected frame 0 after restart, got %d", a.match.Frame())
	}
	if a.match.Score1 != 0 || a.match.Score2 != 0 {
		t.Errorf("Expected zero scores, got %d:%d", a.match.Score1, a.match.Score2)
	}
	if a.machine.IsHeld(input.Binding{Player: 2, Intent: component.IntentRotateRight}) {
		t.Error("Expected held keys released on restart")
	}
}

func TestQuitStopsSession(t *testing.T) {
	a, clock := newTestApp(t, 42)

	if a.handleKey(input.SpecialKey(tcell.KeyEscape), clock.Now()) {
		t.Error("Expected Esc to end session")
	}
	select {
	case <-a.quit:
	default:
		t.Error("Expected quit channel closed")
	}
	// Second stop is harmless
	a.stop()
}

func TestToggles(t *testing.T) {
	a, clock := newTestApp(t, 42)

	a.handleKey(input.RuneKey('m'), clock.Now())
	if !a.sound.Muted() {
		t.Error("Expected muted after 'm'")
	}
	a.handleKey(input.SpecialKey(tcell.KeyF2), clock.Now())
	if !a.stats.IsVisible() {
		t.Error("Expected stats visible after F2")
	}
}

func TestOnFrameDrainsEventsAndRenders(t *testing.T) {
	a, _ := newTestApp(t, 42)
	if a.queue.Len() == 0 {
		t.Fatal("Expected match start events queued")
	}

	a.sched.Step()

	if a.queue.Len() != 0 {
		t.Errorf("Expected queue drained, got %d", a.queue.Len())
	}
	if got := a.reg.Ints.Get(status.KeyFrames).Load(); got != 1 {
		t.Errorf("Expected 1 frame metric, got %d", got)
	}

	screen := a.screen.(tcell.SimulationScreen)
	var row strings.Builder
	w, _ := screen.Size()
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		row.WriteRune(r)
	}
	if !strings.Contains(row.String(), "Scoreboard") {
		t.Errorf("Expected scoreboard on row 0, got %q", row.String())
	}
}

func TestSeedReplay(t *testing.T) {
	a, _ := newTestApp(t, 7)
	b, _ := newTestApp(t, 7)

	if a.match.Seed != b.match.Seed {
		t.Fatalf("Expected same match seed, got %d and %d", a.match.Seed, b.match.Seed)
	}

	ca, cb := a.match.Coins(), b.match.Coins()
	if len(ca) != len(cb) {
		t.Fatalf("Expected same coin count, got %d and %d", len(ca), len(cb))
	}
	for i := range ca {
		if ca[i].Shape.Position() != cb[i].Shape.Position() || ca[i].Kind != cb[i].Kind {
			t.Errorf("Coin %d differs between replays", i)
		}
	}
}

func TestBadBindingsRejected(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	cfg := config.Default()
	cfg.Input.Player1 = map[string]string{"jump": "x"}

	if _, err := newApp(screen, cfg, nil); err == nil {
		t.Error("Expected error for unknown intent")
	}
}

func TestLogEventHandlesAllPayloads(t *testing.T) {
	events := []event.GameEvent{
		{Type: event.EventMatchStarted, Payload: &event.MatchStartedPayload{MatchID: "x", Seed: 1}},
		{Type: event.EventCoinCollected, Payload: &event.CoinCollectedPayload{Player: 1}},
		{Type: event.EventCoinSpawned, Payload: &event.CoinSpawnedPayload{}},
		{Type: event.EventStepSizeChanged, Payload: &event.StepSizeChangedPayload{}},
		{Type: event.EventAmbientChanged, Payload: &event.AmbientChangedPayload{}},
		{Type: event.EventGameOver, Payload: &event.GameOverPayload{Winner: 2}},
		{Type: event.EventType(99)},
	}
	for _, ev := range events {
		logEvent(ev)
	}
}
