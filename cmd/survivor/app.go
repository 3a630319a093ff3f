package main

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/survivor/audio"
	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/constant"
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/input"
	"github.com/lixenwraith/survivor/logger"
	"github.com/lixenwraith/survivor/render"
	"github.com/lixenwraith/survivor/spectate"
	"github.com/lixenwraith/survivor/status"
)

// app wires the match to the terminal, audio and spectator feed
type app struct {
	screen tcell.Screen
	cfg    *config.Config
	clock  engine.TimeProvider

	reg   *status.Registry
	queue *event.EventQueue
	match *engine.Match
	sched *engine.Scheduler

	machine  *input.Machine
	renderer *render.RenderOrchestrator
	stats    *render.StatsRenderer
	sound    *audio.SoundManager
	feed     *spectate.Server

	// Restart seeds derive from the session seed so fixed-seed sessions replay
	seeds *rand.Rand

	statDropped *atomic.Int64

	quit     chan struct{}
	quitOnce sync.Once
}

func newApp(screen tcell.Screen, cfg *config.Config, clock engine.TimeProvider) (*app, error) {
	if clock == nil {
		clock = engine.NewTimeProvider()
	}

	kt, err := input.ApplyBindings(input.DefaultKeyTable(), 1, cfg.Input.Player1)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	kt, err = input.ApplyBindings(kt, 2, cfg.Input.Player2)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seeds := rand.New(rand.NewSource(seed))

	reg := status.NewRegistry()
	queue := event.NewEventQueue()
	match := engine.NewMatch(seeds.Int63(), queue, reg)

	renderer, stats := render.NewGameRenderer(screen, constant.AmbientFadeDuration)

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Audio.Enabled

	a := &app{
		screen:      screen,
		cfg:         cfg,
		clock:       clock,
		reg:         reg,
		queue:       queue,
		match:       match,
		sched:       engine.NewScheduler(match, cfg.TickHz, clock, reg),
		machine:     input.NewMachine(kt, cfg.Hold(), cfg.InitialHold()),
		renderer:    renderer,
		stats:       stats,
		sound:       audio.NewSoundManager(audioCfg),
		seeds:       seeds,
		statDropped: reg.Ints.Get(status.KeyEventsDropped),
		quit:        make(chan struct{}),
	}
	if cfg.Spectator.Addr != "" {
		a.feed = spectate.NewServer(cfg.Spectator.Addr, cfg.Spectator.RateHz, reg)
	}
	a.sched.OnFrame(a.onFrame)

	logger.Log.WithFields(logrus.Fields{
		"seed":    seed,
		"tick_hz": cfg.TickHz,
		"hold":    cfg.Hold().String(),
		"initial": cfg.InitialHold().String(),
	}).Info("session created")

	return a, nil
}

// onFrame runs inside the scheduler lock after every match update
func (a *app) onFrame(m *engine.Match) {
	for _, ev := range a.queue.Consume() {
		a.sound.Handle(ev)
		logEvent(ev)
	}
	a.statDropped.Store(int64(a.queue.Dropped()))

	now := a.clock.Now()
	ctx := render.RenderContext{
		Scene: m.Scene(),
		Now:   now,
		Muted: a.sound.Muted(),
	}
	if a.stats.IsVisible() {
		ctx.Stats = a.reg.Lines()
	}
	a.renderer.RenderFrame(ctx)

	if a.feed != nil && a.feed.Due(now) {
		if err := a.feed.Publish(m.Snapshot()); err != nil {
			logger.Log.WithError(err).Warn("spectator publish failed")
		}
	}
}

// handleKey processes one key press; returns false when the session should end
func (a *app) handleKey(k input.Key, now time.Time) bool {
	res := a.machine.Process(k, now)
	a.applyKeys(res.Keys)

	switch res.Action {
	case input.ActionQuit:
		a.stop()
		return false

	case input.ActionRestart:
		// Reset replaces both players, so held intents vanish with them
		a.machine.Reset()
		seed := a.seeds.Int63()
		a.sched.Do(func(m *engine.Match) {
			m.Reset(seed)
		})

	case input.ActionToggleMute:
		muted := a.sound.ToggleMute()
		logger.Log.WithField("muted", muted).Debug("mute toggled")

	case input.ActionToggleStats:
		a.stats.Toggle()
	}
	return true
}

// expire releases keys whose hold timed out
func (a *app) expire(now time.Time) {
	a.applyKeys(a.machine.Expire(now))
}

func (a *app) applyKeys(keys []input.KeyEvent) {
	if len(keys) == 0 {
		return
	}
	a.sched.Do(func(m *engine.Match) {
		for _, k := range keys {
			if p := m.Player(k.Player); p != nil {
				p.SetIntent(k.Intent, k.Down)
			}
		}
	})
}

func (a *app) stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// startFeed starts the spectator server; failure disables the feed
func (a *app) startFeed() {
	if a.feed == nil {
		return
	}
	if err := a.feed.Start(); err != nil {
		logger.Log.WithError(err).Warn("spectator feed disabled")
		a.feed = nil
	}
}

// run drives the session until quit or terminal closure
func (a *app) run() {
	a.startFeed()
	a.sched.Start()
	defer a.shutdown()

	events := make(chan tcell.Event, 64)
	// Poller exits once the screen is finalized
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				a.stop()
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	})

	expireTicker := time.NewTicker(constant.InputExpireInterval)
	defer expireTicker.Stop()

	for {
		select {
		case <-a.quit:
			return

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(input.KeyFromEvent(ev), a.clock.Now()) {
					return
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}

		case <-expireTicker.C:
			a.expire(a.clock.Now())
		}
	}
}

func (a *app) shutdown() {
	a.sched.Stop()

	if a.feed != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := a.feed.Close(ctx); err != nil {
			logger.Log.WithError(err).Warn("spectator shutdown failed")
		}
	}
	a.sound.Cleanup()

	logger.Log.WithField("ticks", a.sched.TickCount()).Info("session ended")
}

// logEvent writes gameplay events to the log
func logEvent(ev event.GameEvent) {
	entry := logger.Log.WithFields(logrus.Fields{
		"event": ev.Type.String(),
		"frame": ev.Frame,
	})

	switch p := ev.Payload.(type) {
	case *event.MatchStartedPayload:
		entry.WithFields(logrus.Fields{"match_id": p.MatchID, "seed": p.Seed}).Info("match started")
	case *event.CoinCollectedPayload:
		entry.WithFields(logrus.Fields{
			"player": p.Player,
			"coin":   p.CoinID,
			"kind":   p.Kind.String(),
			"score":  p.Score,
		}).Info("coin collected")
	case *event.StepSizeChangedPayload:
		entry.WithFields(logrus.Fields{"player": p.Player, "from": p.From, "to": p.To}).Debug("step size changed")
	case *event.AmbientChangedPayload:
		entry.WithFields(logrus.Fields{
			"from": engine.Ambient(p.From).String(),
			"to":   engine.Ambient(p.To).String(),
		}).Debug("ambient changed")
	case *event.GameOverPayload:
		entry.WithFields(logrus.Fields{"winner": p.Winner, "score1": p.Score1, "score2": p.Score2}).Info("game over")
	case *event.CoinSpawnedPayload:
		entry.WithFields(logrus.Fields{"coin": p.CoinID, "kind": p.Kind.String()}).Trace("coin spawned")
	default:
		entry.Debug("event")
	}
}
