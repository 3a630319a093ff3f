package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/status"
)

// FrameHandler runs after each match update, inside the scheduler lock
type FrameHandler func(m *Match)

// Scheduler drives the match on a fixed tick
// A single mutex guards the match: ticks, input and restarts are serialized,
// so each update plus its frame handler forms one critical section
type Scheduler struct {
	mu      sync.Mutex
	match   *Match
	onFrame FrameHandler

	clock        TimeProvider
	tickInterval time.Duration
	lastTick     time.Time

	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopped  atomic.Bool // Set by the first Stop that halts a running loop
	wg       sync.WaitGroup
	running  atomic.Bool

	// Cached metric pointers
	statTicks      *atomic.Int64
	statTickMicros *status.AtomicFloat
}

// NewScheduler creates a scheduler ticking tickRate times per second
func NewScheduler(match *Match, tickRate int, clock TimeProvider, reg *status.Registry) *Scheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	if clock == nil {
		clock = NewTimeProvider()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	return &Scheduler{
		match:          match,
		clock:          clock,
		tickInterval:   time.Second / time.Duration(tickRate),
		stopChan:       make(chan struct{}),
		statTicks:      reg.Ints.Get(status.KeyTicks),
		statTickMicros: reg.Floats.Get(status.KeyTickMicros),
	}
}

// OnFrame sets the per-tick handler, must be called before Start
func (s *Scheduler) OnFrame(fn FrameHandler) {
	s.mu.Lock()
	s.onFrame = fn
	s.mu.Unlock()
}

// Do runs fn with exclusive access to the match
func (s *Scheduler) Do(fn func(m *Match)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.match)
}

// Step runs a single tick synchronously
func (s *Scheduler) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.clock.Now()
	s.match.Update()
	if s.onFrame != nil {
		s.onFrame(s.match)
	}
	s.lastTick = start

	s.statTickMicros.Set(float64(s.clock.Now().Sub(start).Microseconds()))
	s.statTicks.Add(1)
	s.tickCount.Add(1)
}

// Start begins the scheduler loop
// A scheduler runs at most once: Start after a Stop that halted the loop is a no-op
func (s *Scheduler) Start() {
	if s.stopped.Load() {
		return
	}
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		core.Go(s.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick
// Stop before Start does nothing, so a later Start still runs and can be stopped
func (s *Scheduler) Stop() {
	if s.running.CompareAndSwap(true, false) {
		s.stopped.Store(true)
		close(s.stopChan)
		s.wg.Wait()
	}
}

func (s *Scheduler) TickCount() uint64 {
	return s.tickCount.Load()
}

func (s *Scheduler) TickInterval() time.Duration {
	return s.tickInterval
}

// LastTick returns the clock reading at the start of the most recent tick
func (s *Scheduler) LastTick() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTick
}

// schedulerLoop ticks on deadlines, dropping missed ticks when far behind
func (s *Scheduler) schedulerLoop() {
	defer s.wg.Done()

	nextDeadline := time.Now().Add(s.tickInterval)
	timer := time.NewTimer(s.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-timer.C:
		}

		s.Step()

		now := time.Now()
		nextDeadline = nextDeadline.Add(s.tickInterval)
		if now.Sub(nextDeadline) > s.tickInterval*2 {
			nextDeadline = now.Add(s.tickInterval)
		}

		sleep := nextDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
