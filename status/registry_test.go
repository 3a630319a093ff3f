package status

import (
	"sync"
	"testing"
)

func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyPickups)
	b := r.Ints.Get(KeyPickups)
	if a != b {
		t.Fatal("Expected same pointer for repeated Get")
	}

	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Ints.Get(KeyFrames).Add(1)
			}
		}()
	}
	wg.Wait()

	if got := r.Ints.Get(KeyFrames).Load(); got != 800 {
		t.Errorf("Expected 800, got %d", got)
	}
	if r.Ints.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", r.Ints.Count())
	}
}

func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTicks).Store(5)
	r.Ints.Get(KeyFrames).Store(4)
	r.Floats.Get(KeyTickMicros).Set(1.5)
	r.Strings.Get(KeyMatchID).Store("abc")

	want := []string{"engine.ticks=5", "match.frames=4", "engine.tick_us=1.50", "match.id=abc"}
	got := r.Lines()
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Errorf("Expected empty zero value, got %q", s.Load())
	}

	long := "0123456789012345678901234567890123456789"
	s.Store(long)
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected length %d, got %d", MaxStringLen, len(s.Load()))
	}
}
