package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, now)
	}

	got := mock.Advance(time.Hour)
	if expected := start.Add(time.Hour); !got.Equal(expected) || !mock.Now().Equal(expected) {
		t.Errorf("Expected %v after Advance, got %v", expected, got)
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	if expected := start.Add(105 * time.Minute); !mock.Now().Equal(expected) {
		t.Errorf("Expected %v after multiple advances, got %v", expected, mock.Now())
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if expected := time.Unix(0, 0).Add(1000 * time.Millisecond); !mock.Now().Equal(expected) {
		t.Errorf("Expected %v after concurrent advances, got %v", expected, mock.Now())
	}
}
