package mem

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGetDelete(t *testing.T) {
	s := NewSessionEntries[string]()

	s.Set("a", "one", time.Hour)
	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "one", v)

	s.Delete("a")
	_, ok = s.Get("a")
	assert.False(t, ok)
}

func TestExpiredEntriesAreHiddenAndSwept(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessionEntries[int]()
	s.now = func() time.Time { return now }

	s.Set("short", 1, time.Minute)
	s.Set("long", 2, time.Hour)

	now = now.Add(2 * time.Minute)

	_, ok := s.Get("short")
	assert.False(t, ok)
	v, ok := s.Get("long")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestRunJanitorStopsWithContext(t *testing.T) {
	s := NewSessionEntries[int]()
	s.Set("gone", 1, -time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan int, 1)
	done := make(chan struct{})
	go func() {
		s.RunJanitor(ctx, 5*time.Millisecond, func(n int) {
			select {
			case swept <- n:
			default:
			}
		})
		close(done)
	}()

	select {
	case n := <-swept:
		assert.Equal(t, 1, n)
	case <-time.After(time.Second):
		t.Fatal("janitor did not sweep")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
	assert.Equal(t, 0, s.Len())
}
