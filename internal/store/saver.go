package store

import (
	"sync"
	"time"

	"resume-studio/internal/shared/telemetry"
)

// Saver debounces persistence writes. Each Touch cancels the pending
// scheduled write and schedules a new one at now+window, so at most one
// write is pending and a write that fires always reflects the latest state
// at fire time.
type Saver struct {
	mu      sync.Mutex
	timer   *time.Timer
	window  time.Duration
	write   func() error
	dirty   bool
	savedAt time.Time
}

// NewSaver builds a Saver around a write function that snapshots and
// persists the current state.
func NewSaver(window time.Duration, write func() error) *Saver {
	return &Saver{window: window, write: write}
}

// Touch marks the state dirty and restarts the debounce window.
func (s *Saver) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.window, s.fire)
}

func (s *Saver) fire() {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return
	}
	// Mark clean before the write, not after: a Touch that lands while the
	// write is in flight re-dirties the saver, and its rescheduled timer
	// performs the follow-up write that picks up the newer state.
	s.dirty = false
	s.mu.Unlock()

	// The write runs outside the lock; it takes its own snapshot.
	if err := s.write(); err != nil {
		telemetry.Error("store.save_failed", map[string]any{"error": err.Error()})
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.savedAt = time.Now().UTC()
	s.mu.Unlock()
}

// Flush cancels any pending timer and writes immediately if the state is
// dirty. Used on shutdown.
func (s *Saver) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.fire()
}

// Dirty reports whether a write is pending.
func (s *Saver) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// SavedAt returns the time of the last successful write, zero if none.
func (s *Saver) SavedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savedAt
}
