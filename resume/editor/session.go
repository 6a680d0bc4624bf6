// Package editor owns the one live (ResumeData, CustomTheme) pair and
// exposes every mutation the form surface can perform. All mutations go
// through a single mutex: the document has exactly one writer at a time,
// and every successful mutation fires the change hook that drives the
// debounced persistence write.
package editor

import (
	"sync"

	"resume-studio/resume/model"
)

// Session holds the live resume document and theme for one editing session.
type Session struct {
	mu       sync.Mutex
	data     model.ResumeData
	theme    model.CustomTheme
	onChange func()
}

// NewSession starts a session from the given state. Both values are
// normalized on the way in, so restored or imported state always satisfies
// the structural invariants.
func NewSession(data model.ResumeData, theme model.CustomTheme) *Session {
	data.Normalize()
	theme.Normalize()
	return &Session{data: data, theme: theme}
}

// OnChange registers the hook fired after every successful mutation.
func (s *Session) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Data returns a deep copy of the current resume document.
func (s *Session) Data() model.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Theme returns the current theme.
func (s *Session) Theme() model.CustomTheme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Snapshot returns a consistent copy of both values, taken under one lock.
func (s *Session) Snapshot() (model.ResumeData, model.CustomTheme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone(), s.theme
}

// ReplaceData swaps the document wholesale, as import and restore do.
func (s *Session) ReplaceData(data model.ResumeData) {
	s.mutate(func() {
		data.Normalize()
		s.data = data
	})
}

// ReplaceTheme swaps the theme wholesale.
func (s *Session) ReplaceTheme(theme model.CustomTheme) {
	s.mutate(func() {
		theme.Normalize()
		s.theme = theme
	})
}

// SetPersonalInfo replaces the personal info block.
func (s *Session) SetPersonalInfo(info model.PersonalInfo) {
	s.mutate(func() { s.data.PersonalInfo = info })
}

// SetSummary replaces the professional summary text.
func (s *Session) SetSummary(summary string) {
	s.mutate(func() { s.data.Summary = summary })
}

// mutate runs fn under the session lock and fires the change hook. Helpers
// that may no-op use mutateIf instead so a rejected edit does not schedule
// a save.
func (s *Session) mutate(fn func()) {
	s.mutateIf(func() bool {
		fn()
		return true
	})
}

func (s *Session) mutateIf(fn func() bool) bool {
	s.mu.Lock()
	changed := fn()
	hook := s.onChange
	s.mu.Unlock()
	if changed && hook != nil {
		hook()
	}
	return changed
}
