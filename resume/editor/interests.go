package editor

import "strings"

// AddInterest trims and appends. Interests are the one collection with
// de-duplication: an exact, case-sensitive match is rejected, so "Chess"
// twice is a no-op while "chess" is a distinct second entry.
func (s *Session) AddInterest(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	return s.mutateIf(func() bool {
		for _, existing := range s.data.Interests {
			if existing == trimmed {
				return false
			}
		}
		s.data.Interests = append(s.data.Interests, trimmed)
		return true
	})
}

// RemoveInterest removes by exact value.
func (s *Session) RemoveInterest(value string) bool {
	return s.mutateIf(func() bool {
		return removeValue(&s.data.Interests, value)
	})
}
