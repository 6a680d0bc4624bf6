package editor

import "resume-studio/resume/model"

// SectionOrder returns a copy of the current section order.
func (s *Session) SectionOrder() []model.Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Section, len(s.data.SectionOrder))
	copy(out, s.data.SectionOrder)
	return out
}

// MoveSectionUp swaps the section at index with its predecessor. Index 0 and
// out-of-range indexes are no-ops. Adjacent transposition is the only
// reordering operation; there is deliberately no absolute positioning.
func (s *Session) MoveSectionUp(index int) bool {
	return s.mutateIf(func() bool {
		order := s.data.SectionOrder
		if index <= 0 || index >= len(order) {
			return false
		}
		order[index-1], order[index] = order[index], order[index-1]
		return true
	})
}

// MoveSectionDown swaps the section at index with its successor. The last
// index and out-of-range indexes are no-ops.
func (s *Session) MoveSectionDown(index int) bool {
	return s.mutateIf(func() bool {
		order := s.data.SectionOrder
		if index < 0 || index >= len(order)-1 {
			return false
		}
		order[index], order[index+1] = order[index+1], order[index]
		return true
	})
}
