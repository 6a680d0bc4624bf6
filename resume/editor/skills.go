package editor

import (
	"strings"

	"resume-studio/resume/model"
)

// AddSkill trims and appends to the named bucket. Unlike interests, skill
// buckets accept duplicates.
func (s *Session) AddSkill(bucket model.SkillBucket, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	return s.mutateIf(func() bool {
		list := s.data.Skills.Bucket(bucket)
		if list == nil {
			return false
		}
		*list = append(*list, trimmed)
		return true
	})
}

// RemoveSkill removes the first entry matching value exactly.
func (s *Session) RemoveSkill(bucket model.SkillBucket, value string) bool {
	return s.mutateIf(func() bool {
		list := s.data.Skills.Bucket(bucket)
		if list == nil {
			return false
		}
		return removeValue(list, value)
	})
}
