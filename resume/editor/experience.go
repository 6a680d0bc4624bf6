package editor

import (
	"strings"

	"github.com/google/uuid"

	"resume-studio/resume/model"
)

// AddExperience appends a fresh work experience entry with all fields at
// their defaults and returns it.
func (s *Session) AddExperience() model.WorkExperience {
	exp := model.WorkExperience{
		ID:               uuid.NewString(),
		Responsibilities: []string{},
		TechStack:        []string{},
	}
	s.mutate(func() {
		s.data.WorkExperience = append(s.data.WorkExperience, exp)
	})
	return exp
}

// RemoveExperience deletes the entry with the given id. Absent ids are a
// no-op, reported by the return value.
func (s *Session) RemoveExperience(id string) bool {
	return s.mutateIf(func() bool {
		for i, exp := range s.data.WorkExperience {
			if exp.ID == id {
				s.data.WorkExperience = append(s.data.WorkExperience[:i], s.data.WorkExperience[i+1:]...)
				return true
			}
		}
		return false
	})
}

func (s *Session) withExperience(id string, fn func(*model.WorkExperience)) bool {
	return s.mutateIf(func() bool {
		for i := range s.data.WorkExperience {
			if s.data.WorkExperience[i].ID == id {
				fn(&s.data.WorkExperience[i])
				return true
			}
		}
		return false
	})
}

// One setter per field, so the wrong type can never land in the wrong
// field.

func (s *Session) SetExperienceCompany(id, company string) bool {
	return s.withExperience(id, func(exp *model.WorkExperience) { exp.Company = company })
}

func (s *Session) SetExperiencePosition(id, position string) bool {
	return s.withExperience(id, func(exp *model.WorkExperience) { exp.Position = position })
}

func (s *Session) SetExperienceLocation(id, location string) bool {
	return s.withExperience(id, func(exp *model.WorkExperience) { exp.Location = location })
}

func (s *Session) SetExperienceStartDate(id string, date model.Date) bool {
	return s.withExperience(id, func(exp *model.WorkExperience) { exp.StartDate = date })
}

// SetExperienceEndDate stores the end date even while Current is true; the
// renderers ignore it until the current flag is cleared.
func (s *Session) SetExperienceEndDate(id string, date model.Date) bool {
	return s.withExperience(id, func(exp *model.WorkExperience) { exp.EndDate = date })
}

func (s *Session) SetExperienceCurrent(id string, current bool) bool {
	return s.withExperience(id, func(exp *model.WorkExperience) { exp.Current = current })
}

// AddResponsibility trims and appends one responsibility line. Entries that
// are empty after trimming are rejected.
func (s *Session) AddResponsibility(id, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	return s.withExperience(id, func(exp *model.WorkExperience) {
		exp.Responsibilities = append(exp.Responsibilities, trimmed)
	})
}

// RemoveResponsibility removes by position; responsibilities are an ordered
// free-text list, so two entries may hold identical text.
func (s *Session) RemoveResponsibility(id string, index int) bool {
	return s.mutateIf(func() bool {
		for i := range s.data.WorkExperience {
			exp := &s.data.WorkExperience[i]
			if exp.ID != id {
				continue
			}
			if index < 0 || index >= len(exp.Responsibilities) {
				return false
			}
			exp.Responsibilities = append(exp.Responsibilities[:index], exp.Responsibilities[index+1:]...)
			return true
		}
		return false
	})
}

// AddExperienceTech trims and appends one tech-stack tag.
func (s *Session) AddExperienceTech(id, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	return s.withExperience(id, func(exp *model.WorkExperience) {
		exp.TechStack = append(exp.TechStack, trimmed)
	})
}

// RemoveExperienceTech removes a tag by exact value.
func (s *Session) RemoveExperienceTech(id, value string) bool {
	return s.mutateIf(func() bool {
		for i := range s.data.WorkExperience {
			exp := &s.data.WorkExperience[i]
			if exp.ID != id {
				continue
			}
			return removeValue(&exp.TechStack, value)
		}
		return false
	})
}

func removeValue(list *[]string, value string) bool {
	for i, v := range *list {
		if v == value {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}
