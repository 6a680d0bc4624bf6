package editor

import (
	"strings"

	"github.com/google/uuid"

	"resume-studio/resume/model"
)

// AddEducation appends a fresh education entry and returns it.
func (s *Session) AddEducation() model.Education {
	edu := model.Education{
		ID:         uuid.NewString(),
		Honors:     []string{},
		Activities: []string{},
	}
	s.mutate(func() {
		s.data.Education = append(s.data.Education, edu)
	})
	return edu
}

// RemoveEducation deletes the entry with the given id.
func (s *Session) RemoveEducation(id string) bool {
	return s.mutateIf(func() bool {
		for i, edu := range s.data.Education {
			if edu.ID == id {
				s.data.Education = append(s.data.Education[:i], s.data.Education[i+1:]...)
				return true
			}
		}
		return false
	})
}

func (s *Session) withEducation(id string, fn func(*model.Education)) bool {
	return s.mutateIf(func() bool {
		for i := range s.data.Education {
			if s.data.Education[i].ID == id {
				fn(&s.data.Education[i])
				return true
			}
		}
		return false
	})
}

func (s *Session) SetEducationInstitution(id, institution string) bool {
	return s.withEducation(id, func(edu *model.Education) { edu.Institution = institution })
}

func (s *Session) SetEducationDegree(id, degree string) bool {
	return s.withEducation(id, func(edu *model.Education) { edu.Degree = degree })
}

func (s *Session) SetEducationField(id, field string) bool {
	return s.withEducation(id, func(edu *model.Education) { edu.Field = field })
}

func (s *Session) SetEducationLocation(id, location string) bool {
	return s.withEducation(id, func(edu *model.Education) { edu.Location = location })
}

func (s *Session) SetEducationStartDate(id string, date model.Date) bool {
	return s.withEducation(id, func(edu *model.Education) { edu.StartDate = date })
}

func (s *Session) SetEducationEndDate(id string, date model.Date) bool {
	return s.withEducation(id, func(edu *model.Education) { edu.EndDate = date })
}

// SetEducationGPA stores free text; "3.8/4.0" is as valid as "3.8".
func (s *Session) SetEducationGPA(id, gpa string) bool {
	return s.withEducation(id, func(edu *model.Education) { edu.GPA = gpa })
}

// AddHonor trims and appends. Honors are not de-duplicated: the same string
// may be added twice.
func (s *Session) AddHonor(id, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	return s.withEducation(id, func(edu *model.Education) {
		edu.Honors = append(edu.Honors, trimmed)
	})
}

// RemoveHonor removes the first entry matching value exactly.
func (s *Session) RemoveHonor(id, value string) bool {
	return s.mutateIf(func() bool {
		for i := range s.data.Education {
			edu := &s.data.Education[i]
			if edu.ID != id {
				continue
			}
			return removeValue(&edu.Honors, value)
		}
		return false
	})
}

// AddActivity trims and appends; like honors, duplicates are allowed.
func (s *Session) AddActivity(id, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	return s.withEducation(id, func(edu *model.Education) {
		edu.Activities = append(edu.Activities, trimmed)
	})
}

// RemoveActivity removes the first entry matching value exactly.
func (s *Session) RemoveActivity(id, value string) bool {
	return s.mutateIf(func() bool {
		for i := range s.data.Education {
			edu := &s.data.Education[i]
			if edu.ID != id {
				continue
			}
			return removeValue(&edu.Activities, value)
		}
		return false
	})
}
