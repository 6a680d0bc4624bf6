package editor

import (
	"strings"

	"github.com/google/uuid"

	"resume-studio/resume/model"
)

// AddProject appends a fresh project entry and returns it.
func (s *Session) AddProject() model.Project {
	proj := model.Project{
		ID:         uuid.NewString(),
		TechStack:  []string{},
		Highlights: []string{},
	}
	s.mutate(func() {
		s.data.Projects = append(s.data.Projects, proj)
	})
	return proj
}

// RemoveProject deletes the entry with the given id.
func (s *Session) RemoveProject(id string) bool {
	return s.mutateIf(func() bool {
		for i, proj := range s.data.Projects {
			if proj.ID == id {
				s.data.Projects = append(s.data.Projects[:i], s.data.Projects[i+1:]...)
				return true
			}
		}
		return false
	})
}

func (s *Session) withProject(id string, fn func(*model.Project)) bool {
	return s.mutateIf(func() bool {
		for i := range s.data.Projects {
			if s.data.Projects[i].ID == id {
				fn(&s.data.Projects[i])
				return true
			}
		}
		return false
	})
}

func (s *Session) SetProjectName(id, name string) bool {
	return s.withProject(id, func(proj *model.Project) { proj.Name = name })
}

func (s *Session) SetProjectDescription(id, description string) bool {
	return s.withProject(id, func(proj *model.Project) { proj.Description = description })
}

// SetProjectLink and SetProjectGitHub carry URLs as unvalidated strings.
func (s *Session) SetProjectLink(id, link string) bool {
	return s.withProject(id, func(proj *model.Project) { proj.Link = link })
}

func (s *Session) SetProjectGitHub(id, url string) bool {
	return s.withProject(id, func(proj *model.Project) { proj.GitHub = url })
}

// AddProjectTech trims and appends one tech-stack tag.
func (s *Session) AddProjectTech(id, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	return s.withProject(id, func(proj *model.Project) {
		proj.TechStack = append(proj.TechStack, trimmed)
	})
}

// RemoveProjectTech removes a tag by exact value.
func (s *Session) RemoveProjectTech(id, value string) bool {
	return s.mutateIf(func() bool {
		for i := range s.data.Projects {
			proj := &s.data.Projects[i]
			if proj.ID != id {
				continue
			}
			return removeValue(&proj.TechStack, value)
		}
		return false
	})
}

// AddHighlight trims and appends one highlight line.
func (s *Session) AddHighlight(id, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	return s.withProject(id, func(proj *model.Project) {
		proj.Highlights = append(proj.Highlights, trimmed)
	})
}

// RemoveHighlight removes by position, matching the responsibilities rule.
func (s *Session) RemoveHighlight(id string, index int) bool {
	return s.mutateIf(func() bool {
		for i := range s.data.Projects {
			proj := &s.data.Projects[i]
			if proj.ID != id {
				continue
			}
			if index < 0 || index >= len(proj.Highlights) {
				return false
			}
			proj.Highlights = append(proj.Highlights[:index], proj.Highlights[index+1:]...)
			return true
		}
		return false
	})
}
