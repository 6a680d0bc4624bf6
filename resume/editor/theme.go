package editor

import "resume-studio/resume/model"

// Color and font values come from a picker or free text and are stored
// without format validation. Mode is the one checked field.

func (s *Session) SetPrimaryColor(color string) {
	s.mutate(func() { s.theme.PrimaryColor = color })
}

func (s *Session) SetAccentColor(color string) {
	s.mutate(func() { s.theme.AccentColor = color })
}

func (s *Session) SetHeadingFont(font string) {
	s.mutate(func() { s.theme.HeadingFont = font })
}

func (s *Session) SetBodyFont(font string) {
	s.mutate(func() { s.theme.BodyFont = font })
}

// SetMode accepts only light or dark.
func (s *Session) SetMode(mode model.ThemeMode) bool {
	if !mode.Known() {
		return false
	}
	return s.mutateIf(func() bool {
		s.theme.Mode = mode
		return true
	})
}
