package model

// ThemeMode is the light/dark toggle for the editor and preview.
type ThemeMode string

const (
	ModeLight ThemeMode = "light"
	ModeDark  ThemeMode = "dark"
)

// Known reports whether m is a recognized theme mode.
func (m ThemeMode) Known() bool {
	return m == ModeLight || m == ModeDark
}

// CustomTheme holds the visual style choices applied to both renderers.
// Colors and fonts are free-form strings: the pickers offer the catalogs
// below, but typed-in values are accepted without format validation.
type CustomTheme struct {
	PrimaryColor string    `json:"primaryColor"`
	AccentColor  string    `json:"accentColor"`
	HeadingFont  string    `json:"headingFont"`
	BodyFont     string    `json:"bodyFont"`
	Mode         ThemeMode `json:"mode"`
}

// DefaultTheme returns the theme a session starts from.
func DefaultTheme() CustomTheme {
	return CustomTheme{
		PrimaryColor: "#1976d2",
		AccentColor:  "#dc004e",
		HeadingFont:  "Playfair Display, serif",
		BodyFont:     "Inter, sans-serif",
		Mode:         ModeLight,
	}
}

// Normalize heals a theme loaded from storage: blank fields fall back to the
// defaults and an unknown mode becomes light.
func (t *CustomTheme) Normalize() {
	def := DefaultTheme()
	if t.PrimaryColor == "" {
		t.PrimaryColor = def.PrimaryColor
	}
	if t.AccentColor == "" {
		t.AccentColor = def.AccentColor
	}
	if t.HeadingFont == "" {
		t.HeadingFont = def.HeadingFont
	}
	if t.BodyFont == "" {
		t.BodyFont = def.BodyFont
	}
	if !t.Mode.Known() {
		t.Mode = ModeLight
	}
}

// FontOption pairs a display label with the CSS font-family value the
// renderers use.
type FontOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ColorPreset is a named primary/accent pairing offered by the color picker.
type ColorPreset struct {
	Name    string `json:"name"`
	Primary string `json:"primary"`
	Accent  string `json:"accent"`
}

// BodyFontOptions returns the catalog offered for body text.
func BodyFontOptions() []FontOption {
	return []FontOption{
		{Label: "Inter", Value: "Inter, sans-serif"},
		{Label: "Roboto", Value: "Roboto, sans-serif"},
		{Label: "Open Sans", Value: "Open Sans, sans-serif"},
		{Label: "Lato", Value: "Lato, sans-serif"},
		{Label: "Montserrat", Value: "Montserrat, sans-serif"},
		{Label: "Poppins", Value: "Poppins, sans-serif"},
		{Label: "Source Sans Pro", Value: "Source Sans Pro, sans-serif"},
	}
}

// HeadingFontOptions returns the catalog offered for headings.
func HeadingFontOptions() []FontOption {
	return []FontOption{
		{Label: "Playfair Display", Value: "Playfair Display, serif"},
		{Label: "Merriweather", Value: "Merriweather, serif"},
		{Label: "Lora", Value: "Lora, serif"},
		{Label: "Crimson Text", Value: "Crimson Text, serif"},
		{Label: "Inter", Value: "Inter, sans-serif"},
		{Label: "Roboto", Value: "Roboto, sans-serif"},
		{Label: "Montserrat", Value: "Montserrat, sans-serif"},
	}
}

// ColorPresets returns the named color pairings offered by the picker.
func ColorPresets() []ColorPreset {
	return []ColorPreset{
		{Name: "Blue", Primary: "#1976d2", Accent: "#dc004e"},
		{Name: "Green", Primary: "#388e3c", Accent: "#f57c00"},
		{Name: "Purple", Primary: "#7b1fa2", Accent: "#00796b"},
		{Name: "Teal", Primary: "#00796b", Accent: "#e91e63"},
		{Name: "Orange", Primary: "#f57c00", Accent: "#3f51b5"},
		{Name: "Red", Primary: "#d32f2f", Accent: "#1976d2"},
		{Name: "Indigo", Primary: "#3f51b5", Accent: "#ff5722"},
		{Name: "Pink", Primary: "#e91e63", Accent: "#4caf50"},
	}
}
