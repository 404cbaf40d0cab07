package domain

// Theme is the persisted color scheme preference.
type Theme string

// Available theme preferences.
const (
	// ThemeDark forces the dark palette.
	ThemeDark Theme = "dark"

	// ThemeLight forces the light palette.
	ThemeLight Theme = "light"

	// ThemeSystem is the unset default: follow the environment.
	ThemeSystem Theme = ""
)

// IsValid returns true if the theme value is recognised.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeDark, ThemeLight, ThemeSystem:
		return true
	default:
		return false
	}
}

// String returns the persisted representation.
func (t Theme) String() string {
	return string(t)
}
