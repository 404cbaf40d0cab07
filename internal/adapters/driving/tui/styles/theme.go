// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// StatusBackground is the status bar background colour.
	StatusBackground lipgloss.Color
}

// DarkTheme returns the dark colour theme.
func DarkTheme() *Theme {
	return &Theme{
		Primary:          lipgloss.Color("#F97316"), // Orange
		Secondary:        lipgloss.Color("#22D3EE"), // Cyan
		Background:       lipgloss.Color("#1E1E2E"), // Dark gray
		Foreground:       lipgloss.Color("#CDD6F4"), // Light gray
		Muted:            lipgloss.Color("#6C7086"), // Medium gray
		Success:          lipgloss.Color("#A6E3A1"), // Green
		Warning:          lipgloss.Color("#F9E2AF"), // Yellow
		Error:            lipgloss.Color("#F38BA8"), // Red
		Border:           lipgloss.Color("#45475A"), // Border gray
		StatusBackground: lipgloss.Color("#181825"),
	}
}

// LightTheme returns the light colour theme.
func LightTheme() *Theme {
	return &Theme{
		Primary:          lipgloss.Color("#EA580C"), // Orange
		Secondary:        lipgloss.Color("#0E7490"), // Teal
		Background:       lipgloss.Color("#FFFBEB"), // Cream
		Foreground:       lipgloss.Color("#3F3F46"), // Dark gray
		Muted:            lipgloss.Color("#A1A1AA"), // Medium gray
		Success:          lipgloss.Color("#16A34A"), // Green
		Warning:          lipgloss.Color("#CA8A04"), // Yellow
		Error:            lipgloss.Color("#DC2626"), // Red
		Border:           lipgloss.Color("#D4D4D8"), // Border gray
		StatusBackground: lipgloss.Color("#F4F4F5"),
	}
}

// ThemeFor maps a theme preference to a palette. The system preference
// falls back to dark, the palette terminals are most likely to match.
func ThemeFor(pref domain.Theme) *Theme {
	if pref == domain.ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style

	// Chip style for suggestion chips.
	Chip lipgloss.Style

	// ChipSelected style for the focused suggestion chip.
	ChipSelected lipgloss.Style

	// Card style for recipe cards.
	Card lipgloss.Style

	// CardSelected style for the focused recipe card.
	CardSelected lipgloss.Style

	// Tab style for inactive tabs.
	Tab lipgloss.Style

	// TabActive style for the active tab.
	TabActive lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DarkTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.StatusBackground).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Chip: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Padding(0, 1),

		ChipSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Background).
			Background(theme.Secondary).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Underline(true).
			Padding(0, 2),
	}
}

// DefaultStyles returns styles with the dark theme.
func DefaultStyles() *Styles {
	return NewStyles(DarkTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
