package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

func TestThemeFor(t *testing.T) {
	tests := []struct {
		name string
		pref domain.Theme
		want *Theme
	}{
		{name: "dark", pref: domain.ThemeDark, want: DarkTheme()},
		{name: "light", pref: domain.ThemeLight, want: LightTheme()},
		{name: "system falls back to dark", pref: domain.ThemeSystem, want: DarkTheme()},
		{name: "unknown falls back to dark", pref: domain.Theme("sepia"), want: DarkTheme()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ThemeFor(tt.pref))
		})
	}
}

func TestNewStyles(t *testing.T) {
	theme := LightTheme()
	s := NewStyles(theme)

	require.NotNil(t, s)
	assert.Equal(t, theme, s.Theme())
}

func TestNewStyles_NilThemeDefaultsToDark(t *testing.T) {
	s := NewStyles(nil)

	assert.Equal(t, DarkTheme(), s.Theme())
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	assert.Equal(t, DarkTheme(), s.Theme())
}
