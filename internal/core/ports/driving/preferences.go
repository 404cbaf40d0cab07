package driving

import "github.com/reshipi-labs/reshipi-cli/internal/core/domain"

// PreferencesService manages the standalone saved preferences. The
// allergy preference seeds the query form but is deliberately not kept
// in sync with the per-search allergies field.
type PreferencesService interface {
	// Allergies returns the saved allergy preference text.
	Allergies() string

	// SaveAllergies persists the allergy preference text.
	SaveAllergies(value string)

	// Theme returns the saved theme preference.
	Theme() domain.Theme

	// SaveTheme persists the theme preference.
	SaveTheme(theme domain.Theme)
}
