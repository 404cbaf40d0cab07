package services

import (
	"context"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driven"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driving"
	"github.com/reshipi-labs/reshipi-cli/internal/logger"
)

// Ensure PreferencesService implements the interface.
var _ driving.PreferencesService = (*PreferencesService)(nil)

// PreferencesService owns the standalone saved preferences.
type PreferencesService struct {
	state *AppState
	store driven.StateStore
}

// NewPreferencesService creates a new preferences service.
func NewPreferencesService(state *AppState, store driven.StateStore) *PreferencesService {
	return &PreferencesService{state: state, store: store}
}

// Allergies returns the saved allergy preference text.
func (s *PreferencesService) Allergies() string {
	return s.state.Allergies
}

// SaveAllergies persists the allergy preference text verbatim; the
// free-text format is the whole contract.
func (s *PreferencesService) SaveAllergies(value string) {
	s.state.Allergies = value
	if err := s.store.SaveAllergies(context.Background(), value); err != nil {
		logger.Warn("saving allergy preference: %v", err)
	}
}

// Theme returns the saved theme preference.
func (s *PreferencesService) Theme() domain.Theme {
	return s.state.Theme
}

// SaveTheme persists the theme preference. Unknown values are ignored.
func (s *PreferencesService) SaveTheme(theme domain.Theme) {
	if !theme.IsValid() {
		return
	}
	s.state.Theme = theme
	if err := s.store.SaveTheme(context.Background(), theme); err != nil {
		logger.Warn("saving theme preference: %v", err)
	}
}
