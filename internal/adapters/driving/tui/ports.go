// Package tui provides the interactive terminal user interface.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs recipe searches and owns history.
	Search driving.SearchService

	// Favorites manages the liked-recipe set.
	Favorites driving.FavoritesService

	// Shopping manages the shopping list.
	Shopping driving.ShoppingListService

	// Preferences manages the saved allergy and theme preferences.
	Preferences driving.PreferencesService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchService,
	favorites driving.FavoritesService,
	shopping driving.ShoppingListService,
	preferences driving.PreferencesService,
) *Ports {
	return &Ports{
		Search:      search,
		Favorites:   favorites,
		Shopping:    shopping,
		Preferences: preferences,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Favorites == nil {
		return ErrMissingFavoritesService
	}
	if p.Shopping == nil {
		return ErrMissingShoppingService
	}
	if p.Preferences == nil {
		return ErrMissingPreferencesService
	}
	return nil
}
