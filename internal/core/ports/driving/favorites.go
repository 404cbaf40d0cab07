package driving

import "github.com/reshipi-labs/reshipi-cli/internal/core/domain"

// FavoritesService manages the liked-recipe set.
type FavoritesService interface {
	// Toggle flips membership for a recipe ID and returns the new state.
	Toggle(id string) bool

	// IsFavorite reports membership.
	IsFavorite(id string) bool

	// Count returns the number of favorited IDs (including IDs no
	// history entry resolves any more).
	Count() int

	// Recipes resolves the favorite set against history: all stored
	// pages flattened and filtered by membership. A favorite whose
	// recipe no longer exists anywhere simply yields nothing.
	Recipes() []domain.Recipe
}
