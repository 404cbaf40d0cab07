package services

import (
	"context"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driven"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driving"
	"github.com/reshipi-labs/reshipi-cli/internal/logger"
)

// Ensure FavoritesService implements the interface.
var _ driving.FavoritesService = (*FavoritesService)(nil)

// FavoritesService owns the liked-recipe set.
type FavoritesService struct {
	state *AppState
	store driven.StateStore
}

// NewFavoritesService creates a new favorites service.
func NewFavoritesService(state *AppState, store driven.StateStore) *FavoritesService {
	return &FavoritesService{state: state, store: store}
}

// Toggle flips membership for a recipe ID, persists the set, and
// returns the new state.
func (s *FavoritesService) Toggle(id string) bool {
	liked := s.state.Favorites.Toggle(id)
	if err := s.store.SaveFavorites(context.Background(), s.state.Favorites); err != nil {
		logger.Warn("saving favorites: %v", err)
	}
	return liked
}

// IsFavorite reports membership.
func (s *FavoritesService) IsFavorite(id string) bool {
	return s.state.Favorites.Has(id)
}

// Count returns the number of favorited IDs, resolvable or not.
func (s *FavoritesService) Count() int {
	return s.state.Favorites.Count()
}

// Recipes flattens every stored page of every history item and keeps
// the favorited ones. IDs that no page resolves yield nothing; they
// stay in the set in case their history comes back.
func (s *FavoritesService) Recipes() []domain.Recipe {
	var out []domain.Recipe
	for _, item := range s.state.History {
		for _, page := range item.Pages {
			for _, recipe := range page {
				if s.state.Favorites.Has(recipe.ID) {
					out = append(out, recipe)
				}
			}
		}
	}
	return out
}
