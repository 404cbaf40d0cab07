package services

import (
	"context"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driven"
	"github.com/reshipi-labs/reshipi-cli/internal/logger"
)

// AppState is the single in-memory representation of everything the
// app shows: search history with the current pointer, favorites, the
// shopping list, and the standalone preferences. One instance is
// created at startup and shared by every service; only one logical
// thread (the event loop) ever touches it, so there is no locking.
// Renderers read from here, never from storage.
type AppState struct {
	History      []*domain.HistoryItem
	Current      *domain.HistoryItem
	Favorites    domain.Favorites
	ShoppingList *domain.ShoppingList
	Allergies    string
	Theme        domain.Theme
}

// NewAppState returns an empty state.
func NewAppState() *AppState {
	return &AppState{
		Favorites:    domain.NewFavorites(nil),
		ShoppingList: domain.NewShoppingList(nil),
	}
}

// LoadAppState hydrates state from the store. Loading is best-effort:
// any collection that fails comes back as its empty default and the
// failure is logged, never surfaced. History pages are re-clamped so
// the pagination invariant holds even for hand-edited storage.
func LoadAppState(ctx context.Context, store driven.StateStore) *AppState {
	state := NewAppState()

	history, err := store.LoadHistory(ctx)
	if err != nil {
		logger.Warn("loading history: %v", err)
	} else {
		for _, item := range history {
			item.Normalize()
		}
		state.History = history
	}

	favorites, err := store.LoadFavorites(ctx)
	if err != nil {
		logger.Warn("loading favorites: %v", err)
	} else if favorites != nil {
		state.Favorites = favorites
	}

	list, err := store.LoadShoppingList(ctx)
	if err != nil {
		logger.Warn("loading shopping list: %v", err)
	} else if list != nil {
		state.ShoppingList = list
	}

	allergies, err := store.LoadAllergies(ctx)
	if err != nil {
		logger.Warn("loading allergy preference: %v", err)
	} else {
		state.Allergies = allergies
	}

	theme, err := store.LoadTheme(ctx)
	if err != nil {
		logger.Warn("loading theme preference: %v", err)
	} else if theme.IsValid() {
		state.Theme = theme
	}

	logger.Debug("state loaded: %d history items, %d favorites, %d shopping entries",
		len(state.History), state.Favorites.Count(), state.ShoppingList.Count())
	return state
}
