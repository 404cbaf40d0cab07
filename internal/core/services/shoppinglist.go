package services

import (
	"context"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driven"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driving"
	"github.com/reshipi-labs/reshipi-cli/internal/logger"
)

// Ensure ShoppingListService implements the interface.
var _ driving.ShoppingListService = (*ShoppingListService)(nil)

// ShoppingListService owns the per-recipe purchase list.
type ShoppingListService struct {
	state     *AppState
	store     driven.StateStore
	clipboard driven.Clipboard
}

// NewShoppingListService creates a new shopping list service.
func NewShoppingListService(state *AppState, store driven.StateStore, clipboard driven.Clipboard) *ShoppingListService {
	return &ShoppingListService{
		state:     state,
		store:     store,
		clipboard: clipboard,
	}
}

// Add merges checked ingredient lines into the recipe's entry and
// persists the list. An empty selection is rejected before anything is
// touched.
func (s *ShoppingListService) Add(info domain.RecipeInfo, items []string) error {
	if len(items) == 0 {
		return domain.ErrNothingChecked
	}
	s.state.ShoppingList.Add(info, items)
	s.save()
	return nil
}

// Remove deletes the whole entry for one recipe ID and persists.
func (s *ShoppingListService) Remove(recipeID string) {
	s.state.ShoppingList.Remove(recipeID)
	s.save()
}

// Entries returns the list grouped by recipe, in insertion order.
func (s *ShoppingListService) Entries() []domain.ShoppingEntry {
	return s.state.ShoppingList.Entries()
}

// Count returns the number of recipes on the list.
func (s *ShoppingListService) Count() int {
	return s.state.ShoppingList.Count()
}

// ExportText renders the list as plain text.
func (s *ShoppingListService) ExportText() string {
	return s.state.ShoppingList.ExportText()
}

// CopyToClipboard places the exported text on the system clipboard.
func (s *ShoppingListService) CopyToClipboard() error {
	return s.clipboard.WriteText(s.state.ShoppingList.ExportText())
}

func (s *ShoppingListService) save() {
	if err := s.store.SaveShoppingList(context.Background(), s.state.ShoppingList); err != nil {
		logger.Warn("saving shopping list: %v", err)
	}
}
