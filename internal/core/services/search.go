package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driven"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driving"
	"github.com/reshipi-labs/reshipi-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs searches against the recipe source and owns the
// history portion of the shared state.
type SearchService struct {
	state  *AppState
	store  driven.StateStore
	source driven.RecipeSource
}

// NewSearchService creates a new search service.
func NewSearchService(state *AppState, store driven.StateStore, source driven.RecipeSource) *SearchService {
	return &SearchService{
		state:  state,
		store:  store,
		source: source,
	}
}

// Submit validates and runs one search. On success the new history item
// is appended, becomes current, and history is persisted. Any failure
// is atomic: no history entry, no change to the current item.
func (s *SearchService) Submit(ctx context.Context, query domain.Query) (*domain.HistoryItem, error) {
	query = query.Normalize()
	if err := query.Validate(); err != nil {
		return nil, err
	}

	recipes, err := s.source.FetchRecipes(ctx, query)
	if err != nil {
		logger.Info("search failed: %v", err)
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("%w: empty recipe list", domain.ErrBadRecipePayload)
	}

	item := domain.NewHistoryItem(query, recipes)
	s.state.History = append(s.state.History, item)
	s.state.Current = item
	s.saveHistory()

	logger.Debug("search succeeded: %d recipes for %q", len(recipes), query.Ingredients)
	return item, nil
}

// Current returns the history item being shown, or nil.
func (s *SearchService) Current() *domain.HistoryItem {
	return s.state.Current
}

// History returns all history items in append order.
func (s *SearchService) History() []*domain.HistoryItem {
	return s.state.History
}

// Replay makes a stored search current without re-issuing a request.
func (s *SearchService) Replay(id string) (*domain.HistoryItem, error) {
	for _, item := range s.state.History {
		if item.ID == id {
			s.state.Current = item
			return item, nil
		}
	}
	return nil, fmt.Errorf("history item %s: %w", id, domain.ErrNotFound)
}

// NextPage advances the current item's page and persists the pointer.
func (s *SearchService) NextPage() bool {
	if s.state.Current == nil || !s.state.Current.NextPage() {
		return false
	}
	s.saveHistory()
	return true
}

// PrevPage retreats the current item's page and persists the pointer.
func (s *SearchService) PrevPage() bool {
	if s.state.Current == nil || !s.state.Current.PrevPage() {
		return false
	}
	s.saveHistory()
	return true
}

// Suggestions derives the suggestion chips from history.
func (s *SearchService) Suggestions() []string {
	return domain.SuggestedIngredients(s.state.History)
}

// FindRecipe resolves a recipe ID against every stored page.
func (s *SearchService) FindRecipe(id string) *domain.Recipe {
	return domain.FindRecipe(s.state.History, id)
}

// saveHistory persists the history collection. Persistence failures are
// logged only; in-memory state stays authoritative for this session.
func (s *SearchService) saveHistory() {
	if err := s.store.SaveHistory(context.Background(), s.state.History); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("saving history: %v", err)
	}
}
