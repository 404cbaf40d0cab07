package driving

import (
	"context"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

// SearchService owns the active-search lifecycle and the search history.
type SearchService interface {
	// Submit validates the query, fetches suggestions from the completion
	// service, and on success appends a new history item and makes it
	// current. Failure leaves history and the current item untouched.
	// Returns domain.ErrEmptyIngredients before any request is made when
	// the query has no ingredients.
	Submit(ctx context.Context, query domain.Query) (*domain.HistoryItem, error)

	// Current returns the history item whose results are being shown,
	// or nil before the first search.
	Current() *domain.HistoryItem

	// History returns all history items in append order; render newest
	// first.
	History() []*domain.HistoryItem

	// Replay makes a past history item current and returns it so the
	// form can be repopulated from its stored query. Pure projection:
	// no request is issued. Returns domain.ErrNotFound for unknown IDs.
	Replay(id string) (*domain.HistoryItem, error)

	// NextPage advances the current item one page; no-op at the last page.
	NextPage() bool

	// PrevPage retreats the current item one page; no-op at the first page.
	PrevPage() bool

	// Suggestions returns the derived suggestion chips.
	Suggestions() []string

	// FindRecipe resolves a recipe ID against every stored history page.
	FindRecipe(id string) *domain.Recipe
}
