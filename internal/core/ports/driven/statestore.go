package driven

import (
	"context"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

// StateStore persists the app's collections to a durable string-keyed
// store, one key per collection. Saves are synchronous and
// per-collection; loads are best-effort: a collection whose stored
// value fails to decode comes back as its empty default (the failure is
// logged by the adapter, never raised to the caller).
type StateStore interface {
	// LoadHistory returns the stored search history in append order.
	LoadHistory(ctx context.Context) ([]*domain.HistoryItem, error)

	// SaveHistory overwrites the stored search history.
	SaveHistory(ctx context.Context, history []*domain.HistoryItem) error

	// LoadFavorites returns the stored favorite set.
	LoadFavorites(ctx context.Context) (domain.Favorites, error)

	// SaveFavorites overwrites the stored favorite set.
	SaveFavorites(ctx context.Context, favorites domain.Favorites) error

	// LoadShoppingList returns the stored shopping list.
	LoadShoppingList(ctx context.Context) (*domain.ShoppingList, error)

	// SaveShoppingList overwrites the stored shopping list.
	SaveShoppingList(ctx context.Context, list *domain.ShoppingList) error

	// LoadAllergies returns the saved allergy preference text.
	LoadAllergies(ctx context.Context) (string, error)

	// SaveAllergies overwrites the saved allergy preference text.
	SaveAllergies(ctx context.Context, value string) error

	// LoadTheme returns the saved theme preference.
	LoadTheme(ctx context.Context) (domain.Theme, error)

	// SaveTheme overwrites the saved theme preference.
	SaveTheme(ctx context.Context, theme domain.Theme) error
}
