package driving

import "github.com/reshipi-labs/reshipi-cli/internal/core/domain"

// ShoppingListService manages the per-recipe purchase list.
type ShoppingListService interface {
	// Add merges the checked ingredient lines into the recipe's entry,
	// creating it on first add. Returns domain.ErrNothingChecked when
	// items is empty; nothing is modified in that case.
	Add(info domain.RecipeInfo, items []string) error

	// Remove deletes the whole entry for one recipe ID.
	Remove(recipeID string)

	// Entries returns the list grouped by recipe, in insertion order.
	Entries() []domain.ShoppingEntry

	// Count returns the number of recipes on the list.
	Count() int

	// ExportText renders the list as plain text.
	ExportText() string

	// CopyToClipboard places the exported text on the system clipboard.
	CopyToClipboard() error
}
