// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the query form, result cards, and history.
	ViewSearch ViewType = iota
	// ViewFavorites lists liked recipes.
	ViewFavorites
	// ViewShopping shows the shopping list.
	ViewShopping
	// ViewDetail shows one recipe with its checkable ingredients.
	ViewDetail
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewFavorites:
		return "favorites"
	case ViewShopping:
		return "shopping"
	case ViewDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SearchCompleted carries the outcome of one search back to the model.
// Exactly one of Item and Err is set.
type SearchCompleted struct {
	Item *domain.HistoryItem
	Err  error
}

// RecipeSelected requests navigation to the detail view for a recipe.
// Origin is where Back should return to.
type RecipeSelected struct {
	RecipeID string
	Origin   ViewType
}

// ThemeChanged is sent when the theme preference changes, including
// external config edits picked up by the watcher.
type ThemeChanged struct {
	Theme domain.Theme
}

// FlashExpired clears a transient status message.
type FlashExpired struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
