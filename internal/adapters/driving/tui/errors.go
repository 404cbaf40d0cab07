package tui

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("tui: search service is required")

// ErrMissingFavoritesService is returned when the favorites service is not provided.
var ErrMissingFavoritesService = errors.New("tui: favorites service is required")

// ErrMissingShoppingService is returned when the shopping list service is not provided.
var ErrMissingShoppingService = errors.New("tui: shopping list service is required")

// ErrMissingPreferencesService is returned when the preferences service is not provided.
var ErrMissingPreferencesService = errors.New("tui: preferences service is required")
