package search

import "errors"

// ErrNoSearchService is returned when no search service is wired in.
var ErrNoSearchService = errors.New("search: no search service configured")
