package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyIngredients indicates a query was submitted without ingredients.
	// Recovered locally with inline feedback; no request is sent.
	ErrEmptyIngredients = errors.New("ingredients must not be empty")

	// ErrRecipeFetch indicates the completion service was unreachable or
	// returned a service-level error. The search is treated as fully failed.
	ErrRecipeFetch = errors.New("recipe fetch failed")

	// ErrBadRecipePayload indicates the completion service responded with
	// data that does not match the recipe schema. Treated exactly like a
	// transport failure: nothing is ingested.
	ErrBadRecipePayload = errors.New("recipe payload does not match schema")

	// ErrNoAPIKey indicates the completion service credential is missing.
	// Fatal at startup; no interactive feature can work without it.
	ErrNoAPIKey = errors.New("API key is not configured")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNothingChecked indicates an add-to-shopping-list action with no
	// ingredients checked. Surfaced as a transient hint, not a failure.
	ErrNothingChecked = errors.New("no ingredients checked")
)
