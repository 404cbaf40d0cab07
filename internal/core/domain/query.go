package domain

import "strings"

// Query is the normalized form of one search request. It is embedded
// verbatim in each HistoryItem so a past search can be replayed into
// the form without re-issuing a request.
type Query struct {
	// Ingredients is the free-text ingredient list, e.g. "鶏肉、玉ねぎ".
	Ingredients string `json:"ingredients"`

	// Servings is the requested serving count as entered, e.g. "2".
	Servings string `json:"servings"`

	// MealPrep requests make-ahead friendly recipes.
	MealPrep bool `json:"mealPrep"`

	// Allergies lists ingredients to exclude. This is whatever was in the
	// form at submit time; it is seeded from, but can diverge from, the
	// saved allergy preference.
	Allergies string `json:"allergies"`
}

// Normalize trims the free-text fields.
func (q Query) Normalize() Query {
	q.Ingredients = strings.TrimSpace(q.Ingredients)
	q.Allergies = strings.TrimSpace(q.Allergies)
	return q
}

// Validate rejects queries that must not reach the completion service.
func (q Query) Validate() error {
	if strings.TrimSpace(q.Ingredients) == "" {
		return ErrEmptyIngredients
	}
	return nil
}
