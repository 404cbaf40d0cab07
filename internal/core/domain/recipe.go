package domain

import "github.com/google/uuid"

// Recipe is one suggested dish as returned by the completion service.
// Recipes are immutable once created; ID is the only identity used for
// favoriting and shopping-list membership.
type Recipe struct {
	// ID is generated at ingestion, never by the service.
	ID string `json:"id"`

	// Name is the dish name (recipeName on the wire).
	Name string `json:"recipeName"`

	// Description is a short 2-3 sentence summary.
	Description string `json:"description"`

	// Servings is a display string such as "2人分".
	Servings string `json:"servings"`

	// CookingTime is a display string such as "約20分".
	CookingTime string `json:"cookingTime"`

	// Ingredients is the ordered list of ingredient groups.
	Ingredients []IngredientGroup `json:"ingredients"`

	// Instructions is the ordered list of steps.
	Instructions []string `json:"instructions"`
}

// IngredientGroup is a run of ingredient lines under an optional
// subheading (e.g. "合わせ調味料").
type IngredientGroup struct {
	// SubHeading labels the group; empty when the group is unlabelled.
	SubHeading string `json:"subHeading,omitempty"`

	// Items are ingredient lines including quantity, e.g. "豚バラ薄切り肉 200g".
	Items []string `json:"items"`
}

// RecipeInfo is a lightweight snapshot of a recipe's identity, stored
// in shopping-list entries so they survive independently of history.
type RecipeInfo struct {
	ID   string `json:"id"`
	Name string `json:"recipeName"`
}

// Info returns the identity snapshot for this recipe.
func (r *Recipe) Info() RecipeInfo {
	return RecipeInfo{ID: r.ID, Name: r.Name}
}

// IngredientLines flattens all groups into a single ordered list of
// ingredient lines, used by the detail view's checkbox list.
func (r *Recipe) IngredientLines() []string {
	var lines []string
	for _, g := range r.Ingredients {
		lines = append(lines, g.Items...)
	}
	return lines
}

// NewRecipeID returns a fresh unique recipe identifier.
func NewRecipeID() string {
	return "recipe-" + uuid.NewString()
}
