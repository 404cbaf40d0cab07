package driven

import (
	"context"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

// RecipeSource produces recipe suggestions for a query via the external
// completion service. Failures are atomic: an error means no recipes at
// all, never partial data. Implementations stamp each returned recipe
// with a fresh unique ID.
type RecipeSource interface {
	// FetchRecipes requests suggestions for the query.
	// Returns domain.ErrRecipeFetch for transport/service failures and
	// domain.ErrBadRecipePayload when the response fails schema validation.
	FetchRecipes(ctx context.Context, query domain.Query) ([]domain.Recipe, error)
}
