package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driven/storage/memory"
	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

// --- Mock implementations ---

// mockRecipeSource implements driven.RecipeSource for testing.
type mockRecipeSource struct {
	recipes  []domain.Recipe
	fetchErr error
	calls    int
}

func (m *mockRecipeSource) FetchRecipes(_ context.Context, _ domain.Query) ([]domain.Recipe, error) {
	m.calls++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.recipes, nil
}

func fiveRecipes() []domain.Recipe {
	return []domain.Recipe{
		{ID: "r1", Name: "親子丼"},
		{ID: "r2", Name: "チキンカレー"},
		{ID: "r3", Name: "鶏の照り焼き"},
		{ID: "r4", Name: "チキン南蛮"},
		{ID: "r5", Name: "鶏肉と玉ねぎの炒め物"},
	}
}

func TestSearchService_Submit(t *testing.T) {
	state := NewAppState()
	store := memory.NewStateStore()
	source := &mockRecipeSource{recipes: fiveRecipes()}
	svc := NewSearchService(state, store, source)

	item, err := svc.Submit(context.Background(), domain.Query{
		Ingredients: "鶏肉、玉ねぎ",
		Servings:    "2",
	})
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Len(t, item.CurrentRecipes(), 5)
	assert.Equal(t, 0, item.CurrentPage)
	assert.Same(t, item, svc.Current())
	require.Len(t, svc.History(), 1)

	// History is persisted as part of the same submission.
	persisted, err := store.LoadHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, item.ID, persisted[0].ID)
}

func TestSearchService_SubmitEmptyIngredients(t *testing.T) {
	state := NewAppState()
	source := &mockRecipeSource{recipes: fiveRecipes()}
	svc := NewSearchService(state, memory.NewStateStore(), source)

	_, err := svc.Submit(context.Background(), domain.Query{Ingredients: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyIngredients)

	// The guard fires before the source is consulted.
	assert.Equal(t, 0, source.calls)
	assert.Empty(t, svc.History())
	assert.Nil(t, svc.Current())
}

func TestSearchService_SubmitFailureIsAtomic(t *testing.T) {
	state := NewAppState()
	store := memory.NewStateStore()
	svc := NewSearchService(state, store, &mockRecipeSource{recipes: fiveRecipes()})

	first, err := svc.Submit(context.Background(), domain.Query{Ingredients: "鶏肉"})
	require.NoError(t, err)

	// A second search that fails upstream leaves everything as it was.
	failing := NewSearchService(state, store, &mockRecipeSource{fetchErr: domain.ErrBadRecipePayload})
	_, err = failing.Submit(context.Background(), domain.Query{Ingredients: "豚肉"})
	assert.ErrorIs(t, err, domain.ErrBadRecipePayload)

	assert.Len(t, svc.History(), 1)
	assert.Same(t, first, svc.Current())
}

func TestSearchService_SubmitEmptyRecipeList(t *testing.T) {
	state := NewAppState()
	svc := NewSearchService(state, memory.NewStateStore(), &mockRecipeSource{recipes: []domain.Recipe{}})

	_, err := svc.Submit(context.Background(), domain.Query{Ingredients: "鶏肉"})
	assert.ErrorIs(t, err, domain.ErrBadRecipePayload)
	assert.Empty(t, svc.History())
}

func TestSearchService_Replay(t *testing.T) {
	state := NewAppState()
	svc := NewSearchService(state, memory.NewStateStore(), &mockRecipeSource{recipes: fiveRecipes()})

	first, err := svc.Submit(context.Background(), domain.Query{Ingredients: "鶏肉"})
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), domain.Query{Ingredients: "豚肉"})
	require.NoError(t, err)
	require.Same(t, second, svc.Current())

	replayed, err := svc.Replay(first.ID)
	require.NoError(t, err)
	assert.Same(t, first, replayed)
	assert.Same(t, first, svc.Current())

	_, err = svc.Replay("history-unknown")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Same(t, first, svc.Current(), "failed replay must not move the pointer")
}

func TestSearchService_Paging(t *testing.T) {
	state := NewAppState()
	store := memory.NewStateStore()
	svc := NewSearchService(state, store, &mockRecipeSource{recipes: fiveRecipes()})

	// No current item: both directions are no-ops.
	assert.False(t, svc.NextPage())
	assert.False(t, svc.PrevPage())

	item, err := svc.Submit(context.Background(), domain.Query{Ingredients: "鶏肉"})
	require.NoError(t, err)
	item.AppendPage([]domain.Recipe{{ID: "r6", Name: "唐揚げ"}})

	assert.False(t, svc.PrevPage(), "already on the first page")
	assert.True(t, svc.NextPage())
	assert.Equal(t, 1, item.CurrentPage)
	assert.False(t, svc.NextPage(), "already on the last page")
	assert.Equal(t, 1, item.CurrentPage)

	// The page pointer survives a reload.
	persisted, err := store.LoadHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, 1, persisted[0].CurrentPage)
}

func TestSearchService_FindRecipe(t *testing.T) {
	state := NewAppState()
	svc := NewSearchService(state, memory.NewStateStore(), &mockRecipeSource{recipes: fiveRecipes()})

	_, err := svc.Submit(context.Background(), domain.Query{Ingredients: "鶏肉"})
	require.NoError(t, err)

	found := svc.FindRecipe("r3")
	require.NotNil(t, found)
	assert.Equal(t, "鶏の照り焼き", found.Name)
	assert.Nil(t, svc.FindRecipe("r999"))
}

func TestSearchService_Suggestions(t *testing.T) {
	state := NewAppState()
	svc := NewSearchService(state, memory.NewStateStore(), &mockRecipeSource{recipes: fiveRecipes()})

	// Fresh state falls back to the defaults.
	assert.Equal(t, domain.DefaultSuggestions(), svc.Suggestions())

	_, err := svc.Submit(context.Background(), domain.Query{Ingredients: "トマト、バジル"})
	require.NoError(t, err)

	got := svc.Suggestions()
	assert.Contains(t, got, "トマト")
	assert.Contains(t, got, "バジル")
}
