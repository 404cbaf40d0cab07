package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

func TestStateStore_HistoryRoundTrip(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()

	loaded, err := store.LoadHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	item := domain.NewHistoryItem(domain.Query{Ingredients: "鶏肉"}, []domain.Recipe{{ID: "r1", Name: "親子丼"}})
	require.NoError(t, store.SaveHistory(ctx, []*domain.HistoryItem{item}))

	loaded, err = store.LoadHistory(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, item.ID, loaded[0].ID)
	assert.Equal(t, "鶏肉", loaded[0].Query.Ingredients)
}

func TestStateStore_FavoritesRoundTrip(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()

	loaded, err := store.LoadFavorites(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	favs := domain.NewFavorites([]string{"r1", "r2"})
	require.NoError(t, store.SaveFavorites(ctx, favs))

	loaded, err = store.LoadFavorites(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.Has("r1"))
	assert.True(t, loaded.Has("r2"))
	assert.Equal(t, 2, loaded.Count())

	// The stored copy is detached from the caller's set.
	favs.Toggle("r3")
	loaded, err = store.LoadFavorites(ctx)
	require.NoError(t, err)
	assert.False(t, loaded.Has("r3"))
}

func TestStateStore_ShoppingListRoundTrip(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()

	loaded, err := store.LoadShoppingList(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	list := domain.NewShoppingList(nil)
	list.Add(domain.RecipeInfo{ID: "r1", Name: "肉じゃが"}, []string{"じゃがいも 3個"})
	require.NoError(t, store.SaveShoppingList(ctx, list))

	loaded, err = store.LoadShoppingList(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Count())
	assert.Equal(t, "肉じゃが", loaded.Entries()[0].RecipeInfo.Name)
}

func TestStateStore_Preferences(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()

	require.NoError(t, store.SaveAllergies(ctx, "えび、かに"))
	allergies, err := store.LoadAllergies(ctx)
	require.NoError(t, err)
	assert.Equal(t, "えび、かに", allergies)

	require.NoError(t, store.SaveTheme(ctx, domain.ThemeDark))
	theme, err := store.LoadTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
}
