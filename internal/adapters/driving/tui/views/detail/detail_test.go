package detail

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/messages"
	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

// MockFavoritesService implements driving.FavoritesService for testing.
type MockFavoritesService struct {
	Favorites domain.Favorites
}

func (m *MockFavoritesService) favorites() domain.Favorites {
	if m.Favorites == nil {
		m.Favorites = domain.NewFavorites(nil)
	}
	return m.Favorites
}

func (m *MockFavoritesService) Toggle(id string) bool     { return m.favorites().Toggle(id) }
func (m *MockFavoritesService) IsFavorite(id string) bool { return m.favorites().Has(id) }
func (m *MockFavoritesService) Count() int                { return m.favorites().Count() }
func (m *MockFavoritesService) Recipes() []domain.Recipe  { return nil }

// MockShoppingListService implements driving.ShoppingListService for testing.
type MockShoppingListService struct {
	List *domain.ShoppingList
}

func (m *MockShoppingListService) list() *domain.ShoppingList {
	if m.List == nil {
		m.List = domain.NewShoppingList(nil)
	}
	return m.List
}

func (m *MockShoppingListService) Add(info domain.RecipeInfo, items []string) error {
	if len(items) == 0 {
		return domain.ErrNothingChecked
	}
	m.list().Add(info, items)
	return nil
}

func (m *MockShoppingListService) Remove(recipeID string)      { m.list().Remove(recipeID) }
func (m *MockShoppingListService) Entries() []domain.ShoppingEntry { return m.list().Entries() }
func (m *MockShoppingListService) Count() int                  { return m.list().Count() }
func (m *MockShoppingListService) ExportText() string          { return m.list().ExportText() }
func (m *MockShoppingListService) CopyToClipboard() error      { return nil }

func testRecipe() *domain.Recipe {
	return &domain.Recipe{
		ID:          "r1",
		Name:        "肉じゃが",
		Description: "ほっとする定番の煮物。",
		Servings:    "2人分",
		CookingTime: "約30分",
		Ingredients: []domain.IngredientGroup{
			{Items: []string{"じゃがいも 3個", "牛肉 200g"}},
			{SubHeading: "調味料", Items: []string{"醤油 大さじ2"}},
		},
		Instructions: []string{"切る", "煮る"},
	}
}

func newTestView() (*View, *MockFavoritesService, *MockShoppingListService) {
	favs := &MockFavoritesService{}
	shopping := &MockShoppingListService{}
	v := NewView(nil, nil, favs, shopping)
	v.SetRecipe(testRecipe(), messages.ViewSearch)
	v.SetDimensions(80, 24)
	return v, favs, shopping
}

func TestView_SetRecipeClearsChecks(t *testing.T) {
	v, _, _ := newTestView()

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeySpace})
	v.SetRecipe(testRecipe(), messages.ViewSearch)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	assert.Contains(t, v.Flash(), "選択してください", "checks were cleared so add is rejected")
}

func TestView_AddCheckedItems(t *testing.T) {
	v, _, shopping := newTestView()

	// Check the first and third lines.
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeySpace})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeySpace})

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.NotNil(t, cmd, "flash expiry is scheduled")

	entries := shopping.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "肉じゃが", entries[0].RecipeInfo.Name)
	assert.Equal(t, []string{"じゃがいも 3個", "醤油 大さじ2"}, entries[0].Items)
	assert.Contains(t, v.Flash(), "追加しました")

	// Checks reset after a successful add; adding again is rejected.
	v, _ = v.Update(messages.FlashExpired{})
	assert.Empty(t, v.Flash())
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	assert.Contains(t, v.Flash(), "選択してください")
	assert.Equal(t, 1, shopping.Count())
}

func TestView_AddNothingCheckedShowsError(t *testing.T) {
	v, _, shopping := newTestView()

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.NotNil(t, cmd)
	assert.Contains(t, v.Flash(), "追加する材料を選択してください")
	assert.Equal(t, 0, shopping.Count())
}

func TestView_LikeToggles(t *testing.T) {
	v, favs, _ := newTestView()

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	assert.True(t, favs.IsFavorite("r1"))

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	assert.False(t, favs.IsFavorite("r1"))
}

func TestView_EscReturnsToOrigin(t *testing.T) {
	v, _, _ := newTestView()
	v.SetRecipe(testRecipe(), messages.ViewFavorites)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewFavorites, changed.View)
}

func TestView_RendersRecipe(t *testing.T) {
	v, _, _ := newTestView()

	out := v.View()
	assert.Contains(t, out, "肉じゃが")
	assert.Contains(t, out, "約30分")
	assert.Contains(t, out, "調味料")
	assert.Contains(t, out, "じゃがいも 3個")
	assert.Contains(t, out, "1. 切る")
	assert.Contains(t, out, "2. 煮る")
}

func TestView_NilRecipe(t *testing.T) {
	v, _, _ := newTestView()
	v.SetRecipe(nil, messages.ViewSearch)

	assert.Contains(t, v.View(), "見つかりません")
}
