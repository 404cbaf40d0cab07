package tui

import (
	"context"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	SubmitFunc  func(ctx context.Context, query domain.Query) (*domain.HistoryItem, error)
	CurrentItem *domain.HistoryItem
	Items       []*domain.HistoryItem
}

func (m *MockSearchService) Submit(ctx context.Context, query domain.Query) (*domain.HistoryItem, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockSearchService) Current() *domain.HistoryItem {
	return m.CurrentItem
}

func (m *MockSearchService) History() []*domain.HistoryItem {
	return m.Items
}

func (m *MockSearchService) Replay(id string) (*domain.HistoryItem, error) {
	for _, item := range m.Items {
		if item.ID == id {
			m.CurrentItem = item
			return item, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockSearchService) NextPage() bool {
	return m.CurrentItem != nil && m.CurrentItem.NextPage()
}

func (m *MockSearchService) PrevPage() bool {
	return m.CurrentItem != nil && m.CurrentItem.PrevPage()
}

func (m *MockSearchService) Suggestions() []string {
	return domain.DefaultSuggestions()
}

func (m *MockSearchService) FindRecipe(id string) *domain.Recipe {
	return domain.FindRecipe(m.Items, id)
}

// MockFavoritesService implements driving.FavoritesService for testing.
type MockFavoritesService struct {
	Favorites domain.Favorites
	History   []*domain.HistoryItem
}

func (m *MockFavoritesService) favorites() domain.Favorites {
	if m.Favorites == nil {
		m.Favorites = domain.NewFavorites(nil)
	}
	return m.Favorites
}

func (m *MockFavoritesService) Toggle(id string) bool {
	return m.favorites().Toggle(id)
}

func (m *MockFavoritesService) IsFavorite(id string) bool {
	return m.favorites().Has(id)
}

func (m *MockFavoritesService) Count() int {
	return m.favorites().Count()
}

func (m *MockFavoritesService) Recipes() []domain.Recipe {
	var out []domain.Recipe
	for _, item := range m.History {
		for _, page := range item.Pages {
			for _, recipe := range page {
				if m.favorites().Has(recipe.ID) {
					out = append(out, recipe)
				}
			}
		}
	}
	return out
}

// MockShoppingListService implements driving.ShoppingListService for testing.
type MockShoppingListService struct {
	List    *domain.ShoppingList
	CopyErr error
	Copied  string
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

func (m *MockShoppingListService) Remove(recipeID string) {
	m.list().Remove(recipeID)
}

func (m *MockShoppingListService) Entries() []domain.ShoppingEntry {
	return m.list().Entries()
}

func (m *MockShoppingListService) Count() int {
	return m.list().Count()
}

func (m *MockShoppingListService) ExportText() string {
	return m.list().ExportText()
}

func (m *MockShoppingListService) CopyToClipboard() error {
	if m.CopyErr != nil {
		return m.CopyErr
	}
	m.Copied = m.list().ExportText()
	return nil
}

// MockPreferencesService implements driving.PreferencesService for testing.
type MockPreferencesService struct {
	AllergyText string
	ThemePref   domain.Theme
}

func (m *MockPreferencesService) Allergies() string {
	return m.AllergyText
}

func (m *MockPreferencesService) SaveAllergies(value string) {
	m.AllergyText = value
}

func (m *MockPreferencesService) Theme() domain.Theme {
	return m.ThemePref
}

func (m *MockPreferencesService) SaveTheme(theme domain.Theme) {
	if theme.IsValid() {
		m.ThemePref = theme
	}
}
