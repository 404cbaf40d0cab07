// Package cardlist provides the navigable recipe card list for the TUI.
package cardlist

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/styles"
	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

// RecipeList displays recipe cards in a navigable list.
type RecipeList struct {
	recipes  []domain.Recipe
	selected int
	styles   *styles.Styles
	width    int
	height   int

	// isFavorite reports membership for the heart marker, injected so
	// the component stays free of service wiring.
	isFavorite func(id string) bool
}

// NewRecipeList creates a new recipe list component.
func NewRecipeList(s *styles.Styles) *RecipeList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &RecipeList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// Init initialises the recipe list.
func (r *RecipeList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RecipeList) Update(msg tea.Msg) (*RecipeList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// SetRecipes replaces the list contents and resets the selection.
func (r *RecipeList) SetRecipes(recipes []domain.Recipe) {
	r.recipes = recipes
	r.selected = 0
}

// SetFavoriteCheck injects the membership check used for the heart marker.
func (r *RecipeList) SetFavoriteCheck(fn func(id string) bool) {
	r.isFavorite = fn
}

// Recipes returns the current list contents.
func (r *RecipeList) Recipes() []domain.Recipe {
	return r.recipes
}

// SelectedRecipe returns the recipe under the cursor, or nil.
func (r *RecipeList) SelectedRecipe() *domain.Recipe {
	if r.selected < 0 || r.selected >= len(r.recipes) {
		return nil
	}
	return &r.recipes[r.selected]
}

// SelectedIndex returns the cursor position.
func (r *RecipeList) SelectedIndex() int {
	return r.selected
}

// MoveUp moves the cursor up one card.
func (r *RecipeList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves the cursor down one card.
func (r *RecipeList) MoveDown() {
	if r.selected < len(r.recipes)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RecipeList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// View renders the recipe cards.
func (r *RecipeList) View() string {
	if len(r.recipes) == 0 {
		return r.styles.Muted.Render("レシピがありません")
	}

	cards := make([]string, 0, len(r.recipes))
	for i := range r.recipes {
		cards = append(cards, r.renderCard(i, &r.recipes[i]))
	}
	return strings.Join(cards, "\n")
}

// renderCard formats a single recipe card.
func (r *RecipeList) renderCard(index int, recipe *domain.Recipe) string {
	name := recipe.Name
	if name == "" {
		name = "(名称未設定)"
	}
	if r.isFavorite != nil && r.isFavorite(recipe.ID) {
		name = "♥ " + name
	}

	meta := recipe.CookingTime
	if recipe.Servings != "" {
		if meta != "" {
			meta += " · "
		}
		meta += recipe.Servings
	}

	lines := []string{r.styles.Subtitle.Render(name)}
	if meta != "" {
		lines = append(lines, r.styles.Muted.Render(meta))
	}
	if recipe.Description != "" {
		lines = append(lines, r.styles.Normal.Render(truncate(recipe.Description, r.width-8)))
	}

	card := r.styles.Card
	if index == r.selected {
		card = r.styles.CardSelected
	}
	return card.Width(r.width - 4).Render(strings.Join(lines, "\n"))
}

// truncate shortens text to max runes with an ellipsis.
func truncate(text string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}
