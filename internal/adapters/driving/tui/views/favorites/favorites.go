// Package favorites provides the liked-recipe list view for the TUI.
package favorites

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/components/cardlist"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/keymap"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/messages"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/styles"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driving"
)

// View lists favorited recipes resolved against stored history.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	list   *cardlist.RecipeList

	favService driving.FavoritesService

	width  int
	height int
}

// NewView creates a new favorites view.
func NewView(s *styles.Styles, km *keymap.KeyMap, favService driving.FavoritesService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:     s,
		keymap:     km,
		list:       cardlist.NewRecipeList(s),
		favService: favService,
		width:      80,
		height:     24,
	}
	if favService != nil {
		v.list.SetFavoriteCheck(favService.IsFavorite)
	}
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh re-resolves the favorite set against history. Orphaned
// favorites simply do not appear.
func (v *View) Refresh() {
	if v.favService == nil {
		return
	}
	v.list.SetRecipes(v.favService.Recipes())
}

// SetStyles swaps the style set, for live theme changes.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
	v.list = cardlist.NewRecipeList(s)
	if v.favService != nil {
		v.list.SetFavoriteCheck(v.favService.IsFavorite)
		v.list.SetRecipes(v.favService.Recipes())
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.list.SetDimensions(width, height-4)
}

// Update handles messages for the favorites view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		v.list.MoveDown()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Like):
		if recipe := v.list.SelectedRecipe(); recipe != nil && v.favService != nil {
			v.favService.Toggle(recipe.ID)
			v.Refresh()
		}
		return v, nil

	case msg.Type == tea.KeyEnter:
		if recipe := v.list.SelectedRecipe(); recipe != nil {
			id := recipe.ID
			return v, func() tea.Msg {
				return messages.RecipeSelected{RecipeID: id, Origin: messages.ViewFavorites}
			}
		}
		return v, nil
	}

	return v, nil
}

// View renders the favorites view.
func (v *View) View() string {
	header := v.styles.Title.Render("お気に入り")

	if v.favService == nil || len(v.list.Recipes()) == 0 {
		empty := v.styles.Muted.Render("お気に入りはまだありません。検索結果で f を押すと登録できます。")
		return lipgloss.JoinVertical(lipgloss.Left, header, "", empty)
	}

	hints := v.styles.Help.Render("[enter] 開く  [f] お気に入り解除")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", v.list.View(), "", hints)
}
