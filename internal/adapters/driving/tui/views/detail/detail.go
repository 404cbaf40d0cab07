// Package detail provides the single-recipe view with checkable
// ingredients for the TUI.
package detail

import (
	"errors"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/components/checklist"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/keymap"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/messages"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/styles"
	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driving"
)

// flashDuration is how long transient confirmations stay visible.
const flashDuration = 2 * time.Second

// View shows one recipe: metadata, ingredient checkboxes, and steps.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	checklist *checklist.Checklist

	favService      driving.FavoritesService
	shoppingService driving.ShoppingListService

	recipe *domain.Recipe
	origin messages.ViewType
	flash  string
	flashE bool

	width  int
	height int
}

// NewView creates a new detail view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	favService driving.FavoritesService,
	shoppingService driving.ShoppingListService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:          s,
		keymap:          km,
		checklist:       checklist.NewChecklist(s),
		favService:      favService,
		shoppingService: shoppingService,
		width:           80,
		height:          24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetRecipe loads a recipe into the view. Checkbox state always starts
// cleared; origin is where Back returns to.
func (v *View) SetRecipe(recipe *domain.Recipe, origin messages.ViewType) {
	v.recipe = recipe
	v.origin = origin
	v.flash = ""
	v.flashE = false
	if recipe != nil {
		v.checklist.SetItems(recipe.IngredientLines())
	} else {
		v.checklist.SetItems(nil)
	}
}

// Recipe returns the recipe being shown, or nil.
func (v *View) Recipe() *domain.Recipe {
	return v.recipe
}

// Origin returns the view Back returns to.
func (v *View) Origin() messages.ViewType {
	return v.origin
}

// SetStyles swaps the style set, for live theme changes. Checkbox
// state survives the swap.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
	items := v.checklist.Items()
	checked := v.checklist.CheckedIndexes()
	v.checklist = checklist.NewChecklist(s)
	v.checklist.SetItems(items)
	v.checklist.SetCheckedIndexes(checked)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.FlashExpired:
		v.flash = ""
		v.flashE = false
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
	case msg.Type == tea.KeyEsc:
		origin := v.origin
		return v, func() tea.Msg {
			return messages.ViewChanged{View: origin}
		}

	case keymap.Matches(keyStr, v.keymap.Up):
		v.checklist.MoveUp()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		v.checklist.MoveDown()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Check):
		v.checklist.ToggleSelected()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Like):
		if v.recipe != nil && v.favService != nil {
			v.favService.Toggle(v.recipe.ID)
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.AddItems):
		return v, v.addCheckedItems()
	}

	return v, nil
}

// addCheckedItems sends the checked ingredient lines to the shopping
// list and shows a transient confirmation.
func (v *View) addCheckedItems() tea.Cmd {
	if v.recipe == nil || v.shoppingService == nil {
		return nil
	}

	err := v.shoppingService.Add(v.recipe.Info(), v.checklist.CheckedItems())
	if err != nil {
		if errors.Is(err, domain.ErrNothingChecked) {
			v.flash = "追加する材料を選択してください"
		} else {
			v.flash = err.Error()
		}
		v.flashE = true
		return v.expireFlash()
	}

	v.flash = "買い物リストに追加しました！"
	v.flashE = false
	v.checklist.ClearChecks()
	return v.expireFlash()
}

// expireFlash schedules the flash message to clear.
func (v *View) expireFlash() tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return messages.FlashExpired{}
	})
}

// Flash returns the transient status message, if any.
func (v *View) Flash() string {
	return v.flash
}

// View renders the detail view.
func (v *View) View() string {
	if v.recipe == nil {
		return v.styles.Muted.Render("レシピが見つかりません")
	}

	name := v.recipe.Name
	if v.favService != nil && v.favService.IsFavorite(v.recipe.ID) {
		name = "♥ " + name
	}

	sections := []string{
		v.styles.Title.Render(name),
		v.styles.Muted.Render(v.recipe.CookingTime + " · " + v.recipe.Servings),
		"",
		v.styles.Normal.Render(v.recipe.Description),
		"",
		v.styles.Subtitle.Render("材料"),
		v.renderIngredients(),
		"",
		v.styles.Subtitle.Render("作り方"),
		v.renderInstructions(),
		"",
	}

	if v.flash != "" {
		if v.flashE {
			sections = append(sections, v.styles.Error.Render(v.flash))
		} else {
			sections = append(sections, v.styles.Success.Render(v.flash))
		}
	} else {
		sections = append(sections, v.renderHints())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderIngredients renders grouped subheadings above the checklist.
func (v *View) renderIngredients() string {
	// Subheadings are rendered inline ahead of their group's first item
	// by walking groups alongside the flattened checklist.
	out := ""
	lineIdx := 0
	checklistView := v.checklist.View()
	lines := strings.Split(checklistView, "\n")

	for _, group := range v.recipe.Ingredients {
		if group.SubHeading != "" {
			out += v.styles.Subtitle.Render("  "+group.SubHeading) + "\n"
		}
		for range group.Items {
			if lineIdx < len(lines) {
				out += lines[lineIdx] + "\n"
			}
			lineIdx++
		}
	}
	if out == "" {
		return checklistView
	}
	return out
}

// renderInstructions renders the numbered step list.
func (v *View) renderInstructions() string {
	out := ""
	for i, step := range v.recipe.Instructions {
		out += v.styles.Normal.Render(strconv.Itoa(i+1)+". "+step) + "\n"
	}
	return out
}

// renderHints renders the keybinding hints line.
func (v *View) renderHints() string {
	return v.styles.Help.Render("[space] チェック  [a] 買い物リストへ  [f] お気に入り  [esc] 戻る")
}
