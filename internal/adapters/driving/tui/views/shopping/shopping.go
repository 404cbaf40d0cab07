// Package shopping provides the shopping-list view for the TUI.
package shopping

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/keymap"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/messages"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/styles"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driving"
)

// flashDuration is how long transient confirmations stay visible.
const flashDuration = 2 * time.Second

// View shows the shopping list grouped by recipe.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	shoppingService driving.ShoppingListService

	selected int
	flash    string
	flashE   bool

	width  int
	height int
}

// NewView creates a new shopping list view.
func NewView(s *styles.Styles, km *keymap.KeyMap, shoppingService driving.ShoppingListService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:          s,
		keymap:          km,
		shoppingService: shoppingService,
		width:           80,
		height:          24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	v.clampSelection()
	return nil
}

// SetStyles swaps the style set, for live theme changes.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// SelectedIndex returns the cursor position.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Flash returns the transient status message, if any.
func (v *View) Flash() string {
	return v.flash
}

// Update handles messages for the shopping view.
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
	if v.shoppingService == nil {
		return v, nil
	}
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.selected < v.shoppingService.Count()-1 {
			v.selected++
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Remove):
		entries := v.shoppingService.Entries()
		if v.selected >= 0 && v.selected < len(entries) {
			v.shoppingService.Remove(entries[v.selected].RecipeInfo.ID)
			v.clampSelection()
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Copy):
		if v.shoppingService.Count() == 0 {
			return v, nil
		}
		if err := v.shoppingService.CopyToClipboard(); err != nil {
			v.flash = "コピーできませんでした: " + err.Error()
			v.flashE = true
		} else {
			v.flash = "クリップボードにコピーしました"
			v.flashE = false
		}
		return v, v.expireFlash()
	}

	return v, nil
}

// clampSelection keeps the cursor inside the entry list after removals.
func (v *View) clampSelection() {
	if v.shoppingService == nil {
		return
	}
	if count := v.shoppingService.Count(); v.selected >= count {
		v.selected = count - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
}

// expireFlash schedules the flash message to clear.
func (v *View) expireFlash() tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return messages.FlashExpired{}
	})
}

// View renders the shopping list.
func (v *View) View() string {
	header := v.styles.Title.Render("買い物リスト")

	if v.shoppingService == nil || v.shoppingService.Count() == 0 {
		empty := v.styles.Muted.Render("リストは空です。レシピ詳細で材料をチェックして追加してください。")
		return lipgloss.JoinVertical(lipgloss.Left, header, "", empty)
	}

	sections := []string{header, ""}
	for i, entry := range v.shoppingService.Entries() {
		name := "■ " + entry.RecipeInfo.Name
		if i == v.selected {
			sections = append(sections, v.styles.Selected.Render(name))
		} else {
			sections = append(sections, v.styles.Subtitle.Render(name))
		}
		for _, item := range entry.Items {
			sections = append(sections, v.styles.Normal.Render("  - "+item))
		}
		sections = append(sections, "")
	}

	if v.flash != "" {
		if v.flashE {
			sections = append(sections, v.styles.Error.Render(v.flash))
		} else {
			sections = append(sections, v.styles.Success.Render(v.flash))
		}
	} else {
		sections = append(sections, v.styles.Help.Render("[c] コピー  [x] 削除"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
