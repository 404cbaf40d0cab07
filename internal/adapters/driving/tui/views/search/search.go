// Package search provides the query form, result cards, and search
// history for the TUI.
package search

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/components/cardlist"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/components/status"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/keymap"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/messages"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/styles"
	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driving"
)

// mode is the sub-screen within the search view.
type mode int

const (
	modeForm mode = iota
	modeResults
	modeHistory
)

// field identifies a focusable form element.
type field int

const (
	fieldIngredients field = iota
	fieldServings
	fieldMealPrep
	fieldAllergies
	fieldChips
	fieldCount
)

// View represents the search view: the query form, the paginated
// result cards, and the history list.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	list      *cardlist.RecipeList
	statusbar *status.Bar

	searchService driving.SearchService
	favService    driving.FavoritesService
	prefService   driving.PreferencesService
	ctx           context.Context

	mode  mode
	focus field

	ingredients textinput.Model
	servings    textinput.Model
	allergies   textinput.Model
	mealPrep    bool

	chips     []string
	chipIndex int

	historyIndex int

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
	favService driving.FavoritesService,
	prefService driving.PreferencesService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ingredients := textinput.New()
	ingredients.Placeholder = "例: 鶏肉、玉ねぎ"
	ingredients.CharLimit = 256
	ingredients.Width = 40
	ingredients.Focus()

	servings := textinput.New()
	servings.Placeholder = "2"
	servings.CharLimit = 2
	servings.Width = 4

	allergies := textinput.New()
	allergies.Placeholder = "例: えび、かに"
	allergies.CharLimit = 256
	allergies.Width = 40

	v := &View{
		styles:        s,
		keymap:        km,
		list:          cardlist.NewRecipeList(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		favService:    favService,
		prefService:   prefService,
		ctx:           context.Background(),
		ingredients:   ingredients,
		servings:      servings,
		allergies:     allergies,
		width:         80,
		height:        24,
	}
	if favService != nil {
		v.list.SetFavoriteCheck(favService.IsFavorite)
	}
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Reset seeds the form for a fresh session: suggestion chips from
// history, the allergy field from the saved preference.
func (v *View) Reset() {
	v.mode = modeForm
	v.focus = fieldIngredients
	v.ingredients.Focus()
	v.servings.Blur()
	v.allergies.Blur()
	v.servings.SetValue("2")
	if v.searchService != nil {
		v.chips = v.searchService.Suggestions()
	}
	v.chipIndex = 0
	if v.prefService != nil {
		v.allergies.SetValue(v.prefService.Allergies())
	}
}

// IsEditing reports whether a text field currently has focus, so the
// app knows to withhold global single-letter keys.
func (v *View) IsEditing() bool {
	return v.mode == modeForm &&
		(v.focus == fieldIngredients || v.focus == fieldServings || v.focus == fieldAllergies)
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// State returns the interaction state for inspection.
func (v *View) State() status.State {
	return v.statusbar.State()
}

// SetStyles swaps the style set, for live theme changes.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
	v.list = cardlist.NewRecipeList(s)
	if v.favService != nil {
		v.list.SetFavoriteCheck(v.favService.IsFavorite)
	}
	v.statusbar.SetStyles(s)
	v.syncResults()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetDimensions(width, height-6)
	v.statusbar.SetWidth(width)
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateFailure)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

// handleKeyMsg routes keyboard input by mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// A pending search ignores everything; completion re-enables input.
	if v.statusbar.State() == status.StatePending {
		return v, nil
	}

	switch v.mode {
	case modeForm:
		return v.handleFormKey(msg)
	case modeResults:
		return v.handleResultsKey(msg)
	case modeHistory:
		return v.handleHistoryKey(msg)
	}
	return v, nil
}

// handleFormKey processes keys while the query form is shown.
func (v *View) handleFormKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keyStr == "tab" || msg.Type == tea.KeyDown:
		v.setFocus((v.focus + 1) % fieldCount)
		return v, nil

	case keyStr == "shift+tab" || msg.Type == tea.KeyUp:
		v.setFocus((v.focus + fieldCount - 1) % fieldCount)
		return v, nil

	case keymap.Matches(keyStr, v.keymap.History):
		if len(v.history()) > 0 {
			v.mode = modeHistory
			v.historyIndex = 0
		}
		return v, nil

	// The saved allergy preference only changes on this explicit action;
	// submitting a search leaves it untouched.
	case keymap.Matches(keyStr, v.keymap.SaveAllergies) && v.focus == fieldAllergies:
		if v.prefService != nil {
			v.prefService.SaveAllergies(v.allergies.Value())
			v.statusbar.SetState(status.StateSuccess)
			v.statusbar.SetMessage("アレルギー設定を保存しました")
		}
		return v, nil
	}

	switch v.focus {
	case fieldMealPrep:
		if msg.Type == tea.KeyEnter || keyStr == " " {
			v.mealPrep = !v.mealPrep
			return v, nil
		}

	case fieldChips:
		switch {
		case msg.Type == tea.KeyLeft:
			if v.chipIndex > 0 {
				v.chipIndex--
			}
			return v, nil
		case msg.Type == tea.KeyRight:
			if v.chipIndex < len(v.chips)-1 {
				v.chipIndex++
			}
			return v, nil
		case msg.Type == tea.KeyEnter || keyStr == " ":
			if v.chipIndex >= 0 && v.chipIndex < len(v.chips) {
				joined := domain.AppendIngredient(v.ingredients.Value(), v.chips[v.chipIndex])
				v.ingredients.SetValue(joined)
			}
			return v, nil
		}

	case fieldIngredients, fieldServings, fieldAllergies:
		if msg.Type == tea.KeyEnter {
			return v, v.submit()
		}
		var cmd tea.Cmd
		switch v.focus {
		case fieldIngredients:
			v.ingredients, cmd = v.ingredients.Update(msg)
		case fieldServings:
			v.servings, cmd = v.servings.Update(msg)
		case fieldAllergies:
			v.allergies, cmd = v.allergies.Update(msg)
		}
		return v, cmd
	}

	return v, nil
}

// handleResultsKey processes keys while result cards are shown.
func (v *View) handleResultsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case msg.Type == tea.KeyEsc, keymap.Matches(keyStr, v.keymap.NewSearch):
		v.mode = modeForm
		v.setFocus(fieldIngredients)
		v.statusbar.SetState(status.StateIdle)
		v.statusbar.SetMessage("")
		return v, nil

	case keymap.Matches(keyStr, v.keymap.History):
		if len(v.history()) > 0 {
			v.mode = modeHistory
			v.historyIndex = 0
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		v.list.MoveDown()
		return v, nil

	case msg.Type == tea.KeyLeft:
		if v.searchService != nil && v.searchService.PrevPage() {
			v.syncResults()
		}
		return v, nil

	case msg.Type == tea.KeyRight:
		if v.searchService != nil && v.searchService.NextPage() {
			v.syncResults()
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Like):
		if recipe := v.list.SelectedRecipe(); recipe != nil && v.favService != nil {
			v.favService.Toggle(recipe.ID)
		}
		return v, nil

	case msg.Type == tea.KeyEnter:
		if recipe := v.list.SelectedRecipe(); recipe != nil {
			id := recipe.ID
			return v, func() tea.Msg {
				return messages.RecipeSelected{RecipeID: id, Origin: messages.ViewSearch}
			}
		}
		return v, nil
	}

	return v, nil
}

// handleHistoryKey processes keys while the history list is shown.
func (v *View) handleHistoryKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	history := v.history()
	keyStr := msg.String()

	switch {
	case msg.Type == tea.KeyEsc:
		v.mode = modeForm
		v.setFocus(fieldIngredients)
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Up):
		if v.historyIndex > 0 {
			v.historyIndex--
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.historyIndex < len(history)-1 {
			v.historyIndex++
		}
		return v, nil

	case msg.Type == tea.KeyEnter:
		if v.historyIndex < 0 || v.historyIndex >= len(history) {
			return v, nil
		}
		item, err := v.searchService.Replay(history[v.historyIndex].ID)
		if err != nil {
			v.err = err
			v.statusbar.SetState(status.StateFailure)
			v.statusbar.SetMessage(err.Error())
			return v, nil
		}
		v.restoreForm(item.Query)
		v.mode = modeResults
		v.statusbar.SetState(status.StateSuccess)
		v.statusbar.SetMessage("")
		v.syncResults()
		return v, nil
	}

	return v, nil
}

// submit validates the form and launches the search.
func (v *View) submit() tea.Cmd {
	query := domain.Query{
		Ingredients: v.ingredients.Value(),
		Servings:    strings.TrimSpace(v.servings.Value()),
		MealPrep:    v.mealPrep,
		Allergies:   v.allergies.Value(),
	}.Normalize()

	if err := query.Validate(); err != nil {
		v.err = err
		v.statusbar.SetState(status.StateFailure)
		v.statusbar.SetMessage("食材を入力してください")
		return nil
	}
	if query.Servings == "" {
		query.Servings = "2"
	}

	v.err = nil
	v.statusbar.SetState(status.StatePending)
	v.statusbar.SetMessage("")
	return v.performSearch(query)
}

// performSearch runs the search off the update loop.
func (v *View) performSearch(query domain.Query) tea.Cmd {
	return func() tea.Msg {
		if v.searchService == nil {
			return messages.SearchCompleted{Err: ErrNoSearchService}
		}
		item, err := v.searchService.Submit(v.ctx, query)
		if err != nil {
			return messages.SearchCompleted{Err: err}
		}
		return messages.SearchCompleted{Item: item}
	}
}

// handleSearchCompleted applies the outcome of one search.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateFailure)
		v.statusbar.SetMessage("レシピの取得中にエラーが発生しました。時間をおいて再試行してください。")
		v.mode = modeForm
		return
	}

	v.err = nil
	v.mode = modeResults
	v.statusbar.SetState(status.StateSuccess)
	v.statusbar.SetMessage("")
	if v.searchService != nil {
		v.chips = v.searchService.Suggestions()
	}
	v.syncResults()
}

// syncResults refreshes the card list from the current history item.
func (v *View) syncResults() {
	if v.searchService == nil {
		return
	}
	current := v.searchService.Current()
	if current == nil {
		v.list.SetRecipes(nil)
		v.statusbar.SetResultCount(0)
		return
	}
	recipes := current.CurrentRecipes()
	v.list.SetRecipes(recipes)
	v.statusbar.SetResultCount(len(recipes))
}

// restoreForm fills the form from a stored query.
func (v *View) restoreForm(query domain.Query) {
	v.ingredients.SetValue(query.Ingredients)
	v.servings.SetValue(query.Servings)
	v.mealPrep = query.MealPrep
	v.allergies.SetValue(query.Allergies)
}

// setFocus moves form focus, managing textinput focus state.
func (v *View) setFocus(f field) {
	v.focus = f
	v.ingredients.Blur()
	v.servings.Blur()
	v.allergies.Blur()
	switch f {
	case fieldIngredients:
		v.ingredients.Focus()
	case fieldServings:
		v.servings.Focus()
	case fieldAllergies:
		v.allergies.Focus()
	}
}

// history returns stored searches, newest first.
func (v *View) history() []*domain.HistoryItem {
	if v.searchService == nil {
		return nil
	}
	items := v.searchService.History()
	out := make([]*domain.HistoryItem, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	switch v.mode {
	case modeResults:
		return v.viewResults()
	case modeHistory:
		return v.viewHistory()
	default:
		return v.viewForm()
	}
}

// viewForm renders the query form.
func (v *View) viewForm() string {
	sections := []string{
		v.styles.Title.Render("今日のご飯、何作ろう？"),
		"",
		v.renderField(fieldIngredients, "食材", v.styles.InputField.Render(v.ingredients.View())),
		v.renderField(fieldServings, "人数", v.styles.InputField.Render(v.servings.View())+v.styles.Muted.Render(" 人前")),
		v.renderField(fieldMealPrep, "作り置き", v.renderToggle()),
		v.renderField(fieldAllergies, "アレルギー/苦手 (ctrl+s で保存)", v.styles.InputField.Render(v.allergies.View())),
		v.renderField(fieldChips, "候補", v.renderChips()),
		"",
		v.statusbar.View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderField renders one labelled form row with a focus marker.
func (v *View) renderField(f field, label, content string) string {
	marker := "  "
	labelStyle := v.styles.Muted
	if v.focus == f {
		marker = v.styles.Title.Render("> ")
		labelStyle = v.styles.Subtitle
	}
	return marker + labelStyle.Render(label) + "\n  " + content
}

// renderToggle renders the meal-prep checkbox.
func (v *View) renderToggle() string {
	box := "[ ]"
	if v.mealPrep {
		box = "[x]"
	}
	return v.styles.Normal.Render(box + " 作り置きしやすいレシピを優先")
}

// renderChips renders the suggestion chip row.
func (v *View) renderChips() string {
	if len(v.chips) == 0 {
		return v.styles.Muted.Render("(候補なし)")
	}

	parts := make([]string, 0, len(v.chips))
	for i, chip := range v.chips {
		style := v.styles.Chip
		if v.focus == fieldChips && i == v.chipIndex {
			style = v.styles.ChipSelected
		}
		parts = append(parts, style.Render(chip))
	}
	return strings.Join(parts, " ")
}

// viewResults renders the result cards with pagination info.
func (v *View) viewResults() string {
	current := v.searchService.Current()
	if current == nil {
		return v.styles.Muted.Render("結果がありません")
	}

	header := v.styles.Title.Render("「" + current.Query.Ingredients + "」のレシピ")
	pager := ""
	if current.PageCount() > 1 {
		pager = v.styles.Muted.Render(
			"ページ " + strconv.Itoa(current.CurrentPage+1) + "/" + strconv.Itoa(current.PageCount()) + "  ←/→ でページ切替",
		)
	}

	v.statusbar.SetHints(v.keymap.ResultsHelp())
	sections := []string{header}
	if pager != "" {
		sections = append(sections, pager)
	}
	sections = append(sections, "", v.list.View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewHistory renders the past-search list, newest first.
func (v *View) viewHistory() string {
	history := v.history()
	lines := []string{v.styles.Title.Render("検索履歴"), ""}
	if len(history) == 0 {
		lines = append(lines, v.styles.Muted.Render("履歴はまだありません"))
	}
	for i, item := range history {
		meta := item.Query.Servings + "人分"
		if item.Query.MealPrep {
			meta += "  作り置き"
		}
		if item.Query.Allergies != "" {
			meta += "  除外: " + item.Query.Allergies
		}
		line := item.Query.Ingredients + v.styles.Muted.Render("  "+meta)
		if i == v.historyIndex {
			lines = append(lines, v.styles.Selected.Render("> "+line))
		} else {
			lines = append(lines, "  "+v.styles.Normal.Render(line))
		}
	}
	lines = append(lines, "", v.styles.Help.Render("[enter] 再表示  [esc] 戻る"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
