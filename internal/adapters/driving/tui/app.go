package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/keymap"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/messages"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/styles"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/views/detail"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/views/favorites"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/views/search"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/views/shopping"
	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles for the active theme.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// searchView is the query form, results, and history.
	searchView *search.View

	// detailView shows one recipe with checkable ingredients.
	detailView *detail.View

	// favoritesView lists liked recipes.
	favoritesView *favorites.View

	// shoppingView shows the shopping list.
	shoppingView *shopping.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// theme is the active theme preference.
	theme domain.Theme

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	theme := ports.Preferences.Theme()
	s := styles.NewStyles(styles.ThemeFor(theme))
	km := keymap.DefaultKeyMap()

	searchView := search.NewView(s, km, ports.Search, ports.Favorites, ports.Preferences)
	searchView.Reset()

	app := &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		searchView:    searchView,
		detailView:    detail.NewView(s, km, ports.Favorites, ports.Shopping),
		favoritesView: favorites.NewView(s, km, ports.Favorites),
		shoppingView:  shopping.NewView(s, km, ports.Shopping),
		currentView:   messages.ViewSearch,
		theme:         theme,
	}
	return app, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("Reshipi - レシピ提案"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.detailView.SetDimensions(msg.Width, msg.Height)
		a.favoritesView.SetDimensions(msg.Width, msg.Height)
		a.shoppingView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.SearchCompleted:
		a.err = msg.Err
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		return a, a.switchView(msg.View)

	case messages.RecipeSelected:
		recipe := a.ports.Search.FindRecipe(msg.RecipeID)
		a.detailView.SetRecipe(recipe, msg.Origin)
		a.currentView = messages.ViewDetail
		return a, a.detailView.Init()

	case messages.ThemeChanged:
		a.applyTheme(msg.Theme)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (ticks etc.) to the active view.
	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewFavorites:
		a.favoritesView, cmd = a.favoritesView.Update(msg)
	case messages.ViewShopping:
		a.shoppingView, cmd = a.shoppingView.Update(msg)
	}
	return a, cmd
}

// handleKeyMsg routes keyboard input: a few global bindings, then the
// active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keyStr == "ctrl+c" {
		return a, tea.Quit
	}

	// Tab switching and theme cycling stay out of the way while a text
	// field is being edited.
	if !a.isEditing() {
		switch {
		case keymap.Matches(keyStr, a.keymap.TabSearch):
			return a, a.switchView(messages.ViewSearch)
		case keymap.Matches(keyStr, a.keymap.TabFavorites):
			return a, a.switchView(messages.ViewFavorites)
		case keymap.Matches(keyStr, a.keymap.TabShopping):
			return a, a.switchView(messages.ViewShopping)
		case keymap.Matches(keyStr, a.keymap.Theme):
			a.cycleTheme()
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewFavorites:
		a.favoritesView, cmd = a.favoritesView.Update(msg)
	case messages.ViewShopping:
		a.shoppingView, cmd = a.shoppingView.Update(msg)
	}
	return a, cmd
}

// isEditing reports whether a text input currently captures keystrokes.
func (a *App) isEditing() bool {
	return a.currentView == messages.ViewSearch && a.searchView.IsEditing()
}

// switchView activates a view, refreshing derived content.
func (a *App) switchView(view messages.ViewType) tea.Cmd {
	a.currentView = view
	switch view {
	case messages.ViewFavorites:
		return a.favoritesView.Init()
	case messages.ViewShopping:
		return a.shoppingView.Init()
	case messages.ViewSearch, messages.ViewDetail:
		// Search keeps its mode; detail keeps its recipe.
	}
	return nil
}

// cycleTheme flips between dark and light and persists the choice.
func (a *App) cycleTheme() {
	next := domain.ThemeDark
	if a.theme == domain.ThemeDark || a.theme == domain.ThemeSystem {
		next = domain.ThemeLight
	}
	a.ports.Preferences.SaveTheme(next)
	a.applyTheme(next)
}

// applyTheme rebuilds styles for a theme and pushes them to every view.
func (a *App) applyTheme(theme domain.Theme) {
	if !theme.IsValid() {
		return
	}
	a.theme = theme
	a.styles = styles.NewStyles(styles.ThemeFor(theme))
	a.searchView.SetStyles(a.styles)
	a.detailView.SetStyles(a.styles)
	a.favoritesView.SetStyles(a.styles)
	a.shoppingView.SetStyles(a.styles)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewSearch:
		body = a.searchView.View()
	case messages.ViewDetail:
		body = a.detailView.View()
	case messages.ViewFavorites:
		body = a.favoritesView.View()
	case messages.ViewShopping:
		body = a.shoppingView.View()
	default:
		body = a.searchView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, a.renderTabs(), "", body)
}

// renderTabs renders the tab bar with favorite and shopping badges.
func (a *App) renderTabs() string {
	tabs := []struct {
		view  messages.ViewType
		label string
	}{
		{messages.ViewSearch, "1 検索"},
		{messages.ViewFavorites, "2 お気に入り" + a.badge(a.ports.Favorites.Count())},
		{messages.ViewShopping, "3 買い物リスト" + a.badge(a.ports.Shopping.Count())},
	}

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := a.styles.Tab
		active := a.currentView == t.view ||
			(a.currentView == messages.ViewDetail && a.detailView.Origin() == t.view)
		if active {
			style = a.styles.TabActive
		}
		parts = append(parts, style.Render(t.label))
	}
	return strings.Join(parts, " ")
}

// badge formats a non-zero count marker.
func (a *App) badge(count int) string {
	if count == 0 {
		return ""
	}
	return " (" + strconv.Itoa(count) + ")"
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Theme returns the active theme preference.
func (a *App) Theme() domain.Theme {
	return a.theme
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
	a.favoritesView.SetDimensions(width, height)
	a.shoppingView.SetDimensions(width, height)
}
