// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the previous view or mode.
	Back key.Binding

	// Submit sends the query form.
	Submit key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Left navigates left across chips or to the previous page.
	Left key.Binding

	// Right navigates right across chips or to the next page.
	Right key.Binding

	// Select confirms a selection.
	Select key.Binding

	// NextField moves focus to the next form field.
	NextField key.Binding

	// PrevField moves focus to the previous form field.
	PrevField key.Binding

	// Like toggles favorite membership on a recipe.
	Like key.Binding

	// Check toggles an ingredient checkbox.
	Check key.Binding

	// AddItems adds checked ingredients to the shopping list.
	AddItems key.Binding

	// Copy exports the shopping list to the clipboard.
	Copy key.Binding

	// Remove deletes a shopping list entry.
	Remove key.Binding

	// SaveAllergies persists the allergy field as the saved preference.
	SaveAllergies key.Binding

	// NewSearch returns to the query form from results.
	NewSearch key.Binding

	// History shows past searches.
	History key.Binding

	// Theme cycles the colour theme.
	Theme key.Binding

	// TabSearch switches to the search tab.
	TabSearch key.Binding

	// TabFavorites switches to the favorites tab.
	TabFavorites key.Binding

	// TabShopping switches to the shopping tab.
	TabShopping key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Like: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "like"),
		),
		Check: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "check"),
		),
		AddItems: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to list"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove"),
		),
		SaveAllergies: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save allergies"),
		),
		NewSearch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new search"),
		),
		History: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "history"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		TabSearch: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "search"),
		),
		TabFavorites: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "favorites"),
		),
		TabShopping: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "shopping"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TabSearch, k.TabFavorites, k.TabShopping, k.Quit}
}

// ResultsHelp returns keybindings for the results mode.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Like, k.Left, k.NewSearch}
}

// DetailHelp returns keybindings for the recipe detail view.
func (k *KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.Check, k.AddItems, k.Like, k.Back}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
