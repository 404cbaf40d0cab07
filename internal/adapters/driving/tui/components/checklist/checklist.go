// Package checklist provides the checkable ingredient list for the TUI.
package checklist

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/styles"
)

// Checklist displays items with toggleable checkboxes. Checked state is
// transient: it exists only while the list is on screen.
type Checklist struct {
	items    []string
	checked  map[int]bool
	selected int
	styles   *styles.Styles
}

// NewChecklist creates a new checklist component.
func NewChecklist(s *styles.Styles) *Checklist {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Checklist{
		checked: make(map[int]bool),
		styles:  s,
	}
}

// Init initialises the checklist.
func (c *Checklist) Init() tea.Cmd {
	return nil
}

// Update handles navigation messages.
func (c *Checklist) Update(msg tea.Msg) (*Checklist, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			c.MoveUp()
		case "down", "j":
			c.MoveDown()
		}
	}
	return c, nil
}

// SetItems replaces the list contents, clearing all checks.
func (c *Checklist) SetItems(items []string) {
	c.items = items
	c.checked = make(map[int]bool)
	c.selected = 0
}

// Items returns the list contents.
func (c *Checklist) Items() []string {
	return c.items
}

// ToggleSelected flips the checkbox under the cursor.
func (c *Checklist) ToggleSelected() {
	if c.selected < 0 || c.selected >= len(c.items) {
		return
	}
	c.checked[c.selected] = !c.checked[c.selected]
}

// CheckedItems returns the checked items in list order.
func (c *Checklist) CheckedItems() []string {
	var out []string
	for i, item := range c.items {
		if c.checked[i] {
			out = append(out, item)
		}
	}
	return out
}

// CheckedIndexes returns the checked positions in list order.
func (c *Checklist) CheckedIndexes() []int {
	var out []int
	for i := range c.items {
		if c.checked[i] {
			out = append(out, i)
		}
	}
	return out
}

// SetCheckedIndexes replaces the checked positions.
func (c *Checklist) SetCheckedIndexes(indexes []int) {
	c.checked = make(map[int]bool)
	for _, i := range indexes {
		if i >= 0 && i < len(c.items) {
			c.checked[i] = true
		}
	}
}

// ClearChecks unchecks everything.
func (c *Checklist) ClearChecks() {
	c.checked = make(map[int]bool)
}

// MoveUp moves the cursor up one item.
func (c *Checklist) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// MoveDown moves the cursor down one item.
func (c *Checklist) MoveDown() {
	if c.selected < len(c.items)-1 {
		c.selected++
	}
}

// SelectedIndex returns the cursor position.
func (c *Checklist) SelectedIndex() int {
	return c.selected
}

// View renders the checklist.
func (c *Checklist) View() string {
	if len(c.items) == 0 {
		return c.styles.Muted.Render("材料がありません")
	}

	lines := make([]string, 0, len(c.items))
	for i, item := range c.items {
		box := "[ ]"
		if c.checked[i] {
			box = "[x]"
		}

		line := box + " " + item
		if i == c.selected {
			lines = append(lines, c.styles.Selected.Render(line))
		} else if c.checked[i] {
			lines = append(lines, c.styles.Success.Render(line))
		} else {
			lines = append(lines, c.styles.Normal.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}
