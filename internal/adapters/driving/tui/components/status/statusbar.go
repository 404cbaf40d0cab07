// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/keymap"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/styles"
)

// State represents the current interaction state for display.
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateSuccess State = "success"
	StateFailure State = "failure"
)

// Bar displays the interaction state, transient messages, and
// keybinding hints.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	message     string
	resultCount int
	width       int
	hints       []key.Binding
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateIdle,
		width:  80,
	}
}

// Init initialises the status bar.
func (b *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (b *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return b, nil
}

// SetState sets the interaction state.
func (b *Bar) SetState(state State) {
	b.state = state
}

// State returns the interaction state.
func (b *Bar) State() State {
	return b.state
}

// SetMessage sets the message shown on the left side.
func (b *Bar) SetMessage(message string) {
	b.message = message
}

// SetResultCount sets the result count shown while idle.
func (b *Bar) SetResultCount(count int) {
	b.resultCount = count
}

// SetHints sets the keybinding hints shown on the right side.
func (b *Bar) SetHints(hints []key.Binding) {
	b.hints = hints
}

// SetStyles swaps the style set, for live theme changes.
func (b *Bar) SetStyles(s *styles.Styles) {
	b.styles = s
}

// SetWidth sets the bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	padding := b.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state or message.
func (b *Bar) renderLeft() string {
	switch b.state {
	case StatePending:
		return b.styles.Muted.Render("レシピを探しています...")
	case StateFailure:
		if b.message != "" {
			return b.styles.Error.Render(b.message)
		}
		return b.styles.Error.Render("エラーが発生しました")
	case StateSuccess:
		if b.message != "" {
			return b.styles.Success.Render(b.message)
		}
		if b.resultCount > 0 {
			return b.styles.Normal.Render(fmt.Sprintf("%d件のレシピ", b.resultCount))
		}
		return b.styles.Muted.Render("Ready")
	case StateIdle:
		if b.message != "" {
			return b.styles.Normal.Render(b.message)
		}
		return b.styles.Muted.Render("Ready")
	}
	return b.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (b *Bar) renderRight() string {
	hints := b.hints
	if hints == nil {
		hints = b.keymap.ShortHelp()
	}

	parts := make([]string, 0, len(hints))
	for _, binding := range hints {
		help := binding.Help()
		if help.Key == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("[%s] %s", help.Key, help.Desc))
	}
	return b.styles.Help.Render(strings.Join(parts, "  "))
}
