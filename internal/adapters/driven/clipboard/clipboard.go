// Package clipboard provides the system clipboard adapter.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clipboard = (*System)(nil)

// System writes to the OS clipboard. On headless systems the
// underlying call fails and the error is surfaced to the caller.
type System struct{}

// NewSystem creates a new system clipboard.
func NewSystem() *System {
	return &System{}
}

// WriteText places text on the clipboard.
func (s *System) WriteText(text string) error {
	return clipboard.WriteAll(text)
}
