// Package driving defines the interfaces through which user-facing
// adapters (TUI, CLI) drive the core: searching, favorites, the
// shopping list, and preferences.
package driving
