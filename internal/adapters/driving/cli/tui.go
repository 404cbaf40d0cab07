package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/tui/messages"
	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
	"github.com/reshipi-labs/reshipi-cli/internal/logger"
)

// tuiCmd represents the tui command. The root command runs it by
// default, so `reshipi` and `reshipi tui` are equivalent.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Reshipi.

Controls:
  1/2/3    - Switch tabs (search, favorites, shopping list)
  ↑/k, ↓/j - Navigate
  Enter    - Search / Open recipe
  f        - Like a recipe
  space, a - Check ingredients, add them to the shopping list
  t        - Toggle theme
  Esc      - Back
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery so a crash leaves a stack trace, not a broken
	// terminal.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	a, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("closing state store: %v", err)
		}
	}()

	ports := tui.NewPorts(a.Search, a.Favorites, a.Shopping, a.Preferences)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	stopWatch, err := watchConfig(a, p)
	if err != nil {
		// Hot-reload is a convenience; the TUI works without it.
		logger.Warn("config watch disabled: %v", err)
	} else {
		defer stopWatch()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

// watchConfig re-applies the theme when the config file is edited
// while the TUI is running.
func watchConfig(a *app, p *tea.Program) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors replace files on save, which would
	// drop a watch on the file itself.
	if err := watcher.Add(a.Config.Path()); err != nil {
		if err := watcher.Add(filepath.Dir(a.Config.Path())); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := a.Config.Load(); err != nil {
					logger.Warn("reloading config: %v", err)
					continue
				}
				theme := domain.Theme(a.Config.GetString("ui.theme"))
				if theme.IsValid() {
					p.Send(messages.ThemeChanged{Theme: theme})
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watch: %v", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
