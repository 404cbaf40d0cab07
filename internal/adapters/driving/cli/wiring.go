package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driven/ai/gemini"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driven/clipboard"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driven/config/file"
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driven/storage/sqlite"
	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driven"
	"github.com/reshipi-labs/reshipi-cli/internal/core/services"
	"github.com/reshipi-labs/reshipi-cli/internal/logger"
)

// newConfigStore opens the config store; a variable so tests can point
// commands at a temporary directory.
var newConfigStore = func() (driven.ConfigStore, error) {
	return file.NewConfigStore("")
}

// app bundles the wired adapters and services behind the commands.
type app struct {
	Config driven.ConfigStore
	Store  *sqlite.Store

	Search      *services.SearchService
	Favorites   *services.FavoritesService
	Shopping    *services.ShoppingListService
	Preferences *services.PreferencesService
}

// Close releases the app's resources.
func (a *app) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// buildApp wires the adapters and services for one command invocation.
// Configuration comes from ~/.reshipi/config.toml, with GEMINI_API_KEY
// from the environment or a .env file taking precedence for the key.
func buildApp(ctx context.Context) (*app, error) {
	// Fills the process environment from .env without clobbering
	// variables that are already set.
	_ = godotenv.Load()

	config, err := newConfigStore()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = config.GetString("gemini.api_key")
	}

	source, err := gemini.NewRecipeSource(gemini.Config{
		APIKey:  apiKey,
		BaseURL: config.GetString("gemini.base_url"),
		Model:   config.GetString("gemini.model"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoAPIKey) {
			return nil, fmt.Errorf(
				"no Gemini API key configured: set GEMINI_API_KEY or run `reshipi config set gemini.api_key <key>` (%s)",
				config.Path(),
			)
		}
		return nil, fmt.Errorf("creating recipe source: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return nil, fmt.Errorf("opening state store: %w", err)
	}
	logger.Debug("state store at %s", store.Path())

	state := services.LoadAppState(ctx, store)

	return &app{
		Config:      config,
		Store:       store,
		Search:      services.NewSearchService(state, store, source),
		Favorites:   services.NewFavoritesService(state, store),
		Shopping:    services.NewShoppingListService(state, store, clipboard.NewSystem()),
		Preferences: services.NewPreferencesService(state, store),
	}, nil
}
