// Package driven defines the interfaces the core depends on:
// persistence for the four app collections, the recipe completion
// service, configuration, and the system clipboard. Adapters under
// internal/adapters/driven implement these.
package driven
