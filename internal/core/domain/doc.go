// Package domain contains the core business types for Reshipi:
// recipes, search queries, search history, favorites, the shopping
// list, and the suggestion derivation. Domain depends on nothing
// outside the standard library and carries no I/O.
package domain
