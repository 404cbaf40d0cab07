// Package sqlite provides the durable StateStore backed by a local
// SQLite database. Each persisted collection is one JSON document in
// the app_state table; schema changes go through versioned migrations.
package sqlite
