// Package store persists solve sessions to SQLite.
//
// A session row summarizes one solver run (puzzle, status, diagnosis);
// step rows record each placement with its rule, resulting board, and the
// content-addressed proof ID of the theorem behind it. Writes are
// transactional and idempotent per session ID.
package store
