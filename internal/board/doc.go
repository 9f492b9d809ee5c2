// Package board provides the immutable sudoku grid model and the shared
// house/peer geometry tables.
//
// Geometry (houses and peers) is computed once per board size and treated
// as read-only shared data afterwards, so it is safe to share across
// concurrent solves. House enumeration order is fixed — rows, columns,
// boxes, then single-cell pseudo-houses — and the proof engine's
// deterministic output depends on it.
package board
