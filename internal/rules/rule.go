// Package rules provides the theorem-producing strategies the solver
// queries, in caller-chosen priority order.
//
// A rule is stateless and read-only over a derivation: it never mutates
// the board and never emits a theorem whose cell is filled or whose value
// lies outside the proven domain/range. Theorems are returned in discovery
// order — the solver takes the first unless a scorer is configured.
package rules

import "github.com/roach88/sudologue/internal/proof"

// Rule is the strategy protocol the solver consumes.
type Rule interface {
	// Name identifies the rule in theorems and narration, e.g. "naked single".
	Name() string

	// Apply scans a derivation and returns fully proven placements in
	// discovery order.
	Apply(d *proof.Derivation) []*proof.Theorem
}
