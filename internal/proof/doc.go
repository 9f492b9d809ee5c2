// Package proof derives the proposition DAG that backs every placement the
// solver makes.
//
// Derive computes, for one board state, the full set of axioms (given
// values), eliminations, per-cell domain lemmas, per-(house,value) range
// lemmas, and candidates. Higher-order eliminations (naked/hidden pairs,
// pointing, claiming) are added by a fixed-point loop that recomputes
// lemmas and ranges until a pass adds nothing new.
//
// DETERMINISM: the derivation is a pure function of the board, and its
// output ordering is fixed — axioms and lemmas row-major, range lemmas in
// house enumeration x value order, eliminations in derivation order. Every
// grouping that would otherwise iterate a Go map carries an ordered key
// slice beside it. Golden tests and the first-derived-reason-wins dedup
// policy both depend on this.
//
// IDENTITY: propositions are deduplicated and traversed by canonical
// identity (Key), never by pointer. A Theorem's identity excludes its rule
// name; an Elimination's identity excludes its citing house and premises.
package proof
