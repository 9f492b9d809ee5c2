package proof

import (
	"fmt"
	"strings"

	"github.com/roach88/sudologue/internal/board"
)

// Proposition is the closed sum of proof DAG node kinds: Axiom,
// Elimination, Lemma, RangeLemma, Candidate, and Theorem. The variant set
// is fixed and exhaustively matched (identity, traversal, rendering), so
// the interface is sealed.
//
// All propositions are immutable once constructed. Equality is semantic,
// via Key — never pointer identity: two independently constructed nodes
// with the same content are the same proposition.
type Proposition interface {
	// Premises returns the cited justifications, forming the DAG edges.
	// Axioms return nil.
	Premises() []Proposition

	fmt.Stringer
	isProposition()
}

// Axiom is a given value observed on the board. No premises.
type Axiom struct {
	Cell  board.Cell
	Value int
}

func (a *Axiom) Premises() []Proposition { return nil }
func (a *Axiom) isProposition()          {}

func (a *Axiom) String() string {
	return fmt.Sprintf("%s = %d", a.Cell, a.Value)
}

// Elimination asserts that a cell cannot contain a value, citing a house
// and the premises that prove it (an axiom for direct eliminations; lemmas
// or range lemmas for pair/pointing/claiming eliminations).
type Elimination struct {
	Cell    board.Cell
	Value   int
	House   *board.House
	Because []Proposition
}

func (e *Elimination) Premises() []Proposition { return e.Because }
func (e *Elimination) isProposition()          {}

func (e *Elimination) String() string {
	return fmt.Sprintf("%s ≠ %d", e.Cell, e.Value)
}

// Lemma is the surviving candidate set for a cell after applying all known
// eliminations to the full value range. Domain is sorted ascending.
type Lemma struct {
	Cell       board.Cell
	Domain     []int
	Eliminated []*Elimination
}

func (l *Lemma) Premises() []Proposition {
	out := make([]Proposition, len(l.Eliminated))
	for i, e := range l.Eliminated {
		out[i] = e
	}
	return out
}

func (l *Lemma) isProposition() {}

func (l *Lemma) String() string {
	parts := make([]string, len(l.Domain))
	for i, v := range l.Domain {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("domain of %s = {%s}", l.Cell, strings.Join(parts, ", "))
}

// RangeLemma is the surviving candidate cells for a value within a house.
// Eliminated holds the eliminations that removed the other cells from
// contention.
type RangeLemma struct {
	House      *board.House
	Value      int
	Cells      []board.Cell
	Eliminated []*Elimination
}

func (r *RangeLemma) Premises() []Proposition {
	out := make([]Proposition, len(r.Eliminated))
	for i, e := range r.Eliminated {
		out[i] = e
	}
	return out
}

func (r *RangeLemma) isProposition() {}

func (r *RangeLemma) String() string {
	parts := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		parts[i] = c.String()
	}
	return fmt.Sprintf("cells for %d in %s = {%s}", r.Value, r.House, strings.Join(parts, ", "))
}

// Candidate restates one value of a lemma's domain as an individual
// (cell, value) fact, citing the lemma.
type Candidate struct {
	Cell   board.Cell
	Value  int
	Source *Lemma
}

func (c *Candidate) Premises() []Proposition { return []Proposition{c.Source} }
func (c *Candidate) isProposition()          {}

func (c *Candidate) String() string {
	return fmt.Sprintf("candidate %d at %s", c.Value, c.Cell)
}

// Theorem is a proven placement. Rule names the strategy that found it;
// Because holds the lemma(s)/range lemma(s) that jointly force the
// placement. Rule is deliberately excluded from identity: two theorems
// proving the same placement via different rules are the same proposition.
type Theorem struct {
	Cell    board.Cell
	Value   int
	Rule    string
	Because []Proposition
}

func (t *Theorem) Premises() []Proposition { return t.Because }
func (t *Theorem) isProposition()          {}

func (t *Theorem) String() string {
	return fmt.Sprintf("place %d at %s", t.Value, t.Cell)
}
