package rules

import (
	"github.com/roach88/sudologue/internal/board"
	"github.com/roach88/sudologue/internal/proof"
)

// HiddenSingle places a value when some house leaves it exactly one
// surviving cell. Cell pseudo-houses are skipped — those belong to
// NakedSingle. The same (cell, value) can be hidden in several houses at
// once (e.g. forced by both its row and its box); at most one theorem is
// emitted per placement.
type HiddenSingle struct{}

// Name implements Rule.
func (HiddenSingle) Name() string { return "hidden single" }

// Apply implements Rule.
func (hs HiddenSingle) Apply(d *proof.Derivation) []*proof.Theorem {
	type placement struct {
		cell  board.Cell
		value int
	}
	seen := map[placement]bool{}

	var results []*proof.Theorem
	for _, rl := range d.RangeLemmas {
		if rl.House.Kind == board.KindCell {
			continue
		}
		if len(rl.Cells) != 1 {
			continue
		}
		target := rl.Cells[0]
		key := placement{target, rl.Value}
		if seen[key] {
			continue
		}
		seen[key] = true
		results = append(results, &proof.Theorem{
			Cell:    target,
			Value:   rl.Value,
			Rule:    hs.Name(),
			Because: []proof.Proposition{rl},
		})
	}
	return results
}
