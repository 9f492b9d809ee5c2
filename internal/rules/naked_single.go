package rules

import (
	"github.com/roach88/sudologue/internal/board"
	"github.com/roach88/sudologue/internal/proof"
)

// NakedSingle places a value when a cell's own pseudo-house leaves exactly
// one value with a surviving range. The premises are the zero-candidate
// ranges for the excluded values — each of which traces to the
// eliminations that emptied it — or the surviving range itself when
// nothing was excluded.
type NakedSingle struct{}

// Name implements Rule.
func (NakedSingle) Name() string { return "naked single" }

// Apply implements Rule.
func (ns NakedSingle) Apply(d *proof.Derivation) []*proof.Theorem {
	groups := map[int][]*proof.RangeLemma{}
	var order []int
	for _, rl := range d.RangeLemmas {
		if rl.House.Kind != board.KindCell {
			continue
		}
		if _, ok := groups[rl.House.Index]; !ok {
			order = append(order, rl.House.Index)
		}
		groups[rl.House.Index] = append(groups[rl.House.Index], rl)
	}

	var results []*proof.Theorem
	for _, idx := range order {
		ranges := groups[idx]

		var chosen *proof.RangeLemma
		survivors := 0
		for _, rl := range ranges {
			if len(rl.Cells) > 0 {
				survivors++
				chosen = rl
			}
		}
		if survivors != 1 {
			continue
		}

		var premises []proof.Proposition
		for _, rl := range ranges {
			if len(rl.Cells) == 0 {
				premises = append(premises, rl)
			}
		}
		if len(premises) == 0 {
			premises = []proof.Proposition{chosen}
		}

		results = append(results, &proof.Theorem{
			Cell:    chosen.Cells[0],
			Value:   chosen.Value,
			Rule:    ns.Name(),
			Because: premises,
		})
	}
	return results
}
