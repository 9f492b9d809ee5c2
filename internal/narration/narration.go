// Package narration renders boards and solve traces as human-readable
// text. Pure string building; the CLI and the scenario harness both
// consume it, so every function is deterministic for a given input.
package narration

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/roach88/sudologue/internal/board"
	"github.com/roach88/sudologue/internal/proof"
	"github.com/roach88/sudologue/internal/solver"
)

// FormatBoard renders a grid with box separators, '.' for empty cells:
//
//	5 3 . | . 7 .
//	6 . . | 1 9 5
//	-----+-----
//	...
func FormatBoard(b *board.Board) string {
	size := b.Size()
	box := int(math.Sqrt(float64(size)))

	var lines []string
	for r := 0; r < size; r++ {
		if r > 0 && r%box == 0 {
			segment := strings.Repeat("-", box*2+1)
			parts := make([]string, box)
			for i := range parts {
				parts[i] = segment
			}
			lines = append(lines, strings.Join(parts, "+"))
		}
		var parts []string
		for c := 0; c < size; c++ {
			if c > 0 && c%box == 0 {
				parts = append(parts, "|")
			}
			v := b.ValueAt(board.Cell{Row: r, Col: c})
			if v == 0 {
				parts = append(parts, ".")
			} else {
				parts = append(parts, fmt.Sprintf("%d", v))
			}
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

// FormatProof renders the full solve trace: initial board, one block per
// step with its proof slice at the chosen verbosity, the outcome line, and
// the final board.
func FormatProof(result *solver.SolveResult, verbosity proof.Verbosity) string {
	var lines []string

	lines = append(lines, "Initial board:")
	lines = append(lines, FormatBoard(result.Initial))
	lines = append(lines, "")

	for i, step := range result.Steps {
		thm := step.Theorem
		lines = append(lines, fmt.Sprintf("Step %d: %s [%s]", i+1, thm, thm.Rule))

		if verbosity == proof.VerbosityTerse {
			lines = append(lines, "")
			continue
		}

		inSlice := map[string]bool{}
		for _, p := range proof.SliceProof(thm, verbosity) {
			inSlice[proof.Key(p)] = true
		}

		for _, premise := range thm.Premises() {
			if !inSlice[proof.Key(premise)] {
				continue
			}
			lines = append(lines, "  "+premise.String())
			for _, sub := range premise.Premises() {
				if !inSlice[proof.Key(sub)] {
					continue
				}
				elim, ok := sub.(*proof.Elimination)
				if !ok {
					lines = append(lines, "    "+sub.String())
					continue
				}
				var reasons []proof.Proposition
				for _, reason := range elim.Premises() {
					if inSlice[proof.Key(reason)] {
						reasons = append(reasons, reason)
					}
				}
				if text := eliminationReason(elim, reasons); text != "" {
					lines = append(lines, fmt.Sprintf("    %s %s", elim, text))
				} else {
					lines = append(lines, "    "+elim.String())
				}
			}
		}
		lines = append(lines, "")
	}

	if result.Status == solver.StatusSolved {
		lines = append(lines, "Solved!")
	} else {
		lines = append(lines, "Stuck: "+result.Diagnosis)
	}

	lines = append(lines, FormatBoard(result.FinalBoard()))
	return strings.Join(lines, "\n")
}

// Narrate renders the terse per-step summary: compact initial board, one
// line per placement, and the outcome.
func Narrate(result *solver.SolveResult) string {
	var lines []string
	lines = append(lines, result.Initial.String())
	lines = append(lines, "")
	for i, step := range result.Steps {
		lines = append(lines, fmt.Sprintf("Step %d: [%s] %s", i+1, step.Theorem.Rule, step.Theorem))
	}
	lines = append(lines, "")
	if result.Status == solver.StatusSolved {
		lines = append(lines, fmt.Sprintf("Solved in %d steps.", len(result.Steps)))
	} else {
		lines = append(lines, "Stuck: "+result.Diagnosis)
	}
	return strings.Join(lines, "\n")
}

// eliminationReason explains why an elimination holds, phrased per premise
// shape: direct axiom, box/line confinement, hidden pair, naked pair, or a
// generic premise list. Returns "" when there is nothing to say.
func eliminationReason(elim *proof.Elimination, reasons []proof.Proposition) string {
	if len(reasons) == 0 {
		return ""
	}

	if len(reasons) == 1 {
		if axiom, ok := reasons[0].(*proof.Axiom); ok {
			return fmt.Sprintf("because %s in %s", axiom, elim.House)
		}
	}

	if ranges, ok := allRanges(reasons); ok {
		return rangeReason(elim, reasons, ranges)
	}
	if lemmas, ok := allLemmas(reasons); ok {
		return lemmaReason(elim, reasons, lemmas)
	}

	return "because " + joinPropositions(reasons)
}

func rangeReason(elim *proof.Elimination, reasons []proof.Proposition, ranges []*proof.RangeLemma) string {
	for _, rl := range ranges {
		if rl.Value != elim.Value {
			return "because " + joinPropositions(reasons)
		}
	}

	if len(ranges) == 1 {
		rl := ranges[0]
		if !sameHouse(rl.House, elim.House) && confinement(rl.House, elim.House) {
			return fmt.Sprintf(
				"because in %s, %d is confined to {%s} in %s, so eliminate %d from the rest of %s outside %s",
				rl.House, rl.Value, joinCells(rl.Cells), elim.House, rl.Value, elim.House, rl.House)
		}
		if !containsCell(rl.Cells, elim.Cell) {
			return fmt.Sprintf("because %s excludes %s", rl, elim.Cell)
		}
	}

	if singleHouse(ranges) && singleCellSet(ranges) {
		values := map[int]bool{}
		for _, rl := range ranges {
			values[rl.Value] = true
		}
		var sorted []int
		for v := range values {
			sorted = append(sorted, v)
		}
		sort.Ints(sorted)
		parts := make([]string, len(sorted))
		for i, v := range sorted {
			parts[i] = fmt.Sprintf("%d", v)
		}
		return fmt.Sprintf(
			"because in %s, only {%s} fit in {%s}, so other digits are eliminated from those cells",
			ranges[0].House, strings.Join(parts, ", "), joinCells(ranges[0].Cells))
	}

	return "because " + joinPropositions(reasons)
}

func lemmaReason(elim *proof.Elimination, reasons []proof.Proposition, lemmas []*proof.Lemma) string {
	for _, l := range lemmas {
		if !containsInt(l.Domain, elim.Value) {
			return "because " + joinPropositions(reasons)
		}
	}

	if domain, ok := sharedDomain(lemmas); ok && len(domain) == 2 {
		parts := make([]string, len(domain))
		for i, v := range domain {
			parts[i] = fmt.Sprintf("%d", v)
		}
		cells := make([]board.Cell, len(lemmas))
		for i, l := range lemmas {
			cells[i] = l.Cell
		}
		return fmt.Sprintf(
			"because in %s, {%s} have domain {%s}, so eliminate those digits from other cells",
			elim.House, joinCells(cells), strings.Join(parts, ", "))
	}

	return "because " + joinPropositions(reasons)
}

func allRanges(reasons []proof.Proposition) ([]*proof.RangeLemma, bool) {
	out := make([]*proof.RangeLemma, 0, len(reasons))
	for _, r := range reasons {
		rl, ok := r.(*proof.RangeLemma)
		if !ok {
			return nil, false
		}
		out = append(out, rl)
	}
	return out, true
}

func allLemmas(reasons []proof.Proposition) ([]*proof.Lemma, bool) {
	out := make([]*proof.Lemma, 0, len(reasons))
	for _, r := range reasons {
		l, ok := r.(*proof.Lemma)
		if !ok {
			return nil, false
		}
		out = append(out, l)
	}
	return out, true
}

func sameHouse(a, b *board.House) bool {
	return a.Kind == b.Kind && a.Index == b.Index
}

// confinement reports whether a box/line (or line/box) pointing or
// claiming relation holds between the premise house and the citing house.
func confinement(from, to *board.House) bool {
	line := func(k board.HouseKind) bool { return k == board.KindRow || k == board.KindColumn }
	return (from.Kind == board.KindBox && line(to.Kind)) ||
		(line(from.Kind) && to.Kind == board.KindBox)
}

func singleHouse(ranges []*proof.RangeLemma) bool {
	for _, rl := range ranges[1:] {
		if !sameHouse(rl.House, ranges[0].House) {
			return false
		}
	}
	return true
}

func singleCellSet(ranges []*proof.RangeLemma) bool {
	for _, rl := range ranges[1:] {
		if len(rl.Cells) != len(ranges[0].Cells) {
			return false
		}
		for i, c := range rl.Cells {
			if c != ranges[0].Cells[i] {
				return false
			}
		}
	}
	return true
}

func sharedDomain(lemmas []*proof.Lemma) ([]int, bool) {
	first := lemmas[0].Domain
	for _, l := range lemmas[1:] {
		if len(l.Domain) != len(first) {
			return nil, false
		}
		for i, v := range l.Domain {
			if v != first[i] {
				return nil, false
			}
		}
	}
	return first, true
}

func containsCell(cells []board.Cell, c board.Cell) bool {
	for _, candidate := range cells {
		if candidate == c {
			return true
		}
	}
	return false
}

func containsInt(values []int, v int) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func joinCells(cells []board.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

func joinPropositions(props []proof.Proposition) string {
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}
