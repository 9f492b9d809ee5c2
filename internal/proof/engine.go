package proof

import (
	"math"

	"github.com/roach88/sudologue/internal/board"
)

// Derivation bundles every proposition derivable from one board state.
// It is a pure function of the board — rebuilt from scratch each solve
// iteration, never incrementally updated — so there are no stale
// derivations to reason about.
//
// Ordering is deterministic: axioms and lemmas row-major; range lemmas in
// house enumeration order crossed with ascending value; eliminations in
// derivation order (direct pass first, then fixed-point rounds).
type Derivation struct {
	Size         int
	Axioms       []*Axiom
	Eliminations []*Elimination
	Lemmas       []*Lemma
	RangeLemmas  []*RangeLemma
	Candidates   []*Candidate
}

type deriveConfig struct {
	pairs    bool
	pointing bool
}

// Option configures a derivation.
type Option func(*deriveConfig)

// WithoutPairs disables naked/hidden pair eliminations in the fixed-point
// loop.
func WithoutPairs() Option {
	return func(c *deriveConfig) { c.pairs = false }
}

// WithoutPointing disables pointing and claiming eliminations in the
// fixed-point loop. Combined with WithoutPairs this restricts the
// derivation to direct (axiom-cited) eliminations only.
func WithoutPointing() Option {
	return func(c *deriveConfig) { c.pointing = false }
}

// cellValue keys the (cell, value) elimination dedup sets.
type cellValue struct {
	cell  board.Cell
	value int
}

// Derive eagerly computes all axioms, eliminations, domain lemmas, range
// lemmas, and candidates for a board. Pure: no side effects, identical
// output for identical boards.
//
// The fixed-point loop terminates because the elimination set grows
// monotonically and is bounded by size² × size.
func Derive(b *board.Board, opts ...Option) *Derivation {
	cfg := deriveConfig{pairs: true, pointing: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	size := b.Size()
	houses := b.Houses()

	axioms, axiomByCell := extractAxioms(b)
	elims := deriveEliminations(b, houses, axiomByCell)

	var lemmas []*Lemma
	var ranges []*RangeLemma
	for {
		lemmas = deriveLemmas(b, elims)
		ranges = deriveRanges(b, houses, elims)

		var fresh []*Elimination
		if cfg.pairs {
			fresh = append(fresh, derivePairEliminations(houses, lemmas, ranges, elims)...)
		}
		if cfg.pointing {
			known := elims
			if len(fresh) > 0 {
				known = append(append([]*Elimination{}, elims...), fresh...)
			}
			fresh = append(fresh, derivePointingEliminations(size, houses, lemmas, ranges, known)...)
		}
		if len(fresh) == 0 {
			break
		}
		elims = append(elims, fresh...)
	}

	return &Derivation{
		Size:         size,
		Axioms:       axioms,
		Eliminations: elims,
		Lemmas:       lemmas,
		RangeLemmas:  ranges,
		Candidates:   deriveCandidates(lemmas),
	}
}

// extractAxioms scans the board row-major, one axiom per filled cell.
func extractAxioms(b *board.Board) ([]*Axiom, map[board.Cell]*Axiom) {
	var axioms []*Axiom
	byCell := map[board.Cell]*Axiom{}
	size := b.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := board.Cell{Row: r, Col: c}
			if v := b.ValueAt(cell); v != 0 {
				ax := &Axiom{Cell: cell, Value: v}
				axioms = append(axioms, ax)
				byCell[cell] = ax
			}
		}
	}
	return axioms, byCell
}

// deriveEliminations emits, for each axiom, an elimination of its value
// against every other empty cell in each shared house. Deduplicated by
// (cell, value): a cell peer-sharing two houses with the same placed value
// gets one elimination, citing the first house enumerated.
func deriveEliminations(b *board.Board, houses []*board.House, axiomByCell map[board.Cell]*Axiom) []*Elimination {
	seen := map[cellValue]bool{}
	var result []*Elimination

	for _, house := range houses {
		for _, cell := range house.Cells {
			axiom, ok := axiomByCell[cell]
			if !ok {
				continue
			}
			for _, peer := range house.Cells {
				if peer == cell || b.ValueAt(peer) != 0 {
					continue
				}
				key := cellValue{peer, axiom.Value}
				if seen[key] {
					continue
				}
				seen[key] = true
				result = append(result, &Elimination{
					Cell:    peer,
					Value:   axiom.Value,
					House:   house,
					Because: []Proposition{axiom},
				})
			}
		}
	}
	return result
}

// deriveLemmas computes, for every empty cell, its domain: the full value
// range minus the values eliminated against it.
func deriveLemmas(b *board.Board, elims []*Elimination) []*Lemma {
	byCell := map[board.Cell][]*Elimination{}
	for _, e := range elims {
		byCell[e.Cell] = append(byCell[e.Cell], e)
	}

	size := b.Size()
	var result []*Lemma
	for _, cell := range b.EmptyCells() {
		cellElims := byCell[cell]
		eliminated := map[int]bool{}
		for _, e := range cellElims {
			eliminated[e.Value] = true
		}
		var domain []int
		for v := 1; v <= size; v++ {
			if !eliminated[v] {
				domain = append(domain, v)
			}
		}
		result = append(result, &Lemma{Cell: cell, Domain: domain, Eliminated: cellElims})
	}
	return result
}

// deriveRanges computes, for every (house, value) with at least one empty
// cell in the house, the cells still able to hold the value; eliminations
// that removed the other cells are cited as premises. The first
// elimination derived for a (cell, value) wins as the cited reason.
func deriveRanges(b *board.Board, houses []*board.House, elims []*Elimination) []*RangeLemma {
	byCellValue := map[cellValue]*Elimination{}
	for _, e := range elims {
		key := cellValue{e.Cell, e.Value}
		if _, ok := byCellValue[key]; !ok {
			byCellValue[key] = e
		}
	}

	size := b.Size()
	var result []*RangeLemma
	for _, house := range houses {
		var empty []board.Cell
		for _, cell := range house.Cells {
			if b.ValueAt(cell) == 0 {
				empty = append(empty, cell)
			}
		}
		if len(empty) == 0 {
			continue
		}
		for value := 1; value <= size; value++ {
			var cells []board.Cell
			var premises []*Elimination
			for _, cell := range empty {
				if e, ok := byCellValue[cellValue{cell, value}]; ok {
					premises = append(premises, e)
				} else {
					cells = append(cells, cell)
				}
			}
			result = append(result, &RangeLemma{House: house, Value: value, Cells: cells, Eliminated: premises})
		}
	}
	return result
}

// derivePairEliminations finds naked pairs (two cells in a house sharing
// an identical 2-value domain eliminate those values elsewhere in the
// house) and hidden pairs (two values confined to the same two cells of a
// house eliminate every other value from those cells).
//
// Grouping maps are paired with ordered key slices so emission order never
// depends on map iteration.
func derivePairEliminations(houses []*board.House, lemmas []*Lemma, ranges []*RangeLemma, elims []*Elimination) []*Elimination {
	existing := map[cellValue]bool{}
	for _, e := range elims {
		existing[cellValue{e.Cell, e.Value}] = true
	}
	lemmaByCell := map[board.Cell]*Lemma{}
	for _, l := range lemmas {
		lemmaByCell[l.Cell] = l
	}

	var results []*Elimination

	// Naked pairs.
	for _, house := range houses {
		var houseLemmas []*Lemma
		for _, cell := range house.Cells {
			if l, ok := lemmaByCell[cell]; ok {
				houseLemmas = append(houseLemmas, l)
			}
		}

		pairGroups := map[[2]int][]*Lemma{}
		var pairOrder [][2]int
		for _, l := range houseLemmas {
			if len(l.Domain) != 2 {
				continue
			}
			key := [2]int{l.Domain[0], l.Domain[1]}
			if _, ok := pairGroups[key]; !ok {
				pairOrder = append(pairOrder, key)
			}
			pairGroups[key] = append(pairGroups[key], l)
		}

		for _, values := range pairOrder {
			pairLemmas := pairGroups[values]
			if len(pairLemmas) != 2 {
				continue
			}
			for _, l := range houseLemmas {
				if l == pairLemmas[0] || l == pairLemmas[1] {
					continue
				}
				for _, value := range values {
					key := cellValue{l.Cell, value}
					if existing[key] {
						continue
					}
					existing[key] = true
					results = append(results, &Elimination{
						Cell:    l.Cell,
						Value:   value,
						House:   house,
						Because: []Proposition{pairLemmas[0], pairLemmas[1]},
					})
				}
			}
		}
	}

	// Hidden pairs.
	type houseKey struct {
		kind  board.HouseKind
		index int
	}
	rangesByHouse := map[houseKey][]*RangeLemma{}
	var houseOrder []houseKey
	for _, rl := range ranges {
		if len(rl.Cells) != 2 {
			continue
		}
		hk := houseKey{rl.House.Kind, rl.House.Index}
		if _, ok := rangesByHouse[hk]; !ok {
			houseOrder = append(houseOrder, hk)
		}
		rangesByHouse[hk] = append(rangesByHouse[hk], rl)
	}

	for _, hk := range houseOrder {
		houseRanges := rangesByHouse[hk]

		byCells := map[string][]*RangeLemma{}
		var cellsOrder []string
		for _, rl := range houseRanges {
			ck := cellSetKey(rl.Cells)
			if _, ok := byCells[ck]; !ok {
				cellsOrder = append(cellsOrder, ck)
			}
			byCells[ck] = append(byCells[ck], rl)
		}

		for _, ck := range cellsOrder {
			rls := byCells[ck]
			if len(rls) != 2 {
				continue
			}
			pairValues := map[int]bool{rls[0].Value: true, rls[1].Value: true}
			for _, cell := range rls[0].Cells {
				l, ok := lemmaByCell[cell]
				if !ok {
					continue
				}
				for _, value := range l.Domain {
					if pairValues[value] {
						continue
					}
					key := cellValue{cell, value}
					if existing[key] {
						continue
					}
					existing[key] = true
					results = append(results, &Elimination{
						Cell:    cell,
						Value:   value,
						House:   rls[0].House,
						Because: []Proposition{rls[0], rls[1]},
					})
				}
			}
		}
	}

	return results
}

func cellSetKey(cells []board.Cell) string {
	key := make([]byte, 0, len(cells)*8)
	for _, c := range cells {
		key = append(key, byte(c.Row), byte(c.Col))
	}
	return string(key)
}

// derivePointingEliminations finds pointing (a box's only candidates for a
// value lie in one row/column: eliminate the value from the rest of that
// line outside the box) and claiming (a line's only candidates lie in one
// box: eliminate from the rest of the box).
func derivePointingEliminations(size int, houses []*board.House, lemmas []*Lemma, ranges []*RangeLemma, elims []*Elimination) []*Elimination {
	if size == 0 {
		return nil
	}

	existing := map[cellValue]bool{}
	for _, e := range elims {
		existing[cellValue{e.Cell, e.Value}] = true
	}
	lemmaByCell := map[board.Cell]*Lemma{}
	for _, l := range lemmas {
		lemmaByCell[l.Cell] = l
	}

	rowHouses := map[int]*board.House{}
	colHouses := map[int]*board.House{}
	boxHouses := map[int]*board.House{}
	for _, h := range houses {
		switch h.Kind {
		case board.KindRow:
			rowHouses[h.Index] = h
		case board.KindColumn:
			colHouses[h.Index] = h
		case board.KindBox:
			boxHouses[h.Index] = h
		}
	}

	boxSize := int(math.Sqrt(float64(size)))
	boxIndex := func(c board.Cell) int {
		return (c.Row/boxSize)*boxSize + c.Col/boxSize
	}

	var results []*Elimination

	emit := func(target *board.House, rl *RangeLemma) {
		inRange := map[board.Cell]bool{}
		for _, c := range rl.Cells {
			inRange[c] = true
		}
		for _, cell := range target.Cells {
			if inRange[cell] {
				continue
			}
			if _, ok := lemmaByCell[cell]; !ok {
				continue
			}
			key := cellValue{cell, rl.Value}
			if existing[key] {
				continue
			}
			existing[key] = true
			results = append(results, &Elimination{
				Cell:    cell,
				Value:   rl.Value,
				House:   target,
				Because: []Proposition{rl},
			})
		}
	}

	// Pointing: box -> row/column.
	for _, rl := range ranges {
		if rl.House.Kind != board.KindBox || len(rl.Cells) == 0 {
			continue
		}
		sameRow, sameCol := true, true
		for _, c := range rl.Cells[1:] {
			if c.Row != rl.Cells[0].Row {
				sameRow = false
			}
			if c.Col != rl.Cells[0].Col {
				sameCol = false
			}
		}
		if sameRow {
			emit(rowHouses[rl.Cells[0].Row], rl)
		}
		if sameCol {
			emit(colHouses[rl.Cells[0].Col], rl)
		}
	}

	// Claiming: row/column -> box.
	for _, rl := range ranges {
		if (rl.House.Kind != board.KindRow && rl.House.Kind != board.KindColumn) || len(rl.Cells) == 0 {
			continue
		}
		box := boxIndex(rl.Cells[0])
		confined := true
		for _, c := range rl.Cells[1:] {
			if boxIndex(c) != box {
				confined = false
				break
			}
		}
		if confined {
			emit(boxHouses[box], rl)
		}
	}

	return results
}

// deriveCandidates restates each lemma's domain as individual (cell, value)
// facts, values ascending.
func deriveCandidates(lemmas []*Lemma) []*Candidate {
	var result []*Candidate
	for _, l := range lemmas {
		for _, value := range l.Domain {
			result = append(result, &Candidate{Cell: l.Cell, Value: value, Source: l})
		}
	}
	return result
}
