package rules

import (
	"testing"

	"github.com/roach88/sudologue/internal/board"
	"github.com/roach88/sudologue/internal/proof"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHiddenSingleName(t *testing.T) {
	assert.Equal(t, "hidden single", HiddenSingle{}.Name())
}

func TestHiddenSingleApply(t *testing.T) {
	// 1 2 . .
	// . . 1 2
	// 2 1 . .
	// . . . .
	// With direct eliminations only, 1 in row 3 survives only at (3,3), and
	// 2 in row 3 survives only at (3,2).
	b := mustParse(t, "1200001221000000", 4)
	d := proof.Derive(b, proof.WithoutPairs(), proof.WithoutPointing())

	theorems := HiddenSingle{}.Apply(d)
	require.Len(t, theorems, 2)

	first := theorems[0]
	assert.Equal(t, board.Cell{Row: 3, Col: 3}, first.Cell)
	assert.Equal(t, 1, first.Value)
	assert.Equal(t, "hidden single", first.Rule)
	require.Len(t, first.Because, 1)
	rl := first.Because[0].(*proof.RangeLemma)
	assert.Equal(t, board.KindRow, rl.House.Kind)
	assert.Equal(t, 3, rl.House.Index)
	require.Len(t, rl.Cells, 1)

	second := theorems[1]
	assert.Equal(t, board.Cell{Row: 3, Col: 2}, second.Cell)
	assert.Equal(t, 2, second.Value)
}

func TestHiddenSingleSkipsCellPseudoHouses(t *testing.T) {
	b := mustParse(t, "0001000230000000", 4)
	d := proof.Derive(b)

	for _, thm := range (HiddenSingle{}).Apply(d) {
		rl := thm.Because[0].(*proof.RangeLemma)
		assert.NotEqual(t, board.KindCell, rl.House.Kind)
	}
}

func TestHiddenSingleDedupPerPlacement(t *testing.T) {
	// (0,3)=4 is forced by its row, column, and box at once; one theorem.
	b := mustParse(t, "1230341221434321", 4)
	d := proof.Derive(b)

	theorems := HiddenSingle{}.Apply(d)
	type placement struct {
		cell  board.Cell
		value int
	}
	seen := map[placement]bool{}
	for _, thm := range theorems {
		key := placement{thm.Cell, thm.Value}
		assert.False(t, seen[key], "duplicate theorem for %v", key)
		seen[key] = true
	}
	require.Len(t, theorems, 1)
	assert.Equal(t, board.Cell{Row: 0, Col: 3}, theorems[0].Cell)
	assert.Equal(t, 4, theorems[0].Value)
}

func TestHiddenSingleEmptyBoard(t *testing.T) {
	b := mustParse(t, "0000000000000000", 4)
	d := proof.Derive(b)
	assert.Empty(t, HiddenSingle{}.Apply(d))
}
