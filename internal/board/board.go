package board

import (
	"fmt"
	"strings"
)

// Board is an immutable sudoku grid. Empty cells hold 0; placed values are
// 1..size. Every transformation returns a new board, and prior boards
// remain valid and unchanged — the solve trace keeps every intermediate
// board alive for inspection.
//
// INVARIANTS (checked at construction and therefore after every Place):
//   - grid is exactly size x size
//   - every placed value is in 1..size
//   - no house contains a duplicate placed value
type Board struct {
	size  int
	cells []int // row-major, 0 = empty
}

// New validates and constructs a board from a row-major grid.
// The values slice is copied; the caller's slice is not retained.
func New(size int, values []int) (*Board, error) {
	houses, err := AllHouses(size)
	if err != nil {
		return nil, err
	}
	if len(values) != size*size {
		return nil, &Error{
			Code:    ErrCodeBadLength,
			Message: fmt.Sprintf("expected %d values, got %d", size*size, len(values)),
		}
	}

	cells := make([]int, len(values))
	copy(cells, values)
	for i, v := range cells {
		if v != 0 && (v < 1 || v > size) {
			return nil, &Error{
				Code:    ErrCodeValueRange,
				Message: fmt.Sprintf("cell (%d,%d): value %d out of range 1-%d", i/size, i%size, v, size),
			}
		}
	}

	b := &Board{size: size, cells: cells}
	for _, h := range houses {
		seen := map[int]bool{}
		for _, c := range h.Cells {
			v := b.ValueAt(c)
			if v == 0 {
				continue
			}
			if seen[v] {
				return nil, &Error{
					Code:    ErrCodeDuplicate,
					Message: fmt.Sprintf("duplicate value %d in %s", v, h),
				}
			}
			seen[v] = true
		}
	}
	return b, nil
}

// Parse maps a compact puzzle string to a validated board. The string must
// be exactly size*size characters; '0' and '.' denote an empty cell.
func Parse(s string, size int) (*Board, error) {
	if len(s) != size*size {
		return nil, &Error{
			Code:    ErrCodeBadLength,
			Message: fmt.Sprintf("expected %d characters, got %d", size*size, len(s)),
		}
	}
	values := make([]int, size*size)
	for i := 0; i < size*size; i++ {
		ch := s[i]
		switch {
		case ch == '.':
			values[i] = 0
		case ch >= '0' && ch <= '9':
			values[i] = int(ch - '0')
		default:
			return nil, &Error{
				Code:    ErrCodeBadCharacter,
				Message: fmt.Sprintf("invalid character %q at position %d", ch, i),
			}
		}
	}
	return New(size, values)
}

// Size returns the board edge length.
func (b *Board) Size() int {
	return b.size
}

// ValueAt returns the placed value at a cell, or 0 if empty.
func (b *Board) ValueAt(c Cell) int {
	return b.cells[c.Row*b.size+c.Col]
}

// Place returns a new board with the value set at the cell. It fails if the
// cell is already filled or if the result would violate a board invariant.
// The receiver is never modified.
func (b *Board) Place(c Cell, value int) (*Board, error) {
	if c.Row < 0 || c.Row >= b.size || c.Col < 0 || c.Col >= b.size {
		return nil, &Error{
			Code:    ErrCodeOutOfBounds,
			Message: fmt.Sprintf("cell %s outside %dx%d board", c, b.size, b.size),
		}
	}
	if b.ValueAt(c) != 0 {
		return nil, &Error{
			Code:    ErrCodeCellFilled,
			Message: fmt.Sprintf("cell %s is already filled", c),
		}
	}
	values := make([]int, len(b.cells))
	copy(values, b.cells)
	values[c.Row*b.size+c.Col] = value
	return New(b.size, values)
}

// IsComplete reports whether every cell is filled.
func (b *Board) IsComplete() bool {
	for _, v := range b.cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// EmptyCells returns all empty cells in row-major scan order.
func (b *Board) EmptyCells() []Cell {
	var result []Cell
	for i, v := range b.cells {
		if v == 0 {
			result = append(result, Cell{Row: i / b.size, Col: i % b.size})
		}
	}
	return result
}

// Houses returns the houses for this board's size. The board was validated
// at construction, so the geometry is known to exist.
func (b *Board) Houses() []*House {
	houses, err := AllHouses(b.size)
	if err != nil {
		// Unreachable: New validated the size.
		panic(err)
	}
	return houses
}

// String renders the compact puzzle form ('0' for empty), the inverse of Parse.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.cells))
	for _, v := range b.cells {
		sb.WriteByte(byte('0' + v))
	}
	return sb.String()
}
