package board

import "fmt"

// Cell is a position on a sudoku board, 0-indexed.
//
// Cell is a comparable value type: it is used as a map key throughout the
// proof engine, so it must never grow non-comparable fields.
type Cell struct {
	Row int
	Col int
}

// NewCell creates a cell, rejecting negative coordinates.
func NewCell(row, col int) (Cell, error) {
	if row < 0 || col < 0 {
		return Cell{}, &Error{
			Code:    ErrCodeOutOfBounds,
			Message: fmt.Sprintf("row and col must be non-negative, got (%d,%d)", row, col),
		}
	}
	return Cell{Row: row, Col: col}, nil
}

// String renders the 0-indexed coordinate form used in proofs: "(r,c)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Label renders the 1-indexed human form used in narration: "R1C2".
func (c Cell) Label() string {
	return fmt.Sprintf("R%dC%d", c.Row+1, c.Col+1)
}
