package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		size  int
	}{
		{"4x4 with zeros", "1230341221434321", 4},
		{"4x4 with dots", "1.30341221434321", 4},
		{"4x4 all empty", "0000000000000000", 4},
		{"1x1 empty", "0", 1},
		{"empty board size 0", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse(tt.input, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.size, b.Size())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		size  int
		code  ErrorCode
	}{
		{"wrong length", "123", 4, ErrCodeBadLength},
		{"bad character", "12x0341221434321", 4, ErrCodeBadCharacter},
		{"value out of range", "1250341221434321", 4, ErrCodeValueRange},
		{"duplicate in row", "1130041221434321", 4, ErrCodeDuplicate},
		{"duplicate in column", "1230141221434321", 4, ErrCodeDuplicate},
		{"size not perfect square", "000000000000000000000000000000000000", 6, ErrCodeBadSize},
		{"negative size", "5", -1, ErrCodeBadSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, tt.size)
			require.Error(t, err)
			var be *Error
			require.ErrorAs(t, err, &be)
			assert.Equal(t, tt.code, be.Code)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	const s = "1230341221434321"
	b, err := Parse(s, 4)
	require.NoError(t, err)
	assert.Equal(t, s, b.String())

	// Dots parse as empty but render back as zeros.
	b2, err := Parse("1.30341221434321", 4)
	require.NoError(t, err)
	assert.Equal(t, "1030341221434321", b2.String())
}

func TestPlaceImmutable(t *testing.T) {
	b, err := Parse("1230341221434321", 4)
	require.NoError(t, err)

	next, err := b.Place(Cell{Row: 0, Col: 3}, 4)
	require.NoError(t, err)

	assert.Equal(t, 0, b.ValueAt(Cell{Row: 0, Col: 3}), "original board unchanged")
	assert.Equal(t, 4, next.ValueAt(Cell{Row: 0, Col: 3}))
	assert.True(t, next.IsComplete())
	assert.False(t, b.IsComplete())
}

func TestPlaceErrors(t *testing.T) {
	b, err := Parse("1230341221434321", 4)
	require.NoError(t, err)

	tests := []struct {
		name  string
		cell  Cell
		value int
		code  ErrorCode
	}{
		{"filled cell", Cell{Row: 0, Col: 0}, 4, ErrCodeCellFilled},
		{"out of bounds", Cell{Row: 4, Col: 0}, 1, ErrCodeOutOfBounds},
		{"negative cell", Cell{Row: -1, Col: 0}, 1, ErrCodeOutOfBounds},
		{"value out of range", Cell{Row: 0, Col: 3}, 5, ErrCodeValueRange},
		{"duplicate via row", Cell{Row: 0, Col: 3}, 1, ErrCodeDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Place(tt.cell, tt.value)
			require.Error(t, err)
			var be *Error
			require.ErrorAs(t, err, &be)
			assert.Equal(t, tt.code, be.Code)
		})
	}
}

func TestEmptyCellsRowMajor(t *testing.T) {
	b, err := Parse("1200001221000000", 4)
	require.NoError(t, err)

	empty := b.EmptyCells()
	require.Len(t, empty, 10)
	assert.Equal(t, Cell{Row: 0, Col: 2}, empty[0])
	assert.Equal(t, Cell{Row: 0, Col: 3}, empty[1])
	assert.Equal(t, Cell{Row: 3, Col: 3}, empty[len(empty)-1])

	// Row-major: strictly increasing (row, col).
	for i := 1; i < len(empty); i++ {
		prev, cur := empty[i-1], empty[i]
		less := prev.Row < cur.Row || (prev.Row == cur.Row && prev.Col < cur.Col)
		assert.True(t, less, "empty cells out of order at %d", i)
	}
}

func TestNewCopiesValues(t *testing.T) {
	values := []int{1, 2, 3, 0, 3, 4, 1, 2, 2, 1, 4, 3, 4, 3, 2, 1}
	b, err := New(4, values)
	require.NoError(t, err)

	values[3] = 4
	assert.Equal(t, 0, b.ValueAt(Cell{Row: 0, Col: 3}), "board retains its own copy")
}
