package board

import (
	"fmt"
	"math"
	"sync"
)

// HouseKind identifies the flavor of a house.
type HouseKind string

const (
	KindRow    HouseKind = "row"
	KindColumn HouseKind = "column"
	KindBox    HouseKind = "box"

	// KindCell is a degenerate single-cell pseudo-house. It exists so that
	// "naked single" can be expressed as a range lemma with zero candidate
	// cells, unifying it algorithmically with hidden single.
	KindCell HouseKind = "cell"
)

// House is a named group of cells that must contain each value exactly once.
// Identity is (Kind, Index); Cells is derived from the two and never mutated.
type House struct {
	Kind  HouseKind
	Index int
	Cells []Cell
}

// String renders the 1-indexed human label, e.g. "row 1" or "box 3".
func (h *House) String() string {
	return fmt.Sprintf("%s %d", h.Kind, h.Index+1)
}

// geometry holds the precomputed house and peer tables for one board size.
// Built once, read-only afterwards; safe to share across concurrent solves.
type geometry struct {
	size         int
	houses       []*House
	housesByCell map[Cell][]*House
	peersByCell  map[Cell][]Cell
}

var (
	geomMu    sync.Mutex
	geomCache = map[int]*geometry{}
)

// geometryFor returns the cached geometry for a size, building it on first
// use. Size must be a non-negative perfect square (boxes are undefined
// otherwise); size 0 yields an empty geometry, not an error.
func geometryFor(size int) (*geometry, error) {
	if size < 0 {
		return nil, &Error{Code: ErrCodeBadSize, Message: fmt.Sprintf("size must be non-negative, got %d", size)}
	}
	box := int(math.Sqrt(float64(size)))
	if box*box != size {
		return nil, &Error{Code: ErrCodeBadSize, Message: fmt.Sprintf("size %d is not a perfect square", size)}
	}

	geomMu.Lock()
	defer geomMu.Unlock()
	if g, ok := geomCache[size]; ok {
		return g, nil
	}
	g := buildGeometry(size, box)
	geomCache[size] = g
	return g, nil
}

// buildGeometry enumerates houses in the fixed order that derivation
// depends on: rows, then columns, then boxes, then cell pseudo-houses.
func buildGeometry(size, box int) *geometry {
	var houses []*House
	for i := 0; i < size; i++ {
		cells := make([]Cell, size)
		for c := 0; c < size; c++ {
			cells[c] = Cell{Row: i, Col: c}
		}
		houses = append(houses, &House{Kind: KindRow, Index: i, Cells: cells})
	}
	for i := 0; i < size; i++ {
		cells := make([]Cell, size)
		for r := 0; r < size; r++ {
			cells[r] = Cell{Row: r, Col: i}
		}
		houses = append(houses, &House{Kind: KindColumn, Index: i, Cells: cells})
	}
	for br := 0; br < box; br++ {
		for bc := 0; bc < box; bc++ {
			var cells []Cell
			for r := 0; r < box; r++ {
				for c := 0; c < box; c++ {
					cells = append(cells, Cell{Row: br*box + r, Col: bc*box + c})
				}
			}
			houses = append(houses, &House{Kind: KindBox, Index: br*box + bc, Cells: cells})
		}
	}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := Cell{Row: r, Col: c}
			houses = append(houses, &House{Kind: KindCell, Index: r*size + c, Cells: []Cell{cell}})
		}
	}

	housesByCell := make(map[Cell][]*House, size*size)
	for _, h := range houses {
		for _, cell := range h.Cells {
			housesByCell[cell] = append(housesByCell[cell], h)
		}
	}

	peersByCell := make(map[Cell][]Cell, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := Cell{Row: r, Col: c}
			seen := map[Cell]bool{cell: true}
			var peers []Cell
			for _, h := range housesByCell[cell] {
				for _, p := range h.Cells {
					if !seen[p] {
						seen[p] = true
						peers = append(peers, p)
					}
				}
			}
			peersByCell[cell] = peers
		}
	}

	return &geometry{size: size, houses: houses, housesByCell: housesByCell, peersByCell: peersByCell}
}

// AllHouses returns every house for a board size, in enumeration order
// (rows, columns, boxes, cell pseudo-houses). The returned slice is shared
// and must not be modified.
func AllHouses(size int) ([]*House, error) {
	g, err := geometryFor(size)
	if err != nil {
		return nil, err
	}
	return g.houses, nil
}

// HousesFor returns the houses containing a cell (row, column, box, and the
// cell's own pseudo-house).
func HousesFor(size int, c Cell) ([]*House, error) {
	g, err := geometryFor(size)
	if err != nil {
		return nil, err
	}
	return g.housesByCell[c], nil
}

// Peers returns every cell sharing a row, column, or box house with the
// given cell, excluding the cell itself.
func Peers(size int, c Cell) ([]Cell, error) {
	g, err := geometryFor(size)
	if err != nil {
		return nil, err
	}
	return g.peersByCell[c], nil
}
