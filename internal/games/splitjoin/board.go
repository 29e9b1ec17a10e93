// Package splitjoin implements the split/join marker puzzle on a fixed 16x16
// grid: the board, the two legal moves, level/score derivation and the
// play/edit session that sequences them.
package splitjoin

import (
	"errors"
	"fmt"
)

// N is the board dimension. Row 0 is the top edge, column 0 the left edge.
const N = 16

// ErrInvalidCoordinate is returned for any row or column outside [0, N).
var ErrInvalidCoordinate = errors.New("splitjoin: invalid coordinate")

// Cell addresses a single board position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Corner is the canonical start cell (bottom-left).
var Corner = Cell{Row: N - 1, Col: 0}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Distance returns the cell's distance from the corner along the up and
// right axes: (N-1-row) + col.
func (c Cell) Distance() int {
	return (N - 1 - c.Row) + c.Col
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < N && col >= 0 && col < N
}

func checkBounds(row, col int) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, row, col)
	}
	return nil
}

// Board is the occupancy table. The zero value is an empty board; use
// NewBoard for the canonical start position.
type Board struct {
	cells [N][N]bool
}

// NewBoard returns a board in the canonical start state.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// IsOccupied reports whether a marker sits at (row, col).
func (b *Board) IsOccupied(row, col int) (bool, error) {
	if err := checkBounds(row, col); err != nil {
		return false, err
	}
	return b.cells[row][col], nil
}

// SetOccupied writes the occupancy of (row, col).
func (b *Board) SetOccupied(row, col int, occupied bool) error {
	if err := checkBounds(row, col); err != nil {
		return err
	}
	b.cells[row][col] = occupied
	return nil
}

// Toggle flips the occupancy of (row, col).
func (b *Board) Toggle(row, col int) error {
	if err := checkBounds(row, col); err != nil {
		return err
	}
	b.cells[row][col] = !b.cells[row][col]
	return nil
}

// Reset clears every cell and places the single start marker at the corner.
func (b *Board) Reset() {
	b.Clear()
	b.cells[Corner.Row][Corner.Col] = true
}

// Clear removes every marker.
func (b *Board) Clear() {
	b.cells = [N][N]bool{}
}

// occupied is the unchecked accessor used by the move and scoring code.
// Out-of-range cells read as empty.
func (b *Board) occupied(row, col int) bool {
	return InBounds(row, col) && b.cells[row][col]
}

// Count returns the number of markers on the board.
func (b *Board) Count() int {
	count := 0
	for row := range N {
		for col := range N {
			if b.cells[row][col] {
				count++
			}
		}
	}
	return count
}

// Markers returns all occupied cells ordered by row then column.
func (b *Board) Markers() []Cell {
	markers := make([]Cell, 0)
	for row := range N {
		for col := range N {
			if b.cells[row][col] {
				markers = append(markers, Cell{Row: row, Col: col})
			}
		}
	}
	return markers
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Equal returns true if both boards have identical occupancy.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells
}
