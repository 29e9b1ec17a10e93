package splitjoin

import (
	"errors"
	"fmt"
)

// ErrEmptyDiagonal is returned when a level's diagonal has no cell on the
// board. No level produced by Level can trigger it.
var ErrEmptyDiagonal = errors.New("splitjoin: diagonal has no cells on the board")

// MaxLevel is the largest distance any cell can have from the corner.
const MaxLevel = 2 * (N - 1)

// Level returns the smallest corner distance over all markers, or 0 when the
// board is empty.
func Level(b *Board) int {
	level := -1
	for row := range N {
		for col := range N {
			if !b.cells[row][col] {
				continue
			}
			d := Cell{Row: row, Col: col}.Distance()
			if level < 0 || d < level {
				level = d
			}
		}
	}
	if level < 0 {
		return 0
	}
	return level
}

// diagonal enumerates the on-board cells at exactly the given distance,
// top row first.
func diagonal(level int) []Cell {
	cells := make([]Cell, 0, N)
	for row := range N {
		col := level - (N - 1 - row)
		if col >= 0 && col < N {
			cells = append(cells, Cell{Row: row, Col: col})
		}
	}
	return cells
}

// DiagonalCells returns the cells highlighted for a level. Level 0 is the
// corner cell alone.
func DiagonalCells(level int) []Cell {
	if level == 0 {
		return []Cell{Corner}
	}
	return diagonal(level)
}

// Score returns level plus the fraction of the level's diagonal that is
// empty. Level 0 scores 0.
func Score(b *Board, level int) (float64, error) {
	if level == 0 {
		return 0, nil
	}

	cells := diagonal(level)
	total := len(cells)
	if total == 0 {
		return 0, fmt.Errorf("%w: level %d", ErrEmptyDiagonal, level)
	}

	occupied := 0
	for _, c := range cells {
		if b.cells[c.Row][c.Col] {
			occupied++
		}
	}

	return float64(level) + float64(total-occupied)/float64(total), nil
}

// Evaluation bundles everything derived from one board state.
type Evaluation struct {
	Level       int
	Score       float64
	Highlighted []Cell
}

// Evaluate computes level, score and highlighted diagonal in one pass.
func Evaluate(b *Board) Evaluation {
	level := Level(b)
	// Level always yields a diagonal with at least one on-board cell.
	score, _ := Score(b, level)
	return Evaluation{
		Level:       level,
		Score:       score,
		Highlighted: DiagonalCells(level),
	}
}
