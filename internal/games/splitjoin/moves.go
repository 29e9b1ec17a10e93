package splitjoin

// MoveResult reports which move, if any, a move attempt applied.
type MoveResult int

const (
	MoveNone  MoveResult = iota // Preconditions not met; board unchanged
	MoveSplit                   // One marker became two
	MoveJoin                    // Two markers became one
)

// String returns a human-readable name for the result.
func (r MoveResult) String() string {
	switch r {
	case MoveNone:
		return "none"
	case MoveSplit:
		return "split"
	case MoveJoin:
		return "join"
	default:
		return "unknown"
	}
}

// Applied reports whether the board changed.
func (r MoveResult) Applied() bool {
	return r != MoveNone
}

// CanSplit reports whether Split(row, col) would apply.
// A split needs a marker at (row, col) and empty cells above and to the right.
func (b *Board) CanSplit(row, col int) (bool, error) {
	if err := checkBounds(row, col); err != nil {
		return false, err
	}
	return b.cells[row][col] &&
		row > 0 && !b.cells[row-1][col] &&
		col < N-1 && !b.cells[row][col+1], nil
}

// CanJoin reports whether Join(row, col) would apply.
// A join needs (row, col) empty and markers above and to the right.
func (b *Board) CanJoin(row, col int) (bool, error) {
	if err := checkBounds(row, col); err != nil {
		return false, err
	}
	return !b.cells[row][col] &&
		row > 0 && b.cells[row-1][col] &&
		col < N-1 && b.cells[row][col+1], nil
}

// Split replaces the marker at (row, col) with markers at (row-1, col) and
// (row, col+1). Returns false without touching the board when illegal.
func (b *Board) Split(row, col int) (bool, error) {
	ok, err := b.CanSplit(row, col)
	if err != nil || !ok {
		return false, err
	}
	b.cells[row][col] = false
	b.cells[row-1][col] = true
	b.cells[row][col+1] = true
	return true, nil
}

// Join merges the markers at (row-1, col) and (row, col+1) into one marker
// at (row, col). Returns false without touching the board when illegal.
func (b *Board) Join(row, col int) (bool, error) {
	ok, err := b.CanJoin(row, col)
	if err != nil || !ok {
		return false, err
	}
	b.cells[row-1][col] = false
	b.cells[row][col+1] = false
	b.cells[row][col] = true
	return true, nil
}

// AttemptMoveAt splits an occupied cell or joins into an empty one.
func (b *Board) AttemptMoveAt(row, col int) (MoveResult, error) {
	if err := checkBounds(row, col); err != nil {
		return MoveNone, err
	}

	if b.cells[row][col] {
		ok, err := b.Split(row, col)
		if err != nil || !ok {
			return MoveNone, err
		}
		return MoveSplit, nil
	}

	ok, err := b.Join(row, col)
	if err != nil || !ok {
		return MoveNone, err
	}
	return MoveJoin, nil
}
