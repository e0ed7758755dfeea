package game

import "fmt"

// Position addresses a single cell on a square board, 0-indexed from the
// top-left corner.
type Position struct {
	Row, Col int
}

// neighborOffsets enumerates the Moore neighborhood in reading order.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.Row, pos.Col)
}

// Key returns the canonical "row,col" identifier for the position. Distinct
// positions always produce distinct keys.
func (pos Position) Key() string {
	return fmt.Sprintf("%d,%d", pos.Row, pos.Col)
}

// Neighbors returns the positions adjacent to pos, diagonals included,
// clipped to a dim-by-dim board. The order is fixed, so two calls for the
// same position always agree.
func (pos Position) Neighbors(dim int) []Position {
	neighbors := make([]Position, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		neighbor := Position{Row: pos.Row + offset[0], Col: pos.Col + offset[1]}
		if neighbor.inBounds(dim) {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

func (pos Position) inBounds(dim int) bool {
	return pos.Row >= 0 && pos.Col >= 0 && pos.Row < dim && pos.Col < dim
}
