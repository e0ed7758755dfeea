package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/minefield/util/collections"
)

// Reveal returns a snapshot with the cell at pos opened, plus every cell
// reachable from it through connected zero-count cells. Revealing an open
// or flagged cell is a no-op: the receiver itself is returned. Revealing a
// mine opens that one cell and nothing else.
func (board *Board) Reveal(pos Position) (*Board, error) {
	target, ok := board.CellAt(pos)
	if !ok {
		return nil, ErrOutOfBounds
	}
	if target.Open || target.Flagged {
		return board, nil
	}

	next := board.clone()

	target.Open = true
	next.cells[pos] = target

	visited := make(collections.Set[Position])
	visited.Add(pos)

	// Only zero-count cells spread the fill; a mine never does, whatever
	// count it carries.
	var frontier deque.Deque[Position]
	if !target.Mine && target.MineCount == 0 {
		for _, neighbor := range pos.Neighbors(next.dim) {
			frontier.PushBack(neighbor)
		}
	}

	for frontier.Len() > 0 {
		floodPos := frontier.PopFront()
		if visited.Contains(floodPos) {
			continue
		}
		visited.Add(floodPos)

		cell := next.cells[floodPos]
		if cell.Open || cell.Flagged {
			continue
		}

		cell.Open = true
		next.cells[floodPos] = cell

		if cell.MineCount == 0 {
			for _, neighbor := range floodPos.Neighbors(next.dim) {
				frontier.PushBack(neighbor)
			}
		}
	}

	return next, nil
}
