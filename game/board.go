package game

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/minefield/util/collections"
)

// Board is one immutable snapshot of the minefield. Actions never modify a
// Board in place: Reveal and ToggleFlag build the next snapshot and return
// it, or return the receiver itself when the action is a no-op.
type Board struct {
	dim      int
	numMines int
	cells    map[Position]Cell
}

// Dim returns the board edge length, in cells.
func (board *Board) Dim() int {
	return board.dim
}

// NumMines returns the number of mines on the board.
func (board *Board) NumMines() int {
	return board.numMines
}

// NumCells returns the total cell count.
func (board *Board) NumCells() int {
	return board.dim * board.dim
}

// CellAt returns the cell at pos, and whether pos is on the board.
func (board *Board) CellAt(pos Position) (Cell, bool) {
	cell, ok := board.cells[pos]
	return cell, ok
}

// Cells returns every cell in reading order, top-left to bottom-right.
func (board *Board) Cells() []Cell {
	cells := make([]Cell, 0, len(board.cells))
	for row := 0; row < board.dim; row++ {
		for col := 0; col < board.dim; col++ {
			cells = append(cells, board.cells[Position{Row: row, Col: col}])
		}
	}
	return cells
}

// NumFlags counts the flagged cells.
func (board *Board) NumFlags() int {
	numFlags := 0
	for _, cell := range board.cells {
		if cell.Flagged {
			numFlags++
		}
	}
	return numFlags
}

// cleared reports whether every cell is open or mined, the winning state.
func (board *Board) cleared() bool {
	for _, cell := range board.cells {
		if !cell.Open && !cell.Mine {
			return false
		}
	}
	return true
}

func (board *Board) clone() *Board {
	cells := make(map[Position]Cell, len(board.cells))
	for pos, cell := range board.cells {
		cells[pos] = cell
	}
	return &Board{
		dim:      board.dim,
		numMines: board.numMines,
		cells:    cells,
	}
}

// ToggleFlag returns a snapshot with the flag at pos flipped. Flagging an
// open cell is a no-op: the receiver itself is returned.
func (board *Board) ToggleFlag(pos Position) (*Board, error) {
	cell, ok := board.CellAt(pos)
	if !ok {
		return nil, ErrOutOfBounds
	}
	if cell.Open {
		return board, nil
	}

	next := board.clone()
	cell.Flagged = !cell.Flagged
	next.cells[pos] = cell
	return next, nil
}

// Generate creates a fresh board for the difficulty, every cell closed and
// unflagged. Mine positions are drawn uniformly and redrawn on collision
// until the difficulty's count is reached.
func Generate(difficulty Difficulty, rng *rand.Rand) (*Board, error) {
	dim, numMines, err := difficulty.params()
	if err != nil {
		return nil, err
	}
	return generateBoard(dim, numMines, rng)
}

func generateBoard(dim, numMines int, rng *rand.Rand) (*Board, error) {
	if numMines >= dim*dim {
		return nil, ErrTooManyMines
	}

	mines := make(collections.Set[Position])
	for len(mines) < numMines {
		mines.Add(Position{Row: rng.Intn(dim), Col: rng.Intn(dim)})
	}

	board := &Board{
		dim:      dim,
		numMines: numMines,
		cells:    make(map[Position]Cell, dim*dim),
	}
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			pos := Position{Row: row, Col: col}
			cell := Cell{Pos: pos, Mine: mines.Contains(pos)}
			for _, neighbor := range pos.Neighbors(dim) {
				if mines.Contains(neighbor) {
					cell.MineCount++
				}
			}
			board.cells[pos] = cell
		}
	}

	Log.WithFields(logrus.Fields{
		"dim":   dim,
		"mines": numMines,
	}).Debug("generated board")

	return board, nil
}
