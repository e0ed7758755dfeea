package game

import "fmt"

// Cell is a single square of a Board. Cells are plain values: actions on a
// Board never modify a Cell in place, they produce an updated copy in the
// next snapshot.
type Cell struct {
	Pos     Position
	Mine    bool
	Open    bool
	Flagged bool

	// MineCount is the number of mined neighbors, fixed at generation.
	MineCount int
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%d, %d)", cell.Pos.Row, cell.Pos.Col)
}

// DisplayState projects the cell onto what a renderer should show, given
// the status of the surrounding game. Mines stay hidden until they are
// opened or the game is lost.
func (cell Cell) DisplayState(status Status) CellState {
	if cell.Open {
		if cell.Mine {
			return MineLosing
		}
		return CellState(cell.MineCount)
	}

	if status == Lost {
		switch {
		case cell.Flagged && !cell.Mine:
			return FlagWrong
		case cell.Flagged:
			return Flag
		case cell.Mine:
			return MineUnrevealed
		}
		return Unrevealed
	}

	if cell.Flagged {
		return Flag
	}
	return Unrevealed
}

func (cell Cell) serialize() string {
	switch {
	case cell.Mine:
		switch {
		case cell.Open:
			return "*"
		case cell.Flagged:
			return "F"
		default:
			return "O"
		}
	case cell.Flagged:
		return "f"
	case cell.Open:
		return "."
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c rune) bool {
	switch c {
	case '*':
		cell.Mine = true
		cell.Open = true
	case 'F':
		cell.Mine = true
		cell.Flagged = true
	case 'O':
		cell.Mine = true
	case 'f':
		cell.Flagged = true
	case '.':
		cell.Open = true
	case '#':
	default:
		return false
	}
	return true
}
