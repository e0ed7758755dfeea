package game

// CellState is what a renderer should show for a cell. The numbered states
// share their values with the mine counts they display.
type CellState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineUnrevealed
	MineLosing
)

// CellStates lists every CellState in sprite sheet order.
var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagWrong,
	Mine,
	MineUnrevealed,
	MineLosing,
}

// Status is the lifecycle of a single game. Won and Lost are terminal.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (status Status) String() string {
	switch status {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}
