package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a textual rendering of a board, one rune per cell:
//
//	#  closed        .  open
//	f  flag          F  flagged mine
//	O  closed mine   *  opened (losing) mine
//
// Snapshots draw fixture boards in tests and render finished games into the
// log; they are not a save format.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

// Snapshot renders the board in the rune grid format, tagged with the seed
// that produced it.
func (board *Board) Snapshot(seed int64) *BoardSnapshot {
	rows := make([]string, board.dim)
	for row := 0; row < board.dim; row++ {
		var builder strings.Builder
		for col := 0; col < board.dim; col++ {
			builder.WriteString(board.cells[Position{Row: row, Col: col}].serialize())
		}
		rows[row] = builder.String()
	}

	return &BoardSnapshot{
		Seed:            seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}
	return string(out)
}

// Board reconstructs the snapshot's board. Mine placement and per-cell
// open/flag state come from the runes; mine counts are recomputed.
func (snapshot *BoardSnapshot) Board() (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	dim := len(rows)

	board := &Board{
		dim:   dim,
		cells: make(map[Position]Cell, dim*dim),
	}

	for row, line := range rows {
		if len(line) != dim {
			return nil, fmt.Errorf("snapshot row %d: %d cells in a %d-row board", row, len(line), dim)
		}
		for col, c := range line {
			pos := Position{Row: row, Col: col}
			cell := Cell{Pos: pos}
			if !cell.deserialize(c) {
				return nil, fmt.Errorf("snapshot cell %s: unknown rune %q", pos.Key(), c)
			}
			if cell.Mine {
				board.numMines++
			}
			board.cells[pos] = cell
		}
	}

	for pos, cell := range board.cells {
		for _, neighbor := range pos.Neighbors(dim) {
			if board.cells[neighbor].Mine {
				cell.MineCount++
			}
		}
		board.cells[pos] = cell
	}

	return board, nil
}

// LoadSnapshot parses the yaml form produced by Serialize.
func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
