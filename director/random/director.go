package random

import (
	"math/rand"

	"github.com/they4kman/minefield/game"
)

// Director plays blind: it draws a random order over the whole board once,
// then reveals cells in that order, skipping any opened or flagged since.
type Director struct {
	session *game.Session
	rng     *rand.Rand
	order   []game.Position
}

// New creates a Director drawing its play order from seed.
func New(seed int64) *Director {
	return &Director{rng: rand.New(rand.NewSource(seed))}
}

func (director *Director) Init(session *game.Session) {
	director.session = session

	board := session.Board()
	director.order = make([]game.Position, 0, board.NumCells())
	for row := 0; row < board.Dim(); row++ {
		for col := 0; col < board.Dim(); col++ {
			director.order = append(director.order, game.Position{Row: row, Col: col})
		}
	}
	director.rng.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

// Act proposes revealing the next closed, unflagged cell in the director's
// order.
func (director *Director) Act() (game.Move, bool) {
	board := director.session.Board()
	for _, pos := range director.order {
		cell, _ := board.CellAt(pos)
		if !cell.Open && !cell.Flagged {
			return game.Move{Pos: pos}, true
		}
	}
	return game.Move{}, false
}

func (director *Director) End() {}
