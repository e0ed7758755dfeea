package deliberate

import (
	"math"
	"math/rand"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/util/collections"
)

// observation records what one open numbered cell says about its closed
// neighborhood: exactly numMines of the positions in cells hold mines.
// Flagged neighbors are counted as found mines and excluded from cells.
type observation struct {
	origin   game.Position
	numMines int
	cells    collections.Set[game.Position]
}

func (obs *observation) mineProbability() float32 {
	return float32(obs.numMines) / float32(len(obs.cells))
}

// Director plays like a careful human: certain moves from single-cell
// arithmetic first, then from subtracting overlapping observations, and
// only guesses when nothing is certain.
type Director struct {
	session *game.Session
	rng     *rand.Rand
}

// New creates a Director drawing its guesses from seed.
func New(seed int64) *Director {
	return &Director{rng: rand.New(rand.NewSource(seed))}
}

func (director *Director) Init(session *game.Session) {
	director.session = session
}

func (director *Director) Act() (game.Move, bool) {
	board := director.session.Board()
	observations := director.observe(board)

	if move, ok := director.actCertain(observations); ok {
		return move, true
	}
	if move, ok := director.actLowestProbability(observations); ok {
		return move, true
	}
	return director.actRandom()
}

func (director *Director) End() {}

// observe derives an observation from every open numbered cell that still
// has closed, unflagged neighbors.
func (director *Director) observe(board *game.Board) []*observation {
	var observations []*observation
	for _, cell := range board.Cells() {
		if !cell.Open || cell.MineCount == 0 {
			continue
		}

		obs := &observation{
			origin:   cell.Pos,
			numMines: cell.MineCount,
			cells:    make(collections.Set[game.Position]),
		}
		for _, pos := range cell.Pos.Neighbors(board.Dim()) {
			neighbor, _ := board.CellAt(pos)
			switch {
			case neighbor.Flagged:
				obs.numMines--
			case !neighbor.Open:
				obs.cells.Add(pos)
			}
		}

		if len(obs.cells) > 0 {
			observations = append(observations, obs)
		}
	}
	return observations
}

// actCertain finds a move that cannot be wrong: an observation with no
// mines left frees all its cells, one with as many mines as cells condemns
// them, and subtracting an observation from one containing it decides the
// cells the larger one sees past the smaller.
func (director *Director) actCertain(observations []*observation) (game.Move, bool) {
	var inspectQueue deque.Deque[*observation]
	for _, obs := range observations {
		inspectQueue.PushBack(obs)
	}

	for inspectQueue.Len() > 0 {
		obs := inspectQueue.PopFront()

		if obs.numMines == 0 {
			return director.certainMove(obs, game.Move{Pos: obs.cells.Pop()})
		}
		if obs.numMines == len(obs.cells) {
			return director.certainMove(obs, game.Move{Pos: obs.cells.Pop(), ToggleFlag: true})
		}

		for _, other := range observations {
			if other == obs {
				continue
			}
			if _, isSubset := obs.cells.IntersectionEx(other.cells); !isSubset {
				continue
			}

			leftover := other.cells.Difference(obs.cells)
			if len(leftover) == 0 {
				continue
			}

			numLeftover := other.numMines - obs.numMines
			if numLeftover == 0 {
				return director.certainMove(other, game.Move{Pos: leftover.Pop()})
			}
			if numLeftover == len(leftover) {
				return director.certainMove(other, game.Move{Pos: leftover.Pop(), ToggleFlag: true})
			}
		}
	}

	return game.Move{}, false
}

func (director *Director) certainMove(obs *observation, move game.Move) (game.Move, bool) {
	game.Log.WithFields(logrus.Fields{
		"origin": obs.origin,
		"pos":    move.Pos,
		"flag":   move.ToggleFlag,
	}).Debug("certain move")
	return move, true
}

// actLowestProbability guesses the observed cell least likely to be a mine,
// breaking ties at random.
func (director *Director) actLowestProbability(observations []*observation) (game.Move, bool) {
	lowest := float32(math.Inf(1))
	cellProbabilities := make(map[game.Position]float32)

	for _, obs := range observations {
		probability := obs.mineProbability()
		if probability < lowest {
			lowest = probability
		}
		for pos := range obs.cells {
			past, hasPast := cellProbabilities[pos]
			if !hasPast || probability < past {
				cellProbabilities[pos] = probability
			}
		}
	}

	if len(cellProbabilities) == 0 {
		return game.Move{}, false
	}

	var candidates []game.Position
	for pos, probability := range cellProbabilities {
		if probability <= lowest {
			candidates = append(candidates, pos)
		}
	}

	return game.Move{Pos: candidates[director.rng.Intn(len(candidates))]}, true
}

// actRandom falls back to blind play for boards with nothing observed yet.
func (director *Director) actRandom() (game.Move, bool) {
	randomDirector := random.New(director.rng.Int63())
	randomDirector.Init(director.session)
	defer randomDirector.End()
	return randomDirector.Act()
}
