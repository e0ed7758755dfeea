package deliberate

import (
	"testing"

	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/util/collections"
)

func makePositions(positions ...game.Position) collections.Set[game.Position] {
	set := make(collections.Set[game.Position])
	for _, pos := range positions {
		set.Add(pos)
	}
	return set
}

func TestObserve(t *testing.T) {
	// Only (1, 1) is open with a nonzero count; the flag on the mine
	// accounts for its whole count, leaving its closed cells known safe
	session, err := game.NewSession(game.Config{
		Seed:     1,
		Snapshot: &game.BoardSnapshot{SerializedBoard: "F#.\n#..\n##."},
	})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	director := New(1)
	director.Init(session)

	observations := director.observe(session.Board())
	if len(observations) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(observations))
	}

	obs := observations[0]
	if want := (game.Position{Row: 1, Col: 1}); obs.origin != want {
		t.Errorf("expected origin %v, got %v", want, obs.origin)
	}
	if obs.numMines != 0 {
		t.Errorf("expected 0 unfound mines, got %d", obs.numMines)
	}
	want := makePositions(
		game.Position{Row: 0, Col: 1},
		game.Position{Row: 1, Col: 0},
		game.Position{Row: 2, Col: 0},
		game.Position{Row: 2, Col: 1},
	)
	if len(obs.cells) != len(want) {
		t.Fatalf("expected %d observation cells, got %v", len(want), obs.cells)
	}
	for pos := range want {
		if !obs.cells.Contains(pos) {
			t.Errorf("observation missing %v", pos)
		}
	}
}

func TestActCertainSinglePoint(t *testing.T) {
	director := New(1)

	t.Run("all mines found", func(t *testing.T) {
		obs := &observation{
			origin:   game.Position{Row: 0, Col: 0},
			numMines: 0,
			cells:    makePositions(game.Position{Row: 0, Col: 1}),
		}

		move, ok := director.actCertain([]*observation{obs})
		if !ok {
			t.Fatal("expected a certain move")
		}
		if move.ToggleFlag {
			t.Error("expected a reveal, got a flag")
		}
		if want := (game.Position{Row: 0, Col: 1}); move.Pos != want {
			t.Errorf("expected a move at %v, got %v", want, move.Pos)
		}
	})

	t.Run("all cells mined", func(t *testing.T) {
		obs := &observation{
			origin:   game.Position{Row: 0, Col: 0},
			numMines: 2,
			cells: makePositions(
				game.Position{Row: 0, Col: 1},
				game.Position{Row: 1, Col: 1},
			),
		}

		move, ok := director.actCertain([]*observation{obs})
		if !ok {
			t.Fatal("expected a certain move")
		}
		if !move.ToggleFlag {
			t.Error("expected a flag, got a reveal")
		}
		if move.Pos != (game.Position{Row: 0, Col: 1}) && move.Pos != (game.Position{Row: 1, Col: 1}) {
			t.Errorf("unexpected move position %v", move.Pos)
		}
	})
}

func TestActCertainSubset(t *testing.T) {
	director := New(1)

	small := func() *observation {
		return &observation{
			origin:   game.Position{Row: 0, Col: 0},
			numMines: 1,
			cells: makePositions(
				game.Position{Row: 1, Col: 0},
				game.Position{Row: 1, Col: 1},
			),
		}
	}
	large := func(numMines int) *observation {
		return &observation{
			origin:   game.Position{Row: 0, Col: 1},
			numMines: numMines,
			cells: makePositions(
				game.Position{Row: 1, Col: 0},
				game.Position{Row: 1, Col: 1},
				game.Position{Row: 1, Col: 2},
			),
		}
	}
	leftoverPos := game.Position{Row: 1, Col: 2}

	t.Run("leftover safe", func(t *testing.T) {
		// Both observations see one mine and the smaller is contained in
		// the larger, so the cell only the larger sees is safe
		move, ok := director.actCertain([]*observation{small(), large(1)})
		if !ok {
			t.Fatal("expected a certain move")
		}
		if move.ToggleFlag {
			t.Error("expected a reveal, got a flag")
		}
		if move.Pos != leftoverPos {
			t.Errorf("expected a move at %v, got %v", leftoverPos, move.Pos)
		}
	})

	t.Run("leftover mined", func(t *testing.T) {
		// The larger observation sees one mine more than the contained
		// smaller one, so the extra mine sits in the one leftover cell
		move, ok := director.actCertain([]*observation{small(), large(2)})
		if !ok {
			t.Fatal("expected a certain move")
		}
		if !move.ToggleFlag {
			t.Error("expected a flag, got a reveal")
		}
		if move.Pos != leftoverPos {
			t.Errorf("expected a move at %v, got %v", leftoverPos, move.Pos)
		}
	})
}

func TestActCertainNothingCertain(t *testing.T) {
	director := New(1)

	obs := &observation{
		origin:   game.Position{Row: 0, Col: 0},
		numMines: 1,
		cells: makePositions(
			game.Position{Row: 0, Col: 1},
			game.Position{Row: 1, Col: 1},
		),
	}

	if move, ok := director.actCertain([]*observation{obs}); ok {
		t.Errorf("expected no certain move, got %v", move)
	}
}

func TestDirectorSolvesPocketBoard(t *testing.T) {
	// Three mines wall off the top-left corner and everything else is
	// already open. Certain play flags all three mines, leaving the corner
	// as the only cell left to pick
	session, err := game.NewSession(game.Config{
		Seed:     1,
		Snapshot: &game.BoardSnapshot{SerializedBoard: "#O..\nOO..\n....\n...."},
	})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	director := New(3)
	director.Init(session)
	defer director.End()

	maxMoves := 2 * session.Board().NumCells()
	for moves := 0; session.Status() == game.Playing; moves++ {
		if moves > maxMoves {
			t.Fatal("director failed to finish the game")
		}
		move, ok := director.Act()
		if !ok {
			t.Fatal("director ran out of moves while still playing")
		}
		if err := session.Apply(move); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
	}

	if session.Status() != game.Won {
		t.Fatalf("expected the board solved, got status %v", session.Status())
	}

	for _, cell := range session.Board().Cells() {
		if cell.Flagged && !cell.Mine {
			t.Errorf("%v flagged but not a mine", cell)
		}
	}
}

func TestDirectorFinishesSeededGame(t *testing.T) {
	session, err := game.NewSession(game.Config{Difficulty: game.Easy, Seed: 17})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	director := New(29)
	director.Init(session)
	defer director.End()

	// Every move opens or flags a cell it had not before, so twice the
	// cell count bounds the game
	maxMoves := 2 * session.Board().NumCells()
	for moves := 0; session.Status() == game.Playing; moves++ {
		if moves > maxMoves {
			t.Fatal("director failed to finish the game")
		}
		move, ok := director.Act()
		if !ok {
			t.Fatal("director ran out of moves while still playing")
		}
		if err := session.Apply(move); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
	}

	if session.Status() == game.Playing {
		t.Error("game still playing")
	}
}
