package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Config carries everything needed to start a Session.
type Config struct {
	Difficulty Difficulty

	// Seed for the board RNG; 0 seeds from the clock.
	Seed int64

	// Snapshot, when set, supplies the starting board instead of Generate.
	Snapshot *BoardSnapshot
}

// Session is one run of the game: a board and the status of play on it.
// A Session is not safe for concurrent use; callers drive it from a single
// goroutine, or serialize whole actions around it.
type Session struct {
	difficulty Difficulty
	board      *Board
	status     Status
	rng        *rand.Rand
}

// NewSession generates a fresh board and begins play on it.
func NewSession(config Config) (*Session, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := &Session{
		difficulty: config.Difficulty,
		rng:        rand.New(rand.NewSource(seed)),
	}

	if config.Snapshot != nil {
		board, err := config.Snapshot.Board()
		if err != nil {
			return nil, err
		}
		session.board = board
		session.status = evaluate(board)
	} else if err := session.Restart(config.Difficulty); err != nil {
		return nil, err
	}

	Log.WithFields(logrus.Fields{
		"difficulty": session.difficulty,
		"seed":       seed,
	}).Debug("session started")

	return session, nil
}

// Restart abandons the current game and begins a new one. The next board is
// drawn from the session's random stream, so a seeded session replays the
// same sequence of boards.
func (session *Session) Restart(difficulty Difficulty) error {
	board, err := Generate(difficulty, session.rng)
	if err != nil {
		return err
	}

	session.difficulty = difficulty
	session.board = board
	session.status = Playing
	return nil
}

// Board returns the current snapshot.
func (session *Session) Board() *Board {
	return session.board
}

// Status returns the current game status.
func (session *Session) Status() Status {
	return session.status
}

// Difficulty returns the difficulty of the current board.
func (session *Session) Difficulty() Difficulty {
	return session.difficulty
}

// Reveal opens the cell at pos and applies the outcome: revealing a mine
// loses the game, even when the same reveal would have satisfied the win
// condition; opening the last safe cell wins it. Reveals after the game has
// ended are ignored.
func (session *Session) Reveal(pos Position) error {
	if session.status != Playing {
		return nil
	}

	next, err := session.board.Reveal(pos)
	if err != nil {
		return err
	}
	if next == session.board {
		return nil
	}
	session.board = next

	revealed, _ := next.CellAt(pos)
	switch {
	case revealed.Mine:
		session.status = Lost
	case next.cleared():
		session.status = Won
	}

	if session.status != Playing {
		Log.WithFields(logrus.Fields{
			"status": session.status,
			"pos":    pos,
		}).Debug("game over")
	}

	return nil
}

// ToggleFlag flips the flag on the closed cell at pos. Flags never end the
// game; toggles after the game has ended are ignored.
func (session *Session) ToggleFlag(pos Position) error {
	if session.status != Playing {
		return nil
	}

	next, err := session.board.ToggleFlag(pos)
	if err != nil {
		return err
	}
	session.board = next
	return nil
}

// evaluate derives the status of a board in isolation. Only snapshot-loaded
// boards need this; live play transitions in Reveal, where the revealed
// cell decides between a loss and a win.
func evaluate(board *Board) Status {
	cleared := true
	for _, cell := range board.cells {
		if cell.Open && cell.Mine {
			return Lost
		}
		if !cell.Open && !cell.Mine {
			cleared = false
		}
	}
	if cleared {
		return Won
	}
	return Playing
}
