package game

// Move is a single action a director wants made.
type Move struct {
	Pos Position

	// ToggleFlag marks the move as a flag toggle rather than a reveal.
	ToggleFlag bool
}

// Director is an automatic player. Init is called once per game before any
// Act; Act proposes the director's next move, or ok=false when it has none;
// End is called when the game finishes. Directors only read the session:
// the loop driving the director applies the moves.
type Director interface {
	Init(*Session)
	Act() (move Move, ok bool)
	End()
}

// Apply performs the move against the session.
func (session *Session) Apply(move Move) error {
	if move.ToggleFlag {
		return session.ToggleFlag(move.Pos)
	}
	return session.Reveal(move.Pos)
}
