package game

import "errors"

// Difficulty selects one of the fixed board layouts.
type Difficulty int

const (
	// Easy is a 9x9 board with 10 mines.
	Easy Difficulty = iota
	// Normal is a 16x16 board with 40 mines.
	Normal
)

var (
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrTooManyMines      = errors.New("mine count must be less than the number of cells")
	ErrOutOfBounds       = errors.New("position out of bounds")
)

var difficulties = map[Difficulty]struct {
	dim      int
	numMines int
}{
	Easy:   {dim: 9, numMines: 10},
	Normal: {dim: 16, numMines: 40},
}

var difficultyNames = map[Difficulty]string{
	Easy:   "easy",
	Normal: "normal",
}

func (difficulty Difficulty) String() string {
	if name, ok := difficultyNames[difficulty]; ok {
		return name
	}
	return "unknown"
}

func (difficulty Difficulty) params() (dim, numMines int, err error) {
	params, ok := difficulties[difficulty]
	if !ok {
		return 0, 0, ErrInvalidDifficulty
	}
	return params.dim, params.numMines, nil
}

// ParseDifficulty maps a difficulty name to its Difficulty value.
func ParseDifficulty(name string) (Difficulty, error) {
	for difficulty, difficultyName := range difficultyNames {
		if difficultyName == name {
			return difficulty, nil
		}
	}
	return 0, ErrInvalidDifficulty
}
