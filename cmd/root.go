package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/minefield/director/deliberate"
	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/ui"
)

var (
	difficulty   = game.Easy
	seed         int64
	directorName string
	headless     bool
)

var rootCmd = &cobra.Command{
	Use:   "minefield",
	Short: "Play manual or computer-driven minesweeping",
	Long: `minefield is a minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually
	minefield

Use the director flag to make the computer play for you
	minefield --director deliberate
`,
	Run: func(cmd *cobra.Command, args []string) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		session, err := game.NewSession(game.Config{Difficulty: difficulty, Seed: seed})
		if err != nil {
			game.Log.WithError(err).Fatal("could not start game")
		}

		director, err := makeDirector(directorName)
		if err != nil {
			game.Log.Fatal(err)
		}

		if headless {
			if director == nil {
				game.Log.Fatal("--headless requires --director")
			}
			runHeadless(session, director)
			return
		}

		config := ui.NewConfig(session)
		config.Director = director
		pixelgl.Run(func() {
			ui.Run(config)
		})
	},
}

func Execute() {
	_ = godotenv.Load()
	if level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		game.Log.SetLevel(level)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getEnv(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}

func makeDirector(name string) (game.Director, error) {
	switch name {
	case "":
		return nil, nil
	case "random":
		return random.New(seed), nil
	case "deliberate":
		return deliberate.New(seed), nil
	}
	return nil, fmt.Errorf("unknown director %q", name)
}

func runHeadless(session *game.Session, director game.Director) {
	director.Init(session)

	moves := 0
	for session.Status() == game.Playing {
		move, ok := director.Act()
		if !ok {
			break
		}
		if err := session.Apply(move); err != nil {
			game.Log.WithError(err).Fatal("director move failed")
		}
		moves++
	}
	director.End()

	game.Log.WithFields(logrus.Fields{
		"status": session.Status(),
		"moves":  moves,
	}).Info("game finished")
	game.Log.Debug("\n" + session.Board().Snapshot(seed).Serialize())
}

type difficultyValue game.Difficulty

func newDifficultyValue(val game.Difficulty, p *game.Difficulty) *difficultyValue {
	*p = val
	return (*difficultyValue)(p)
}

func (difficultyVal *difficultyValue) String() string {
	return game.Difficulty(*difficultyVal).String()
}

func (difficultyVal *difficultyValue) Set(value string) error {
	parsed, err := game.ParseDifficulty(value)
	if err != nil {
		return err
	}
	*difficultyVal = difficultyValue(parsed)
	return nil
}

func (difficultyVal *difficultyValue) Type() string {
	return "game.Difficulty"
}

func init() {
	rootCmd.Flags().Var(newDifficultyValue(game.Easy, &difficulty), "difficulty", `Board difficulty.
easy: 9x9 cells, 10 mines
normal: 16x16 cells, 40 mines`)
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for board generation (0 seeds from the clock)")
	rootCmd.Flags().StringVarP(&directorName, "director", "d", "", "Make the computer play (random or deliberate)")
	rootCmd.Flags().BoolVar(&headless, "headless", false, "Run the director without a window and log the outcome")
}
