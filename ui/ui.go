package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/gammazero/deque"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/they4kman/minefield/game"
)

const (
	cellWidth      = 16
	headerHeight   = 50
	minWindowWidth = 200
)

// Config wires a session and an optional director into the window loop.
type Config struct {
	Session  *game.Session
	Director game.Director

	// Transparency of director move highlights when first displayed
	HighlightBaseAlpha float64
	// Total time a director move highlight stays visible
	HighlightDuration time.Duration
	// Delay between director moves
	DirectorTick time.Duration
}

// NewConfig returns a Config for the session with the standard pacing.
func NewConfig(session *game.Session) Config {
	return Config{
		Session:            session,
		HighlightBaseAlpha: 0.5,
		HighlightDuration:  200 * time.Millisecond,
		DirectorTick:       250 * time.Millisecond,
	}
}

// highlight marks a director move on screen until it fades out.
type highlight struct {
	move       game.Move
	firstShown time.Time
}

// Run opens the window and plays the session until the window closes. Left
// click reveals, right click flags, and Enter starts a new game once the
// current one ends. With a director, Space pauses it and Right Arrow single
// steps it while paused.
func Run(config Config) {
	session := config.Session

	cfg := pixelgl.WindowConfig{
		Title:  "minefield",
		Bounds: windowBounds(session.Board().Dim()),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	spritesheet := makeSpritesheet()
	batch := pixel.NewBatch(&pixel.TrianglesData{}, spritesheet)

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	var scoreText *text.Text
	var cellPosText *text.Text
	var boardTopLeft pixel.Vec

	layoutWindow := func() {
		win.SetBounds(windowBounds(session.Board().Dim()))

		topLeft := win.Bounds().Vertices()[1]
		topRight := win.Bounds().Max
		boardTopLeft = topLeft.Sub(pixel.V(0, headerHeight))

		scoreText = text.New(topLeft.Add(pixel.V(20, -30)), basicAtlas)
		scoreText.Color = colornames.Black

		cellPosText = text.New(topRight.Add(pixel.V(-60, -30)), basicAtlas)
		cellPosText.Color = colornames.Darkcyan
	}
	layoutWindow()

	var highlights deque.Deque[highlight]
	paused := false
	directorDone := false

	if config.Director != nil {
		config.Director.Init(session)
	}

	stepDirector := func() {
		move, ok := config.Director.Act()
		if !ok {
			return
		}
		if err := session.Apply(move); err != nil {
			game.Log.WithError(err).Error("director move failed")
			return
		}
		highlights.PushBack(highlight{move: move, firstShown: time.Now()})
	}

	restart := func(startPaused bool) {
		if err := session.Restart(session.Difficulty()); err != nil {
			game.Log.WithError(err).Error("restart failed")
			return
		}
		layoutWindow()
		highlights.Clear()
		paused = startPaused
		directorDone = false
		if config.Director != nil {
			config.Director.Init(session)
		}
	}

	// The snapshot currently drawn into the batch. Actions swap the
	// session's snapshot wholesale, so a pointer comparison works as the
	// dirty check.
	var drawnBoard *game.Board
	var drawnStatus game.Status

	var (
		frames       = 0
		second       = time.Tick(time.Second)
		directorTick = time.Tick(config.DirectorTick)
	)

	bgColor := colornames.Gainsboro
	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		board := session.Board()
		status := session.Status()

		scoreText.Clear()
		scoreText.Color = colornames.Black
		fmt.Fprintf(scoreText, "%03d", board.NumMines()-board.NumFlags())
		if status == game.Won {
			scoreText.Color = colornames.Green
			fmt.Fprint(scoreText, "   WIN!")
		} else if status == game.Lost {
			scoreText.Color = colornames.Red
			fmt.Fprint(scoreText, "   LOSE :(")
		}
		scoreText.Draw(win, pixel.IM)

		var hovered game.Cell
		hoveredOK := false
		if win.MouseInsideWindow() {
			hovered, hoveredOK = board.CellAt(gridPos(boardTopLeft, win.MousePosition()))
		}

		cellPosText.Clear()
		if hoveredOK {
			fmt.Fprintf(cellPosText, "(%d, %d)", hovered.Pos.Row, hovered.Pos.Col)
			cellPosText.Draw(win, pixel.IM)
		}

		if board != drawnBoard || status != drawnStatus {
			batch.Clear()
			for _, cell := range board.Cells() {
				sprite := cellSprites[cell.DisplayState(status)]
				sprite.Draw(batch, pixel.IM.Moved(cellCenter(boardTopLeft, cell.Pos)))
			}
			drawnBoard = board
			drawnStatus = status
		}
		batch.Draw(win)

		drawHighlights(win, &highlights, config, boardTopLeft)

		if status == game.Playing {
			if config.Director != nil {
				// Pause with Space, single-step with Right Arrow
				if win.JustPressed(pixelgl.KeySpace) {
					paused = !paused
				}

				if paused && (win.JustPressed(pixelgl.KeyRight) || win.Repeated(pixelgl.KeyRight)) {
					stepDirector()
				} else if !paused {
					select {
					case <-directorTick:
						stepDirector()
					default:
					}
				}
			}

			if hoveredOK {
				if win.JustPressed(pixelgl.MouseButtonLeft) {
					if err := session.Reveal(hovered.Pos); err != nil {
						game.Log.WithError(err).Error("reveal failed")
					}
				}
				if win.JustPressed(pixelgl.MouseButtonRight) {
					if err := session.ToggleFlag(hovered.Pos); err != nil {
						game.Log.WithError(err).Error("flag failed")
					}
				}
			}
		} else {
			if config.Director != nil && !directorDone {
				config.Director.End()
				directorDone = true
			}

			// Start a new game with Enter, or a new paused game with
			// Space or Right Arrow
			if win.JustPressed(pixelgl.KeyEnter) {
				restart(false)
			} else if win.JustPressed(pixelgl.KeySpace) || win.JustPressed(pixelgl.KeyRight) {
				restart(true)
			}
		}
	}
}

func drawHighlights(win *pixelgl.Window, highlights *deque.Deque[highlight], config Config, boardTopLeft pixel.Vec) {
	now := time.Now()

	// Expired highlights fall off the front; the latest always stays, so a
	// single step made while paused remains visible.
	for highlights.Len() > 1 {
		if now.Sub(highlights.Front().firstShown) <= config.HighlightDuration {
			break
		}
		highlights.PopFront()
	}

	if highlights.Len() == 0 {
		return
	}

	imd := imdraw.New(nil)
	for i := 0; i < highlights.Len(); i++ {
		h := highlights.At(i)

		baseColor := pixel.RGB(1, 0, 0)
		if h.move.ToggleFlag {
			baseColor = pixel.RGB(0, 0, 1)
		}

		alpha := config.HighlightBaseAlpha
		if i != highlights.Len()-1 {
			progress := 1 - float64(now.Sub(h.firstShown))/float64(config.HighlightDuration)
			alpha *= inOutCubic(progress)
		}

		start := boardTopLeft.Add(pixel.V(
			float64(cellWidth*h.move.Pos.Col),
			-float64(cellWidth*(h.move.Pos.Row+1)),
		))
		end := start.Add(pixel.V(cellWidth, cellWidth))

		imd.Color = baseColor.Mul(pixel.Alpha(alpha))
		imd.Push(start, end)
		imd.Rectangle(0) // 0 = filled
	}
	imd.Draw(win)
}

func inOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}

func windowBounds(dim int) pixel.Rect {
	return pixel.R(
		0, 0,
		math.Max(float64(dim*cellWidth), minWindowWidth),
		float64(dim*cellWidth+headerHeight),
	)
}

// cellCenter maps a cell position to the center of its tile on screen.
func cellCenter(boardTopLeft pixel.Vec, pos game.Position) pixel.Vec {
	return boardTopLeft.Add(pixel.V(
		float64(cellWidth*pos.Col)+cellWidth/2,
		-(float64(cellWidth*pos.Row) + cellWidth/2),
	))
}

// gridPos maps a point in window space to the cell under it.
func gridPos(boardTopLeft pixel.Vec, mouse pixel.Vec) game.Position {
	return game.Position{
		Row: int(math.Floor((boardTopLeft.Y - mouse.Y) / cellWidth)),
		Col: int(math.Floor(mouse.X / cellWidth)),
	}
}
