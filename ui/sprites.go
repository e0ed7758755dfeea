package ui

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/faiface/pixel"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/they4kman/minefield/game"
)

var cellSprites = map[game.CellState]*pixel.Sprite{}

const bevelWidth = 2

var (
	tileFace  = color.RGBA{R: 0xbd, G: 0xbd, B: 0xbd, A: 0xff}
	tileLight = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	tileDark  = color.RGBA{R: 0x7b, G: 0x7b, B: 0x7b, A: 0xff}
	mineBlack = color.RGBA{A: 0xff}
	flagRed   = color.RGBA{R: 0xff, A: 0xff}
)

// numberColors holds the classic digit colors, indexed by mine count.
var numberColors = [9]color.RGBA{
	{},
	{B: 0xff, A: 0xff},
	{G: 0x7b, A: 0xff},
	{R: 0xff, A: 0xff},
	{B: 0x7b, A: 0xff},
	{R: 0x7b, A: 0xff},
	{G: 0x7b, B: 0x7b, A: 0xff},
	{A: 0xff},
	{R: 0x7b, G: 0x7b, B: 0x7b, A: 0xff},
}

// makeSpritesheet draws the tile sheet, one cellWidth-square tile per
// CellState, top to bottom in CellStates order, and slices it into sprites.
func makeSpritesheet() pixel.Picture {
	img := image.NewRGBA(image.Rect(0, 0, cellWidth, cellWidth*len(game.CellStates)))
	for i, state := range game.CellStates {
		tileRect := image.Rect(0, i*cellWidth, cellWidth, (i+1)*cellWidth)
		draw.Draw(img, tileRect, drawTile(state), image.Point{}, draw.Src)
	}

	spritesheet := pixel.PictureDataFromImage(img)

	x1, x2 := float64(0), float64(cellWidth)
	y2 := spritesheet.Bounds().Max.Y
	for _, state := range game.CellStates {
		frame := pixel.R(x1, y2-cellWidth, x2, y2)
		cellSprites[state] = pixel.NewSprite(spritesheet, frame)

		y2 -= cellWidth
	}

	return spritesheet
}

func drawTile(state game.CellState) *image.RGBA {
	tile := image.NewRGBA(image.Rect(0, 0, cellWidth, cellWidth))

	switch state {
	case game.Unrevealed, game.Flag:
		drawRaised(tile)
	case game.MineLosing:
		fill(tile, tile.Bounds(), flagRed)
	default:
		drawSunken(tile)
	}

	switch {
	case state >= game.Number1 && state <= game.Number8:
		drawDigit(tile, int(state))
	case state == game.Flag:
		drawFlag(tile)
	case state == game.Mine, state == game.MineUnrevealed, state == game.MineLosing:
		drawMine(tile)
	case state == game.FlagWrong:
		drawMine(tile)
		drawCross(tile)
	}

	return tile
}

func fill(img *image.RGBA, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// drawRaised bevels the tile so closed cells look pressed out.
func drawRaised(tile *image.RGBA) {
	fill(tile, tile.Bounds(), tileFace)
	fill(tile, image.Rect(0, 0, cellWidth, bevelWidth), tileLight)
	fill(tile, image.Rect(0, 0, bevelWidth, cellWidth), tileLight)
	fill(tile, image.Rect(0, cellWidth-bevelWidth, cellWidth, cellWidth), tileDark)
	fill(tile, image.Rect(cellWidth-bevelWidth, 0, cellWidth, cellWidth), tileDark)
}

// drawSunken flattens the tile with a grid line along the top and left.
func drawSunken(tile *image.RGBA) {
	fill(tile, tile.Bounds(), tileFace)
	fill(tile, image.Rect(0, 0, cellWidth, 1), tileDark)
	fill(tile, image.Rect(0, 0, 1, cellWidth), tileDark)
}

func drawDigit(tile *image.RGBA, count int) {
	drawer := font.Drawer{
		Dst:  tile,
		Src:  image.NewUniform(numberColors[count]),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(5, 12),
	}
	drawer.DrawString(strconv.Itoa(count))
}

func drawMine(tile *image.RGBA) {
	const center, radius = cellWidth / 2, 3
	for x := -radius; x <= radius; x++ {
		for y := -radius; y <= radius; y++ {
			if x*x+y*y <= radius*radius {
				tile.Set(center+x, center+y, mineBlack)
			}
		}
	}
	fill(tile, image.Rect(center, center-radius-2, center+1, center+radius+3), mineBlack)
	fill(tile, image.Rect(center-radius-2, center, center+radius+3, center+1), mineBlack)
}

func drawFlag(tile *image.RGBA) {
	fill(tile, image.Rect(5, 3, 10, 7), flagRed)
	fill(tile, image.Rect(9, 3, 10, 11), mineBlack)
	fill(tile, image.Rect(5, 10, 12, 12), mineBlack)
}

func drawCross(tile *image.RGBA) {
	for i := 2; i < cellWidth-2; i++ {
		tile.Set(i, i, flagRed)
		tile.Set(i-1, i, flagRed)
		tile.Set(cellWidth-1-i, i, flagRed)
		tile.Set(cellWidth-i, i, flagRed)
	}
}
