package render

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/kbrandt/santorini"
)

// SquareSize is the on-screen pixel size of one board cell.
const SquareSize = 96

// ScreenWidth and ScreenHeight size the window around the 5x5 board.
const (
	ScreenWidth  = santorini.BoardSize * SquareSize
	ScreenHeight = santorini.BoardSize * SquareSize
)

var labelFace *text.GoTextFace

func init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("render: load label font: %v", err)
		return
	}
	labelFace = &text.GoTextFace{Source: src, Size: 16}
}

// Renderer draws a single santorini.State to an ebiten.Image.
type Renderer struct {
	theme   *Theme
	sprites *SpriteSet
}

// NewRenderer builds a Renderer with the default theme and a sprite
// set sized for SquareSize.
func NewRenderer() *Renderer {
	return &Renderer{
		theme:   DefaultTheme(),
		sprites: NewSpriteSet(int(SquareSize * 0.7)),
	}
}

// Draw renders the board grid, building heights, workers and domes of
// s onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, s *santorini.State) {
	screen.Fill(r.theme.Background)

	for row := 0; row < santorini.BoardSize; row++ {
		for col := 0; col < santorini.BoardSize; col++ {
			idx := santorini.NewCellIndex(row, col)
			cell := s.CellAt(idx)
			r.drawCell(screen, row, col, cell)
		}
	}

	if labelFace != nil {
		msg := fmt.Sprintf("current=%s outcome=%s", s.CurrentPlayer(), s.Outcome())
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, float64(ScreenHeight-24))
		op.ColorScale.ScaleWithColor(r.theme.TextColor)
		text.Draw(screen, msg, labelFace, op)
	}
}

func (r *Renderer) drawCell(screen *ebiten.Image, row, col int, cell santorini.Cell) {
	x := float32(col * SquareSize)
	y := float32(row * SquareSize)

	vector.DrawFilledRect(screen, x, y, SquareSize, SquareSize, r.theme.FloorColors[cell.Height()], false)
	vector.StrokeRect(screen, x, y, SquareSize, SquareSize, 1, r.theme.GridLine, false)

	if labelFace != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)+4, float64(y)+2)
		op.ColorScale.ScaleWithColor(r.theme.TextColor)
		text.Draw(screen, fmt.Sprintf("%d", cell.Height()), labelFace, op)
	}

	switch cell.Occupant() {
	case santorini.Worker0:
		r.drawGlyph(screen, r.sprites.Worker(0), x, y)
	case santorini.Worker1:
		r.drawGlyph(screen, r.sprites.Worker(1), x, y)
	}
	if cell.IsDomed() {
		r.drawGlyph(screen, r.sprites.Dome(), x, y)
	}
}

func (r *Renderer) drawGlyph(screen *ebiten.Image, glyph *ebiten.Image, x, y float32) {
	if glyph == nil {
		return
	}
	bounds := glyph.Bounds()
	margin := (SquareSize - bounds.Dx()) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x)+float64(margin), float64(y)+float64(margin))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(glyph, op)
}
