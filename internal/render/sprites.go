package render

import (
	"bytes"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// workerSVG is a worker glyph: a filled circle with a darker ring,
// parameterized by hex fill color so the same markup serves both
// players.
const workerSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64">
  <circle cx="32" cy="34" r="22" fill="%s" stroke="#1a1a1a" stroke-width="3"/>
  <circle cx="32" cy="18" r="10" fill="%s" stroke="#1a1a1a" stroke-width="2"/>
</svg>`

// domeSVG is the capped-tower glyph drawn on a domed cell.
const domeSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64">
  <path d="M8,48 A24,24 0 0 1 56,48 Z" fill="%s" stroke="#1a1a1a" stroke-width="3"/>
</svg>`

// SpriteSet holds the rasterized glyphs used to draw one board: the
// two worker markers and the dome cap, rendered once at load time the
// way the chess UI this package descends from rasterizes its piece set
// once and blits it every frame.
type SpriteSet struct {
	worker [2]*ebiten.Image
	dome   *ebiten.Image
}

// NewSpriteSet rasterizes the worker and dome glyphs at the given
// pixel size.
func NewSpriteSet(size int) *SpriteSet {
	ss := &SpriteSet{}
	ss.worker[0] = rasterizeSVG(fmt.Sprintf(workerSVG, "#4682c8", "#355f96"), size)
	ss.worker[1] = rasterizeSVG(fmt.Sprintf(workerSVG, "#c85046", "#963b34"), size)
	ss.dome = rasterizeSVG(fmt.Sprintf(domeSVG, "#5a5a60"), size)
	return ss
}

// Worker returns the glyph for player p's worker (p is 0 or 1).
func (ss *SpriteSet) Worker(p int) *ebiten.Image {
	return ss.worker[p]
}

// Dome returns the dome-cap glyph.
func (ss *SpriteSet) Dome() *ebiten.Image {
	return ss.dome
}

// rasterizeSVG parses and rasterizes an SVG document into an
// ebiten.Image of size x size pixels, returning nil (logged) on
// failure rather than panicking — a malformed glyph should not crash
// the viewer.
func rasterizeSVG(svg string, size int) *ebiten.Image {
	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(svg)))
	if err != nil {
		log.Printf("render: parse glyph svg: %v", err)
		return nil
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return ebiten.NewImageFromImage(rgba)
}
