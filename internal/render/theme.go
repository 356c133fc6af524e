// Package render draws a Santorini position with Ebitengine: a static,
// non-interactive board viewer (no move input, no search) used by
// cmd/santorini-render to inspect a position or step through an
// archived game's action history.
package render

import "image/color"

// Theme is the board's color scheme, one tint per building height plus
// the two worker colors.
type Theme struct {
	GroundLevel  color.RGBA
	FloorColors  [5]color.RGBA // index by cell height, 4 = domed
	Worker0Color color.RGBA
	Worker1Color color.RGBA
	GridLine     color.RGBA
	Background   color.RGBA
	TextColor    color.RGBA
}

// DefaultTheme returns the color scheme used when none is supplied.
func DefaultTheme() *Theme {
	return &Theme{
		FloorColors: [5]color.RGBA{
			{222, 213, 190, 255}, // ground
			{199, 181, 143, 255}, // floor 1
			{176, 149, 97, 255},  // floor 2
			{153, 117, 61, 255},  // floor 3
			{90, 90, 96, 255},    // dome
		},
		Worker0Color: color.RGBA{70, 130, 200, 255},  // blue
		Worker1Color: color.RGBA{200, 80, 70, 255},   // red
		GridLine:     color.RGBA{40, 40, 40, 255},
		Background:   color.RGBA{30, 32, 36, 255},
		TextColor:    color.RGBA{235, 235, 235, 255},
	}
}
