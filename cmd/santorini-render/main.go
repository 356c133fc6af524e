// Command santorini-render opens a window replaying a Santorini game
// from its action history: a static viewer, not an interactive player
// — it takes no mouse or keyboard input and runs no search.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kbrandt/santorini"
	"github.com/kbrandt/santorini/internal/render"
)

var history = flag.String("history", "", "space-separated action history to replay (e.g. from an archived record); empty shows the initial position")

func main() {
	flag.Parse()

	actions, err := parseHistory(*history)
	if err != nil {
		log.Fatalf("santorini-render: %v", err)
	}

	viewer := render.NewViewer(actions)

	ebiten.SetWindowSize(render.ScreenWidth, render.ScreenHeight)
	ebiten.SetWindowTitle("Santorini")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}

func parseHistory(s string) ([]santorini.Action, error) {
	fields := strings.Fields(s)
	actions := make([]santorini.Action, 0, len(fields))
	for _, f := range fields {
		a, err := santorini.ParseAction(f)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}
