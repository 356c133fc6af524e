package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kbrandt/santorini"
)

// stepInterval is how many Update ticks elapse (at ebiten's default 60
// TPS) before the viewer advances to the next archived action. It has
// no input handling — it replays a fixed history, not an interactive
// session a player drives.
const stepInterval = 30

// Viewer implements ebiten.Game: it replays a fixed action history
// starting from the initial position, advancing one action every
// stepInterval ticks, and holds on the final position once the
// history is exhausted.
type Viewer struct {
	renderer *Renderer
	states   []*santorini.State // states[i] is the position after i actions
	tick     int
	frame    int
}

// NewViewer builds a Viewer that replays actions from the initial
// Santorini position. An invalid action in the list stops replay at
// that point rather than panicking.
func NewViewer(actions []santorini.Action) *Viewer {
	s := santorini.NewGame().NewInitialState()
	states := []*santorini.State{s.Clone()}
	for _, a := range actions {
		if s.IsTerminal() || !s.LegalActionsContain(a) {
			break
		}
		s.Apply(a)
		states = append(states, s.Clone())
	}
	return &Viewer{renderer: NewRenderer(), states: states}
}

// Update advances the replay; it never reads input.
func (v *Viewer) Update() error {
	v.tick++
	if v.tick >= stepInterval {
		v.tick = 0
		if v.frame < len(v.states)-1 {
			v.frame++
		}
	}
	return nil
}

// Draw renders the current replay frame.
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.renderer.Draw(screen, v.states[v.frame])
}

// Layout reports the fixed window size; the viewer does not scale with
// the window.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
