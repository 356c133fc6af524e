package santorini

// Game is the stateless description of the Santorini rules engine:
// its constants and an initial-State factory. It plays the role the
// abstract Game/State capability pair plays in the outer
// general-game-playing framework this engine plugs into (§6, §9) —
// the framework owns the polymorphic Game/State interfaces themselves;
// this type only needs to satisfy their shape.
type Game struct{}

// NewGame returns the (stateless) Santorini game description.
func NewGame() Game {
	return Game{}
}

// NumDistinctActions is the size of the action space (§6): 428.
func (Game) NumDistinctActions() int {
	return NumDistinctActions
}

// NumPlayers is always 2.
func (Game) NumPlayers() int {
	return 2
}

// UtilitySum is 0: Santorini is zero-sum.
func (Game) UtilitySum() float64 {
	return 0
}

// MinUtility is the minimum possible per-player return.
func (Game) MinUtility() float64 {
	return -1
}

// MaxUtility is the maximum possible per-player return.
func (Game) MaxUtility() float64 {
	return 1
}

// ObservationTensorShape is the fixed [6,5,5] observation shape.
func (Game) ObservationTensorShape() [3]int {
	return ObservationTensorShape()
}

// MaxGameLength upper-bounds the number of plies: 2*2 for the
// placement phase plus 25 cells * 4 builds to dome every cell (100),
// per §6: 2*2 + 25*(3+1) = 104.
func (Game) MaxGameLength() int {
	return 2*2 + NumCells*(WinHeight+1)
}

// NewInitialState returns a fresh game position.
func (Game) NewInitialState() *State {
	return NewInitialState()
}

// ActionToString renders an action in the text form of §4.2. The
// player parameter is accepted for framework-interface compatibility;
// Santorini's action text does not depend on which player asks.
func (Game) ActionToString(player Player, a Action) string {
	return a.String()
}

// StringToAction parses the text form produced by ActionToString. It
// never mutates state: on a malformed string it returns an error and
// leaves the caller's state untouched (§7).
func (Game) StringToAction(player Player, s string) (Action, error) {
	return ParseAction(s)
}
