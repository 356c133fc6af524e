package santorini

import (
	"fmt"
	"strings"
)

// State is the complete, self-contained game position: board, worker
// positions, placement progress, whose turn it is, the outcome if
// decided, and a cached legal-action set. It has value semantics —
// Clone is the only way a caller should branch it, exactly as a
// search/rollout caller would branch board.Position via Copy.
type State struct {
	board [NumCells]Cell

	// workers[p] is player p's two worker cells, canonically ordered
	// (workers[p][0] <= workers[p][1]). Only meaningful once that
	// player has placed — see numWorkersPlaced.
	workers [2][2]CellIndex

	numWorkersPlaced int // 0, 2, or 4
	current          Player
	outcome          Outcome
	hash             uint64

	legal   ActionList
	history []Action
}

// NewInitialState returns a fresh Santorini position: empty board, no
// workers placed, Player0 to move, cached legal actions equal to the
// full 300-entry placement enumeration.
func NewInitialState() *State {
	s := &State{
		current: Player0,
		outcome: Ongoing,
	}
	s.recomputeHash()
	s.computeLegalActions()
	return s
}

// Clone returns an independent copy; mutating the clone never affects
// the original and vice versa.
func (s *State) Clone() *State {
	c := *s
	c.history = append([]Action(nil), s.history...)
	return &c
}

// CurrentPlayer reports whose turn it is, or NoPlayer once the game
// has ended (per §4.6/§9 — the internal field still identifies the
// side that lost, for Returns).
func (s *State) CurrentPlayer() Player {
	if s.IsTerminal() {
		return NoPlayer
	}
	return s.current
}

// IsTerminal reports whether the game has been decided.
func (s *State) IsTerminal() bool {
	return s.outcome != Ongoing
}

// Outcome returns the decided outcome, or Ongoing.
func (s *State) Outcome() Outcome {
	return s.outcome
}

// NumWorkersPlaced returns how many of the 4 total workers are on the
// board (0, 2, or 4).
func (s *State) NumWorkersPlaced() int {
	return s.numWorkersPlaced
}

// CellAt returns the cell contents at idx.
func (s *State) CellAt(idx CellIndex) Cell {
	return s.board[idx]
}

// WorkerCells returns player p's two worker cells in canonical order.
// Only meaningful once p has placed (see NumWorkersPlaced).
func (s *State) WorkerCells(p Player) (CellIndex, CellIndex) {
	w := s.workers[p]
	return w[0], w[1]
}

// LegalActions returns the actions available from this state. Empty
// iff IsTerminal (§8, invariant 5).
func (s *State) LegalActions() []Action {
	return s.legal.Slice()
}

// LegalActionsContain reports whether a is currently legal, by a
// linear scan of the cached legal-action list.
func (s *State) LegalActionsContain(a Action) bool {
	return s.legal.Contains(a)
}

// Returns reports each player's payoff: [+1,-1]/[-1,+1] on a decided
// game, [0,0] while ongoing.
func (s *State) Returns() [2]float64 {
	winner, decided := s.outcome.Winner()
	if !decided {
		return [2]float64{0, 0}
	}
	if winner == Player0 {
		return [2]float64{1, -1}
	}
	return [2]float64{-1, 1}
}

// String renders the board the way ObservationString does, plus a
// one-line status footer — a debug aid, not part of the §6 contract.
func (s *State) String() string {
	var sb strings.Builder
	sb.WriteString(s.ObservationString(Player0))
	fmt.Fprintf(&sb, "placed=%d current=%s outcome=%s\n", s.numWorkersPlaced, s.current, s.outcome)
	return sb.String()
}

// Validate checks the invariants of §3 and §8. It is not called on the
// hot path; use it from tests and from debug builds guarded by
// DebugAssertions.
func (s *State) Validate() error {
	occupied := 0
	for idx := 0; idx < NumCells; idx++ {
		c := s.board[idx]
		if c.Height() < 0 || c.Height() > MaxHeight {
			return fmt.Errorf("santorini: cell %d has invalid height %d", idx, c.Height())
		}
		if c.IsOccupied() {
			occupied++
		}
	}
	if occupied != s.numWorkersPlaced {
		return fmt.Errorf("santorini: %d occupied cells but numWorkersPlaced=%d", occupied, s.numWorkersPlaced)
	}

	for p := Player0; p <= Player1; p++ {
		placed := s.numWorkersPlaced >= 2*(int(p)+1)
		if !placed {
			continue
		}
		a, b := s.workers[p][0], s.workers[p][1]
		if a > b {
			return fmt.Errorf("santorini: player %s worker pair not canonically ordered: %d,%d", p, a, b)
		}
		for _, cell := range [2]CellIndex{a, b} {
			if !cell.IsValid() {
				return fmt.Errorf("santorini: player %s has invalid worker cell %d", p, cell)
			}
			c := s.board[cell]
			if c.Occupant() != occupantOf(p) {
				return fmt.Errorf("santorini: cell %d does not carry player %s's occupant marker", cell, p)
			}
			if c.Height() >= MaxHeight {
				return fmt.Errorf("santorini: player %s has a worker on a domed cell %d", p, cell)
			}
		}
	}

	if s.IsTerminal() && s.legal.Len() != 0 {
		return fmt.Errorf("santorini: terminal state has non-empty legal actions")
	}
	if !s.IsTerminal() && s.legal.Len() == 0 && s.numWorkersPlaced == 4 {
		return fmt.Errorf("santorini: non-terminal state with no legal actions (stalemate not recorded)")
	}
	return nil
}
