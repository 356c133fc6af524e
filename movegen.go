package santorini

// computeLegalActions recomputes s.legal for the current state,
// applying the terminal shortcut and stalemate rule of §4.4. Called
// eagerly at construction and after every Apply so that
// IsTerminal/LegalActions are always correct for the next query
// (§9's "stalemate detection timing" note).
func (s *State) computeLegalActions() {
	s.legal.Clear()

	if s.outcome != Ongoing {
		return
	}

	if s.numWorkersPlaced < 4 {
		s.generatePlacements()
		return
	}

	s.generatePlays()
	if s.legal.Len() == 0 {
		// The player to move has no legal action: they lose (§4.4's
		// stalemate rule). Recorded now so IsTerminal is correct for
		// the very next query.
		s.outcome = Outcome(s.current.Other())
	}
}

// generatePlacements enumerates every unordered pair of empty cells.
// At most NumPlacementActions (300) checks, allocation-free.
func (s *State) generatePlacements() {
	for i := 0; i < NumCells; i++ {
		if s.board[i].IsOccupied() {
			continue
		}
		for j := i + 1; j < NumCells; j++ {
			if s.board[j].IsOccupied() {
				continue
			}
			s.legal.Add(EncodePlacement(CellIndex(i), CellIndex(j)))
		}
	}
}

// generatePlays enumerates every legal (worker, moveDir, buildDir)
// triple for the current player: 2*8*8 = 128 checks, allocation-free.
func (s *State) generatePlays() {
	for w := 0; w < 2; w++ {
		from := s.workers[s.current][w]
		fromHeight := s.board[from].Height()
		if fromHeight >= WinHeight {
			// A worker can never be standing on height 3: reaching it
			// ends the game immediately (the climb-win rule in Apply),
			// so this state would already be terminal. Guarded anyway
			// per §9's note on the reference implementation's behavior.
			continue
		}

		for moveDir := Direction(0); moveDir < NumDirections; moveDir++ {
			to, ok := from.Offset(moveDir)
			if !ok {
				continue
			}
			toCell := s.board[to]
			if toCell.IsOccupied() {
				continue
			}
			if toCell.Height() > fromHeight+1 {
				continue // climb rule: up at most one floor
			}

			for buildDir := Direction(0); buildDir < NumDirections; buildDir++ {
				build, ok := to.Offset(buildDir)
				if !ok {
					continue
				}
				buildCell := s.board[build]
				if buildCell.IsDomed() {
					continue
				}
				if buildCell.IsOccupied() && build != from {
					continue
				}
				s.legal.Add(EncodePlay(w, moveDir, buildDir))
			}
		}
	}
}

// HasLegalMoves reports whether the current player has any action.
// Equivalent to len(LegalActions()) != 0 but named to match the
// Position.HasLegalMoves convention this codebase's lineage uses.
func (s *State) HasLegalMoves() bool {
	return s.legal.Len() != 0
}
