package santorini

// Apply applies a legal action (the caller is responsible for picking
// it from LegalActions — see §4.5/§7) and advances the state in
// place: it updates the board and worker positions, checks for a
// climb win, flips the current player, and recomputes legal actions
// (which may in turn record a stalemate loss). No error is returned;
// passing an action outside LegalActions is a programmer error,
// asserted only under DebugAssertions.
func (s *State) Apply(a Action) {
	if DebugAssertions && !s.legal.Contains(a) {
		panic("santorini: Apply called with an action outside LegalActions")
	}

	d := a.Decode()
	switch d.Kind {
	case ActionPlacement:
		s.applyPlacement(d)
	default:
		s.applyPlay(d)
	}

	s.history = append(s.history, a)
	s.hash ^= zobristTurn
	s.current = s.current.Other()
	s.computeLegalActions()
}

// applyPlacement places both of the current player's workers.
func (s *State) applyPlacement(d DecodedAction) {
	s.setCell(d.Cell1, s.board[d.Cell1].SetOccupant(occupantOf(s.current)))
	s.setCell(d.Cell2, s.board[d.Cell2].SetOccupant(occupantOf(s.current)))
	s.workers[s.current] = [2]CellIndex{d.Cell1, d.Cell2} // d.Cell1 < d.Cell2 by construction
	s.numWorkersPlaced += 2
}

// applyPlay moves one worker and builds adjacent to its destination.
func (s *State) applyPlay(d DecodedAction) {
	from := s.workers[s.current][d.Worker]
	to, ok := from.Offset(d.MoveDir)
	if !ok {
		if DebugAssertions {
			panic("santorini: move direction leaves the board")
		}
		return
	}
	build, ok := to.Offset(d.BuildDir)
	if !ok {
		if DebugAssertions {
			panic("santorini: build direction leaves the board")
		}
		return
	}

	s.setCell(from, s.board[from].ClearOccupant())
	s.setCell(to, s.board[to].SetOccupant(occupantOf(s.current)))
	s.setCell(build, s.board[build].SetHeight(s.board[build].Height()+1))

	s.workers[s.current][d.Worker] = to
	if s.workers[s.current][0] > s.workers[s.current][1] {
		s.workers[s.current][0], s.workers[s.current][1] = s.workers[s.current][1], s.workers[s.current][0]
	}

	if s.board[to].Height() == WinHeight {
		s.outcome = Outcome(s.current)
	}
}

// setCell writes a new cell value, keeping the incremental Zobrist
// hash in sync (XOR out the old contribution, XOR in the new one).
func (s *State) setCell(idx CellIndex, next Cell) {
	s.hash ^= cellKey(idx, s.board[idx])
	s.board[idx] = next
	s.hash ^= cellKey(idx, next)
}
