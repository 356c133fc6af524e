package santorini

import "strings"

// ObservationChannels is the tensor's channel count (§4.7): 4 height
// planes, one per non-domed floor (0..3), plus 2 occupancy planes
// (current player's workers, opponent's workers) — C=6.
const ObservationChannels = 4 + 2

// ObservationTensorShape is the fixed [C,H,W] shape of ObservationTensor.
func ObservationTensorShape() [3]int {
	return [3]int{ObservationChannels, BoardSize, BoardSize}
}

// ObservationTensor projects the state into a dense [6,5,5] tensor,
// channel-major then row-major, from the current player's perspective
// (§4.7): channels 0-3 one-hot the exact height of each cell, channel
// 4 marks the current player's worker cells with their height, channel
// 5 marks the opponent's.
func (s *State) ObservationTensor() [ObservationChannels][BoardSize][BoardSize]float32 {
	var t [ObservationChannels][BoardSize][BoardSize]float32
	me := s.current

	for idx := 0; idx < NumCells; idx++ {
		cell := CellIndex(idx)
		r, c := cell.Row(), cell.Col()
		h := s.board[idx].Height()

		if h <= WinHeight {
			t[h][r][c] = 1.0
		}

		if occ := s.board[idx].Occupant(); occ != Empty {
			channel := 5
			if occ.Player() == me {
				channel = 4
			}
			t[channel][r][c] = float32(h)
		}
	}

	return t
}

// ObservationString renders a human-readable 5x5 text board: one
// character per cell, digits 0..4 for empty cells, lowercase a..e for
// Player0 at that height, uppercase A..E for Player1, rows separated
// by newlines. The board is fully observable (perfect information),
// so the rendering is identical for either player; the parameter
// exists to satisfy the framework's per-player observation contract.
func (s *State) ObservationString(player Player) string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			sb.WriteByte(s.board[NewCellIndex(r, c)].rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// InformationStateString returns the canonical action-history string:
// every placement and play applied so far, in play order, space
// separated. Since Santorini is perfect-information, this is identical
// regardless of which player asks.
func (s *State) InformationStateString(player Player) string {
	parts := make([]string, len(s.history))
	for i, a := range s.history {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}
