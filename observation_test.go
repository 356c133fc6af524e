package santorini

import "testing"

// TestObservationTensorShape covers the fixed [6,5,5] contract of §4.7.
func TestObservationTensorShape(t *testing.T) {
	shape := ObservationTensorShape()
	if shape != [3]int{6, 5, 5} {
		t.Fatalf("ObservationTensorShape() = %v, want [6,5,5]", shape)
	}
}

// TestObservationTensorHeightOneHot covers §8 property 10: every cell
// has at most one of the four height planes lit, and none when the
// cell is domed.
func TestObservationTensorHeightOneHot(t *testing.T) {
	s := NewInitialState()
	s.board[NewCellIndex(0, 0)] = Cell(0).SetHeight(2)
	s.board[NewCellIndex(1, 1)] = Cell(0).SetHeight(MaxHeight) // domed
	tensor := s.ObservationTensor()

	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			lit := 0
			for h := 0; h < 4; h++ {
				if tensor[h][r][c] == 1.0 {
					lit++
				} else if tensor[h][r][c] != 0 {
					t.Fatalf("height channel %d at (%d,%d) = %v, want 0 or 1", h, r, c, tensor[h][r][c])
				}
			}
			cell := s.board[NewCellIndex(r, c)]
			if cell.Height() > WinHeight {
				if lit != 0 {
					t.Fatalf("domed cell (%d,%d) has %d height channels lit, want 0", r, c, lit)
				}
				continue
			}
			if lit != 1 {
				t.Fatalf("cell (%d,%d) at height %d has %d height channels lit, want 1", r, c, cell.Height(), lit)
			}
			if tensor[cell.Height()][r][c] != 1.0 {
				t.Fatalf("cell (%d,%d) height channel %d not lit", r, c, cell.Height())
			}
		}
	}
}

// TestObservationTensorOccupancyChannels covers §8 property 10's
// occupancy half: channels 4 and 5 are zero on empty cells, an
// occupied cell carries its worker's height in the channel chosen by
// current-player perspective, and never both nonzero for the same cell.
func TestObservationTensorOccupancyChannels(t *testing.T) {
	s := emptyPlayState(t)
	mine := NewCellIndex(2, 2)
	theirs := NewCellIndex(3, 3)
	s.board[mine] = Cell(0).SetHeight(1).SetOccupant(Worker0)
	s.board[theirs] = Cell(0).SetHeight(2).SetOccupant(Worker1)
	s.workers[Player0] = [2]CellIndex{mine, NewCellIndex(0, 0)}
	s.workers[Player1] = [2]CellIndex{theirs, NewCellIndex(4, 4)}
	s.current = Player0

	tensor := s.ObservationTensor()
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			idx := NewCellIndex(r, c)
			occ := s.board[idx].Occupant()
			mineVal, theirsVal := tensor[4][r][c], tensor[5][r][c]
			if occ == Empty {
				if mineVal != 0 || theirsVal != 0 {
					t.Fatalf("empty cell (%d,%d) has occupancy channels %v/%v", r, c, mineVal, theirsVal)
				}
				continue
			}
			if mineVal != 0 && theirsVal != 0 {
				t.Fatalf("cell (%d,%d) has both occupancy channels set", r, c)
			}
			if occ.Player() == Player0 && mineVal != float32(s.board[idx].Height()) {
				t.Fatalf("current-player occupancy channel at (%d,%d) = %v, want %d", r, c, mineVal, s.board[idx].Height())
			}
			if occ.Player() == Player1 && theirsVal != float32(s.board[idx].Height()) {
				t.Fatalf("opponent occupancy channel at (%d,%d) = %v, want %d", r, c, theirsVal, s.board[idx].Height())
			}
		}
	}

	// Flip perspective: the channels must swap.
	s.current = Player1
	flipped := s.ObservationTensor()
	if flipped[4][3][3] == 0 || flipped[5][2][2] == 0 {
		t.Fatalf("occupancy channels did not flip with current-player perspective")
	}
}

func TestObservationStringDimensions(t *testing.T) {
	s := NewInitialState()
	rendered := s.ObservationString(Player0)
	lines := 0
	for _, r := range rendered {
		if r == '\n' {
			lines++
		}
	}
	if lines != BoardSize {
		t.Fatalf("ObservationString has %d lines, want %d", lines, BoardSize)
	}
}
