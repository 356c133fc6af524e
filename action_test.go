package santorini

import "testing"

// TestPlacementEncodingBijection covers §8 property 9: for all
// 0 <= i < j < 25, decode(encode(i,j)) = (i,j).
func TestPlacementEncodingBijection(t *testing.T) {
	seen := make(map[Action]bool)
	for i := 0; i < NumCells; i++ {
		for j := i + 1; j < NumCells; j++ {
			a := EncodePlacement(CellIndex(i), CellIndex(j))
			if !a.IsValid() || int(a) >= NumPlacementActions {
				t.Fatalf("encode(%d,%d) = %d out of placement range", i, j, a)
			}
			if seen[a] {
				t.Fatalf("encode(%d,%d) = %d collides with a previous pair", i, j, a)
			}
			seen[a] = true

			d := a.Decode()
			if d.Kind != ActionPlacement || d.Cell1 != CellIndex(i) || d.Cell2 != CellIndex(j) {
				t.Fatalf("decode(encode(%d,%d)) = %+v", i, j, d)
			}
		}
	}
	if len(seen) != NumPlacementActions {
		t.Fatalf("got %d distinct placement indices, want %d", len(seen), NumPlacementActions)
	}
}

func TestEncodePlacementCanonicalizesOrder(t *testing.T) {
	a := EncodePlacement(CellIndex(10), CellIndex(3))
	b := EncodePlacement(CellIndex(3), CellIndex(10))
	if a != b {
		t.Fatalf("EncodePlacement should be order-independent: %d != %d", a, b)
	}
}

func TestPlayEncodingRoundTrip(t *testing.T) {
	for worker := 0; worker < 2; worker++ {
		for m := Direction(0); m < NumDirections; m++ {
			for b := Direction(0); b < NumDirections; b++ {
				a := EncodePlay(worker, m, b)
				if !a.IsValid() || int(a) < NumPlacementActions {
					t.Fatalf("EncodePlay(%d,%d,%d) = %d out of play range", worker, m, b, a)
				}
				d := a.Decode()
				if d.Kind != ActionPlay || d.Worker != worker || d.MoveDir != m || d.BuildDir != b {
					t.Fatalf("decode(encode(%d,%d,%d)) = %+v", worker, m, b, d)
				}
			}
		}
	}
}

func TestActionSpaceSize(t *testing.T) {
	if NumDistinctActions != 428 {
		t.Fatalf("NumDistinctActions = %d, want 428", NumDistinctActions)
	}
	if NumPlacementActions != 300 {
		t.Fatalf("NumPlacementActions = %d, want 300", NumPlacementActions)
	}
	if NumPlayActions != 128 {
		t.Fatalf("NumPlayActions = %d, want 128", NumPlayActions)
	}
}

// TestDirectionOppositeSumsToSeven covers §9's open question: the
// move+build direction sum of 7 must mean "exact opposites" under
// whatever fixed ordering is chosen.
func TestDirectionOppositeSumsToSeven(t *testing.T) {
	for d := Direction(0); d < NumDirections; d++ {
		opp := d.Opposite()
		if int(d)+int(opp) != 7 {
			t.Errorf("direction %d and its opposite %d do not sum to 7", d, opp)
		}
		dr, dc := d.Offset()
		or, oc := opp.Offset()
		if dr != -or || dc != -oc {
			t.Errorf("direction %d offset (%d,%d) is not the negation of opposite %d offset (%d,%d)", d, dr, dc, opp, or, oc)
		}
	}
}

// TestActionStringRoundTrip covers §8 property 7 in both directions.
func TestActionStringRoundTrip(t *testing.T) {
	for a := Action(0); int(a) < NumDistinctActions; a++ {
		s := a.String()
		parsed, err := ParseAction(s)
		if err != nil {
			t.Fatalf("ParseAction(%q) for action %d: %v", s, a, err)
		}
		if parsed != a {
			t.Fatalf("round trip broke: action %d -> %q -> %d", a, s, parsed)
		}
	}
}

func TestParseActionRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "Px", "P0000", "0X1B2", "2M1B9", "PAAAA"} {
		if _, err := ParseAction(s); err == nil {
			t.Errorf("ParseAction(%q) should have failed", s)
		}
	}
}

func TestActionListIsAllocationFree(t *testing.T) {
	var al ActionList
	for i := 0; i < NumDistinctActions; i++ {
		al.Add(Action(i))
	}
	if al.Len() != NumDistinctActions {
		t.Fatalf("Len() = %d, want %d", al.Len(), NumDistinctActions)
	}
	if !al.Contains(Action(42)) {
		t.Fatalf("Contains(42) = false")
	}
	al.Clear()
	if al.Len() != 0 {
		t.Fatalf("Clear did not reset length")
	}

	allocs := testing.AllocsPerRun(10, func() {
		al.Clear()
		for i := 0; i < NumDistinctActions; i++ {
			al.Add(Action(i))
		}
	})
	if allocs != 0 {
		t.Fatalf("filling an ActionList allocated %v times per run, want 0", allocs)
	}
}
