package santorini

// Cell packs one board square's building height and worker occupancy
// into a single byte, the way Piece packs PieceType and Color in the
// chess lineage this engine descends from.
//
// Bits 0-2: height, 0..4 (4 = domed, unwalkable).
// Bits 3-4: occupant, 0 = empty, 1 = Player0's worker, 2 = Player1's worker.
type Cell uint8

const (
	heightBits    = 3
	heightMask    Cell = (1 << heightBits) - 1 // 0b00000111
	occupantShift      = heightBits
	occupantMask  Cell = 0b11 << occupantShift
)

// MaxHeight is the tallest a tower can be; a cell at MaxHeight is a dome.
const MaxHeight = 4

// DomeHeight is the height at which a cell is domed and unwalkable.
const DomeHeight = MaxHeight

// WinHeight is the height a worker must step onto to win immediately.
const WinHeight = 3

// Occupant identifies which player's worker, if any, stands on a cell.
type Occupant uint8

const (
	Empty   Occupant = 0
	Worker0 Occupant = 1 // Player0's worker
	Worker1 Occupant = 2 // Player1's worker
)

// occupantOf returns the Occupant value for a player's worker.
func occupantOf(p Player) Occupant {
	return Occupant(p) + 1
}

// Player returns the owning player. Only valid when o != Empty.
func (o Occupant) Player() Player {
	return Player(o) - 1
}

func (o Occupant) String() string {
	switch o {
	case Empty:
		return "Empty"
	case Worker0:
		return "Worker0"
	case Worker1:
		return "Worker1"
	default:
		return "InvalidOccupant"
	}
}

// Height returns the building height of the cell, 0..4.
func (c Cell) Height() int {
	return int(c & heightMask)
}

// Occupant returns the worker occupying the cell, or Empty.
func (c Cell) Occupant() Occupant {
	return Occupant((c & occupantMask) >> occupantShift)
}

// IsOccupied reports whether any worker stands on the cell.
func (c Cell) IsOccupied() bool {
	return c.Occupant() != Empty
}

// IsDomed reports whether the cell's tower is capped at floor 4.
func (c Cell) IsDomed() bool {
	return c.Height() >= DomeHeight
}

// SetHeight returns a copy of c with its height replaced.
func (c Cell) SetHeight(h int) Cell {
	if DebugAssertions && (h < 0 || h > MaxHeight) {
		panic("santorini: height out of range")
	}
	return (c &^ heightMask) | Cell(h)
}

// SetOccupant returns a copy of c with its occupant replaced.
func (c Cell) SetOccupant(o Occupant) Cell {
	return (c &^ occupantMask) | (Cell(o) << occupantShift)
}

// ClearOccupant returns a copy of c with no worker standing on it.
func (c Cell) ClearOccupant() Cell {
	return c.SetOccupant(Empty)
}

func (c Cell) String() string {
	return string(c.rune())
}

// rune renders the cell per the observation-string contract (§6):
// digits 0..4 for empty cells, lowercase a..e for Player0 at that
// height, uppercase A..E for Player1.
func (c Cell) rune() byte {
	h := byte(c.Height())
	switch c.Occupant() {
	case Worker0:
		return 'a' + h
	case Worker1:
		return 'A' + h
	default:
		return '0' + h
	}
}
