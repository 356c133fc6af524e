package santorini

import "fmt"

// BoardSize is the board's side length; Santorini is fixed at 5x5.
const BoardSize = 5

// NumCells is the number of cells on the board (25).
const NumCells = BoardSize * BoardSize

// CellIndex addresses one of the 25 board squares, row-major:
// index = row*BoardSize + col, row/col both 0-indexed.
type CellIndex int

// NoCell is the invalid/unset cell index.
const NoCell CellIndex = -1

// NewCellIndex builds a CellIndex from 0-indexed row and column.
func NewCellIndex(row, col int) CellIndex {
	return CellIndex(row*BoardSize + col)
}

// Row returns the 0-indexed row (0=top).
func (c CellIndex) Row() int {
	return int(c) / BoardSize
}

// Col returns the 0-indexed column (0=left).
func (c CellIndex) Col() int {
	return int(c) % BoardSize
}

// IsValid reports whether c addresses a real board square.
func (c CellIndex) IsValid() bool {
	return c >= 0 && c < NumCells
}

// Offset returns the cell one king-step away from c in direction d,
// and false if that step would leave the board.
func (c CellIndex) Offset(d Direction) (CellIndex, bool) {
	dr, dc := d.Offset()
	r, col := c.Row()+dr, c.Col()+dc
	if r < 0 || r >= BoardSize || col < 0 || col >= BoardSize {
		return NoCell, false
	}
	return NewCellIndex(r, col), true
}

// String renders the cell as two digits "<row><col>", matching the
// action text format of §4.2.
func (c CellIndex) String() string {
	if !c.IsValid() {
		return "--"
	}
	return fmt.Sprintf("%d%d", c.Row(), c.Col())
}

// ParseCellIndex parses the two-digit "<row><col>" form produced by String.
func ParseCellIndex(s string) (CellIndex, error) {
	if len(s) != 2 {
		return NoCell, fmt.Errorf("santorini: invalid cell %q", s)
	}
	row := int(s[0] - '0')
	col := int(s[1] - '0')
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return NoCell, fmt.Errorf("santorini: invalid cell %q", s)
	}
	return NewCellIndex(row, col), nil
}
