package game

import (
	"fmt"
	"strings"
)

// Position is a cell on the board. Row 0 is the top rank (rank 7 in notation).
type Position struct {
	Row int
	Col int
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

func (p Position) Add(o Offset) Position {
	return Position{Row: p.Row + o.DRow, Col: p.Col + o.DCol}
}

// String renders the position in algebraic notation, e.g. row 6 col 3 is "d1".
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+rune(p.Col), BoardSize-p.Row)
}

// ParseSquare is the inverse of Position.String.
func ParseSquare(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Position{}, fmt.Errorf("invalid square %q", s)
	}
	col := int(s[0] - 'a')
	rank := int(s[1] - '0')
	pos := Position{Row: BoardSize - rank, Col: col}
	if !pos.InBounds() || rank < 1 {
		return Position{}, fmt.Errorf("square %q is off the board", s)
	}
	return pos, nil
}

// Offset is a relative displacement on the board.
type Offset struct {
	DRow int
	DCol int
}
