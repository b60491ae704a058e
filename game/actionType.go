package game

import "fmt"

// PieceType is the rank of a piece. T1..T5 are ordinary pieces with their own
// jump pattern; Royal is the piece whose capture ends the game.
type PieceType int

const (
	T1 PieceType = iota + 1
	T2
	T3
	T4
	T5
	Royal
)

var pieceTypeNames = map[PieceType]string{
	T1:    "T1",
	T2:    "T2",
	T3:    "T3",
	T4:    "T4",
	T5:    "T5",
	Royal: "K",
}

func (t PieceType) String() string {
	if name, ok := pieceTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PieceType(%d)", int(t))
}

func (t PieceType) Valid() bool {
	return t >= T1 && t <= Royal
}

// Value is the material weight used by the evaluator.
func (t PieceType) Value() float64 {
	if t == Royal {
		return 5
	}
	return 1
}

// PieceKey identifies a piece for the whole game, independent of its type.
type PieceKey string

type Piece struct {
	Key   PieceKey
	Type  PieceType
	Owner Player
	Pos   Position
}

func (p Piece) String() string {
	return fmt.Sprintf("%s(%s,P%d)@%s", p.Key, p.Type, p.Owner, p.Pos)
}
