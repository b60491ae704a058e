package game

import "fmt"

// Action moves a piece from one cell to another. Captured is set only for
// jump-captures.
type Action struct {
	Piece    PieceKey
	From     Position
	To       Position
	Captured PieceKey
}

func (a Action) IsCapture() bool {
	return a.Captured != ""
}

func (a Action) String() string {
	if a.IsCapture() {
		return fmt.Sprintf("%s %s-%sx%s", a.Piece, a.From, a.To, a.Captured)
	}
	return fmt.Sprintf("%s %s-%s", a.Piece, a.From, a.To)
}

// Notation renders an action the way the move list shows it, e.g.
// "T3: d2-d4xT3". It must be called with the board the action is played on.
func Notation(b *Board, a Action) string {
	mover, ok := b.Piece(a.Piece)
	if !ok {
		return a.String()
	}
	if captured, ok := b.PieceAt(a.To); ok && captured.Owner != mover.Owner {
		return fmt.Sprintf("%s: %s-%sx%s", mover.Type, a.From, a.To, captured.Type)
	}
	return fmt.Sprintf("%s: %s-%s", mover.Type, a.From, a.To)
}
