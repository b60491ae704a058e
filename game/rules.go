package game

import "fmt"

var (
	orthogonalSteps = []Offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	horizontalSteps = []Offset{{0, -1}, {0, 1}}

	t1Jumps = []Offset{{-4, 0}, {4, 0}, {0, -4}, {0, 4}}
	t2Jumps = []Offset{
		{-2, -1}, {-2, 1}, {2, -1}, {2, 1},
		{-1, -2}, {-1, 2}, {1, -2}, {1, 2},
	}
	t3Jumps = []Offset{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}
	t4Jumps = []Offset{{-2, -2}, {-2, 2}, {2, -2}, {2, 2}}
	t5Jumps = []Offset{
		{-3, -1}, {-3, 1}, {3, -1}, {3, 1},
		{-1, -3}, {-1, 3}, {1, -3}, {1, 3},
	}
)

// StepOffsets returns the one-cell directions a piece of type t may step in.
func StepOffsets(t PieceType) []Offset {
	switch t {
	case Royal:
		return horizontalSteps
	case T1, T2, T3, T4, T5:
		return orthogonalSteps
	default:
		panic(fmt.Sprintf("unknown piece type %d", int(t)))
	}
}

// CaptureOffsets returns the jump pattern of a piece type. The Royal never
// captures.
func CaptureOffsets(t PieceType) []Offset {
	switch t {
	case T1:
		return t1Jumps
	case T2:
		return t2Jumps
	case T3:
		return t3Jumps
	case T4:
		return t4Jumps
	case T5:
		return t5Jumps
	case Royal:
		return nil
	default:
		panic(fmt.Sprintf("unknown piece type %d", int(t)))
	}
}

// Actions holds the legal destinations of a single piece. Steps and captures
// are kept apart; neither is forced over the other.
type Actions struct {
	Steps    []Position
	Captures []Position
}

func (a Actions) Empty() bool {
	return len(a.Steps) == 0 && len(a.Captures) == 0
}

// LegalActions computes step and capture destinations for piece against the
// occupancy of b.
func LegalActions(piece Piece, b *Board) Actions {
	var actions Actions
	for _, o := range StepOffsets(piece.Type) {
		to := piece.Pos.Add(o)
		if to.InBounds() && !b.Occupied(to) {
			actions.Steps = append(actions.Steps, to)
		}
	}
	for _, o := range CaptureOffsets(piece.Type) {
		to := piece.Pos.Add(o)
		if !to.InBounds() {
			continue
		}
		if target, ok := b.PieceAt(to); ok && target.Owner != piece.Owner {
			actions.Captures = append(actions.Captures, to)
		}
	}
	return actions
}

// ActionsFor pools the step and capture actions of every piece owned by
// player, in piece order, steps before captures.
func (b *Board) ActionsFor(player Player) []Action {
	var all []Action
	for _, p := range b.pieces {
		if p.Owner != player {
			continue
		}
		legal := LegalActions(p, b)
		for _, to := range legal.Steps {
			all = append(all, Action{Piece: p.Key, From: p.Pos, To: to})
		}
		for _, to := range legal.Captures {
			target, _ := b.PieceAt(to)
			all = append(all, Action{Piece: p.Key, From: p.Pos, To: to, Captured: target.Key})
		}
	}
	return all
}

// HasActions reports whether player has at least one legal action.
func (b *Board) HasActions(player Player) bool {
	for _, p := range b.pieces {
		if p.Owner == player && !LegalActions(p, b).Empty() {
			return true
		}
	}
	return false
}
