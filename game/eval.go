package game

import "math"

// EvaluateMaterial tallies piece values, Royal 5 and every ordinary piece 1,
// positive for perspective and negative for the opponent. A missing Royal is
// decisive: -Inf if it is perspective's, +Inf if it is the opponent's.
func EvaluateMaterial(b *Board, perspective Player) float64 {
	if _, ok := b.Royal(perspective); !ok {
		return math.Inf(-1)
	}
	if _, ok := b.Royal(perspective.Opponent()); !ok {
		return math.Inf(1)
	}

	score := 0.0
	for _, p := range b.pieces {
		if p.Owner == perspective {
			score += p.Type.Value()
		} else {
			score -= p.Type.Value()
		}
	}
	return score
}

// RoyalsPresent reports whether both sides still have their Royal.
func (b *Board) RoyalsPresent() bool {
	_, ok1 := b.Royal(Player1)
	_, ok2 := b.Royal(Player2)
	return ok1 && ok2
}
