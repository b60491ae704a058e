package agent

import (
	"kvinti/experiments/metrics"
	"kvinti/game"
)

type Agent interface {
	// FindMove returns an action for side and the search metrics (if collected).
	// firstMove is true for the side's first move of a fresh game. ok is false
	// when side has no legal action.
	FindMove(board *game.Board, side game.Player, firstMove bool) (action game.Action, ok bool, metric metrics.SearchMetric)
}
