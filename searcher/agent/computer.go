package agent

import (
	"kvinti/experiments/metrics"
	"kvinti/game"
	"kvinti/searcher"
)

type computerAgent struct {
	searcher        *searcher.Searcher
	tier            searcher.Tier
	randomFirstMove bool
}

// NewComputerAgent returns an agent that searches at tier. With
// randomFirstMove its first move of a game is a uniform random legal action,
// whatever the tier, so openings vary.
func NewComputerAgent(s *searcher.Searcher, tier searcher.Tier, randomFirstMove bool) Agent {
	return computerAgent{searcher: s, tier: tier, randomFirstMove: randomFirstMove}
}

func (a computerAgent) FindMove(board *game.Board, side game.Player, firstMove bool) (game.Action, bool, metrics.SearchMetric) {
	if firstMove && a.randomFirstMove {
		action, ok := a.searcher.RandomMove(board, side)
		return action, ok, metrics.SearchMetric{Tier: a.tier.String(), Random: true}
	}
	return a.searcher.FindMove(board, side, a.tier)
}
