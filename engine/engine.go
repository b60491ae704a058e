package engine

import (
	"context"
	"kvinti/experiments/metrics"
	"kvinti/gamemaster"
	"kvinti/meta"
)

const MaxMoves = meta.MAX_TURNS

type Engine interface {
	// Run plays a game till it is over, a max number of moves is reached or ctx is done
	Run(ctx context.Context) (status gamemaster.Status, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
