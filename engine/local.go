package engine

import (
	"context"
	"errors"
	"fmt"
	"kvinti/experiments/metrics"
	"kvinti/game"
	"kvinti/gamemaster"
	"kvinti/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// LocalEngine drives a game between two agents in this process.
type LocalEngine struct {
	Game     *gamemaster.Game
	Agents   map[game.Player]agent.Agent
	delay    time.Duration
	maxMoves int
}

// WithThinkingDelay pauses before every computer move. Purely cosmetic.
func WithThinkingDelay(delay time.Duration) Option {
	return func(e *LocalEngine) {
		if delay >= 0 {
			e.delay = delay
		}
	}
}

func WithMaxMoves(moves int) Option {
	return func(e *LocalEngine) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// NewLocalEngine seats agents[0] as player 1 and agents[1] as player 2.
func NewLocalEngine(g *gamemaster.Game, agents []agent.Agent, options ...Option) *LocalEngine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	e := &LocalEngine{
		Game: g,
		Agents: map[game.Player]agent.Agent{
			game.Player1: agents[0],
			game.Player2: agents[1],
		},
		maxMoves: MaxMoves,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is over.
func (e *LocalEngine) Run(ctx context.Context) (gamemaster.Status, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		GameID:         e.Game.ID,
		StartingPlayer: int(e.Game.Board().ToMove()),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Str("game", e.Game.ID).Msgf("player %d is starting", gameMetric.StartingPlayer)

	finish := func(err error) (gamemaster.Status, metrics.GameMetric, []metrics.MoveMetric, error) {
		status := e.Game.Status()
		gameMetric.EndTime = time.Now()
		gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
		gameMetric.TotalMoves = len(moveMetrics)
		gameMetric.Winner = int(status.Winner)
		gameMetric.Outcome = status.String()
		if !status.Over() {
			gameMetric.Outcome = "unfinished"
		}
		return status, gameMetric, moveMetrics, err
	}

	for !e.Game.Status().Over() && len(moveMetrics) < e.maxMoves {
		ticket := e.Game.Ticket()
		side := ticket.Side

		if err := think(ctx, e.delay); err != nil {
			return finish(err)
		}

		action, ok, searchMetric := e.Agents[side].FindMove(ticket.Board, side, e.Game.FirstMove(side))
		if !ok {
			// The game master ends the game when the side to move is stuck, so
			// this only happens with inconsistent agents.
			return finish(fmt.Errorf("player %d found no move in a running game", side))
		}
		if err := ctx.Err(); err != nil {
			return finish(err)
		}

		notation := game.Notation(ticket.Board, action)
		_, err := e.Game.ApplyTicket(ticket, action)
		if errors.Is(err, gamemaster.ErrStaleResult) {
			continue
		}
		if err != nil {
			return finish(fmt.Errorf("player %d played %s: %w", side, action, err))
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         len(moveMetrics) + 1,
			Player:       int(side),
			Action:       action.String(),
			Notation:     notation,
			SearchMetric: searchMetric,
		})
		log.Debug().Str("game", e.Game.ID).Int("step", len(moveMetrics)).Msgf("player %d: %s", side, notation)
	}

	status, gm, mm, err := finish(nil)
	if status.Over() {
		log.Info().Str("game", e.Game.ID).Int("moves", gm.TotalMoves).Msgf("game over: %s", status)
	} else {
		log.Info().Str("game", e.Game.ID).Msgf("stopped after %d moves (no result yet)", gm.TotalMoves)
	}
	return status, gm, mm, err
}

func think(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
