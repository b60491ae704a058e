package experiments

import (
	"context"
	"fmt"
	"kvinti/engine"
	"kvinti/experiments/metrics"
	"kvinti/game"
	"kvinti/gamemaster"
	"kvinti/searcher"
	"kvinti/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Score tallies the results of one matchup from the first agent's view.
type Score struct {
	Agent1, Agent2 int
	Wins           int
	Losses         int
	Draws          int
	Unfinished     int
}

type Result struct {
	Scores []Score
	Games  []metrics.GameRecord
	Moves  []metrics.MoveRecord
	Dir    string // where the CSV files went, empty if not written
}

// Run plays every matchup of cfg and stores the records under cfg.OutDir.
func Run(ctx context.Context, cfg Config) (Result, error) {
	result := Result{}
	count := 0

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range cfg.MatchUps {
		config1 := cfg.agent(matchup[0])
		config2 := cfg.agent(matchup[1])
		score := Score{Agent1: config1.ID, Agent2: config2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.MatchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			count++
			// Swap seats every other game
			seat1, seat2 := config1, config2
			if i%2 == 1 {
				seat1, seat2 = config2, config1
			}

			status, gameMetric, moveMetrics, err := runGame(ctx, cfg, count, seat1, seat2)
			if err != nil {
				return result, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     seat1.ID,
				Agent2:     seat2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch {
			case !status.Over():
				score.Unfinished++
			case status.Winner == game.NoPlayer:
				score.Draws++
			case (status.Winner == game.Player1) == (seat1.ID == config1.ID):
				score.Wins++
			default:
				score.Losses++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with result: %s", mi+1, len(cfg.MatchUps), i+1, gameMetric.Outcome)
		}

		result.Scores = append(result.Scores, score)
		log.Info().
			Int("wins", score.Wins).
			Int("losses", score.Losses).
			Int("draws", score.Draws).
			Int("unfinished", score.Unfinished).
			Msgf("completed matchup %d of %d (agent %d vs agent %d)", mi+1, len(cfg.MatchUps), config1.ID, config2.ID)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	if cfg.OutDir == "" {
		return result, nil
	}
	dir, err := store(cfg, result)
	if err != nil {
		return result, err
	}
	result.Dir = dir
	return result, nil
}

func store(cfg Config, result Result) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	agents := make([]metrics.AgentRecord, 0, len(cfg.Agents))
	for _, a := range cfg.Agents {
		agents = append(agents, metrics.AgentRecord{
			ID:              a.ID,
			Tier:            a.Tier.String(),
			Depth:           a.Tier.Depth(),
			Goroutines:      a.Goroutines,
			RandomFirstMove: a.RandomFirstMove,
		})
	}
	if err := writer.WriteAgentRecords(agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return writer.Dir(), nil
}

// runGame executes a single game with seat1 as player 1 and seat2 as player 2.
func runGame(ctx context.Context, cfg Config, count int, seat1, seat2 AgentConfig) (gamemaster.Status, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := []agent.Agent{
		agent.NewComputerAgent(createSearcher(cfg, seat1, uint64(2*count)), seat1.Tier, seat1.RandomFirstMove),
		agent.NewComputerAgent(createSearcher(cfg, seat2, uint64(2*count+1)), seat2.Tier, seat2.RandomFirstMove),
	}
	g := gamemaster.New()
	e := engine.NewLocalEngine(g, agents, engine.WithMaxMoves(cfg.MaxMoves), engine.WithThinkingDelay(cfg.Delay))

	status, gameMetric, moveMetrics, err := e.Run(ctx)
	log.Debug().Str("game", g.ID).Msgf("final position:\n%s", g.Board())
	return status, gameMetric, moveMetrics, err
}

func createSearcher(cfg Config, config AgentConfig, offset uint64) *searcher.Searcher {
	options := []searcher.Option{
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithMetrics(),
	}
	if cfg.Seed != 0 {
		options = append(options, searcher.WithSeed(cfg.Seed+offset))
	}
	return searcher.NewSearcher(options...)
}
