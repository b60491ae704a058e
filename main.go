package main

import (
	"context"
	"flag"
	"fmt"
	"kvinti/experiments"
	"kvinti/meta"
	"kvinti/searcher"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment file; flags below are ignored when set")
	p1 := flag.String("p1", "strong", "Tier of player 1 (weak|moderate|strong)")
	p2 := flag.String("p2", "weak", "Tier of player 2 (weak|moderate|strong)")
	games := flag.Int("games", 1, "Number of games")
	seed := flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Goroutines for root move scoring")
	randomFirst := flag.Bool("random-first-move", true, "Play a random first move for each side")
	delay := flag.Duration("delay", meta.THINKING_DELAY, "Thinking delay before every computer move")
	maxMoves := flag.Int("max-moves", meta.MAX_TURNS, "Stop a game after this many moves")
	out := flag.String("out", "", "Directory for CSV records, empty to skip")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var cfg experiments.Config
	var err error
	if *configPath != "" {
		cfg, err = experiments.LoadConfig(*configPath)
	} else {
		cfg, err = flagConfig(*p1, *p2, *games, *seed, *goroutines, *randomFirst, *delay, *maxMoves, *out)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := experiments.Run(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for _, s := range result.Scores {
		fmt.Printf("agent %d vs agent %d: %d won, %d lost, %d drawn, %d unfinished\n",
			s.Agent1, s.Agent2, s.Wins, s.Losses, s.Draws, s.Unfinished)
	}
}

// flagConfig builds a single matchup between the two tiers given on the
// command line.
func flagConfig(p1, p2 string, games int, seed uint64, goroutines int, randomFirst bool, delay time.Duration, maxMoves int, out string) (experiments.Config, error) {
	tier1, err := searcher.ParseTier(p1)
	if err != nil {
		return experiments.Config{}, fmt.Errorf("p1: %w", err)
	}
	tier2, err := searcher.ParseTier(p2)
	if err != nil {
		return experiments.Config{}, fmt.Errorf("p2: %w", err)
	}
	cfg := experiments.Config{
		Name:     fmt.Sprintf("%s_vs_%s", tier1, tier2),
		Seed:     seed,
		Games:    games,
		MaxMoves: maxMoves,
		Delay:    delay,
		OutDir:   out,
		Agents: []experiments.AgentConfig{
			{ID: 1, Tier: tier1, Goroutines: goroutines, RandomFirstMove: randomFirst},
			{ID: 2, Tier: tier2, Goroutines: goroutines, RandomFirstMove: randomFirst},
		},
		MatchUps: [][]int{{1, 2}},
	}
	return cfg, cfg.Validate()
}
