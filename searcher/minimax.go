package searcher

import (
	"kvinti/experiments/metrics"
	"kvinti/game"
	"kvinti/meta"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *Searcher)

// Searcher picks actions for a side at a given tier. A Searcher holds no game
// state; every call works on the board snapshot it is handed.
type Searcher struct {
	goroutines int
	evaluate   game.Evaluate
	collect    bool

	mu  sync.Mutex
	rng *rand.Rand
}

func WithGoroutines(goroutines int) Option {
	return func(s *Searcher) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithSeed makes the weak tier and random first moves reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.collect = true
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		goroutines: meta.GO_ROUTINES,
		evaluate:   game.EvaluateMaterial,
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

func (s *Searcher) collector() metrics.Collector {
	if s.collect {
		return metrics.NewCollector()
	}
	return metrics.NewDummyCollector()
}

// FindMove returns an action for side on b at the given tier. ok is false when
// side has no legal action; that is not an error.
func (s *Searcher) FindMove(b *game.Board, side game.Player, tier Tier) (action game.Action, ok bool, metric metrics.SearchMetric) {
	if b.ToMove() != side {
		b = b.WithToMove(side)
	}
	actions := b.ActionsFor(side)

	c := s.collector()
	c.Start(tier.String(), tier.Depth(), s.goroutines, len(actions))
	defer func() { metric = c.Complete() }()

	if len(actions) == 0 {
		return game.Action{}, false, metric
	}
	if tier.Depth() == 0 {
		c.SetRandom(true)
		return s.pick(actions), true, metric
	}

	values := s.scoreRoot(b, side, actions, tier.Depth(), c)
	best := selectBest(values)
	log.Debug().
		Str("tier", tier.String()).
		Str("action", actions[best].String()).
		Float64("value", values[best]).
		Int("candidates", len(actions)).
		Msg("search finished")
	return actions[best], true, metric
}

// RandomMove picks uniformly among every legal action of side.
func (s *Searcher) RandomMove(b *game.Board, side game.Player) (game.Action, bool) {
	if b.ToMove() != side {
		b = b.WithToMove(side)
	}
	actions := b.ActionsFor(side)
	if len(actions) == 0 {
		return game.Action{}, false
	}
	return s.pick(actions), true
}

func (s *Searcher) pick(actions []game.Action) game.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	return actions[s.rng.Intn(len(actions))]
}

// scoreRoot computes the minimax value of every root action. Each root branch
// gets a full window, so branches are independent and can be scored on
// several goroutines without changing the result.
func (s *Searcher) scoreRoot(b *game.Board, side game.Player, actions []game.Action, depth int, c metrics.Collector) []float64 {
	values := make([]float64, len(actions))
	st := search{side: side, evaluate: s.evaluate, metrics: c}

	if s.goroutines <= 1 {
		for i, a := range actions {
			values[i] = st.minimax(b.Play(a), depth-1, math.Inf(-1), math.Inf(1))
		}
		return values
	}

	task := make(chan int, len(actions))
	for i := range actions {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < s.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range task {
				values[idx] = st.minimax(b.Play(actions[idx]), depth-1, math.Inf(-1), math.Inf(1))
			}
		}()
	}

	wg.Wait()
	return values
}

type search struct {
	side     game.Player
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// minimax scores b for the searching side. The side to move on b maximizes if
// it is the searching side and minimizes otherwise.
func (s search) minimax(b *game.Board, depth int, alpha, beta float64) float64 {
	s.metrics.AddNode()

	if depth == 0 || !b.RoyalsPresent() {
		return s.evaluate(b, s.side)
	}

	actions := b.ActionsFor(b.ToMove())
	if len(actions) == 0 {
		return s.evaluate(b, s.side)
	}

	if b.ToMove() == s.side {
		best := math.Inf(-1)
		for _, a := range actions {
			value := s.minimax(b.Play(a), depth-1, alpha, beta)
			best = math.Max(best, value)
			alpha = math.Max(alpha, value)
			if beta <= alpha {
				s.metrics.AddCutoff()
				return best
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, a := range actions {
		value := s.minimax(b.Play(a), depth-1, alpha, beta)
		best = math.Min(best, value)
		beta = math.Min(beta, value)
		if beta <= alpha {
			s.metrics.AddCutoff()
			return best
		}
	}
	return best
}
