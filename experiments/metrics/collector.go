package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Tier        string
	Depth       int
	Goroutines  int
	Duration    time.Duration
	RootActions int
	Nodes       int
	Cutoffs     int
	Random      bool // picked uniformly instead of searched
}

type MoveMetric struct {
	Step     int
	Player   int // Player ID
	Action   string
	Notation string
	SearchMetric
}

type GameMetric struct {
	GameID         string
	StartingPlayer int
	Winner         int // 0 for a draw or unfinished game
	Outcome        string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(tier string, depth, goroutines, rootActions int)
	SetRandom(value bool)
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	tier        string
	depth       int
	goroutines  int
	rootActions int
	startTime   time.Time
	nodes       atomic.Int64
	cutoffs     atomic.Int64
	random      atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(tier string, depth, goroutines, rootActions int) {
	m.startTime = time.Now()
	m.tier = tier
	m.depth = depth
	m.goroutines = goroutines
	m.rootActions = rootActions
}

func (m *collector) SetRandom(value bool) {
	m.random.Store(value)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Tier:        m.tier,
		Depth:       m.depth,
		Goroutines:  m.goroutines,
		Duration:    time.Since(m.startTime),
		RootActions: m.rootActions,
		Nodes:       int(m.nodes.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		Random:      m.random.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(tier string, depth, goroutines, rootActions int) {}
func (m *dummyCollector) SetRandom(value bool)                                  {}
func (m *dummyCollector) AddNode()                                              {}
func (m *dummyCollector) AddCutoff()                                            {}
func (m *dummyCollector) Complete() SearchMetric                                { return SearchMetric{} }
