package metrics

import (
	"sync/atomic"
	"time"

	"schnapsen/game"
)

type SearchMetric struct {
	Goroutines   int
	Exploration  float64
	Duration     time.Duration
	Episodes     int
	FullPlayouts int
}

type MoveMetric struct {
	Step   int
	Round  int
	Player game.PlayerID
	Action game.Action
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.PlayerID
	Winner         game.PlayerID
	Rounds         int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines int, exploration float64)
	AddFullPlayout()
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	exploration  float64
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int, exploration float64) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.exploration = exploration
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Exploration:  m.exploration,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int, exploration float64) {}
func (m *dummyCollector) AddFullPlayout()                           {}
func (m *dummyCollector) AddEpisode()                               {}
func (m *dummyCollector) Complete() SearchMetric                    { return SearchMetric{} }
