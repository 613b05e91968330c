package metrics

import (
	"time"
)

type SearchMetric struct {
	Iterations   int // Requested budget
	Episodes     int // Completed select-expand-simulate-backup cycles
	FullPlayouts int
	PlayoutPlies int
	ArenaSize    int
	EarlyStop    bool
	Duration     time.Duration
}

type MoveMetric struct {
	Step   int
	Player int // 1 moves first, 2 second
	SearchMetric
}

type GameMetric struct {
	StartingAgent int // Agent config ID of the first mover
	Winner        string
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
}

type Collector interface {
	Start(iterations int)
	AddEpisode()
	AddFullPlayout(plies int)
	SetEarlyStop()
	Complete(arenaSize int) SearchMetric
}

type collector struct {
	iterations   int
	startTime    time.Time
	episodes     int
	fullPlayouts int
	plies        int
	earlyStop    bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(iterations int) {
	*m = collector{iterations: iterations, startTime: time.Now()}
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) AddFullPlayout(plies int) {
	m.fullPlayouts++
	m.plies += plies
}

func (m *collector) SetEarlyStop() {
	m.earlyStop = true
}

func (m *collector) Complete(arenaSize int) SearchMetric {
	return SearchMetric{
		Iterations:   m.iterations,
		Episodes:     m.episodes,
		FullPlayouts: m.fullPlayouts,
		PlayoutPlies: m.plies,
		ArenaSize:    arenaSize,
		EarlyStop:    m.earlyStop,
		Duration:     time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations int)                {}
func (m *dummyCollector) AddEpisode()                         {}
func (m *dummyCollector) AddFullPlayout(plies int)            {}
func (m *dummyCollector) SetEarlyStop()                       {}
func (m *dummyCollector) Complete(arenaSize int) SearchMetric { return SearchMetric{} }
