package metrics

import (
	"sync/atomic"
	"time"
)

type MoveMetric struct {
	MatchID  string
	Step     int
	Player   string // seat name
	Tier     string // agent tier that produced the move, empty for humans
	Attempts int    // validator calls or human prompts spent
	Captured bool
	Duration time.Duration
	Aborted  bool // the seat failed before producing a valid move
}

type GameMetric struct {
	MatchID        string
	StartingPlayer string
	Winner         string // empty on a tie or a turn limit
	Ending         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(matchID string, step int, player string)
	SetTier(tier string)
	AddAttempts(n int)
	SetCapture(value bool)
	Complete() MoveMetric
}

type collector struct {
	matchID   string
	step      int
	player    string
	startTime time.Time
	tier      atomic.Value
	attempts  atomic.Int32
	captured  atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(matchID string, step int, player string) {
	m.startTime = time.Now()
	m.matchID = matchID
	m.step = step
	m.player = player
	m.tier.Store("")
	m.attempts.Store(0)
	m.captured.Store(false)
}

func (m *collector) SetTier(tier string) {
	m.tier.Store(tier)
}

func (m *collector) AddAttempts(n int) {
	m.attempts.Add(int32(n))
}

func (m *collector) SetCapture(value bool) {
	m.captured.Store(value)
}

func (m *collector) Complete() MoveMetric {
	tier, _ := m.tier.Load().(string)
	return MoveMetric{
		MatchID:  m.matchID,
		Step:     m.step,
		Player:   m.player,
		Tier:     tier,
		Attempts: int(m.attempts.Load()),
		Captured: m.captured.Load(),
		Duration: time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(matchID string, step int, player string) {}
func (m *dummyCollector) SetTier(tier string)                           {}
func (m *dummyCollector) AddAttempts(n int)                             {}
func (m *dummyCollector) SetCapture(value bool)                         {}
func (m *dummyCollector) Complete() MoveMetric                          { return MoveMetric{} }
