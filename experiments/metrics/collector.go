package metrics

import (
	"minesweeper/game"
	"time"
)

type MoveMetric struct {
	Step          int
	Move          game.Move
	CellsRevealed int
	FlagsToggled  int
	Duration      time.Duration
}

type GameMetric struct {
	Player        string
	Seed          uint64
	Result        game.State
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
	CellsRevealed int
	FlagsPlaced   int
}

// Collector measures one move at a time from the event batches a game emits.
type Collector interface {
	Start()
	Observe(events []game.Event)
	Complete(step int, move game.Move) MoveMetric
}

type collector struct {
	startTime     time.Time
	cellsRevealed int
	flagsToggled  int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.cellsRevealed = 0
	m.flagsToggled = 0
}

func (m *collector) Observe(events []game.Event) {
	for _, e := range events {
		switch e.Type {
		case game.CellRevealed:
			m.cellsRevealed++
		case game.FlagToggled:
			m.flagsToggled++
		}
	}
}

func (m *collector) Complete(step int, move game.Move) MoveMetric {
	return MoveMetric{
		Step:          step,
		Move:          move,
		CellsRevealed: m.cellsRevealed,
		FlagsToggled:  m.flagsToggled,
		Duration:      time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                      {}
func (m *dummyCollector) Observe(events []game.Event) {}
func (m *dummyCollector) Complete(step int, move game.Move) MoveMetric {
	return MoveMetric{Step: step, Move: move}
}
