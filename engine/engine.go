package engine

import (
	"minesweeper/experiments/metrics"
	"minesweeper/game"
)

const MaxMoves = 10000

type Engine interface {
	// Run plays a game till it is won or lost or a max number of moves is reached
	Run() (result game.State, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

type Option func(*options)

type options struct {
	maxMoves int
	metrics  bool
	seed     uint64
}

func defaultOptions() options {
	return options{maxMoves: MaxMoves}
}

// WithMaxMoves stops the game after n moves.
func WithMaxMoves(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMoves = n
		}
	}
}

// WithMetrics records per-move metrics.
func WithMetrics() Option {
	return func(o *options) {
		o.metrics = true
	}
}

// WithSeed records the seed the game was created with in the game metric.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func (o options) collector() metrics.Collector {
	if o.metrics {
		return metrics.NewCollector()
	}
	return metrics.NewDummyCollector()
}
