package experiments

import (
	"minesweeper/meta"
	"time"

	"github.com/rs/zerolog/log"
)

// Throughput is the game rate reached with a number of goroutines.
type Throughput struct {
	Goroutines  int
	Games       int
	Duration    time.Duration
	GamesPerSec float64
}

// RunThroughputExperiment replays cfg once per goroutine count without
// storing records and reports how the game rate scales.
func RunThroughputExperiment(cfg meta.Experiment, goroutines []int) ([]Throughput, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().Msg("starting throughput experiment...")
	configs := pairings(cfg)
	tasks := schedule(cfg, configs)

	throughputs := make([]Throughput, 0, len(goroutines))
	for _, n := range goroutines {
		if n <= 0 {
			continue
		}
		start := time.Now()
		if _, err := play(tasks, n, cfg.MaxMoves, false); err != nil {
			return nil, err
		}
		duration := time.Since(start)

		t := Throughput{Goroutines: n, Games: len(tasks), Duration: duration}
		if duration > 0 {
			t.GamesPerSec = float64(len(tasks)) / duration.Seconds()
		}
		throughputs = append(throughputs, t)
		log.Info().Msgf("%d goroutines: %d games in %v (%.0f games/s)", n, t.Games, duration, t.GamesPerSec)
	}

	log.Info().Msg("completed throughput experiment")
	return throughputs, nil
}
