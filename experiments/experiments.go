package experiments

import (
	"fmt"
	"minesweeper/engine"
	"minesweeper/experiments/metrics"
	"minesweeper/game"
	"minesweeper/meta"
	"minesweeper/player"
	"sync"

	"github.com/rs/zerolog/log"
)

// Summary aggregates the games of one (board, player) pairing.
type Summary struct {
	Board      meta.Board
	Player     string
	Games      int
	Wins       int
	Losses     int
	Unfinished int
	WinRate    float64
}

type task struct {
	game   int // GameRecord.ID - 1
	config metrics.Config
	seed   uint64
}

type result struct {
	record metrics.GameRecord
	moves  []metrics.MoveMetric
}

// Run plays cfg.Games games for every (board, player) pairing across
// cfg.Goroutines workers. Game i of the whole experiment is seeded with
// cfg.Seed+i, so results are reproducible for any number of workers.
// Records are written when writer is not nil.
func Run(cfg meta.Experiment, writer *metrics.Writer) ([]Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	configs := pairings(cfg)
	tasks := schedule(cfg, configs)

	log.Info().Msgf("starting %s experiment with %d games on %d goroutines...", cfg.Name, len(tasks), cfg.Goroutines)
	results, err := play(tasks, cfg.Goroutines, cfg.MaxMoves, writer != nil)
	if err != nil {
		return nil, err
	}
	log.Info().Msgf("completed %s experiment", cfg.Name)

	summaries := summarize(configs, results)
	for _, s := range summaries {
		log.Info().Msgf("%s on %s: %d/%d won (%.1f%%)", s.Player, s.Board, s.Wins, s.Games, 100*s.WinRate)
	}

	if writer != nil {
		if err := store(writer, configs, results); err != nil {
			return nil, err
		}
		log.Info().Msgf("stored %s experiment in %s", cfg.Name, writer.Dir())
	}
	return summaries, nil
}

func pairings(cfg meta.Experiment) []metrics.Config {
	configs := []metrics.Config{}
	for _, board := range cfg.Boards {
		for _, name := range cfg.Players {
			configs = append(configs, metrics.Config{
				ID:     len(configs) + 1,
				Width:  board.Width,
				Height: board.Height,
				Mines:  board.Mines,
				Player: name,
				Games:  cfg.Games,
			})
		}
	}
	return configs
}

func schedule(cfg meta.Experiment, configs []metrics.Config) []task {
	tasks := make([]task, 0, len(configs)*cfg.Games)
	for _, config := range configs {
		for i := 0; i < cfg.Games; i++ {
			n := len(tasks)
			tasks = append(tasks, task{game: n, config: config, seed: cfg.Seed + uint64(n)})
		}
	}
	return tasks
}

func play(tasks []task, goroutines, maxMoves int, withMetrics bool) ([]result, error) {
	queue := make(chan task, len(tasks))
	for _, t := range tasks {
		queue <- t
	}
	close(queue)

	results := make([]result, len(tasks))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for t := range queue {
				r, err := runGame(t, maxMoves, withMetrics)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				results[t.game] = r
			}
		}()
	}

	wg.Wait()
	return results, firstErr
}

// runGame executes a single game and returns its record
func runGame(t task, maxMoves int, withMetrics bool) (result, error) {
	g, err := game.New(t.config.Width, t.config.Height, t.config.Mines, game.WithSeed(t.seed))
	if err != nil {
		return result{}, fmt.Errorf("game %d: %w", t.game+1, err)
	}
	p, err := player.New(t.config.Player, t.seed)
	if err != nil {
		return result{}, fmt.Errorf("game %d: %w", t.game+1, err)
	}

	options := []engine.Option{engine.WithMaxMoves(maxMoves), engine.WithSeed(t.seed)}
	if withMetrics {
		options = append(options, engine.WithMetrics())
	}
	_, gameMetric, moveMetrics := engine.LocalEngine(g, p, options...).Run()

	return result{
		record: metrics.GameRecord{ID: t.game + 1, Config: t.config.ID, GameMetric: gameMetric},
		moves:  moveMetrics,
	}, nil
}

func summarize(configs []metrics.Config, results []result) []Summary {
	summaries := make([]Summary, len(configs))
	for i, c := range configs {
		summaries[i] = Summary{
			Board:  meta.Board{Width: c.Width, Height: c.Height, Mines: c.Mines},
			Player: c.Player,
		}
	}
	for _, r := range results {
		s := &summaries[r.record.Config-1]
		s.Games++
		switch r.record.Result {
		case game.Won:
			s.Wins++
		case game.Lost:
			s.Losses++
		default:
			s.Unfinished++
		}
	}
	for i := range summaries {
		if summaries[i].Games > 0 {
			summaries[i].WinRate = float64(summaries[i].Wins) / float64(summaries[i].Games)
		}
	}
	return summaries
}

func store(writer *metrics.Writer, configs []metrics.Config, results []result) error {
	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, r := range results {
		gameRecords = append(gameRecords, r.record)
		for _, mm := range r.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: r.record.ID, MoveMetric: mm})
		}
	}

	if err := writer.WriteConfigs(configs); err != nil {
		return fmt.Errorf("failed to store configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}
