package engine

import (
	"minesweeper/experiments/metrics"
	"minesweeper/game"
	"minesweeper/player"
	"time"

	"github.com/rs/zerolog/log"
)

// Local plays a single in-process game with one player.
type Local struct {
	Game   *game.Game
	Player player.Player
	opts   options
}

func LocalEngine(g *game.Game, p player.Player, opts ...Option) *Local {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Local{Game: g, Player: p, opts: o}
}

// Run executes the game loop until the game ends, the player gives up or
// the move limit is reached.
func (e *Local) Run() (game.State, metrics.GameMetric, []metrics.MoveMetric) {
	collector := e.opts.collector()
	revealed, flags := 0, 0
	unsubscribe := e.Game.Subscribe(func(events []game.Event) {
		collector.Observe(events)
		revealed += countEvents(events, game.CellRevealed)
	})
	defer unsubscribe()

	log.Debug().Msgf("%s is starting a %dx%d game with %d mines", e.Player.Name(), e.Game.Width(), e.Game.Height(), e.Game.MineCount())

	gameMetric := metrics.GameMetric{
		Player:    e.Player.Name(),
		Seed:      e.opts.seed,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric
	step := 1
	for !e.Game.State().IsTerminal() && step <= e.opts.maxMoves {
		collector.Start()
		move, err := e.Player.NextMove(e.Game)
		if err != nil {
			log.Warn().Err(err).Msgf("%s gave up at step %d", e.Player.Name(), step)
			break
		}
		if err := e.Game.Play(move); err != nil {
			log.Warn().Err(err).Msgf("%s played an invalid move %v", e.Player.Name(), move)
			break
		}
		if move.Type == game.Flag {
			flags++
		}
		if e.opts.metrics {
			moveMetrics = append(moveMetrics, collector.Complete(step, move))
		}
		step++
	}

	gameMetric.Result = e.Game.State()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step - 1
	gameMetric.CellsRevealed = revealed
	gameMetric.FlagsPlaced = flags

	log.Debug().Msgf("%s finished with %s after %d moves", e.Player.Name(), gameMetric.Result, gameMetric.TotalMoves)
	return gameMetric.Result, gameMetric, moveMetrics
}
