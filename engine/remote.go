package engine

import (
	"minesweeper/communication"
	"minesweeper/experiments/metrics"
	"minesweeper/game"
	"minesweeper/gamemaster"
	"minesweeper/player"
	"time"

	"github.com/rs/zerolog/log"
)

// Remote plays a game hosted behind a Communicator, e.g. a server reached
// through client.ClientCommunicator. The player decides on snapshots.
type Remote struct {
	Comm   communication.Communicator
	Params gamemaster.Params
	Player player.Player
	opts   options
}

func RemoteEngine(comm communication.Communicator, params gamemaster.Params, p player.Player, opts ...Option) *Remote {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if params.Seed != nil {
		o.seed = *params.Seed
	}
	return &Remote{Comm: comm, Params: params, Player: p, opts: o}
}

// Run creates the game, plays it and ends it. The game state is
// game.NotStarted when the game could not be created.
func (e *Remote) Run() (game.State, metrics.GameMetric, []metrics.MoveMetric) {
	collector := e.opts.collector()
	gameMetric := metrics.GameMetric{
		Player:    e.Player.Name(),
		Seed:      e.opts.seed,
		StartTime: time.Now(),
	}

	snap, err := e.Comm.NewGame(e.Params)
	if err != nil {
		log.Error().Err(err).Msg("failed to create remote game")
		return game.NotStarted, gameMetric, nil
	}
	defer func() {
		if err := e.Comm.EndGame(snap.ID); err != nil {
			log.Warn().Err(err).Str("game", snap.ID).Msg("failed to end remote game")
		}
	}()

	var moveMetrics []metrics.MoveMetric
	step := 1
	for !snap.State.IsTerminal() && step <= e.opts.maxMoves {
		collector.Start()
		move, err := e.Player.NextMove(snap.Board())
		if err != nil {
			log.Warn().Err(err).Msgf("%s gave up at step %d", e.Player.Name(), step)
			break
		}
		next, err := e.Comm.SendMove(snap.ID, move)
		if err != nil {
			log.Warn().Err(err).Str("game", snap.ID).Msgf("move %v rejected", move)
			break
		}
		snap = next
		collector.Observe(snap.Events)
		gameMetric.CellsRevealed += countEvents(snap.Events, game.CellRevealed)
		if move.Type == game.Flag {
			gameMetric.FlagsPlaced++
		}
		if e.opts.metrics {
			moveMetrics = append(moveMetrics, collector.Complete(step, move))
		}
		step++
	}

	gameMetric.Result = snap.State
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step - 1
	log.Info().Str("game", snap.ID).Msgf("%s finished with %s after %d moves", e.Player.Name(), snap.State, gameMetric.TotalMoves)
	return snap.State, gameMetric, moveMetrics
}

func countEvents(events []game.Event, t game.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}
