package gamemaster

import (
	"errors"
	"fmt"
	"minesweeper/game"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrGameNotFound = errors.New("game not found")

// Params describes a new game. A nil Seed draws mines from the clock.
type Params struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Mines  int     `json:"mines"`
	Seed   *uint64 `json:"seed,omitempty"`
}

// Snapshot is everything a remote client may see of a game.
type Snapshot struct {
	ID             string            `json:"id"`
	Width          int               `json:"width"`
	Height         int               `json:"height"`
	Mines          int               `json:"mines"`
	RemainingMines int               `json:"remaining_mines"`
	State          game.State        `json:"state"`
	Cells          [][]game.CellView `json:"cells"`  // Row-major by y
	Events         []game.Event      `json:"events"` // Produced by the last call
}

type session struct {
	game    *game.Game
	events  []game.Event
	created time.Time
}

// GameMaster hosts any number of games keyed by id. Calls are serialized so
// every game keeps a single caller at a time.
type GameMaster struct {
	mutex sync.Mutex
	games map[string]*session
}

// NewGameMaster initializes an empty GameMaster.
func NewGameMaster() *GameMaster {
	return &GameMaster{
		games: make(map[string]*session),
	}
}

// NewGame creates a game and returns its initial snapshot.
func (gm *GameMaster) NewGame(params Params) (Snapshot, error) {
	options := []game.Option{}
	if params.Seed != nil {
		options = append(options, game.WithSeed(*params.Seed))
	}
	g, err := game.New(params.Width, params.Height, params.Mines, options...)
	if err != nil {
		return Snapshot{}, err
	}

	s := &session{game: g, created: time.Now()}
	g.Subscribe(func(events []game.Event) {
		s.events = append(s.events, events...)
	})

	gm.mutex.Lock()
	defer gm.mutex.Unlock()
	id := uuid.NewString()
	gm.games[id] = s

	log.Info().Str("game", id).Msgf("created %dx%d game with %d mines", params.Width, params.Height, params.Mines)
	return s.snapshot(id), nil
}

// GetGame returns the current snapshot of a game.
func (gm *GameMaster) GetGame(id string) (Snapshot, error) {
	gm.mutex.Lock()
	defer gm.mutex.Unlock()
	s, ok := gm.games[id]
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return s.snapshot(id), nil
}

// SendMove plays move on a game and returns the snapshot with the events it produced.
func (gm *GameMaster) SendMove(id string, move game.Move) (Snapshot, error) {
	gm.mutex.Lock()
	defer gm.mutex.Unlock()
	s, ok := gm.games[id]
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}

	before := s.game.State()
	if err := s.game.Play(move); err != nil {
		log.Debug().Str("game", id).Err(err).Msgf("rejected move %v", move)
		return Snapshot{}, err
	}
	if state := s.game.State(); state != before && state.IsTerminal() {
		log.Info().Str("game", id).Msgf("game %s after %v", state, time.Since(s.created))
	}
	return s.snapshot(id), nil
}

// EndGame discards a game.
func (gm *GameMaster) EndGame(id string) error {
	gm.mutex.Lock()
	defer gm.mutex.Unlock()
	if _, ok := gm.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(gm.games, id)
	log.Info().Str("game", id).Msg("game ended")
	return nil
}

// Count returns the number of hosted games.
func (gm *GameMaster) Count() int {
	gm.mutex.Lock()
	defer gm.mutex.Unlock()
	return len(gm.games)
}

// snapshot drains the pending events.
func (s *session) snapshot(id string) Snapshot {
	g := s.game
	cells := make([][]game.CellView, g.Height())
	for y := range cells {
		cells[y] = make([]game.CellView, g.Width())
		for x := range cells[y] {
			// In bounds by construction.
			cells[y][x], _ = g.CellView(x, y)
		}
	}
	events := s.events
	s.events = nil
	if events == nil {
		events = []game.Event{}
	}
	return Snapshot{
		ID:             id,
		Width:          g.Width(),
		Height:         g.Height(),
		Mines:          g.MineCount(),
		RemainingMines: g.RemainingMines(),
		State:          g.State(),
		Cells:          cells,
		Events:         events,
	}
}

// Board adapts a snapshot to the read-only view players decide on.
func (s Snapshot) Board() *SnapshotBoard {
	return &SnapshotBoard{snapshot: s}
}

type SnapshotBoard struct {
	snapshot Snapshot
}

func (b *SnapshotBoard) Width() int        { return b.snapshot.Width }
func (b *SnapshotBoard) Height() int       { return b.snapshot.Height }
func (b *SnapshotBoard) State() game.State { return b.snapshot.State }

func (b *SnapshotBoard) CellView(x, y int) (game.CellView, error) {
	if x < 0 || y < 0 || x >= b.snapshot.Width || y >= b.snapshot.Height {
		return game.CellView{}, &game.CoordinateError{X: x, Y: y, Width: b.snapshot.Width, Height: b.snapshot.Height}
	}
	return b.snapshot.Cells[y][x], nil
}
