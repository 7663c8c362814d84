package player

import (
	"errors"
	"fmt"
	"minesweeper/game"
)

var (
	ErrNoMoves       = errors.New("no covered cell left to play")
	ErrUnknownPlayer = errors.New("unknown player")
)

// Board is the read-only view of a game that a player decides on.
// *game.Game satisfies it.
type Board interface {
	Width() int
	Height() int
	State() game.State
	CellView(x, y int) (game.CellView, error)
}

// Player chooses the next move on a board.
type Player interface {
	Name() string
	NextMove(board Board) (game.Move, error)
}

// Names of the built-in players.
const (
	Random = "random"
	Logic  = "logic"
)

// New returns the named player seeded with seed.
func New(name string, seed uint64) (Player, error) {
	switch name {
	case Random:
		return NewRandomPlayer(seed), nil
	case Logic:
		return NewLogicPlayer(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
}

// Names lists the players New accepts.
func Names() []string {
	return []string{Random, Logic}
}

// views reads every cell of the board, row-major by y.
func views(board Board) ([][]game.CellView, error) {
	cells := make([][]game.CellView, board.Height())
	for y := range cells {
		cells[y] = make([]game.CellView, board.Width())
		for x := range cells[y] {
			view, err := board.CellView(x, y)
			if err != nil {
				return nil, err
			}
			cells[y][x] = view
		}
	}
	return cells, nil
}

func isOpen(view game.CellView) bool {
	return !view.Revealed && !view.Flagged
}
