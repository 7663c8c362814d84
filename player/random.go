package player

import (
	"minesweeper/game"

	"golang.org/x/exp/rand"
)

// RandomPlayer reveals a uniformly random covered, unflagged cell.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) Name() string {
	return Random
}

func (p *RandomPlayer) NextMove(board Board) (game.Move, error) {
	cells, err := views(board)
	if err != nil {
		return game.Move{}, err
	}
	return guess(p.rng, cells)
}

func guess(rng *rand.Rand, cells [][]game.CellView) (game.Move, error) {
	var open []game.Coord
	for y, row := range cells {
		for x, view := range row {
			if isOpen(view) {
				open = append(open, game.Coord{X: x, Y: y})
			}
		}
	}
	if len(open) == 0 {
		return game.Move{}, ErrNoMoves
	}
	c := open[rng.Intn(len(open))]
	return game.Move{X: c.X, Y: c.Y, Type: game.Reveal}, nil
}
