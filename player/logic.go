package player

import (
	"minesweeper/game"

	"golang.org/x/exp/rand"
)

// LogicPlayer opens the center first, then applies single-point deduction
// around each revealed number and guesses only when nothing is certain.
type LogicPlayer struct {
	rng *rand.Rand
}

func NewLogicPlayer(seed uint64) *LogicPlayer {
	return &LogicPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *LogicPlayer) Name() string {
	return Logic
}

func (p *LogicPlayer) NextMove(board Board) (game.Move, error) {
	if board.State() == game.NotStarted {
		return game.Move{X: board.Width() / 2, Y: board.Height() / 2, Type: game.Reveal}, nil
	}
	cells, err := views(board)
	if err != nil {
		return game.Move{}, err
	}
	if move, ok := findSafeMove(cells); ok {
		return move, nil
	}
	if move, ok := findFlagMove(cells); ok {
		return move, nil
	}
	return guess(p.rng, cells)
}

// findSafeMove returns a covered neighbour of a number whose mines are all flagged.
func findSafeMove(cells [][]game.CellView) (game.Move, bool) {
	for y, row := range cells {
		for x, view := range row {
			if !isNumber(view) {
				continue
			}
			flagged, open := around(cells, x, y)
			if len(open) == 0 || *view.AdjacentMines != flagged {
				continue
			}
			return game.Move{X: open[0].X, Y: open[0].Y, Type: game.Reveal}, true
		}
	}
	return game.Move{}, false
}

// findFlagMove returns a covered neighbour of a number whose covered
// neighbours must all be mines.
func findFlagMove(cells [][]game.CellView) (game.Move, bool) {
	for y, row := range cells {
		for x, view := range row {
			if !isNumber(view) {
				continue
			}
			flagged, open := around(cells, x, y)
			if len(open) == 0 || *view.AdjacentMines != flagged+len(open) {
				continue
			}
			return game.Move{X: open[0].X, Y: open[0].Y, Type: game.Flag}, true
		}
	}
	return game.Move{}, false
}

func isNumber(view game.CellView) bool {
	return view.Revealed && view.AdjacentMines != nil && *view.AdjacentMines > 0
}

// around counts the flagged neighbours of (x, y) and lists the open ones.
func around(cells [][]game.CellView, x, y int) (flagged int, open []game.Coord) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if (dx == 0 && dy == 0) || ny < 0 || ny >= len(cells) || nx < 0 || nx >= len(cells[ny]) {
				continue
			}
			switch view := cells[ny][nx]; {
			case view.Flagged:
				flagged++
			case !view.Revealed:
				open = append(open, game.Coord{X: nx, Y: ny})
			}
		}
	}
	return flagged, open
}
