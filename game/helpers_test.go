package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays a fixed sequence of draws.
type scriptedRand struct {
	t      *testing.T
	values []int
	next   int
}

func (r *scriptedRand) Intn(n int) int {
	require.Less(r.t, r.next, len(r.values), "scripted rand ran out of values")
	v := r.values[r.next]
	r.next++
	require.Less(r.t, v, n, "scripted value out of range for Intn(%d)", n)
	return v
}

// gridWithMines builds a grid with mines at fixed coordinates.
func gridWithMines(t *testing.T, width, height int, mines ...Coord) *Grid {
	t.Helper()
	grid, err := NewGrid(width, height)
	require.NoError(t, err)
	for _, m := range mines {
		grid.cell(m).Kind = Mine
	}
	countAdjacentMines(grid)
	grid.placed = true
	return grid
}

// gameWithMines returns an in-progress game on a fixed layout.
func gameWithMines(t *testing.T, width, height int, mines ...Coord) *Game {
	t.Helper()
	g, err := New(width, height, 0, WithSeed(1))
	require.NoError(t, err)
	g.grid = gridWithMines(t, width, height, mines...)
	g.mineCount = len(mines)
	g.revealer = NewRevealEngine(g.grid)
	g.state = InProgress
	return g
}

func revealedSet(grid *Grid) map[Coord]bool {
	set := make(map[Coord]bool)
	for y := 0; y < grid.height; y++ {
		for x := 0; x < grid.width; x++ {
			c := Coord{X: x, Y: y}
			if grid.cell(c).Revealed {
				set[c] = true
			}
		}
	}
	return set
}
