package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxMines(t *testing.T) {
	cases := []struct {
		width, height, want int
	}{
		{5, 5, 16},
		{16, 16, 247},
		{2, 2, 0},
		{3, 3, 0},
		{1, 10, 7},
		{1, 1, 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, MaxMines(tc.width, tc.height), "MaxMines(%d, %d)", tc.width, tc.height)
	}
}

func TestSafeZone(t *testing.T) {
	grid, err := NewGrid(5, 5)
	require.NoError(t, err)

	require.Equal(t, 4, SafeZone(grid, Coord{0, 0}).Size(), "Corner safe zone has 4 cells")
	require.Equal(t, 6, SafeZone(grid, Coord{2, 0}).Size(), "Edge safe zone has 6 cells")
	require.Equal(t, 9, SafeZone(grid, Coord{2, 2}).Size(), "Interior safe zone has 9 cells")
	require.True(t, SafeZone(grid, Coord{2, 2}).Has(Coord{2, 2}), "Safe zone contains the origin")
}

func TestMinePlacerGenerate(t *testing.T) {
	t.Run("relocates draws that land in the safe zone", func(t *testing.T) {
		grid, err := NewGrid(5, 5)
		require.NoError(t, err)
		// Draws (0,0), (4,4), (2,2), (0,4); (2,2) is the origin and is redrawn.
		rng := &scriptedRand{t: t, values: []int{0, 0, 4, 4, 2, 2, 0, 4}}

		mines, err := NewMinePlacer(rng).Generate(grid, Coord{2, 2}, 3)
		require.NoError(t, err)
		require.Equal(t, []Coord{{0, 0}, {4, 4}, {0, 4}}, mines)
		require.Equal(t, Empty, grid.cell(Coord{2, 2}).Kind, "Origin must not be a mine")
		for _, c := range append(grid.NeighborsOf(Coord{2, 2}), Coord{2, 2}) {
			require.Equal(t, Empty, grid.cell(c).Kind, "Safe zone cell %v must be empty", c)
		}
		require.Equal(t, 0, grid.cell(Coord{2, 2}).AdjacentMines, "Origin should be a cascade trigger")
		require.Equal(t, 1, grid.cell(Coord{1, 1}).AdjacentMines)
		require.Equal(t, 1, grid.cell(Coord{0, 3}).AdjacentMines)
		require.Equal(t, 0, grid.cell(Coord{4, 0}).AdjacentMines, "(4,0) touches no mine")
	})

	t.Run("rejects already placed draws", func(t *testing.T) {
		grid, err := NewGrid(5, 5)
		require.NoError(t, err)
		rng := &scriptedRand{t: t, values: []int{4, 0, 4, 0, 0, 4}}

		mines, err := NewMinePlacer(rng).Generate(grid, Coord{1, 1}, 2)
		require.NoError(t, err)
		require.Equal(t, []Coord{{4, 0}, {0, 4}}, mines)
	})

	t.Run("places exactly mineCount mines outside the safe zone", func(t *testing.T) {
		origins := []Coord{{0, 0}, {7, 0}, {3, 3}, {7, 5}, {0, 5}}
		for seed := uint64(1); seed <= 20; seed++ {
			for _, origin := range origins {
				grid, err := NewGrid(8, 6)
				require.NoError(t, err)
				mines, err := NewMinePlacer(NewRand(seed)).Generate(grid, origin, 20)
				require.NoError(t, err)

				require.Len(t, mines, 20)
				require.Len(t, grid.Mines(), 20, "Grid should hold exactly the placed mines")
				safe := SafeZone(grid, origin)
				for _, m := range mines {
					require.False(t, safe.Has(m), "mine %v inside safe zone of %v", m, origin)
				}
			}
		}
	})

	t.Run("counts adjacent mines exactly, edges and corners included", func(t *testing.T) {
		for seed := uint64(1); seed <= 20; seed++ {
			grid, err := NewGrid(7, 4)
			require.NoError(t, err)
			_, err = NewMinePlacer(NewRand(seed)).Generate(grid, Coord{3, 2}, 10)
			require.NoError(t, err)

			for y := 0; y < 4; y++ {
				for x := 0; x < 7; x++ {
					if grid.cell(Coord{x, y}).Kind == Mine {
						continue
					}
					want := 0
					for dy := -1; dy <= 1; dy++ {
						for dx := -1; dx <= 1; dx++ {
							nx, ny := x+dx, y+dy
							if (dx != 0 || dy != 0) && nx >= 0 && nx < 7 && ny >= 0 && ny < 4 &&
								grid.cells[ny*7+nx].Kind == Mine {
								want++
							}
						}
					}
					require.Equal(t, want, grid.cell(Coord{x, y}).AdjacentMines, "count at (%d, %d)", x, y)
				}
			}
		}
	})

	t.Run("is reproducible for a seed", func(t *testing.T) {
		grid1, _ := NewGrid(9, 9)
		grid2, _ := NewGrid(9, 9)
		mines1, err := NewMinePlacer(NewRand(42)).Generate(grid1, Coord{4, 4}, 10)
		require.NoError(t, err)
		mines2, err := NewMinePlacer(NewRand(42)).Generate(grid2, Coord{4, 4}, 10)
		require.NoError(t, err)
		require.Equal(t, mines1, mines2)
	})

	t.Run("runs only once per grid", func(t *testing.T) {
		grid, _ := NewGrid(5, 5)
		placer := NewMinePlacer(NewRand(1))
		_, err := placer.Generate(grid, Coord{0, 0}, 3)
		require.NoError(t, err)

		_, err = placer.Generate(grid, Coord{0, 0}, 3)
		require.ErrorIs(t, err, ErrMinesAlreadyPlaced)
		require.Len(t, grid.Mines(), 3, "Second call must not add mines")
	})

	t.Run("bound depends on the origin's safe zone", func(t *testing.T) {
		corner, _ := NewGrid(3, 3)
		_, err := NewMinePlacer(NewRand(1)).Generate(corner, Coord{0, 0}, 5)
		require.NoError(t, err, "A corner origin leaves 5 free cells")

		center, _ := NewGrid(3, 3)
		_, err = NewMinePlacer(NewRand(1)).Generate(center, Coord{1, 1}, 1)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "A center origin leaves no free cells")
	})

	t.Run("rejects an out of bounds origin", func(t *testing.T) {
		grid, _ := NewGrid(3, 3)
		_, err := NewMinePlacer(NewRand(1)).Generate(grid, Coord{3, 0}, 1)
		require.ErrorIs(t, err, ErrInvalidCoordinate)
	})
}
