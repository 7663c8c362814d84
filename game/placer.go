package game

import (
	"time"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/rand"
)

// Rand is the random source used for mine placement.
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded random source.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}

func clockRand() Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}

// MaxMines returns the largest mine count that can be placed on a width x
// height board for any first reveal, i.e. with the largest safe zone the
// board allows.
func MaxMines(width, height int) int {
	return width*height - min(width, 3)*min(height, 3)
}

// MinePlacer assigns mines to a grid around a safe first reveal.
type MinePlacer struct {
	rng Rand
}

func NewMinePlacer(rng Rand) *MinePlacer {
	return &MinePlacer{rng: rng}
}

// SafeZone returns origin and its in-bounds neighbours.
func SafeZone(grid *Grid, origin Coord) mapset.Set[Coord] {
	zone := mapset.New[Coord]()
	zone.Put(origin)
	for _, n := range grid.NeighborsOf(origin) {
		zone.Put(n)
	}
	return zone
}

// Generate places mineCount mines outside the safe zone of origin, then
// computes the adjacent mine count of every empty cell. It returns the mines
// in placement order and may only be called once per grid.
func (p *MinePlacer) Generate(grid *Grid, origin Coord, mineCount int) ([]Coord, error) {
	if grid.placed {
		return nil, ErrMinesAlreadyPlaced
	}
	if !grid.InBounds(origin.X, origin.Y) {
		return nil, &CoordinateError{X: origin.X, Y: origin.Y, Width: grid.width, Height: grid.height}
	}
	safe := SafeZone(grid, origin)
	if mineCount < 0 || mineCount > grid.Size()-safe.Size() {
		return nil, &ConfigError{Width: grid.width, Height: grid.height, Mines: mineCount}
	}

	mines := make([]Coord, 0, mineCount)
	for len(mines) < mineCount {
		c := Coord{X: p.rng.Intn(grid.width), Y: p.rng.Intn(grid.height)}
		cell := grid.cell(c)
		if cell.Kind == Mine || safe.Has(c) {
			continue
		}
		cell.Kind = Mine
		mines = append(mines, c)
	}

	countAdjacentMines(grid)
	grid.placed = true
	return mines, nil
}

// countAdjacentMines sets AdjacentMines on every empty cell, including the
// zero-count cells that trigger a cascade.
func countAdjacentMines(grid *Grid) {
	for y := 0; y < grid.height; y++ {
		for x := 0; x < grid.width; x++ {
			c := Coord{X: x, Y: y}
			cell := grid.cell(c)
			if cell.Kind == Mine {
				continue
			}
			count := 0
			for _, n := range grid.NeighborsOf(c) {
				if grid.cell(n).Kind == Mine {
					count++
				}
			}
			cell.AdjacentMines = count
		}
	}
}
