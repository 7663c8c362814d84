package game

import "fmt"

// Coord identifies a cell by its 0-indexed column (X) and row (Y).
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

type Kind int

const (
	Empty Kind = iota
	Mine
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Mine:
		return "Mine"
	default:
		return "Unknown"
	}
}

// Cell holds the hidden and visible state of one square.
type Cell struct {
	Kind          Kind // Fixed once mines are placed
	AdjacentMines int  // Valid for Empty cells after placement
	Revealed      bool // Never reverts once set
	Flagged       bool // Only toggled while covered
	FlaggedWrong  bool // Set on loss for flags that were not on a mine
}

// Grid is a fixed width x height board stored as a flat slice in row-major order.
type Grid struct {
	width  int
	height int
	cells  []Cell
	placed bool
}

// NewGrid returns an empty, unmined grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConfigError{Width: width, Height: height}
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return len(g.cells)
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CellAt returns the cell at (x, y) or a *CoordinateError.
func (g *Grid) CellAt(x, y int) (*Cell, error) {
	if !g.InBounds(x, y) {
		return nil, &CoordinateError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	return &g.cells[y*g.width+x], nil
}

// cell assumes c is in bounds.
func (g *Grid) cell(c Coord) *Cell {
	return &g.cells[c.Y*g.width+c.X]
}

// NeighborsOf returns the up to 8 in-bounds coordinates around c, row by row
// from the top-left.
func (g *Grid) NeighborsOf(c Coord) []Coord {
	neighbors := make([]Coord, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := c.X+dx, c.Y+dy
			if g.InBounds(x, y) {
				neighbors = append(neighbors, Coord{X: x, Y: y})
			}
		}
	}
	return neighbors
}

// Mines returns the coordinates of every mine in row-major order.
func (g *Grid) Mines() []Coord {
	var mines []Coord
	for i := range g.cells {
		if g.cells[i].Kind == Mine {
			mines = append(mines, Coord{X: i % g.width, Y: i / g.width})
		}
	}
	return mines
}
