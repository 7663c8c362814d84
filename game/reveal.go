package game

// RevealEngine uncovers cells and cascades through zero-count regions.
type RevealEngine struct {
	grid *Grid
}

func NewRevealEngine(grid *Grid) *RevealEngine {
	return &RevealEngine{grid: grid}
}

// Reveal uncovers the cell at c, which must be in bounds. Covered flagged
// cells and revealed cells are left alone. A zero-count cell reveals its
// connected zero-count region plus the non-mine, non-flagged border around it.
// hitMine reports whether c was a mine; the caller decides what that means.
func (e *RevealEngine) Reveal(c Coord) (revealed []Coord, hitMine bool) {
	cell := e.grid.cell(c)
	if cell.Revealed || cell.Flagged {
		return nil, false
	}

	cell.Revealed = true
	revealed = append(revealed, c)
	if cell.Kind == Mine {
		return revealed, true
	}
	if cell.AdjacentMines != 0 {
		return revealed, false
	}

	// Cells are marked revealed when queued so none is queued twice.
	queue := []Coord{c}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range e.grid.NeighborsOf(current) {
			neighbor := e.grid.cell(n)
			if neighbor.Revealed || neighbor.Flagged || neighbor.Kind == Mine {
				continue
			}
			neighbor.Revealed = true
			revealed = append(revealed, n)
			if neighbor.AdjacentMines == 0 {
				queue = append(queue, n)
			}
		}
	}
	return revealed, false
}
