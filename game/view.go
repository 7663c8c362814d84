package game

// CellView is the rendering-safe projection of a cell. AdjacentMines and
// IsMine are nil while the cell is covered.
type CellView struct {
	Revealed      bool  `json:"revealed"`
	Flagged       bool  `json:"flagged"`
	FlaggedWrong  bool  `json:"flagged_wrong"`
	AdjacentMines *int  `json:"adjacent_mines"`
	IsMine        *bool `json:"is_mine"`
}

func newCellView(cell *Cell) CellView {
	view := CellView{
		Revealed:     cell.Revealed,
		Flagged:      cell.Flagged,
		FlaggedWrong: cell.FlaggedWrong,
	}
	if cell.Revealed {
		isMine := cell.Kind == Mine
		view.IsMine = &isMine
		if !isMine {
			count := cell.AdjacentMines
			view.AdjacentMines = &count
		}
	}
	return view
}
