package game

import (
	"fmt"
	"strings"
)

// Symbols used by String.
const (
	SymbolCovered      = '#'
	SymbolFlag         = 'F'
	SymbolWrongFlag    = 'X'
	SymbolMine         = '*'
	SymbolZero         = '.'
	columnHeaderIndent = "   "
)

// String renders the visible board, one row per line, with column and row
// indices modulo 10.
func (g *Game) String() string {
	var b strings.Builder
	b.WriteString(columnHeaderIndent)
	for x := 0; x < g.grid.width; x++ {
		fmt.Fprintf(&b, "%d ", x%10)
	}
	b.WriteByte('\n')

	for y := 0; y < g.grid.height; y++ {
		fmt.Fprintf(&b, "%2d ", y%10)
		for x := 0; x < g.grid.width; x++ {
			b.WriteRune(symbol(g.grid.cell(Coord{X: x, Y: y})))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func symbol(cell *Cell) rune {
	switch {
	case cell.Revealed && cell.Kind == Mine:
		return SymbolMine
	case cell.Revealed && cell.AdjacentMines == 0:
		return SymbolZero
	case cell.Revealed:
		return rune('0' + cell.AdjacentMines)
	case cell.Flagged:
		return SymbolFlag
	case cell.FlaggedWrong:
		return SymbolWrongFlag
	default:
		return SymbolCovered
	}
}
