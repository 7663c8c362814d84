package player

import (
	"minesweeper/game"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeBoard struct {
	state game.State
	cells [][]game.CellView
}

func (b *fakeBoard) Width() int        { return len(b.cells[0]) }
func (b *fakeBoard) Height() int       { return len(b.cells) }
func (b *fakeBoard) State() game.State { return b.state }
func (b *fakeBoard) CellView(x, y int) (game.CellView, error) {
	return b.cells[y][x], nil
}

func covered() game.CellView { return game.CellView{} }
func flagged() game.CellView { return game.CellView{Flagged: true} }
func number(n int) game.CellView {
	isMine := false
	return game.CellView{Revealed: true, AdjacentMines: &n, IsMine: &isMine}
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		p, err := New(name, 1)
		require.NoError(t, err)
		require.Equal(t, name, p.Name())
	}

	_, err := New("oracle", 1)
	require.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestRandomPlayer(t *testing.T) {
	t.Run("only picks open cells", func(t *testing.T) {
		board := &fakeBoard{state: game.InProgress, cells: [][]game.CellView{
			{number(1), flagged(), covered()},
			{number(1), number(1), number(0)},
		}}
		p := NewRandomPlayer(3)
		for i := 0; i < 20; i++ {
			move, err := p.NextMove(board)
			require.NoError(t, err)
			require.Equal(t, game.Move{X: 2, Y: 0, Type: game.Reveal}, move)
		}
	})

	t.Run("fails when nothing is open", func(t *testing.T) {
		board := &fakeBoard{state: game.InProgress, cells: [][]game.CellView{{number(1), flagged()}}}
		_, err := NewRandomPlayer(1).NextMove(board)
		require.ErrorIs(t, err, ErrNoMoves)
	})
}

func TestLogicPlayer(t *testing.T) {
	t.Run("opens the center first", func(t *testing.T) {
		board := &fakeBoard{state: game.NotStarted, cells: [][]game.CellView{
			make([]game.CellView, 5), make([]game.CellView, 5), make([]game.CellView, 5),
		}}
		move, err := NewLogicPlayer(1).NextMove(board)
		require.NoError(t, err)
		require.Equal(t, game.Move{X: 2, Y: 1, Type: game.Reveal}, move)
	})

	t.Run("reveals next to a satisfied number", func(t *testing.T) {
		board := &fakeBoard{state: game.InProgress, cells: [][]game.CellView{
			{flagged(), number(1), covered()},
		}}
		move, err := NewLogicPlayer(1).NextMove(board)
		require.NoError(t, err)
		require.Equal(t, game.Move{X: 2, Y: 0, Type: game.Reveal}, move)
	})

	t.Run("flags when every open neighbour is a mine", func(t *testing.T) {
		board := &fakeBoard{state: game.InProgress, cells: [][]game.CellView{
			{covered(), number(1), number(0)},
		}}
		move, err := NewLogicPlayer(1).NextMove(board)
		require.NoError(t, err)
		require.Equal(t, game.Move{X: 0, Y: 0, Type: game.Flag}, move)
	})

	t.Run("guesses when nothing is certain", func(t *testing.T) {
		board := &fakeBoard{state: game.InProgress, cells: [][]game.CellView{
			{covered(), covered(), covered()},
			{covered(), number(1), covered()},
		}}
		move, err := NewLogicPlayer(1).NextMove(board)
		require.NoError(t, err)
		require.Equal(t, game.Reveal, move.Type)
		require.False(t, move.X == 1 && move.Y == 1, "Revealed cells are never guessed")
	})

	t.Run("finishes real games", func(t *testing.T) {
		for seed := uint64(1); seed <= 20; seed++ {
			g, err := game.New(9, 9, 10, game.WithSeed(seed))
			require.NoError(t, err)
			p := NewLogicPlayer(seed)

			for moves := 0; !g.State().IsTerminal(); moves++ {
				require.Less(t, moves, 9*9, "seed %d: every move must shrink the open area", seed)
				move, err := p.NextMove(g)
				require.NoError(t, err)
				require.NoError(t, g.Play(move))
			}
			require.GreaterOrEqual(t, g.RemainingMines(), 0, "seed %d: deduced flags are always mines", seed)
		}
	})
}
