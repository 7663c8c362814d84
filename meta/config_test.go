package meta

import (
	"minesweeper/game"
	"minesweeper/player"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, Board{Width: 16, Height: 16, Mines: 40}, cfg.Board)
	require.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad(t *testing.T) {
	t.Run("keeps defaults for absent keys", func(t *testing.T) {
		path := writeConfig(t, `
board:
  width: 9
  height: 9
  mines: 10
log:
  level: debug
experiment:
  games: 5
  players: [random]
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, Board{Width: 9, Height: 9, Mines: 10}, cfg.Board)
		require.Equal(t, "debug", cfg.Log.Level)
		require.True(t, cfg.Log.Pretty, "Absent keys keep their default")
		require.Equal(t, player.Logic, cfg.Player)
		require.Equal(t, 5, cfg.Experiment.Games)
		require.Equal(t, []string{player.Random}, cfg.Experiment.Players)
		require.Len(t, cfg.Experiment.Boards, 3)
	})

	t.Run("rejects a board with too many mines", func(t *testing.T) {
		path := writeConfig(t, "board: {width: 5, height: 5, mines: 17}\n")
		_, err := Load(path)
		require.ErrorIs(t, err, game.ErrInvalidConfiguration)
	})

	t.Run("rejects unknown players", func(t *testing.T) {
		path := writeConfig(t, "player: oracle\n")
		_, err := Load(path)
		require.ErrorIs(t, err, player.ErrUnknownPlayer)
	})

	t.Run("reports every problem", func(t *testing.T) {
		path := writeConfig(t, `
log: {level: loud}
experiment: {games: 0, goroutines: -1}
`)
		_, err := Load(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "log.level")
		require.Contains(t, err.Error(), "games must be positive")
		require.Contains(t, err.Error(), "goroutines must be positive")
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "board: [1, 2\n"))
		require.Error(t, err)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
