package meta

import (
	"errors"
	"fmt"
	"minesweeper/game"
	"minesweeper/player"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

func (b Board) String() string {
	return fmt.Sprintf("%dx%d/%d", b.Width, b.Height, b.Mines)
}

func (b Board) Validate() error {
	if b.Width <= 0 || b.Height <= 0 || b.Mines < 0 || b.Mines > game.MaxMines(b.Width, b.Height) {
		return &game.ConfigError{Width: b.Width, Height: b.Height, Mines: b.Mines}
	}
	return nil
}

type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Experiment struct {
	Name       string   `yaml:"name"`
	Boards     []Board  `yaml:"boards"`
	Players    []string `yaml:"players"`
	Games      int      `yaml:"games"`
	Goroutines int      `yaml:"goroutines"`
	MaxMoves   int      `yaml:"max_moves"`
	Seed       uint64   `yaml:"seed"`
	OutDir     string   `yaml:"out_dir"`
}

// Config is the file-backed configuration of the command. Seed 0 seeds
// single games from the clock.
type Config struct {
	Board      Board      `yaml:"board"`
	Player     string     `yaml:"player"`
	Seed       uint64     `yaml:"seed"`
	Log        Log        `yaml:"log"`
	Server     Server     `yaml:"server"`
	Experiment Experiment `yaml:"experiment"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Board:  Board{Width: DEFAULT_WIDTH, Height: DEFAULT_HEIGHT, Mines: DEFAULT_MINES},
		Player: player.Logic,
		Log:    Log{Level: zerolog.LevelInfoValue, Pretty: true},
		Server: Server{Addr: SERVER_ADDR},
		Experiment: Experiment{
			Name: "win_rate",
			Boards: []Board{
				{Width: 9, Height: 9, Mines: 10},
				{Width: DEFAULT_WIDTH, Height: DEFAULT_HEIGHT, Mines: DEFAULT_MINES},
				{Width: 30, Height: 16, Mines: 99},
			},
			Players:    player.Names(),
			Games:      GAMES,
			Goroutines: GO_ROUTINES,
			MaxMoves:   MAX_MOVES,
			Seed:       1,
			OutDir:     EXPERIMENTS_DIR,
		},
	}
}

// Load reads a YAML file over the defaults, so absent keys keep their
// default value, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if err := c.Board.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("board: %w", err))
	}
	if !slices.Contains(player.Names(), c.Player) {
		errs = append(errs, fmt.Errorf("player: %w: %q", player.ErrUnknownPlayer, c.Player))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr: must not be empty"))
	}
	if err := c.Experiment.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("experiment: %w", err))
	}
	return errors.Join(errs...)
}

func (e Experiment) Validate() error {
	var errs []error
	if e.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if len(e.Boards) == 0 {
		errs = append(errs, errors.New("at least one board is required"))
	}
	for i, b := range e.Boards {
		if err := b.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("boards[%d]: %w", i, err))
		}
	}
	if len(e.Players) == 0 {
		errs = append(errs, errors.New("at least one player is required"))
	}
	for _, p := range e.Players {
		if !slices.Contains(player.Names(), p) {
			errs = append(errs, fmt.Errorf("%w: %q", player.ErrUnknownPlayer, p))
		}
	}
	if e.Games <= 0 {
		errs = append(errs, errors.New("games must be positive"))
	}
	if e.Goroutines <= 0 {
		errs = append(errs, errors.New("goroutines must be positive"))
	}
	if e.MaxMoves <= 0 {
		errs = append(errs, errors.New("max_moves must be positive"))
	}
	return errors.Join(errs...)
}
