package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"minesweeper/communication/client"
	"minesweeper/communication/server"
	"minesweeper/engine"
	"minesweeper/experiments"
	"minesweeper/experiments/metrics"
	"minesweeper/game"
	"minesweeper/gamemaster"
	"minesweeper/meta"
	"minesweeper/player"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	mode := flag.String("mode", "play", "play, auto, serve, experiment or throughput")
	width := flag.Int("width", meta.DEFAULT_WIDTH, "Board width")
	height := flag.Int("height", meta.DEFAULT_HEIGHT, "Board height")
	mines := flag.Int("mines", meta.DEFAULT_MINES, "Number of mines")
	seed := flag.Uint64("seed", 0, "Mine placement seed, 0 seeds from the clock")
	playerName := flag.String("player", player.Logic, "Player for auto mode: random or logic")
	addr := flag.String("addr", meta.SERVER_ADDR, "Listen address for serve mode")
	remote := flag.String("remote", "", "Server URL to play auto mode against")
	flag.Parse()

	cfg := meta.Default()
	if *configPath != "" {
		loaded, err := meta.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	// Flags set on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Board.Width = *width
		case "height":
			cfg.Board.Height = *height
		case "mines":
			cfg.Board.Mines = *mines
		case "seed":
			cfg.Seed = *seed
		case "player":
			cfg.Player = *playerName
		case "addr":
			cfg.Server.Addr = *addr
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogger(cfg.Log)

	var err error
	switch *mode {
	case "play":
		err = play(cfg, os.Stdin, os.Stdout)
	case "auto":
		err = auto(cfg, *remote)
	case "serve":
		err = serve(cfg)
	case "experiment":
		err = experiment(cfg)
	case "throughput":
		_, err = experiments.RunThroughputExperiment(cfg.Experiment, []int{1, 2, 4, 8, 16, 32})
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func setupLogger(cfg meta.Log) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
}

func newGame(cfg meta.Config) (*game.Game, error) {
	options := []game.Option{}
	if cfg.Seed != 0 {
		options = append(options, game.WithSeed(cfg.Seed))
	}
	return game.New(cfg.Board.Width, cfg.Board.Height, cfg.Board.Mines, options...)
}

// play runs an interactive game on the terminal.
func play(cfg meta.Config, in io.Reader, out io.Writer) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for !g.State().IsTerminal() {
		fmt.Fprint(out, g)
		fmt.Fprintf(out, "mines left: %d\nmove (x y to reveal, x y f to flag): ", g.RemainingMines())
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		move, err := game.ParseMove(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if err := g.Play(move); err != nil {
			fmt.Fprintln(out, err)
		}
	}

	fmt.Fprint(out, g)
	if g.State() == game.Won {
		fmt.Fprintln(out, "You won!")
	} else {
		fmt.Fprintln(out, "Boom! You lost.")
	}
	return nil
}

// auto lets a player finish one game, locally or against a server.
func auto(cfg meta.Config, remote string) error {
	p, err := player.New(cfg.Player, cfg.Seed)
	if err != nil {
		return err
	}

	var e engine.Engine
	if remote != "" {
		params := gamemaster.Params{Width: cfg.Board.Width, Height: cfg.Board.Height, Mines: cfg.Board.Mines}
		if cfg.Seed != 0 {
			params.Seed = &cfg.Seed
		}
		e = engine.RemoteEngine(client.NewClientCommunicator(remote), params, p)
	} else {
		g, err := newGame(cfg)
		if err != nil {
			return err
		}
		defer func() { fmt.Print(g) }()
		e = engine.LocalEngine(g, p, engine.WithSeed(cfg.Seed))
	}

	result, gameMetric, _ := e.Run()
	log.Info().Msgf("%s %s after %d moves in %v", p.Name(), result, gameMetric.TotalMoves, gameMetric.Duration)
	return nil
}

func serve(cfg meta.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.NewServerCommunicator(gamemaster.NewGameMaster()).Start(ctx, cfg.Server.Addr)
}

func experiment(cfg meta.Config) error {
	writer, err := metrics.NewWriter(cfg.Experiment.OutDir, cfg.Experiment.Name)
	if err != nil {
		return err
	}
	_, err = experiments.Run(cfg.Experiment, writer)
	return err
}
