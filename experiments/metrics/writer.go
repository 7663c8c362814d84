package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config identifies one (board, player) pairing of an experiment.
type Config struct {
	ID     int
	Width  int
	Height int
	Mines  int
	Player string
	Games  int
}

type GameRecord struct {
	ID     int
	Config int // Config.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteConfigs(configs []Config) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Width),
			strconv.Itoa(config.Height),
			strconv.Itoa(config.Mines),
			config.Player,
			strconv.Itoa(config.Games),
		})
	}
	header := []string{"id", "width", "height", "mines", "player", "games"}
	return w.write("configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Config),
			record.Player,
			strconv.FormatUint(record.Seed, 10),
			record.Result.String(),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.CellsRevealed),
			strconv.Itoa(record.FlagsPlaced),
		})
	}
	header := []string{"id", "config", "player", "seed", "result", "start_time", "end_time", "duration", "total_moves", "cells_revealed", "flags_placed"}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Move.X),
			strconv.Itoa(record.Move.Y),
			record.Move.Type.String(),
			strconv.Itoa(record.CellsRevealed),
			strconv.Itoa(record.FlagsToggled),
			record.Duration.String(),
		})
	}
	header := []string{"game", "step", "x", "y", "type", "cells_revealed", "flags_toggled", "duration"}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
