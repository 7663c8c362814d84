package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidCoordinate    = errors.New("invalid coordinate")
	ErrMinesAlreadyPlaced   = errors.New("mines already placed")
	ErrUnknownMove          = errors.New("unknown move type")
)

// ConfigError reports board parameters that cannot produce a valid board.
type ConfigError struct {
	Width  int
	Height int
	Mines  int
}

func (e *ConfigError) Error() string {
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("cannot create a board with width: %d", e.Width)
	case e.Height <= 0:
		return fmt.Sprintf("cannot create a board with height: %d", e.Height)
	case e.Mines < 0:
		return fmt.Sprintf("cannot create a board with negative amount of mines: %d", e.Mines)
	default:
		return fmt.Sprintf("not enough space for %d mines on a %dx%d board (max %d)",
			e.Mines, e.Width, e.Height, MaxMines(e.Width, e.Height))
	}
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// CoordinateError reports a coordinate outside the board.
type CoordinateError struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("coordinate out of range - (%d, %d) - board (%d, %d)", e.X, e.Y, e.Width, e.Height)
}

func (e *CoordinateError) Is(target error) bool {
	return target == ErrInvalidCoordinate
}
