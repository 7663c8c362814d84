package communication

import (
	"errors"
	"minesweeper/game"
	"minesweeper/gamemaster"
	"net/http"
)

var ErrBadRequest = errors.New("bad request")

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type errorCode struct {
	code   string
	err    error
	status int
}

var errorCodes = []errorCode{
	{"invalid_configuration", game.ErrInvalidConfiguration, http.StatusBadRequest},
	{"invalid_coordinate", game.ErrInvalidCoordinate, http.StatusBadRequest},
	{"unknown_move", game.ErrUnknownMove, http.StatusBadRequest},
	{"bad_request", ErrBadRequest, http.StatusBadRequest},
	{"not_found", gamemaster.ErrGameNotFound, http.StatusNotFound},
}

// Classify returns the wire code and HTTP status for err.
func Classify(err error) (code string, status int) {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code, c.status
		}
	}
	return "internal", http.StatusInternalServerError
}

// Sentinel maps a wire code back to the error it was classified from, or
// nil for unknown codes.
func Sentinel(code string) error {
	for _, c := range errorCodes {
		if c.code == code {
			return c.err
		}
	}
	return nil
}
