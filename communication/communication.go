package communication

import (
	"minesweeper/game"
	"minesweeper/gamemaster"
)

// Communicator is an interface that abstracts where games are hosted.
// *gamemaster.GameMaster serves games in process and
// *client.ClientCommunicator reaches a server over HTTP.
type Communicator interface {
	NewGame(params gamemaster.Params) (gamemaster.Snapshot, error)
	GetGame(id string) (gamemaster.Snapshot, error)
	SendMove(id string, move game.Move) (gamemaster.Snapshot, error)
	EndGame(id string) error
}

var _ Communicator = (*gamemaster.GameMaster)(nil)
