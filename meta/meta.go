// meta/meta.go
package meta

// DEFAULT_WIDTH and DEFAULT_HEIGHT define the intermediate board.
const DEFAULT_WIDTH = 16
const DEFAULT_HEIGHT = 16

// DEFAULT_MINES defines the mine count of the intermediate board.
const DEFAULT_MINES = 40

// GO_ROUTINES defines the number of goroutines experiments play on.
const GO_ROUTINES = 8

// GAMES defines the number of games per experiment pairing.
const GAMES = 100

// MAX_MOVES defines the move limit of a single game.
const MAX_MOVES = 10000

const SERVER_ADDR = ":8080"

const EXPERIMENTS_DIR = "experiments/results"
