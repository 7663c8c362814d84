package game

import "fmt"

type State int

const (
	NotStarted State = iota
	InProgress
	Won
	Lost
)

var stateNames = map[State]string{
	NotStarted: "not_started",
	InProgress: "in_progress",
	Won:        "won",
	Lost:       "lost",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether the game accepts no further input.
func (s State) IsTerminal() bool {
	return s == Won || s == Lost
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown game state %q", text)
}

type Option func(g *Game)

// WithRand sets the random source used to place mines on the first reveal.
func WithRand(rng Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithSeed makes mine placement reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = NewRand(seed)
	}
}

// Game is the state machine callers interact with. Mines are placed on the
// first reveal; Won and Lost are terminal and silently ignore further input.
// A Game is not safe for concurrent use.
type Game struct {
	grid      *Grid
	mineCount int
	state     State
	rng       Rand
	placer    *MinePlacer
	revealer  *RevealEngine
	uncovered int // Revealed empty cells
	flags     int
	subs      subscribers
}

// New validates the board parameters and returns a game waiting for its first reveal.
func New(width, height, mineCount int, options ...Option) (*Game, error) {
	if width <= 0 || height <= 0 || mineCount < 0 || mineCount > MaxMines(width, height) {
		return nil, &ConfigError{Width: width, Height: height, Mines: mineCount}
	}
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	g := &Game{
		grid:      grid,
		mineCount: mineCount,
		state:     NotStarted,
	}
	for _, option := range options {
		option(g)
	}
	if g.rng == nil {
		g.rng = clockRand()
	}
	g.placer = NewMinePlacer(g.rng)
	g.revealer = NewRevealEngine(grid)
	return g, nil
}

func (g *Game) Width() int {
	return g.grid.width
}

func (g *Game) Height() int {
	return g.grid.height
}

func (g *Game) MineCount() int {
	return g.mineCount
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) FlagCount() int {
	return g.flags
}

// RemainingMines is the mine count minus the placed flags. It goes negative
// when the player over-flags.
func (g *Game) RemainingMines() int {
	return g.mineCount - g.flags
}

// Subscribe registers l for the event batch produced by each action.
// The returned function removes the subscription.
func (g *Game) Subscribe(l Listener) (unsubscribe func()) {
	return g.subs.add(l)
}

// CellView returns what a renderer may know about the cell at (x, y).
func (g *Game) CellView(x, y int) (CellView, error) {
	cell, err := g.grid.CellAt(x, y)
	if err != nil {
		return CellView{}, err
	}
	return newCellView(cell), nil
}

// Play dispatches a move to Reveal or ToggleFlag.
func (g *Game) Play(move Move) error {
	switch move.Type {
	case Reveal:
		return g.Reveal(move.X, move.Y)
	case Flag:
		return g.ToggleFlag(move.X, move.Y)
	default:
		return fmt.Errorf("%w: %#x", ErrUnknownMove, byte(move.Type))
	}
}

// Reveal uncovers the cell at (x, y). The first reveal places the mines
// around it and starts the game.
func (g *Game) Reveal(x, y int) error {
	if _, err := g.grid.CellAt(x, y); err != nil {
		return err
	}
	if g.state.IsTerminal() {
		return nil
	}

	origin := Coord{X: x, Y: y}
	if g.state == NotStarted {
		if _, err := g.placer.Generate(g.grid, origin, g.mineCount); err != nil {
			return err
		}
		g.state = InProgress
	}

	revealed, hitMine := g.revealer.Reveal(origin)
	events := make([]Event, 0, len(revealed)+1)
	for _, c := range revealed {
		events = append(events, Event{Type: CellRevealed, X: c.X, Y: c.Y})
	}

	if hitMine {
		g.state = Lost
		events = append(events, g.clearWrongFlags()...)
		events = append(events, Event{Type: GameLost})
	} else {
		g.uncovered += len(revealed)
		if g.uncovered == g.grid.Size()-g.mineCount {
			g.state = Won
			events = append(events, Event{Type: GameWon})
		}
	}

	g.subs.emit(events)
	return nil
}

// clearWrongFlags unflags every flagged empty cell and marks it FlaggedWrong.
// Flags on mines are left untouched.
func (g *Game) clearWrongFlags() []Event {
	var events []Event
	for i := range g.grid.cells {
		cell := &g.grid.cells[i]
		if cell.Flagged && cell.Kind != Mine {
			cell.Flagged = false
			cell.FlaggedWrong = true
			g.flags--
			events = append(events, Event{Type: FlagToggled, X: i % g.grid.width, Y: i / g.grid.width})
		}
	}
	return events
}

// ToggleFlag flips the flag on a covered cell. Revealed cells are left alone.
func (g *Game) ToggleFlag(x, y int) error {
	cell, err := g.grid.CellAt(x, y)
	if err != nil {
		return err
	}
	if g.state.IsTerminal() || cell.Revealed {
		return nil
	}

	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		g.flags++
	} else {
		g.flags--
	}
	g.subs.emit([]Event{{Type: FlagToggled, X: x, Y: y}})
	return nil
}
