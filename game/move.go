package game

import (
	"fmt"
	"strings"
)

type MoveType byte

const (
	Reveal MoveType = 0x01
	Flag   MoveType = 0x02
)

func (t MoveType) String() string {
	switch t {
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	default:
		return "unknown"
	}
}

func (t MoveType) MarshalText() ([]byte, error) {
	if t != Reveal && t != Flag {
		return nil, fmt.Errorf("%w: %#x", ErrUnknownMove, byte(t))
	}
	return []byte(t.String()), nil
}

func (t *MoveType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "reveal":
		*t = Reveal
	case "flag":
		*t = Flag
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMove, text)
	}
	return nil
}

// Move is a single player action on a cell.
type Move struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Type MoveType `json:"type"`
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d) %s", m.X, m.Y, m.Type)
}

// ParseMove reads "x y" as a reveal and "x y f" as a flag toggle.
func ParseMove(text string) (Move, error) {
	var x, y int
	var kind string
	n, _ := fmt.Sscanf(strings.TrimSpace(text), "%d %d %s", &x, &y, &kind)
	if n < 2 {
		return Move{}, fmt.Errorf("incorrect input %q: expected \"x y\" or \"x y f\"", text)
	}
	switch {
	case n == 2:
		return Move{X: x, Y: y, Type: Reveal}, nil
	case strings.EqualFold(kind, "f"):
		return Move{X: x, Y: y, Type: Flag}, nil
	default:
		return Move{}, fmt.Errorf("incorrect input %q: unknown action %q", text, kind)
	}
}
