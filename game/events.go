package game

import "fmt"

type EventType int

const (
	CellRevealed EventType = iota
	FlagToggled
	GameWon
	GameLost
)

var eventNames = map[EventType]string{
	CellRevealed: "cell_revealed",
	FlagToggled:  "flag_toggled",
	GameWon:      "game_won",
	GameLost:     "game_lost",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(text []byte) error {
	for eventType, name := range eventNames {
		if name == string(text) {
			*t = eventType
			return nil
		}
	}
	return fmt.Errorf("unknown event type %q", text)
}

// Event describes one observable change. X and Y are zero for GameWon and GameLost.
type Event struct {
	Type EventType `json:"type"`
	X    int       `json:"x"`
	Y    int       `json:"y"`
}

// Listener receives the events of one action once it has settled.
type Listener func(events []Event)

type subscribers struct {
	next      int
	listeners map[int]Listener
	order     []int
}

func (s *subscribers) add(l Listener) func() {
	if s.listeners == nil {
		s.listeners = make(map[int]Listener)
	}
	id := s.next
	s.next++
	s.listeners[id] = l
	s.order = append(s.order, id)
	return func() {
		delete(s.listeners, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *subscribers) emit(events []Event) {
	if len(events) == 0 {
		return
	}
	for _, id := range append([]int(nil), s.order...) {
		if l, ok := s.listeners[id]; ok {
			l(events)
		}
	}
}
