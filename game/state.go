package game

import "fmt"

// State is where the game is in its lifecycle.
type State int

// Lifecycle states. Ready is the only initial state.
const (
	StateReady State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

var stateNames = map[State]string{
	StateReady:    "ready",
	StatePlaying:  "playing",
	StatePaused:   "paused",
	StateGameOver: "game_over",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *State) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("game: unknown state %q", text)
}
