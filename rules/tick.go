package rules

import (
	"time"

	"github.com/battlesnakeio/snake/config"
)

// Outcome describes what a single tick did.
type Outcome struct {
	Ate   bool   `json:"ate"`
	Dead  bool   `json:"dead"`
	Cause string `json:"cause,omitempty"`
}

// Step runs the round one tick. The pending direction becomes the applied one,
// the head advances one cell and the move is checked for a collision. A fatal
// move leaves the snake untouched. Eating grows the snake, scores, speeds the
// game up and places new food; otherwise the tail follows the head.
func Step(s *State, spawner FoodSpawner) Outcome {
	s.Direction = s.NextDirection

	head := s.Snake.Head().Add(s.Direction.Vector())

	if cause := checkForDeath(s.Width, s.Height, &s.Snake, head); cause != "" {
		return Outcome{Dead: true, Cause: cause}
	}

	s.Snake.Grow(head)

	if s.Food != nil && head.Equal(*s.Food) {
		s.Score += config.ScoreIncrement
		food := spawner.Spawn(&s.Snake, s.Width, s.Height)
		s.Food = &food
		s.Speed = nextSpeed(s.Speed)
		return Outcome{Ate: true}
	}

	s.Snake.Shrink()
	return Outcome{}
}

func nextSpeed(speed time.Duration) time.Duration {
	speed -= config.SpeedStep
	if speed < config.MinSpeed {
		return config.MinSpeed
	}
	return speed
}
