package rules

import (
	"time"

	"github.com/battlesnakeio/snake/config"
)

// State is everything a single round needs to advance.
type State struct {
	Width         int32
	Height        int32
	Snake         Snake
	Direction     Direction
	NextDirection Direction
	Food          *Point
	Score         int
	Speed         time.Duration
}

// CreateInitialState lays out a fresh round: a three cell snake in the middle of
// the board heading right, one piece of food, no score and the starting speed.
func CreateInitialState(width, height int32, spawner FoodSpawner) *State {
	x, y := width/2, height/2
	s := &State{
		Width:  width,
		Height: height,
		Snake: Snake{
			Body: []Point{
				{X: x, Y: y},
				{X: x - 1, Y: y},
				{X: x - 2, Y: y},
			},
		},
		Direction:     DirectionRight,
		NextDirection: DirectionRight,
		Speed:         config.InitialSpeed,
	}
	food := spawner.Spawn(&s.Snake, width, height)
	s.Food = &food
	return s
}
