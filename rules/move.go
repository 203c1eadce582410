package rules

import (
	"errors"
	"strings"
)

// Direction is one of the four ways a snake can travel.
type Direction string

// The four directions a snake can move in.
const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ErrInvalidDirection is returned when a direction string can't be parsed.
var ErrInvalidDirection = errors.New("rules: invalid direction")

// ParseDirection converts a move string such as "up" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return d, nil
	}
	return "", ErrInvalidDirection
}

// Vector returns the unit offset of the direction. Y grows downwards.
func (d Direction) Vector() Point {
	switch d {
	case DirectionUp:
		return Point{X: 0, Y: -1}
	case DirectionDown:
		return Point{X: 0, Y: 1}
	case DirectionLeft:
		return Point{X: -1, Y: 0}
	case DirectionRight:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

// Reverses reports whether d points exactly back along other.
func (d Direction) Reverses(other Direction) bool {
	v, o := d.Vector(), other.Vector()
	if v == (Point{}) || o == (Point{}) {
		return false
	}
	return v.X+o.X == 0 && v.Y+o.Y == 0
}

func (d Direction) String() string { return string(d) }
