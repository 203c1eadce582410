package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		Input    string
		Expected Direction
	}{
		{Input: "up", Expected: DirectionUp},
		{Input: "DOWN", Expected: DirectionDown},
		{Input: " left ", Expected: DirectionLeft},
		{Input: "Right", Expected: DirectionRight},
	}
	for _, test := range tests {
		d, err := ParseDirection(test.Input)
		require.NoError(t, err)
		require.Equal(t, test.Expected, d, "Input: %q", test.Input)
	}

	_, err := ParseDirection("sideways")
	require.Equal(t, ErrInvalidDirection, err)
	_, err = ParseDirection("")
	require.Equal(t, ErrInvalidDirection, err)
}

func TestDirectionVector(t *testing.T) {
	origin := Point{X: 5, Y: 5}
	require.Equal(t, Point{X: 5, Y: 4}, origin.Add(DirectionUp.Vector()))
	require.Equal(t, Point{X: 5, Y: 6}, origin.Add(DirectionDown.Vector()))
	require.Equal(t, Point{X: 4, Y: 5}, origin.Add(DirectionLeft.Vector()))
	require.Equal(t, Point{X: 6, Y: 5}, origin.Add(DirectionRight.Vector()))
	require.Equal(t, Point{}, Direction("").Vector())
}

func TestDirectionReverses(t *testing.T) {
	all := []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}
	for _, d := range all {
		require.True(t, d.Opposite().Reverses(d), "Direction: %s", d)
		require.Equal(t, d, d.Opposite().Opposite())
		require.False(t, d.Reverses(d))
	}
	require.False(t, DirectionUp.Reverses(DirectionLeft))
	require.False(t, Direction("").Reverses(DirectionUp))
}
