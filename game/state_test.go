package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateNames(t *testing.T) {
	require.Equal(t, "ready", StateReady.String())
	require.Equal(t, "playing", StatePlaying.String())
	require.Equal(t, "paused", StatePaused.String())
	require.Equal(t, "game_over", StateGameOver.String())
	require.Equal(t, "state(9)", State(9).String())
}

func TestStateJSON(t *testing.T) {
	data, err := json.Marshal(Frame{State: StateGameOver, Snake: nil})
	require.NoError(t, err)
	require.Contains(t, string(data), `"state":"game_over"`)

	var f Frame
	require.NoError(t, json.Unmarshal(data, &f))
	require.Equal(t, StateGameOver, f.State)

	var s State
	require.Error(t, s.UnmarshalText([]byte("sleeping")))
}
