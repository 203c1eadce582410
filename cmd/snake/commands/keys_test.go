package commands

import (
	"testing"

	"github.com/battlesnakeio/snake/game"
	termbox "github.com/nsf/termbox-go"
	"github.com/stretchr/testify/require"
)

func key(k termbox.Key) termbox.Event { return termbox.Event{Type: termbox.EventKey, Key: k} }
func char(c rune) termbox.Event { return termbox.Event{Type: termbox.EventKey, Ch: c} }

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		ev       termbox.Event
		expected game.Command
	}{
		{key(termbox.KeyArrowUp), game.CommandUp},
		{key(termbox.KeyArrowDown), game.CommandDown},
		{key(termbox.KeyArrowLeft), game.CommandLeft},
		{key(termbox.KeyArrowRight), game.CommandRight},
		{key(termbox.KeySpace), game.CommandPause},
		{key(termbox.KeyEnter), game.CommandStart},
		{char('w'), game.CommandUp},
		{char('S'), game.CommandDown},
		{char('a'), game.CommandLeft},
		{char('D'), game.CommandRight},
	}

	for _, test := range tests {
		cmd, ok := commandForKey(test.ev)
		require.True(t, ok, "%+v", test.ev)
		require.Equal(t, test.expected, cmd)
	}
}

func TestCommandForKeyIgnored(t *testing.T) {
	for _, ev := range []termbox.Event{
		char('x'),
		key(termbox.KeyTab),
		{Type: termbox.EventResize},
		{Type: termbox.EventMouse, Key: termbox.MouseLeft},
	} {
		_, ok := commandForKey(ev)
		require.False(t, ok, "%+v", ev)
	}
}

func TestIsQuit(t *testing.T) {
	require.True(t, isQuit(key(termbox.KeyEsc)))
	require.True(t, isQuit(key(termbox.KeyCtrlC)))
	require.True(t, isQuit(char('q')))
	require.True(t, isQuit(char('Q')))
	require.False(t, isQuit(char('w')))
	require.False(t, isQuit(termbox.Event{Type: termbox.EventResize}))
}

func mouse(k termbox.Key, x, y int) termbox.Event {
	return termbox.Event{Type: termbox.EventMouse, Key: k, MouseX: x, MouseY: y}
}

func TestSwipeTracker(t *testing.T) {
	tests := []struct {
		toX, toY int
		expected game.Command
	}{
		{toX: 30, toY: 10, expected: game.CommandRight},
		{toX: 0, toY: 10, expected: game.CommandLeft},
		{toX: 12, toY: 16, expected: game.CommandDown},
		{toX: 12, toY: 2, expected: game.CommandUp},
		// Six columns are three board cells, less than four rows.
		{toX: 16, toY: 14, expected: game.CommandDown},
	}

	for _, test := range tests {
		s := &swipeTracker{}
		_, ok := s.track(mouse(termbox.MouseLeft, 10, 10))
		require.False(t, ok)
		// Motion while held keeps the original start.
		_, ok = s.track(mouse(termbox.MouseLeft, 11, 11))
		require.False(t, ok)

		cmd, ok := s.track(mouse(termbox.MouseRelease, test.toX, test.toY))
		require.True(t, ok, "%+v", test)
		require.Equal(t, test.expected, cmd, "%+v", test)
	}
}

func TestSwipeTrackerIgnoresClicksAndStrayReleases(t *testing.T) {
	s := &swipeTracker{}

	_, ok := s.track(mouse(termbox.MouseRelease, 20, 20))
	require.False(t, ok, "release without a press")

	s.track(mouse(termbox.MouseLeft, 5, 5))
	_, ok = s.track(mouse(termbox.MouseRelease, 5, 5))
	require.False(t, ok, "a click is not a swipe")

	_, ok = s.track(key(termbox.KeyArrowUp))
	require.False(t, ok)
}
