package commands

import (
	"unicode"

	"github.com/battlesnakeio/snake/game"
	termbox "github.com/nsf/termbox-go"
)

// commandForKey maps arrows and WASD to directions, space to pause and enter
// to start.
func commandForKey(ev termbox.Event) (game.Command, bool) {
	if ev.Type != termbox.EventKey {
		return "", false
	}

	switch ev.Key {
	case termbox.KeyArrowUp:
		return game.CommandUp, true
	case termbox.KeyArrowDown:
		return game.CommandDown, true
	case termbox.KeyArrowLeft:
		return game.CommandLeft, true
	case termbox.KeyArrowRight:
		return game.CommandRight, true
	case termbox.KeySpace:
		return game.CommandPause, true
	case termbox.KeyEnter:
		return game.CommandStart, true
	}

	switch unicode.ToLower(ev.Ch) {
	case 'w':
		return game.CommandUp, true
	case 's':
		return game.CommandDown, true
	case 'a':
		return game.CommandLeft, true
	case 'd':
		return game.CommandRight, true
	case ' ':
		return game.CommandPause, true
	}
	return "", false
}

func isQuit(ev termbox.Event) bool {
	if ev.Type != termbox.EventKey {
		return false
	}
	return ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || unicode.ToLower(ev.Ch) == 'q'
}

// swipeTracker turns a mouse drag (left button press, then release) into a
// swipe. Columns are scaled down by the cell width so a drag across a square
// of board reads as equal on both axes.
type swipeTracker struct {
	pressed        bool
	startX, startY int
}

func (s *swipeTracker) track(ev termbox.Event) (game.Command, bool) {
	if ev.Type != termbox.EventMouse {
		return "", false
	}

	switch ev.Key {
	case termbox.MouseLeft:
		if !s.pressed {
			s.pressed = true
			s.startX, s.startY = ev.MouseX, ev.MouseY
		}
	case termbox.MouseRelease:
		if !s.pressed {
			return "", false
		}
		s.pressed = false
		return game.SwipeCommand((ev.MouseX-s.startX)/cellWidth, ev.MouseY-s.startY)
	}
	return "", false
}
