package game

import (
	"errors"
	"strings"

	"github.com/battlesnakeio/snake/rules"
)

// Command is a player input, whatever device it came from.
type Command string

// Commands understood by Apply.
const (
	CommandUp    Command = "up"
	CommandDown  Command = "down"
	CommandLeft  Command = "left"
	CommandRight Command = "right"
	CommandPause Command = "pause"
	CommandStart Command = "start"
)

// ErrUnknownCommand is returned by ParseCommand.
var ErrUnknownCommand = errors.New("game: unknown command")

// ParseCommand parses a command name.
func ParseCommand(s string) (Command, error) {
	switch c := Command(strings.ToLower(strings.TrimSpace(s))); c {
	case CommandUp, CommandDown, CommandLeft, CommandRight, CommandPause, CommandStart:
		return c, nil
	}
	return "", ErrUnknownCommand
}

// DirectionCommand returns the command steering towards d.
func DirectionCommand(d rules.Direction) Command {
	return Command(d)
}

// SwipeCommand maps a swipe of dx, dy (screen coordinates, y down) to a
// direction along its dominant axis. Ties go to the vertical axis. A swipe
// that didn't move is not a command.
func SwipeCommand(dx, dy int) (Command, bool) {
	if dx == 0 && dy == 0 {
		return "", false
	}
	if abs(dx) > abs(dy) {
		if dx > 0 {
			return CommandRight, true
		}
		return CommandLeft, true
	}
	if dy > 0 {
		return CommandDown, true
	}
	return CommandUp, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Apply routes a command to the game. It reports whether the command changed
// anything the player asked for; rejected reversals and unknown commands
// return false.
func (g *Game) Apply(c Command) bool {
	switch c {
	case CommandUp, CommandDown, CommandLeft, CommandRight:
		return g.RequestDirection(rules.Direction(c))
	case CommandPause:
		g.TogglePause()
		return true
	case CommandStart:
		g.Start()
		return true
	}
	return false
}
