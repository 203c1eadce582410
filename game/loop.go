package game

import "time"

// Loop turns wall clock time into ticks. Each call to Advance adds the time
// since the previous call to an accumulator and then runs one Tick for every
// full tick interval the accumulator holds, re-reading the interval after each
// tick since eating speeds the game up. Ticks are never dropped, so a slow
// caller catches up with a burst of ticks.
type Loop struct {
	game    *Game
	last    time.Time
	credit  time.Duration
	started bool
}

// NewLoop returns a loop driving g.
func NewLoop(g *Game) *Loop {
	return &Loop{game: g}
}

// Advance credits the loop up to now and returns how many ticks ran. The first
// call only sets the clock. Credit is spent at the same rate in every state;
// Tick itself does nothing unless the game is playing.
func (l *Loop) Advance(now time.Time) int {
	if !l.started {
		l.last = now
		l.started = true
		return 0
	}

	if elapsed := now.Sub(l.last); elapsed > 0 {
		l.credit += elapsed
	}
	l.last = now

	n := 0
	for l.credit >= l.game.Speed() {
		l.game.Tick()
		l.credit -= l.game.Speed()
		n++
	}
	return n
}

// Credit returns the unspent time in the accumulator.
func (l *Loop) Credit() time.Duration { return l.credit }
