// Package worker runs a game in real time. The Runner goroutine is the only
// code touching the game; everything else talks to it through commands.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/battlesnakeio/snake/game"
	log "github.com/sirupsen/logrus"
)

// ErrStopped is returned when sending to a runner that has exited.
var ErrStopped = errors.New("worker: runner stopped")

// Runner will run a game until its context is cancelled. Inputs arrive on a
// command queue, time arrives from a ticker every frame interval and after
// anything changes the current frame is handed to the renderer.
type Runner struct {
	game     *game.Game
	renderer game.Renderer
	interval time.Duration
	now      func() time.Time

	commands chan game.Command
	refresh  chan struct{}
	done     chan struct{}

	mu    sync.RWMutex
	frame game.Frame
}

// NewRunner must be called on the goroutine that built g; from then on only
// Run touches it. renderer may be nil.
func NewRunner(g *game.Game, renderer game.Renderer, interval time.Duration) *Runner {
	return &Runner{
		game:     g,
		renderer: renderer,
		interval: interval,
		now:      time.Now,
		commands: make(chan game.Command, 16),
		refresh:  make(chan struct{}, 1),
		done:     make(chan struct{}),
		frame:    g.Frame(),
	}
}

// Send queues a command for the game.
func (r *Runner) Send(ctx context.Context, c game.Command) error {
	select {
	case <-r.done:
		return ErrStopped
	default:
	}

	select {
	case r.commands <- c:
		return nil
	case <-r.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Refresh asks for the current frame to be rendered again, e.g. after the
// terminal was resized.
func (r *Runner) Refresh() {
	select {
	case r.refresh <- struct{}{}:
	default:
	}
}

// Frame returns the most recently published frame. Safe to call from any
// goroutine.
func (r *Runner) Frame() game.Frame {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frame
}

// Done is closed once Run has returned.
func (r *Runner) Done() <-chan struct{} { return r.done }

// Run drives the game. It can only be called once.
func (r *Runner) Run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	loop := game.NewLoop(r.game)
	loop.Advance(r.now())
	r.publish()

	log.WithField("interval", r.interval).Info("runner started")
	defer log.Info("runner stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-r.commands:
			r.game.Apply(c)
			r.publish()
		case <-r.refresh:
			r.publish()
		case <-ticker.C:
			if loop.Advance(r.now()) > 0 && r.stale() {
				r.publish()
			}
		}
	}
}

// stale reports whether the game moved on since the last published frame.
// Ticks outside of play change nothing.
func (r *Runner) stale() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frame.Turn != r.game.Turn() || r.frame.State != r.game.State()
}

func (r *Runner) publish() {
	frame := r.game.Frame()

	r.mu.Lock()
	r.frame = frame
	r.mu.Unlock()

	if r.renderer == nil {
		return
	}
	if err := r.renderer.Render(frame); err != nil {
		log.WithError(err).
			WithField("RoundID", frame.RoundID).
			Warn("render failed")
	}
}
