// Package game holds the single player snake state machine. A Game is owned by
// one goroutine; nothing in this package locks.
package game

import (
	"context"
	"time"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/store"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// Game is one player's game: the current round, its lifecycle state and the
// best score seen so far.
type Game struct {
	width   int32
	height  int32
	spawner rules.FoodSpawner
	store   store.Store

	round     *rules.State
	state     State
	roundID   string
	turn      int64
	best      int
	cause     string
	newRecord bool
}

// Option configures a Game.
type Option func(*Game)

// WithBoard overrides the board size.
func WithBoard(width, height int32) Option {
	return func(g *Game) {
		g.width = width
		g.height = height
	}
}

// WithSpawner overrides where food is placed.
func WithSpawner(spawner rules.FoodSpawner) Option {
	return func(g *Game) { g.spawner = spawner }
}

// New builds a game in the Ready state with a round laid out so it can be
// drawn before play. The best score is loaded from s once; a missing or
// unreadable score counts as zero.
func New(ctx context.Context, s store.Store, opts ...Option) *Game {
	g := &Game{
		width:  config.GridWidth,
		height: config.GridHeight,
		store:  s,
		state:  StateReady,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.spawner == nil {
		g.spawner = rules.NewRandomSpawner(nil)
	}
	if g.store == nil {
		g.store = store.InMemStore()
	}

	g.best = loadBestScore(ctx, g.store)
	bestScore.Set(float64(g.best))
	g.reset()
	return g
}

func loadBestScore(ctx context.Context, s store.Store) int {
	best, err := s.LoadBestScore(ctx)
	switch {
	case errors.Cause(err) == store.ErrNotFound:
		return 0
	case err != nil:
		log.WithError(err).Warn("unable to load best score, starting from zero")
		return 0
	}
	return best
}

func (g *Game) reset() {
	g.round = rules.CreateInitialState(g.width, g.height, g.spawner)
	g.roundID = uuid.NewV4().String()
	g.turn = 0
	g.cause = ""
	g.newRecord = false
	currentScore.Set(0)
}

// Start begins a new round from Ready or GameOver and resumes from Paused.
// It does nothing while Playing.
func (g *Game) Start() {
	switch g.state {
	case StatePlaying:
		return
	case StateReady, StateGameOver:
		g.reset()
		log.WithFields(log.Fields{
			"RoundID": g.roundID,
			"Width":   g.width,
			"Height":  g.height,
		}).Info("round started")
	}
	g.state = StatePlaying
}

// TogglePause flips between Playing and Paused. From Ready or GameOver it
// starts a round.
func (g *Game) TogglePause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
	case StatePaused:
		g.state = StatePlaying
	default:
		g.Start()
	}
	log.WithField("RoundID", g.roundID).WithField("State", g.state).Debug("pause toggled")
}

// RequestDirection queues d for the next tick. A request to reverse the
// direction the snake last moved in is ignored. From Ready or GameOver an
// accepted request also starts a round, which resets the direction.
func (g *Game) RequestDirection(d rules.Direction) bool {
	if d.Vector() == (rules.Point{}) || d.Reverses(g.round.Direction) {
		return false
	}
	g.round.NextDirection = d

	if g.state == StateReady || g.state == StateGameOver {
		g.Start()
	}
	return true
}

// Tick advances the round by one step while Playing. A collision ends the
// game and records a new best score if one was set.
func (g *Game) Tick() rules.Outcome {
	if g.state != StatePlaying {
		return rules.Outcome{}
	}

	out := rules.Step(g.round, g.spawner)
	g.turn++
	ticks.Inc()

	if out.Ate {
		foodEaten.Inc()
		currentScore.Set(float64(g.round.Score))
		log.WithFields(log.Fields{
			"RoundID": g.roundID,
			"Turn":    g.turn,
			"Score":   g.round.Score,
			"Speed":   g.round.Speed,
		}).Debug("food eaten")
	}
	if out.Dead {
		g.gameOver(out.Cause)
	}
	return out
}

func (g *Game) gameOver(cause string) {
	g.state = StateGameOver
	g.cause = cause
	gamesOver.WithLabelValues(cause).Inc()

	if g.round.Score > g.best {
		g.best = g.round.Score
		g.newRecord = true
		bestScore.Set(float64(g.best))
		g.saveBestScore()
	}

	log.WithFields(log.Fields{
		"RoundID":   g.roundID,
		"Turn":      g.turn,
		"Score":     g.round.Score,
		"Cause":     cause,
		"NewRecord": g.newRecord,
	}).Info("game over")
}

func (g *Game) saveBestScore() {
	ctx, cancel := context.WithTimeout(context.Background(), config.StoreTimeout)
	defer cancel()

	if err := g.store.SaveBestScore(ctx, g.best); err != nil {
		log.WithError(err).WithField("BestScore", g.best).Warn("unable to save best score")
	}
}

// State returns the lifecycle state.
func (g *Game) State() State { return g.state }

// Turn returns how many ticks the current round has run.
func (g *Game) Turn() int64 { return g.turn }

// Score returns the current round's score.
func (g *Game) Score() int { return g.round.Score }

// BestScore returns the best score across rounds and sessions.
func (g *Game) BestScore() int { return g.best }

// Speed returns the current tick interval.
func (g *Game) Speed() time.Duration { return g.round.Speed }

// Direction returns the direction applied on the last tick.
func (g *Game) Direction() rules.Direction { return g.round.Direction }

// Snake returns a copy of the snake's body, head first.
func (g *Game) Snake() []rules.Point {
	s := g.round.Snake.Clone()
	return s.Body
}

// Frame snapshots the game for rendering.
func (g *Game) Frame() Frame {
	var food *rules.Point
	if g.round.Food != nil {
		f := *g.round.Food
		food = &f
	}
	return Frame{
		RoundID:   g.roundID,
		Turn:      g.turn,
		State:     g.state,
		Width:     g.width,
		Height:    g.height,
		CellSize:  config.CellSize,
		Snake:     g.Snake(),
		Food:      food,
		Direction: g.round.Direction,
		Score:     g.round.Score,
		BestScore: g.best,
		Speed:     g.round.Speed,
		Cause:     g.cause,
		NewRecord: g.newRecord,
	}
}
