package game

import (
	"context"
	"errors"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/store"
)

type fixedSpawner struct {
	next rules.Point
}

func (f *fixedSpawner) Spawn(*rules.Snake, int32, int32) rules.Point { return f.next }

type stubStore struct {
	best    int
	loadErr error
	saveErr error
	saves   []int
}

func (s *stubStore) LoadBestScore(context.Context) (int, error) {
	return s.best, s.loadErr
}

func (s *stubStore) SaveBestScore(_ context.Context, score int) error {
	s.saves = append(s.saves, score)
	if s.saveErr != nil {
		return s.saveErr
	}
	s.best = score
	return nil
}

var errBroken = errors.New("broken")

func newTestGame(s store.Store) *Game {
	return New(context.Background(), s,
		WithBoard(5, 5),
		WithSpawner(&fixedSpawner{next: rules.Point{X: 0, Y: 0}}),
	)
}

// setRound replaces the current round with the given layout.
func setRound(g *Game, body []rules.Point, dir rules.Direction, food rules.Point, score int) {
	g.round = &rules.State{
		Width:         g.width,
		Height:        g.height,
		Snake:         rules.Snake{Body: body},
		Direction:     dir,
		NextDirection: dir,
		Food:          &food,
		Score:         score,
		Speed:         config.InitialSpeed,
	}
}
