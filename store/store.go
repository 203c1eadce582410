// Package store keeps the best score across sessions. It is a single integer
// and every backend stores exactly that.
package store

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned when no best score has been saved yet.
	ErrNotFound = errors.New("store: best score not found")
	// ErrNegativeScore is returned when saving a score below zero.
	ErrNegativeScore = errors.New("store: score must not be negative")
)

// Store is the interface to the backend store.
type Store interface {
	LoadBestScore(context.Context) (int, error)
	SaveBestScore(context.Context, int) error
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{}
}

type inmem struct {
	best  int
	saved bool
	lock  sync.Mutex
}

func (in *inmem) LoadBestScore(ctx context.Context) (int, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if !in.saved {
		return 0, ErrNotFound
	}
	return in.best, nil
}

func (in *inmem) SaveBestScore(ctx context.Context, score int) error {
	if score < 0 {
		return ErrNegativeScore
	}

	in.lock.Lock()
	defer in.lock.Unlock()

	in.best = score
	in.saved = true
	return nil
}
