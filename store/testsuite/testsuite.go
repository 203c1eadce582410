package testsuite

import (
	"context"
	"sync"
	"testing"

	"github.com/battlesnakeio/snake/store"
	"github.com/stretchr/testify/require"
)

func testStoreEmpty(t *testing.T, s store.Store) {
	ctx := context.Background()

	// Nothing saved yet.
	score, err := s.LoadBestScore(ctx)
	require.Equal(t, store.ErrNotFound, err)
	require.Zero(t, score)
}

func testStoreSaveLoad(t *testing.T, s store.Store) {
	ctx := context.Background()

	err := s.SaveBestScore(ctx, 120)
	require.Nil(t, err)

	score, err := s.LoadBestScore(ctx)
	require.Nil(t, err)
	require.Equal(t, 120, score)

	// Overwrite with a new record.
	err = s.SaveBestScore(ctx, 340)
	require.Nil(t, err)

	score, err = s.LoadBestScore(ctx)
	require.Nil(t, err)
	require.Equal(t, 340, score)
}

func testStoreZero(t *testing.T, s store.Store) {
	ctx := context.Background()

	// Zero is a valid saved value and not the same as nothing saved.
	err := s.SaveBestScore(ctx, 0)
	require.Nil(t, err)

	score, err := s.LoadBestScore(ctx)
	require.Nil(t, err)
	require.Equal(t, 0, score)
}

func testStoreNegative(t *testing.T, s store.Store) {
	ctx := context.Background()

	err := s.SaveBestScore(ctx, 30)
	require.Nil(t, err)

	err = s.SaveBestScore(ctx, -10)
	require.Equal(t, store.ErrNegativeScore, err)

	// The rejected save leaves the previous score alone.
	score, err := s.LoadBestScore(ctx)
	require.Nil(t, err)
	require.Equal(t, 30, score)
}

func testStoreConcurrentWriters(t *testing.T, s store.Store) {
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(20)

	for i := 0; i < 20; i++ {
		go func(i int) {
			defer wg.Done()
			require.Nil(t, s.SaveBestScore(ctx, i*10))
		}(i)
	}

	wg.Wait()

	// One of the writers won, it doesn't matter which.
	score, err := s.LoadBestScore(ctx)
	require.Nil(t, err)
	require.True(t, score >= 0 && score <= 190 && score%10 == 0, "unexpected score %d", score)
}

// Suite will execute the store testsuite. pretest runs before every case and
// should clear the backend; Empty runs first so a fresh store needs no pretest.
func Suite(t *testing.T, s store.Store, pretest func()) {
	s = store.InstrumentStore(s)
	t.Run("Empty", func(t *testing.T) { pretest(); testStoreEmpty(t, s) })
	t.Run("SaveLoad", func(t *testing.T) { pretest(); testStoreSaveLoad(t, s) })
	t.Run("Zero", func(t *testing.T) { pretest(); testStoreZero(t, s) })
	t.Run("Negative", func(t *testing.T) { pretest(); testStoreNegative(t, s) })
	t.Run("ConcurrentWriters", func(t *testing.T) { pretest(); testStoreConcurrentWriters(t, s) })
}
