package commands

import (
	"context"
	"testing"

	"github.com/battlesnakeio/snake/store"
	"github.com/dlsteuer/miniredis"
	"github.com/stretchr/testify/require"
)

func TestOpenStoreInMem(t *testing.T) {
	s, err := openStore("inmem", "")
	require.NoError(t, err)
	defer closeStore(s)

	_, err = s.LoadBestScore(context.Background())
	require.Equal(t, store.ErrNotFound, err)
}

func TestOpenStoreFile(t *testing.T) {
	dir := t.TempDir()

	s, err := openStore("file", dir)
	require.NoError(t, err)
	require.NoError(t, s.SaveBestScore(context.Background(), 40))
	closeStore(s)

	s, err = openStore("file", dir)
	require.NoError(t, err)
	best, err := s.LoadBestScore(context.Background())
	require.NoError(t, err)
	require.Equal(t, 40, best)
}

func TestOpenStoreRedis(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	s, err := openStore("redis", "redis://"+server.Addr())
	require.NoError(t, err)
	defer closeStore(s)

	require.NoError(t, s.SaveBestScore(context.Background(), 70))
	best, err := s.LoadBestScore(context.Background())
	require.NoError(t, err)
	require.Equal(t, 70, best)
}

func TestOpenStoreErrors(t *testing.T) {
	_, err := openStore("floppy", "")
	require.NotNil(t, err)

	_, err = openStore("redis", "not a url")
	require.NotNil(t, err)
}
