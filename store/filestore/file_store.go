package filestore

import (
	"context"
	"os"
	"os/user"
	"path"
	"sync"

	"github.com/battlesnakeio/snake/store"
	"github.com/pkg/errors"
)

const fileName = "best-score.pb"

func defaultDir() string {
	return path.Join(homeDir(), ".battlesnake")
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// NewFileStore returns a file based store implementation. The score lives in a
// single protobuf encoded file inside directory.
func NewFileStore(directory string) store.Store {
	if directory == "" {
		directory = defaultDir()
	}

	return &fileStore{
		directory: directory,
	}
}

type fileStore struct {
	lock      sync.Mutex
	directory string
}

func (fs *fileStore) LoadBestScore(ctx context.Context) (int, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	score, err := readBestScore(fs.path())
	if os.IsNotExist(errors.Cause(err)) {
		return 0, store.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return score, nil
}

func (fs *fileStore) SaveBestScore(ctx context.Context, score int) error {
	if score < 0 {
		return store.ErrNegativeScore
	}

	fs.lock.Lock()
	defer fs.lock.Unlock()

	if err := os.MkdirAll(fs.directory, 0775); err != nil {
		return errors.Wrap(err, "unable to create score directory")
	}
	return writeBestScore(fs.path(), score)
}

func (fs *fileStore) path() string {
	return getFilePath(fs.directory)
}

func getFilePath(directory string) string {
	return path.Join(directory, fileName)
}
