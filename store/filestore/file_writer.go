package filestore

import (
	"io"
	"os"

	"github.com/gogo/protobuf/proto"
	"github.com/gogo/protobuf/types"
	"github.com/pkg/errors"
)

var openFileWriter = func(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0664)
}

// writeBestScore replaces the score file through a rename, readers see either
// the old score or the new one.
func writeBestScore(path string, score int) error {
	data, err := proto.Marshal(&types.Int64Value{Value: int64(score)})
	if err != nil {
		return errors.Wrap(err, "unable to encode score")
	}

	tmp := path + ".tmp"
	w, err := openFileWriter(tmp)
	if err != nil {
		return errors.Wrap(err, "unable to open score file")
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return errors.Wrap(err, "unable to write score file")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "unable to close score file")
	}
	return errors.Wrap(os.Rename(tmp, path), "unable to replace score file")
}
