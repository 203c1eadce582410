package filestore

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/gogo/protobuf/proto"
	"github.com/gogo/protobuf/types"
	"github.com/pkg/errors"
)

var openFileReader = func(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func readBestScore(path string) (int, error) {
	r, err := openFileReader(path)
	if err != nil {
		return 0, errors.Wrap(err, "unable to open score file")
	}
	defer r.Close()

	data, err := ioutil.ReadAll(r)
	if err != nil {
		return 0, errors.Wrap(err, "unable to read score file")
	}

	v := &types.Int64Value{}
	if err := proto.Unmarshal(data, v); err != nil {
		return 0, errors.Wrap(err, "unable to decode score file")
	}
	if v.Value < 0 {
		return 0, errors.Errorf("score file holds negative score %d", v.Value)
	}
	return int(v.Value), nil
}
