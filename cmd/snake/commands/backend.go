package commands

import (
	"io"

	"github.com/battlesnakeio/snake/store"
	"github.com/battlesnakeio/snake/store/filestore"
	"github.com/battlesnakeio/snake/store/redisstore"
	"github.com/battlesnakeio/snake/store/sqlstore"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// openStore returns the instrumented best score store named by kind.
func openStore(kind, args string) (store.Store, error) {
	var s store.Store
	switch kind {
	case "inmem":
		s = store.InMemStore()
	case "file":
		s = filestore.NewFileStore(args)
	case "redis":
		rs, err := redisstore.NewStore(args)
		if err != nil {
			return nil, errors.Wrap(err, "unable to start up redis store")
		}
		s = rs
	case "sql":
		ss, err := sqlstore.NewSQLStore(args)
		if err != nil {
			return nil, errors.Wrap(err, "unable to start up sql store")
		}
		s = ss
	default:
		return nil, errors.Errorf("invalid backend %q", kind)
	}

	log.WithField("backend", kind).Debug("best score store ready")
	return store.InstrumentStore(s), nil
}

func closeStore(s store.Store) {
	if c, ok := s.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.WithError(err).Error("unable to close store")
		}
	}
}
