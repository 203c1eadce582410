package sqlstore

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // Import pq driver.

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/store"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const migrations = `
CREATE TABLE IF NOT EXISTS best_score (
	id SMALLINT PRIMARY KEY CHECK (id = 1),
	value BIGINT NOT NULL CHECK (value >= 0),
	updated TIMESTAMP NOT NULL DEFAULT now()
);
`

var openDB = func(url string) (*sql.DB, error) {
	return sql.Open("postgres", url)
}

// NewSQLStore returns a new store using a postgres database.
func NewSQLStore(url string) (*Store, error) {
	db, err := openDB(url)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to reach database")
	}

	_, err = db.ExecContext(ctx, migrations)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "unable to migrate database")
	}
	return &Store{db: db}, nil
}

// Store represents an SQL store.
type Store struct {
	db *sql.DB
}

// transact is a transaction wrapper, helps avoid failed to close connections.
func (s *Store) transact(
	ctx context.Context, txFunc func(*sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			if rErr := tx.Rollback(); rErr != nil {
				log.WithError(rErr).Error("rollback failed")
			}
			panic(p) // re-throw panic after Rollback
		} else if err != nil {
			// err is non-nil; don't change it
			if rErr := tx.Rollback(); rErr != nil {
				log.WithError(rErr).Error("rollback failed")
			}
		} else {
			err = tx.Commit() // err is nil; if Commit returns error update err
		}
	}()
	err = txFunc(tx)
	return err
}

// LoadBestScore reads the single stored score row.
func (s *Store) LoadBestScore(ctx context.Context) (int, error) {
	var score int64
	err := s.db.QueryRowContext(ctx, "SELECT value FROM best_score WHERE id=1").Scan(&score)
	if err == sql.ErrNoRows {
		return 0, store.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "unable to read best score")
	}
	return int(score), nil
}

// SaveBestScore upserts the single score row.
func (s *Store) SaveBestScore(ctx context.Context, score int) error {
	if score < 0 {
		return store.ErrNegativeScore
	}
	return s.transact(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO best_score (id, value, updated) VALUES (1, $1, now())
		ON CONFLICT (id)
		DO UPDATE SET value=$1, updated=now()`,
			int64(score),
		)
		return errors.Wrap(err, "unable to write best score")
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
