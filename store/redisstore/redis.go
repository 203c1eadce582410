package redisstore

import (
	"context"

	"github.com/battlesnakeio/snake/store"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// BestScoreKey is the redis key the score is kept under.
const BestScoreKey = "snake:best-score"

// Store is a redis backed store.
type Store struct {
	client *redis.Client
}

// NewStore will create a new instance of an underlying redis client, so it should not be re-created across "threads"
// - connectURL see: github.com/go-redis/redis/options.go for URL specifics
// The underlying redis client will be immediately tested for connectivity, so don't call this until you know redis can connect.
// Returns a new instance OR an error if unable (meaning an issue connecting to your redis URL)
func NewStore(connectURL string) (*Store, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	// Validate it's connected
	err = client.Ping().Err()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	return &Store{client: client}, nil
}

// LoadBestScore reads the stored score.
func (rs *Store) LoadBestScore(ctx context.Context) (int, error) {
	score, err := rs.client.Get(BestScoreKey).Int64()
	if err == redis.Nil {
		return 0, store.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "unable to read best score")
	}
	if score < 0 {
		return 0, errors.Errorf("stored best score is negative: %d", score)
	}
	return int(score), nil
}

// SaveBestScore overwrites the stored score.
func (rs *Store) SaveBestScore(ctx context.Context, score int) error {
	if score < 0 {
		return store.ErrNegativeScore
	}
	err := rs.client.Set(BestScoreKey, score, 0).Err()
	return errors.Wrap(err, "unable to write best score")
}

// Close closes the redis client.
func (rs *Store) Close() error {
	return rs.client.Close()
}
