package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/store"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var resetBest = false

func init() {
	bestCmd.Flags().BoolVar(&resetBest, "reset", resetBest, "reset the best score to zero")
}

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "prints the stored best score",
	Run: func(c *cobra.Command, args []string) {
		s, err := openStore(backend, backendArgs)
		if err != nil {
			log.WithError(err).Fatal("unable to start up backend store")
		}
		defer closeStore(s)

		ctx, cancel := context.WithTimeout(context.Background(), config.StoreTimeout)
		defer cancel()
		if err := printBest(ctx, c.OutOrStdout(), s, resetBest); err != nil {
			log.WithError(err).Error("unable to read best score")
		}
	},
}

func printBest(ctx context.Context, w io.Writer, s store.Store, reset bool) error {
	if reset {
		if err := s.SaveBestScore(ctx, 0); err != nil {
			return errors.Wrap(err, "unable to reset best score")
		}
		_, err := fmt.Fprintln(w, "best score reset")
		return err
	}

	best, err := s.LoadBestScore(ctx)
	if errors.Cause(err) == store.ErrNotFound {
		best, err = 0, nil
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, best)
	return err
}
