package commands

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "snake is the classic single player snake game",
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		return setupLogging()
	},
	Run: func(c *cobra.Command, args []string) {
		playCmd.Run(c, args)
	},
}

var (
	logLevel    = "info"
	logJSON     = false
	logFile     = ""
	backend     = "inmem"
	backendArgs = ""
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level, as one of: [debug, info, warn, error]")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", logJSON, "log as json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logFile, "file to append logs to, play discards logs without one")
	rootCmd.PersistentFlags().StringVarP(&backend, "backend", "b", backend, "best score backend, as one of: [inmem, file, redis, sql]")
	rootCmd.PersistentFlags().StringVarP(&backendArgs, "backend-args", "a", backendArgs, "options to pass to the backend being used")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bestCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging() error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", logLevel)
	}
	log.SetLevel(level)

	if logJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrap(err, "unable to open log file")
		}
		log.SetOutput(f)
	}
	return nil
}
