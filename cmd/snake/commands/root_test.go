package commands

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	defer func() {
		logLevel, logJSON, logFile = "info", false, ""
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&log.TextFormatter{})
		log.SetOutput(os.Stderr)
	}()

	logLevel = "debug"
	logFile = filepath.Join(t.TempDir(), "snake.log")
	logJSON = true
	require.NoError(t, setupLogging())
	require.Equal(t, log.DebugLevel, log.GetLevel())

	log.WithField("score", 10).Info("hello")
	data, err := ioutil.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), `"score":10`)

	logLevel = "loud"
	require.NotNil(t, setupLogging())
}
