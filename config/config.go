package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Game constants. These are fixed rules of the game and are not exposed to
// players.
const (
	GridWidth      = 25
	GridHeight     = 25
	CellSize       = 20
	ScoreIncrement = 10
	InitialSpeed   = 150 * time.Millisecond
	SpeedStep      = 2 * time.Millisecond
	MinSpeed       = 50 * time.Millisecond
	FrameInterval  = 16 * time.Millisecond
	StoreTimeout   = 2 * time.Second
)

// Configuration variables. These aren't user facing but useful for tuning the
// details of server performance.
var (
	MaxOpenConns     = getEnvInt("MAX_OPEN_CONNS", 5)
	MaxIdleConns     = getEnvInt("MAX_IDLE_CONNS", 2)
	ControlRate      = rate.Limit(getEnvInt("CONTROL_RPS", 30))
	ControlBurstRate = getEnvInt("CONTROL_BURST", 10)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
