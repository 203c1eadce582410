package game

import (
	"time"

	"github.com/battlesnakeio/snake/rules"
)

// Frame is a read only snapshot of the game handed to renderers. It shares no
// memory with the game.
type Frame struct {
	RoundID   string          `json:"round_id"`
	Turn      int64           `json:"turn"`
	State     State           `json:"state"`
	Width     int32           `json:"width"`
	Height    int32           `json:"height"`
	CellSize  int             `json:"cell_size"`
	Snake     []rules.Point   `json:"snake"`
	Food      *rules.Point    `json:"food"`
	Direction rules.Direction `json:"direction"`
	Score     int             `json:"score"`
	BestScore int             `json:"best_score"`
	Speed     time.Duration   `json:"speed"`
	Cause     string          `json:"cause,omitempty"`
	NewRecord bool            `json:"new_record"`
}

// Head returns the snake's head. Frames always carry at least one segment.
func (f Frame) Head() rules.Point {
	return f.Snake[0]
}
