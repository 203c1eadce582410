package rules

const (
	// DeathCauseWallCollision is when a snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the head runs into the snake's own
	// body, the tail included
	DeathCauseSnakeSelfCollision = "snake-self-collision"
)
