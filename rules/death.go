package rules

// checkForDeath looks at where the head is about to go and reports why the
// snake dies there, or "" if the move is safe. The body is the pre-move body,
// so the tail still blocks even though it would vacate this tick.
func checkForDeath(width, height int32, s *Snake, head Point) string {
	if deathByOutOfBounds(head, width, height) {
		return DeathCauseWallCollision
	}
	for _, b := range s.Body {
		if deathByBodyCollision(head, b) {
			return DeathCauseSnakeSelfCollision
		}
	}
	return ""
}

func deathByBodyCollision(head, body Point) bool {
	return head.Equal(body)
}

func deathByOutOfBounds(head Point, width, height int32) bool {
	return !InBounds(head, width, height)
}
