package rules

// Snake is the ordered list of cells making up the player, head first.
type Snake struct {
	Body []Point `json:"body"`
}

// Head returns the first point in the body
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Tail returns the last point in the body
func (s *Snake) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// Len is the number of segments.
func (s *Snake) Len() int { return len(s.Body) }

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.Body {
		if b.Equal(p) {
			return true
		}
	}
	return false
}

// Grow pushes p on as the new head, move does not remove the end point of the
// snake, that is done by Shrink when the snake did not eat.
func (s *Snake) Grow(p Point) {
	s.Body = append([]Point{p}, s.Body...)
}

// Shrink drops the tail segment.
func (s *Snake) Shrink() {
	if len(s.Body) <= 1 {
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// Clone returns a snake that shares no memory with s.
func (s *Snake) Clone() Snake {
	body := make([]Point, len(s.Body))
	copy(body, s.Body)
	return Snake{Body: body}
}
