package rules

// Point is a single cell on the board.
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add offsets the point by v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// InBounds reports whether p lies on a width x height board.
func InBounds(p Point, width, height int32) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}
