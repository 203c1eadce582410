package commands

import termbox "github.com/nsf/termbox-go"

type rgb struct {
	r, g, b uint8
}

// The snake fades from cyan at the head to red at the tail.
var (
	headColor = rgb{0, 217, 255}
	tailColor = rgb{233, 69, 96}
)

// cubeLevel maps a channel onto the 6 levels (0, 95, 135, 175, 215, 255) of
// the xterm color cube.
func cubeLevel(v uint8) int {
	switch {
	case v < 48:
		return 0
	case v < 115:
		return 1
	default:
		return (int(v) - 35) / 40
	}
}

func xterm256(c rgb) int {
	return 16 + 36*cubeLevel(c.r) + 6*cubeLevel(c.g) + cubeLevel(c.b)
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// segmentColor is the color of segment i of an n segment snake, for a
// terminal in termbox.Output256 mode.
func segmentColor(i, n int) termbox.Attribute {
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}
	c := rgb{
		r: lerp(headColor.r, tailColor.r, t),
		g: lerp(headColor.g, tailColor.g, t),
		b: lerp(headColor.b, tailColor.b, t),
	}
	// termbox reserves 0 for the default color, palette entries start at 1.
	return termbox.Attribute(xterm256(c) + 1)
}
