package commands

import (
	"fmt"
	"math/rand"

	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault

	boardLeft = 2
	boardTop  = 2
	// Terminal cells are about twice as tall as they are wide, so a board
	// cell takes two columns.
	cellWidth = 2
)

// render draws a frame on the terminal. It is only called from the runner
// goroutine.
func render(f game.Frame) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	renderTitle(f)
	renderBoard(int(f.Width), int(f.Height))
	if f.Food != nil {
		renderFood(*f.Food)
	}
	renderSnake(f)
	renderOverlay(f)
	renderHelp(int(f.Height))

	return termbox.Flush()
}

func cellX(p rules.Point) int { return boardLeft + int(p.X)*cellWidth }
func cellY(p rules.Point) int { return boardTop + 1 + int(p.Y) }

func renderTitle(f game.Frame) {
	tbprint(boardLeft, boardTop-1, defaultColor, defaultColor, statusLine(f))
}

func statusLine(f game.Frame) string {
	return fmt.Sprintf("Snake! - Score %d  Best %d", f.Score, f.BestScore)
}

func renderBoard(width, height int) {
	var (
		right  = boardLeft + width*cellWidth
		bottom = boardTop + height + 1
	)
	for i := boardTop + 1; i < bottom; i++ {
		termbox.SetCell(boardLeft-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(right, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(boardLeft-1, boardTop, '┌', defaultColor, bgColor)
	termbox.SetCell(boardLeft-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(right, boardTop, '┐', defaultColor, bgColor)
	termbox.SetCell(right, bottom, '┘', defaultColor, bgColor)

	fill(boardLeft, boardTop, width*cellWidth, 1, termbox.Cell{Ch: '─'})
	fill(boardLeft, bottom, width*cellWidth, 1, termbox.Cell{Ch: '─'})
}

func renderSnake(f game.Frame) {
	for i, b := range f.Snake {
		color := segmentColor(i, len(f.Snake))
		ch := ' '
		if i == 0 {
			ch = headGlyph(f)
		}
		termbox.SetCell(cellX(b), cellY(b), ch, termbox.ColorBlack, color)
		termbox.SetCell(cellX(b)+1, cellY(b), ' ', color, color)
	}
}

func headGlyph(f game.Frame) rune {
	if f.State == game.StateGameOver {
		return '×'
	}
	switch f.Direction {
	case rules.DirectionUp:
		return '▲'
	case rules.DirectionDown:
		return '▼'
	case rules.DirectionLeft:
		return '◀'
	}
	return '▶'
}

func renderFood(p rules.Point) {
	termbox.SetCell(cellX(p), cellY(p), getFoodEmoji(p), defaultColor, bgColor)
}

var foods = map[rules.Point]rune{}

func getFoodEmoji(p rules.Point) rune {
	r, ok := foods[p]
	if !ok {
		r = randomFoodEmoji()
		foods[p] = r
	}
	return r
}

func randomFoodEmoji() rune {
	f := []rune{
		'🍒',
		'🍍',
		'🍑',
		'🍇',
		'🍏',
		'🍌',
		'🍫',
		'🍭',
		'🍕',
		'🍩',
		'🍗',
		'🍖',
		'🍬',
		'🍤',
		'🍪',
	}

	return f[rand.Intn(len(f))]
}

// overlayLines is the text shown over the board, nothing while playing.
func overlayLines(f game.Frame) []string {
	switch f.State {
	case game.StateReady:
		return []string{"SNAKE", "ENTER to start", "arrows or WASD to steer"}
	case game.StatePaused:
		return []string{"PAUSED", "SPACE to resume"}
	case game.StateGameOver:
		title := "GAME OVER"
		if f.NewRecord {
			title = "NEW RECORD!"
		}
		return []string{title, fmt.Sprintf("Score %d", f.Score), "ENTER to play again"}
	}
	return nil
}

func renderOverlay(f game.Frame) {
	lines := overlayLines(f)
	top := cellY(rules.Point{Y: f.Height / 2}) - len(lines)/2
	for i, line := range lines {
		x := boardLeft + (int(f.Width)*cellWidth-runewidth.StringWidth(line))/2
		tbprint(x, top+i, defaultColor|termbox.AttrBold, defaultColor, line)
	}
}

func renderHelp(height int) {
	tbprint(boardLeft, boardTop+height+2, defaultColor, defaultColor, "space pause  enter start  esc quit")
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
