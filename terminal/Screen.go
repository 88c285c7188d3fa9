package terminal

import (
	"math"

	"github.com/gdamore/tcell"
)

const ScoreRow = 0 // terminal row that carries the score line

// Screen draws the arena on a tcell screen, scaling arena units to terminal cells.
type Screen struct {
	screen      tcell.Screen
	arenaWidth  float64
	arenaHeight float64
	score       string
}

func NewScreen(s tcell.Screen, arenaWidth, arenaHeight float64) *Screen {
	return &Screen{
		screen:      s,
		arenaWidth:  arenaWidth,
		arenaHeight: arenaHeight,
	}
}

// cells converts an arena rectangle into the half-open cell range it covers.
// Anything with a non-empty arena size covers at least one cell.
func (s *Screen) cells(x, y, width, height float64) (left, top, right, bottom int) {
	cols, rows := s.screen.Size()
	scaleX := float64(cols) / s.arenaWidth
	scaleY := float64(rows) / s.arenaHeight

	left = int(math.Floor(x * scaleX))
	top = int(math.Floor(y * scaleY))
	right = int(math.Ceil((x + width) * scaleX))
	bottom = int(math.Ceil((y + height) * scaleY))
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}

	left, right = clip(left, cols), clip(right, cols)
	top, bottom = clip(top, rows), clip(bottom, rows)
	return left, top, right, bottom
}

func clip(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}

func (s *Screen) DrawRectangle(x, y, width, height float64, color string) {
	left, top, right, bottom := s.cells(x, y, width, height)
	style := tcell.StyleDefault.Background(tcell.GetColor(color))
	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (s *Screen) SetScoreText(text string) {
	s.score = text
}

func (s *Screen) ScoreText() string {
	return s.score
}

// Show writes the score line over the last frame and flushes to the terminal.
func (s *Screen) Show() {
	s.drawLetters(s.score)
	s.screen.Show()
}

// Sync repaints the whole terminal, used after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

func (s *Screen) drawLetters(word string) {
	if word == "" {
		return
	}
	cols, _ := s.screen.Size()
	letters := []rune(word)
	startX := cols/2 - len(letters)/2

	style := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	for i, letter := range letters {
		s.screen.SetContent(startX+i, ScoreRow, letter, nil, style)
	}
}
