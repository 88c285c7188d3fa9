package core

import "fmt"

const BackgroundColor = "#000000" // arena fill
const ForegroundColor = "#FFFFFF" // ball and paddles

// Host is implemented by whatever environment embeds the game.
type Host interface {
	// DrawRectangle paints a filled rectangle. color is "#RRGGBB".
	DrawRectangle(x, y, width, height float64, color string)
	// SetScoreText displays the current score line.
	SetScoreText(text string)
}

// HostFuncs adapts a pair of callbacks to Host. Nil callbacks are skipped.
type HostFuncs struct {
	Draw  func(x, y, width, height float64, color string)
	Score func(text string)
}

func (h HostFuncs) DrawRectangle(x, y, width, height float64, color string) {
	if h.Draw != nil {
		h.Draw(x, y, width, height, color)
	}
}

func (h HostFuncs) SetScoreText(text string) {
	if h.Score != nil {
		h.Score(text)
	}
}

// ScoreText formats the score line shown by the host.
func ScoreText(p1Score, p2Score int) string {
	return fmt.Sprintf("%d : %d", p1Score, p2Score)
}
