package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreText(t *testing.T) {
	assert.Equal(t, "0 : 0", ScoreText(0, 0))
	assert.Equal(t, "12 : 3", ScoreText(12, 3))
}

func TestHostFuncs(t *testing.T) {
	var rects int
	var text string
	h := HostFuncs{
		Draw:  func(x, y, width, height float64, color string) { rects++ },
		Score: func(s string) { text = s },
	}

	g := NewGame(800, 600, h)
	g.DrawAnimationFrame()
	g.Start()
	g.ball.X = 790
	g.DoPhysics()

	assert.Equal(t, 4, rects)
	assert.Equal(t, "1 : 0", text)
}

func TestHostFuncs_NilCallbacks(t *testing.T) {
	assert.NotPanics(t, func() {
		HostFuncs{}.DrawRectangle(0, 0, 1, 1, ForegroundColor)
		HostFuncs{}.SetScoreText("0 : 0")
	})
}
