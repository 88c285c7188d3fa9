package terminal

import (
	"PongArena/core"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func background(t *testing.T, s tcell.SimulationScreen, x, y int) tcell.Color {
	t.Helper()
	cells, width, _ := s.GetContents()
	_, bg, _ := cells[y*width+x].Style.Decompose()
	return bg
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := s.GetContents()
	runes := cells[y*width+x].Runes
	if len(runes) == 0 {
		return ' '
	}
	return runes[0]
}

func TestScreen_DrawsArena(t *testing.T) {
	sim := newSimScreen(t)
	screen := NewScreen(sim, 800, 600)
	game := core.NewGame(800, 600, screen)

	game.DrawAnimationFrame()
	screen.Show()

	white := tcell.GetColor(core.ForegroundColor)
	black := tcell.GetColor(core.BackgroundColor)

	// left paddle covers columns 12-13, rows 9-14
	assert.Equal(t, white, background(t, sim, 12, 10))
	assert.Equal(t, white, background(t, sim, 13, 13))
	// right paddle covers columns 66-67
	assert.Equal(t, white, background(t, sim, 66, 12))
	// ball covers columns 39-40, rows 11-12
	assert.Equal(t, white, background(t, sim, 39, 11))
	assert.Equal(t, white, background(t, sim, 40, 12))

	assert.Equal(t, black, background(t, sim, 20, 12))
	assert.Equal(t, black, background(t, sim, 12, 3))
	assert.Equal(t, black, background(t, sim, 79, 23))
}

func TestScreen_EmptyRectanglePaintsOneCell(t *testing.T) {
	sim := newSimScreen(t)
	screen := NewScreen(sim, 800, 600)

	screen.DrawRectangle(0, 0, 800, 600, core.BackgroundColor)
	screen.DrawRectangle(500, 300, 0, 0, core.ForegroundColor)
	sim.Show()

	assert.Equal(t, tcell.GetColor(core.ForegroundColor), background(t, sim, 50, 12))
	assert.Equal(t, tcell.GetColor(core.BackgroundColor), background(t, sim, 51, 12))
	assert.Equal(t, tcell.GetColor(core.BackgroundColor), background(t, sim, 50, 13))
}

func TestScreen_ClipsOutsideTerminal(t *testing.T) {
	sim := newSimScreen(t)
	screen := NewScreen(sim, 800, 600)

	screen.DrawRectangle(0, 0, 800, 600, core.BackgroundColor)
	assert.NotPanics(t, func() {
		screen.DrawRectangle(-40, -40, 60, 60, core.ForegroundColor)
		screen.DrawRectangle(790, 590, 100, 100, core.ForegroundColor)
		screen.DrawRectangle(-500, 100, 20, 20, core.ForegroundColor)
	})
	sim.Show()

	white := tcell.GetColor(core.ForegroundColor)
	assert.Equal(t, white, background(t, sim, 0, 0))
	assert.Equal(t, white, background(t, sim, 79, 23))
	assert.Equal(t, tcell.GetColor(core.BackgroundColor), background(t, sim, 0, 4))
}

func TestScreen_ShowsScore(t *testing.T) {
	sim := newSimScreen(t)
	screen := NewScreen(sim, 800, 600)

	screen.SetScoreText("3 : 1")
	screen.Show()

	assert.Equal(t, "3 : 1", screen.ScoreText())
	got := make([]rune, 5)
	for i := range got {
		got[i] = runeAt(sim, 38+i, ScoreRow)
	}
	assert.Equal(t, "3 : 1", string(got))
}
