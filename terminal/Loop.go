package terminal

import (
	"PongArena/core"
	"context"
	"time"

	"github.com/gdamore/tcell"
)

// Loop runs input, physics and animation for one game on one goroutine.
type Loop struct {
	Game          *core.Game
	Screen        *Screen
	Keyboard      *Keyboard
	PhysicsPeriod time.Duration
	FramePeriod   time.Duration
}

// Run blocks until the quit key is pressed, the screen is finalized or ctx is done.
// Only the quit key and screen shutdown return nil.
func (l *Loop) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	inputChan := initUserInput(l.Screen.screen, done)

	physics := time.NewTicker(l.PhysicsPeriod)
	defer physics.Stop()
	frames := time.NewTicker(l.FramePeriod)
	defer frames.Stop()

	l.drawView()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-inputChan:
			if !ok {
				return nil
			}
			if quit := l.handleEvent(ev); quit {
				l.Keyboard.ReleaseAll()
				return nil
			}

		case now := <-physics.C:
			l.Keyboard.Expire(now)
			l.Game.DoPhysics()

		case <-frames.C:
			l.drawView()
		}
	}
}

func (l *Loop) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev) {
			return true
		}
		l.Keyboard.Press(ev.Name(), ev.When())
	case *tcell.EventResize:
		l.Screen.Sync()
		l.drawView()
	}
	return false
}

func isQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

func (l *Loop) drawView() {
	l.Game.DrawAnimationFrame()
	l.Screen.Show()
}

// initUserInput pumps screen events into a channel until the screen is
// finalized or done is closed.
func initUserInput(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	inputChan := make(chan tcell.Event)

	go func() {
		defer close(inputChan)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case inputChan <- ev:
			case <-done:
				return
			}
		}
	}()

	return inputChan
}
