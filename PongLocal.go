package main

import (
	"PongArena/config"
	"PongArena/core"
	"PongArena/logger"
	"PongArena/terminal"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell"
	"github.com/google/uuid"
)

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if e := screen.Init(); e != nil {
		return nil, e
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	screen.HideCursor()
	return screen, nil
}

// newMatch wires a fresh game to the terminal host.
func newMatch(cfg config.Config, screen tcell.Screen) (*core.Game, *terminal.Loop) {
	host := terminal.NewScreen(screen, cfg.ArenaWidth, cfg.ArenaHeight)

	game := core.NewGame(cfg.ArenaWidth, cfg.ArenaHeight, host)
	game.BindKeys(cfg.KeyMap())
	host.SetScoreText(core.ScoreText(game.Score()))

	loop := &terminal.Loop{
		Game:          game,
		Screen:        host,
		Keyboard:      terminal.NewKeyboard(game, cfg.KeyHold),
		PhysicsPeriod: cfg.PhysicsPeriod,
		FramePeriod:   cfg.FramePeriod,
	}
	return game, loop
}

func start(cfg config.Config) error {
	screen, err := initScreen()
	if err != nil {
		logger.Log.Error(fmt.Sprintf(logger.ScreenInitFailedMsg, err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	defer screen.Fini()

	matchID := uuid.New().String()
	log := logger.Log.WithField("match", matchID)

	for action, key := range cfg.Keys {
		log.Debug(fmt.Sprintf(logger.KeyBoundMsg, key, action))
	}

	game, loop := newMatch(cfg, screen)
	log.Info(fmt.Sprintf(logger.MatchCreatedMsg, matchID))
	game.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = loop.Run(ctx)
	log.Info(fmt.Sprintf(logger.MatchEndedMsg, matchID, core.ScoreText(game.Score())))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
