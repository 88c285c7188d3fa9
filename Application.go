package main

import (
	"PongArena/config"
	"PongArena/logger"
	"fmt"
	"os"
)

func main() {
	if err := logger.Log.Init("./"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	cfg, err := config.ReadProperties("./", config.DefaultEnv)
	if err != nil {
		logger.Log.Fatal(err.Error())
	}
	if !cfg.FromFile {
		logger.Log.Warn(fmt.Sprintf(logger.ConfigDefaultMsg, config.DefaultEnv, "./properties"))
	}
	logger.Log.Info(fmt.Sprintf(logger.ConfigLoadedMsg, cfg.ArenaWidth, cfg.ArenaHeight, cfg.PhysicsPeriod, cfg.FramePeriod))

	if err := start(cfg); err != nil {
		logger.Log.Error(err.Error())
		os.Exit(1)
	}
}
