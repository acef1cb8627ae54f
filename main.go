package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fps/config"
	"github.com/milk9111/fps/logger"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the game configuration")
	debug := flag.Bool("debug", false, "enable debug overlay")
	sceneName := flag.String("scene", "", "scene to load instead of the configured one (e.g. scenes/map.scn)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *sceneName != "" {
		cfg.Assets.Scene = *sceneName
	}
	if *debug {
		cfg.Logging.Level = "debug"
	}

	lg, err := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	game, err := NewGame(cfg, lg, *debug)
	if err != nil {
		lg.Fatal("create game", zap.Error(err))
	}
	defer func() {
		if err := game.Close(); err != nil {
			lg.Warn("shutdown", zap.Error(err))
		}
	}()

	if err := ebiten.RunGame(game); err != nil {
		lg.Error("run game", zap.Error(err))
	}
}
