package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/densetsu/config"
	"github.com/milk9111/densetsu/logger"
	"github.com/milk9111/densetsu/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "show the physics and locomotion debug overlay")
	dash := flag.Bool("dash", false, "start with the dash ability unlocked")
	script := flag.String("script", "", "drive the player from prefabs/scripts/<name>.tengo")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("config")
	}
	log := logger.Init(cfg.LogLevel, cfg.LogFormat, nil)

	if cfg.PrefabDir != "" {
		prefabs.SetDiskDir(cfg.PrefabDir)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w*2/3, h*2/3)
	ebiten.SetWindowTitle("densetsu")
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg, GameOptions{Debug: *debug, Dash: *dash, Script: *script}, log)
	if err != nil {
		log.WithError(err).Fatal("game: start")
	}
	defer func() {
		if err := game.Close(); err != nil {
			log.WithError(err).Warn("game: close")
		}
	}()

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Error("game: exited")
	}
}
