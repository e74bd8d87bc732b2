package main

import (
	"flag"
	"os"

	"github.com/CatPunch007/LittleWitch/common"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	basic := flag.Bool("basic", false, "basic controller: move and jump only, no dash")
	debug := flag.Bool("debug", false, "enable debug mode")
	tps := flag.Int("tps", common.TPS, "simulation ticks per second")
	script := flag.String("script", "", "drive the player from a tengo input script in prefabs/scripts until a key is pressed")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "littlewitch",
	})
	if level, err := log.ParseLevel(*logLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", *logLevel)
	}
	if *debug && logger.GetLevel() > log.DebugLevel {
		logger.SetLevel(log.DebugLevel)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Little Witch")
	ebiten.SetTPS(*tps)

	game, err := NewGame(GameOptions{
		Basic:  *basic,
		Debug:  *debug,
		TPS:    *tps,
		Script: *script,
	}, logger)
	if err != nil {
		logger.Fatal("create game", "error", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run game", "error", err)
	}
}
