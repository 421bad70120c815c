package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/perspective-grid/internal/config"
	"github.com/iburimskiy/perspective-grid/internal/game"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	watch := flag.Bool("watch", false, "reload the config file when it changes")
	audioPath := flag.String("audio", "", "soundtrack to play (wav, mp3 or flac)")
	hud := flag.Bool("hud", false, "show the debug overlay")
	flag.Parse()

	if err := run(*configPath, *watch, *audioPath, *hud); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string, watch bool, audioPath string, hud bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if hud {
		cfg.HUD = true
	}
	if audioPath != "" {
		cfg.Audio.File = audioPath
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(cfg)
	defer g.Close()

	if watch && configPath != "" {
		w, err := config.Watch(configPath)
		if err != nil {
			return fmt.Errorf("config: watch %s: %w", configPath, err)
		}
		defer w.Close()
		g.WatchConfig(w.Updates, w.Errors)
	}

	if cfg.Audio.File != "" {
		if err := g.LoadSoundtrack(cfg.Audio.File); err != nil {
			log.Printf("soundtrack: %v", err)
		}
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
