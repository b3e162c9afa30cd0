package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"backrooms/config"
)

//go:embed assets/maze.txt
var defaultMaze string

func main() {
	configPath := flag.String("config", os.Getenv("BACKROOMS_CONFIG"), "YAML, JSON or TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	// asset paths in the config are relative to the working directory
	g, err := NewGame(cfg, os.DirFS("."), defaultMaze)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Audio.Enabled {
		go func() {
			if err := g.audio.Run(ctx); err != nil {
				log.Printf("[audio] %v, continuing without sound", err)
			}
		}()
	}

	ebiten.SetWindowSize(
		int(float64(cfg.Screen.Width)*cfg.Screen.WindowScale),
		int(float64(cfg.Screen.Height)*cfg.Screen.WindowScale),
	)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetFullscreen(cfg.Screen.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Screen.VSync)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	err = ebiten.RunGame(g)
	g.audio.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
