package main

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"backrooms/audio"
	"backrooms/config"
	"backrooms/engine"
	"backrooms/session"
	"backrooms/state"
)

// main game object
type Game struct {
	cfg     *config.Config
	session *session.Session
	audio   *audio.Service
	overlay *Overlay

	// the session renders here and the result is uploaded once per frame
	fb *engine.Framebuffer

	screen state.Screen

	mouseX     int
	mouseReady bool
	keys       []ebiten.Key
}

// NewGame loads textures and the level and builds a session on the start screen.
func NewGame(cfg *config.Config, assets fs.FS, defaultMaze string) (*Game, error) {
	fmt.Printf("Initializing Game\n")

	res, err := engine.LoadResources(assets, engine.ResourcePaths{
		Wall:   cfg.Assets.Wall,
		Goal:   cfg.Assets.Goal,
		Sprite: cfg.Assets.Sprite,
		Start:  cfg.Assets.Start,
		Lost:   cfg.Assets.Lost,
	})
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	levels := session.StaticLevel(defaultMaze)
	if cfg.World.Maze != "" {
		levels = session.FileLevels(assets, cfg.World.Maze)
	}

	g := &Game{
		cfg: cfg,
		fb:  engine.NewFramebuffer(cfg.Screen.Width, cfg.Screen.Height),
		audio: audio.NewService(audio.Config{
			SampleRate:  cfg.Audio.SampleRate,
			MusicPath:   cfg.Audio.Music,
			MusicVolume: cfg.Audio.MusicVolume,
			DuckVolume:  cfg.Audio.DuckVolume,
		}),
	}

	var cues session.CueSink
	if cfg.Audio.Enabled {
		cues = g.audio
	}
	if g.session, err = session.Build(cfg, levels, res, cues); err != nil {
		return nil, err
	}

	if g.overlay, err = NewOverlay(); err != nil {
		return nil, err
	}
	g.screen = g.session.Screen()
	g.overlay.Show(g.screen, g.session.Banner())

	return g, nil
}

// Layout keeps the logical screen at the framebuffer size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in, copySnapshot := g.readInput()
	if copySnapshot {
		g.copySnapshot()
	}
	if err := g.session.Update(in); err != nil {
		return err
	}

	if s := g.session.Screen(); s != g.screen {
		log.Printf("[session] %s -> %s", g.screen, s)
		g.screen = s
		g.overlay.Show(s, g.session.Banner())
		if s == state.Playing {
			g.mouseReady = false
		}
	}

	g.overlay.Update()
	return nil
}

// Draw uploads the software framebuffer, then layers text on top.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Render(g.fb)
	screen.WritePixels(g.fb.Pixels())

	g.overlay.Draw(screen)

	if g.cfg.Screen.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()), 10, 10)
	}
}
