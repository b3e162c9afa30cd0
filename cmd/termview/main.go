// Command termview plays the game in a terminal. Each character cell shows
// two framebuffer pixels with an upper half block: the foreground is the
// top pixel and the background the bottom one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"backrooms/config"
	"backrooms/engine"
	"backrooms/session"
	"backrooms/state"
)

const halfBlock = '▀'

func main() {
	configPath := flag.String("config", os.Getenv("BACKROOMS_CONFIG"), "YAML, JSON or TOML config file")
	mazePath := flag.String("maze", "assets/maze.txt", "text maze or color-keyed .png")
	fps := flag.Int("fps", 30, "frames per second")
	minimap := flag.Bool("minimap", false, "draw the minimap overlay")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Minimap.Enabled = *minimap
	if cfg.World.Maze != "" {
		*mazePath = cfg.World.Maze
	}

	fsys := os.DirFS(".")
	res, err := engine.LoadResources(fsys, engine.ResourcePaths{
		Wall:   cfg.Assets.Wall,
		Goal:   cfg.Assets.Goal,
		Sprite: cfg.Assets.Sprite,
		Start:  cfg.Assets.Start,
		Lost:   cfg.Assets.Lost,
	})
	if err != nil {
		log.Fatal(err)
	}
	sess, err := session.Build(cfg, session.FileLevels(fsys, *mazePath), res, nil)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to start tcell: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}

	err = run(screen, sess, time.Second/time.Duration(max(*fps, 1)))
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

// run owns the screen; a second goroutine only polls events and forwards them.
func run(screen tcell.Screen, sess *session.Session, frame time.Duration) error {
	screen.HideCursor()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	var fb *engine.Framebuffer
	var in session.Input
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				fb = nil
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				applyKey(&in, ev)
			}
		case <-ticker.C:
			if err := sess.Update(in); err != nil {
				return err
			}
			in = session.Input{}

			w, h := screen.Size()
			if fb == nil || fb.Width() != w || fb.Height() != h*2 {
				fb = engine.NewFramebuffer(w, h*2)
			}
			sess.Render(fb)
			blit(screen, fb)
			status(screen, sess)
			screen.Show()
		}
	}
}

// applyKey folds a key event into the pending input. Terminals report no
// key releases, so each repeat counts for one frame.
func applyKey(in *session.Input, ev *tcell.EventKey) {
	in.AnyKey = true
	switch ev.Key() {
	case tcell.KeyUp:
		in.Forward = true
	case tcell.KeyDown:
		in.Backward = true
	case tcell.KeyLeft:
		in.RotateLeft = true
	case tcell.KeyRight:
		in.RotateRight = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			in.Forward = true
		case 's', 'S':
			in.Backward = true
		case 'a', 'A':
			in.RotateLeft = true
		case 'd', 'D':
			in.RotateRight = true
		case 'q', 'Q':
			in.StrafeLeft = true
		case 'e', 'E':
			in.StrafeRight = true
		case 'm', 'M':
			in.TopDown = true
			in.AnyKey = false
		}
	}
}

func blit(screen tcell.Screen, fb *engine.Framebuffer) {
	w, h := fb.Width(), fb.Height()/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top := fb.Pixel(x, 2*y)
			bottom := fb.Pixel(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

func status(screen tcell.Screen, sess *session.Session) {
	line := sess.Banner()
	if sess.Screen() == state.Playing {
		p := sess.Pose()
		line = fmt.Sprintf("x=%.2f y=%.2f  WASD/arrows move, Q/E strafe, M map, Esc quit", p.Pos.X, p.Pos.Y)
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range []rune(line) {
		screen.SetContent(i, 0, r, nil, style)
	}
}
