// Package session runs one game independently of any window or terminal:
// it resets rounds, steps the world for each input frame and renders
// the current screen into a framebuffer.
package session

import (
	"fmt"

	"backrooms/audio"
	"backrooms/config"
	"backrooms/engine"
	"backrooms/model"
	"backrooms/render"
	"backrooms/state"
)

// CueSink receives one-shot sounds. *audio.Service satisfies it.
type CueSink interface {
	Play(audio.Cue) bool
}

// Input is one frame of player intent, already mapped from a device.
type Input struct {
	Forward     bool
	Backward    bool
	RotateLeft  bool
	RotateRight bool
	StrafeLeft  bool
	StrafeRight bool
	Turn        float64 // extra rotation in radians, from the mouse
	AnyKey      bool    // a fresh press of a start key this frame
	TopDown     bool    // toggles the debug top-down view
}

type Options struct {
	BlockSize   int
	CatchRadius float64
	Spawn       model.Spawn
}

type Session struct {
	opts     Options
	levels   LevelSource
	res      *engine.Resources
	renderer *render.Renderer
	cues     CueSink
	machine  *state.Machine

	grid      *model.Grid
	collision *model.CollisionGrid
	pose      *model.Pose
	pursuer   *model.Pursuer
	topDown   bool
}

// New builds a session on the start screen. The first round is loaded
// immediately so a bad level fails here rather than on the first key press.
// cues may be nil.
func New(levels LevelSource, res *engine.Resources, r *render.Renderer, opts Options, cues CueSink) (*Session, error) {
	s := &Session{
		opts:     opts,
		levels:   levels,
		res:      res,
		renderer: r,
		cues:     cues,
		machine:  state.NewMachine(state.StartScreen, state.DefaultTransitions),
	}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Build wires a session from configuration.
func Build(cfg *config.Config, levels LevelSource, res *engine.Resources, cues CueSink) (*Session, error) {
	bs := cfg.World.BlockSize
	r := &render.Renderer{
		BlockSize: bs,
		Walls: &render.WallProjector{
			BlockSize:       bs,
			ProjectionPlane: cfg.Render.ProjectionPlane,
			Ceiling:         engine.Hex(cfg.Render.Ceiling),
			Floor:           engine.Hex(cfg.Render.Floor),
			Textures:        render.NewTileTextures(res),
			Workers:         cfg.Render.Workers,
		},
		Billboard: &render.Billboard{Near: cfg.Render.SpriteNear, Far: cfg.Render.SpriteFar},
	}
	if cfg.Minimap.Enabled {
		r.Minimap = &render.Minimap{
			Scale:       cfg.Minimap.Scale,
			Margin:      cfg.Minimap.Margin,
			Palette:     render.DefaultMinimapPalette,
			Unknown:     engine.Hex(0x000000),
			Player:      engine.Hex(cfg.Minimap.Player),
			Pursuer:     engine.Hex(0xC92828),
			ShowPursuer: cfg.Minimap.ShowPursuer,
		}
	}

	p, e := cfg.Player, cfg.Pursuer
	opts := Options{
		BlockSize:   bs,
		CatchRadius: e.CatchRadius,
		Spawn: model.Spawn{
			Player:  *model.NewPose(p.X, p.Y, p.FOV, p.Speed, p.RotationSpeed),
			Pursuer: *model.NewPursuer(e.X, e.Y, e.Size, e.Speed, res.Sprite),
		},
	}
	return New(levels, res, r, opts, cues)
}

func (s *Session) Screen() state.Screen { return s.machine.Current() }

func (s *Session) Pose() *model.Pose       { return s.pose }
func (s *Session) Pursuer() *model.Pursuer { return s.pursuer }
func (s *Session) Grid() *model.Grid       { return s.grid }
func (s *Session) TopDown() bool           { return s.topDown }

// Update advances one frame. Movement, pursuit and the win and catch checks
// only run while playing; the other screens wait for AnyKey.
func (s *Session) Update(in Input) error {
	if s.machine.Current() != state.Playing {
		if in.AnyKey {
			return s.fire(state.AnyKey)
		}
		return nil
	}

	if in.TopDown {
		s.topDown = !s.topDown
	}
	s.move(in)
	s.pursuer.MoveToward(s.pose.Pos, s.collision)

	reached := s.collision.IsGoal(s.pose.Pos.X, s.pose.Pos.Y)
	caught := s.pursuer.Caught(s.pose.Pos, s.opts.CatchRadius)
	switch {
	case reached && caught:
		// the catch overrides a goal reached on the same frame, both cues still play
		s.cue(audio.CueWin)
		return s.fire(state.Caught)
	case reached:
		return s.fire(state.ReachedGoal)
	case caught:
		return s.fire(state.Caught)
	}
	return nil
}

func (s *Session) move(in Input) {
	if in.Forward {
		s.pose.Advance(1, s.collision)
	}
	if in.Backward {
		s.pose.Advance(-1, s.collision)
	}
	if in.RotateLeft {
		s.pose.Rotate(-s.pose.RotSpeed)
	}
	if in.RotateRight {
		s.pose.Rotate(s.pose.RotSpeed)
	}
	if in.StrafeLeft {
		s.pose.Strafe(-1, s.collision)
	}
	if in.StrafeRight {
		s.pose.Strafe(1, s.collision)
	}
	if in.Turn != 0 {
		s.pose.Rotate(in.Turn)
	}
}

func (s *Session) fire(ev state.Event) error {
	tr, ok := s.machine.Fire(ev)
	if !ok {
		return nil
	}
	switch tr.Next {
	case state.Won:
		s.cue(audio.CueWin)
	case state.Lost:
		s.cue(audio.CueLose)
	}
	if tr.Reset {
		return s.reset()
	}
	return nil
}

func (s *Session) cue(c audio.Cue) {
	if s.cues != nil {
		s.cues.Play(c)
	}
}

// reset reloads the grid and rebuilds both actors from the spawn template.
// Spawn markers in the level win over the configured positions.
func (s *Session) reset() error {
	level, err := s.levels()
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	pose, pursuer, err := s.opts.Spawn.Clone()
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	if level.Player != nil {
		pose.Pos = *level.Player
	}
	if level.Pursuer != nil {
		pursuer.Pos = *level.Pursuer
	}

	s.grid = level.Grid
	s.collision = model.NewCollisionGrid(level.Grid, s.opts.BlockSize)
	s.pose = pose
	s.pursuer = pursuer
	s.topDown = false
	return nil
}

// Render draws the current screen. Text overlays are left to the presenter.
func (s *Session) Render(fb *engine.Framebuffer) {
	switch s.machine.Current() {
	case state.StartScreen:
		render.Backdrop(fb, s.res.Start)
	case state.Lost:
		render.Backdrop(fb, s.res.Lost)
	case state.Won:
		fb.Clear()
	case state.Playing:
		scene := render.Scene{Grid: s.grid, Pose: s.pose, Pursuer: s.pursuer}
		if s.topDown {
			s.renderer.RenderTopDown(fb, scene)
		} else {
			s.renderer.RenderFrame(fb, scene)
		}
	}
}

// Banner is the overlay text for the current screen, empty while playing.
func (s *Session) Banner() string {
	switch s.machine.Current() {
	case state.StartScreen:
		return "Press any key to start"
	case state.Won:
		return "You won! Press any key to return to start."
	case state.Lost:
		return "You lost! Press any key to return to start."
	}
	return ""
}

// Snapshot is a one-line debug dump of the round.
func (s *Session) Snapshot() string {
	return fmt.Sprintf("screen=%s pos=(%.3f,%.3f) angle=%.3f pursuer=(%.3f,%.3f) dist=%.3f topdown=%t",
		s.machine.Current(),
		s.pose.Pos.X, s.pose.Pos.Y, s.pose.Angle(),
		s.pursuer.Pos.X, s.pursuer.Pos.Y, s.pursuer.DistanceTo(s.pose.Pos),
		s.topDown,
	)
}
