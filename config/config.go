package config

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "BACKROOMS"

type Config struct {
	Screen  ScreenConfig  `mapstructure:"screen"`
	World   WorldConfig   `mapstructure:"world"`
	Player  PlayerConfig  `mapstructure:"player"`
	Pursuer PursuerConfig `mapstructure:"pursuer"`
	Render  RenderConfig  `mapstructure:"render"`
	Minimap MinimapConfig `mapstructure:"minimap"`
	Assets  AssetsConfig  `mapstructure:"assets"`
	Audio   AudioConfig   `mapstructure:"audio"`
}

type ScreenConfig struct {
	Title       string  `mapstructure:"title"`
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	WindowScale float64 `mapstructure:"window_scale"`
	Fullscreen  bool    `mapstructure:"fullscreen"`
	VSync       bool    `mapstructure:"vsync"`
	ShowFPS     bool    `mapstructure:"show_fps"`
}

type WorldConfig struct {
	BlockSize int    `mapstructure:"block_size"`
	Maze      string `mapstructure:"maze"` // text maze or color-keyed .png; empty uses the built-in maze
}

type PlayerConfig struct {
	X                float64 `mapstructure:"x"`
	Y                float64 `mapstructure:"y"`
	FOV              float64 `mapstructure:"fov"`
	Speed            float64 `mapstructure:"speed"`
	RotationSpeed    float64 `mapstructure:"rotation_speed"`
	MouseSensitivity float64 `mapstructure:"mouse_sensitivity"`
}

type PursuerConfig struct {
	X           float64 `mapstructure:"x"`
	Y           float64 `mapstructure:"y"`
	Size        float64 `mapstructure:"size"`
	Speed       float64 `mapstructure:"speed"`
	CatchRadius float64 `mapstructure:"catch_radius"`
}

type RenderConfig struct {
	ProjectionPlane float64 `mapstructure:"projection_plane"`
	Ceiling         uint32  `mapstructure:"ceiling"`
	Floor           uint32  `mapstructure:"floor"`
	SpriteNear      float64 `mapstructure:"sprite_near"`
	SpriteFar       float64 `mapstructure:"sprite_far"`
	Workers         int     `mapstructure:"workers"`
}

type MinimapConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Scale       int    `mapstructure:"scale"`
	Margin      int    `mapstructure:"margin"`
	Player      uint32 `mapstructure:"player"`
	ShowPursuer bool   `mapstructure:"show_pursuer"`
}

type AssetsConfig struct {
	Wall   string `mapstructure:"wall"`
	Goal   string `mapstructure:"goal"`
	Sprite string `mapstructure:"sprite"`
	Start  string `mapstructure:"start"`
	Lost   string `mapstructure:"lost"`
}

type AudioConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	SampleRate  int     `mapstructure:"sample_rate"`
	Music       string  `mapstructure:"music"`
	MusicVolume float64 `mapstructure:"music_volume"`
	DuckVolume  float64 `mapstructure:"duck_volume"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("screen.title", "The BACKROOMS")
	v.SetDefault("screen.width", 1300)
	v.SetDefault("screen.height", 900)
	v.SetDefault("screen.window_scale", 1/1.3)
	v.SetDefault("screen.fullscreen", false)
	v.SetDefault("screen.vsync", true)
	v.SetDefault("screen.show_fps", true)

	v.SetDefault("world.block_size", 100)
	v.SetDefault("world.maze", "")

	v.SetDefault("player.x", 1.5)
	v.SetDefault("player.y", 1.5)
	v.SetDefault("player.fov", math.Pi/3)
	v.SetDefault("player.speed", 0.02)
	v.SetDefault("player.rotation_speed", 0.1*0.3)
	v.SetDefault("player.mouse_sensitivity", 0.003)

	v.SetDefault("pursuer.x", 1.5)
	v.SetDefault("pursuer.y", 3.5)
	v.SetDefault("pursuer.size", 1.0)
	v.SetDefault("pursuer.speed", 0.007)
	v.SetDefault("pursuer.catch_radius", 0.5)

	v.SetDefault("render.projection_plane", 100.0)
	v.SetDefault("render.ceiling", 0x88814A)
	v.SetDefault("render.floor", 0x58450E)
	v.SetDefault("render.sprite_near", 0.5)
	v.SetDefault("render.sprite_far", 50.0)
	v.SetDefault("render.workers", runtime.NumCPU())

	v.SetDefault("minimap.enabled", true)
	v.SetDefault("minimap.scale", 8)
	v.SetDefault("minimap.margin", 10)
	v.SetDefault("minimap.player", 0x5F88CC)
	v.SetDefault("minimap.show_pursuer", false)

	v.SetDefault("assets.wall", "")
	v.SetDefault("assets.goal", "")
	v.SetDefault("assets.sprite", "")
	v.SetDefault("assets.start", "")
	v.SetDefault("assets.lost", "")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sample_rate", 44100)
	v.SetDefault("audio.music", "")
	v.SetDefault("audio.music_volume", 0.5)
	v.SetDefault("audio.duck_volume", 0.2)
}

// New returns a viper instance with defaults and BACKROOMS_ environment overrides.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads an optional config file on top of defaults and environment.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return Decode(v)
}

// Decode unmarshals and validates v.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var ErrInvalid = errors.New("invalid config")

func (c *Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Screen.WindowScale <= 0:
		return fmt.Errorf("%w: screen.window_scale must be positive", ErrInvalid)
	case c.World.BlockSize <= 0:
		return fmt.Errorf("%w: world.block_size must be positive", ErrInvalid)
	case c.Player.FOV <= 0 || c.Player.FOV >= 2*math.Pi:
		return fmt.Errorf("%w: player.fov must be in (0, 2π)", ErrInvalid)
	case c.Render.ProjectionPlane <= 0:
		return fmt.Errorf("%w: render.projection_plane must be positive", ErrInvalid)
	case c.Render.SpriteNear < 0 || c.Render.SpriteFar <= c.Render.SpriteNear:
		return fmt.Errorf("%w: render.sprite_far must exceed render.sprite_near", ErrInvalid)
	case c.Minimap.Enabled && c.Minimap.Scale <= 0:
		return fmt.Errorf("%w: minimap.scale must be positive", ErrInvalid)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate must be positive", ErrInvalid)
	}
	return nil
}
