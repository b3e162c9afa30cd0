package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Screen.Width != 1300 || cfg.Screen.Height != 900 {
		t.Fatalf("expected 1300x900, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.World.BlockSize != 100 {
		t.Fatalf("expected block size 100, got %d", cfg.World.BlockSize)
	}
	if cfg.Player.FOV != math.Pi/3 || cfg.Player.Speed != 0.02 {
		t.Fatalf("unexpected player defaults %+v", cfg.Player)
	}
	if math.Abs(cfg.Player.RotationSpeed-0.03) > 1e-12 {
		t.Fatalf("expected rotation speed 0.03, got %v", cfg.Player.RotationSpeed)
	}
	if cfg.Pursuer.X != 1.5 || cfg.Pursuer.Y != 3.5 || cfg.Pursuer.Speed != 0.007 {
		t.Fatalf("unexpected pursuer defaults %+v", cfg.Pursuer)
	}
	if cfg.Render.Ceiling != 0x88814A || cfg.Render.Floor != 0x58450E {
		t.Fatalf("unexpected colors %#x %#x", cfg.Render.Ceiling, cfg.Render.Floor)
	}
	if cfg.Minimap.Scale != 8 || cfg.Minimap.Player != 0x5F88CC {
		t.Fatalf("unexpected minimap defaults %+v", cfg.Minimap)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	body := strings.Join([]string{
		"screen:",
		"  width: 640",
		"  height: 480",
		"pursuer:",
		"  speed: 0.02",
		"minimap:",
		"  enabled: false",
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Screen.Width != 640 || cfg.Screen.Height != 480 {
		t.Fatalf("expected file override, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Pursuer.Speed != 0.02 || cfg.Minimap.Enabled {
		t.Fatalf("expected file overrides, got %+v %+v", cfg.Pursuer, cfg.Minimap)
	}
	if cfg.World.BlockSize != 100 {
		t.Fatal("expected untouched keys to keep defaults")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BACKROOMS_WORLD_BLOCK_SIZE", "64")
	t.Setenv("BACKROOMS_AUDIO_ENABLED", "false")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.World.BlockSize != 64 {
		t.Fatalf("expected env block size 64, got %d", cfg.World.BlockSize)
	}
	if cfg.Audio.Enabled {
		t.Fatal("expected audio disabled from env")
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := *cfg
	bad.World.BlockSize = 0
	if err := bad.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}

	bad = *cfg
	bad.Render.SpriteFar = bad.Render.SpriteNear
	if err := bad.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for an empty sprite range, got %v", err)
	}
}
