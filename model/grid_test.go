package model

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

const roomMaze = "+---+\n" +
	"|   |\n" +
	"|   |\n" +
	"|  g|\n" +
	"+---+\n"

func mustParse(t *testing.T, s string) *Level {
	t.Helper()
	level, err := ParseGrid(strings.NewReader(s))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return level
}

func TestParseGrid_Dimensions(t *testing.T) {
	g := mustParse(t, roomMaze).Grid
	if g.Width() != 5 || g.Height() != 5 {
		t.Fatalf("expected 5x5, got %dx%d", g.Width(), g.Height())
	}
	if tile, _ := g.At(3, 3); tile != TileGoal {
		t.Fatalf("expected goal at (3,3), got %q", tile)
	}
	if g.String() != roomMaze {
		t.Fatalf("expected round trip text, got\n%s", g.String())
	}
}

func TestParseGrid_CRLFAndTrailingBlankLines(t *testing.T) {
	src := strings.ReplaceAll(roomMaze, "\n", "\r\n") + "\r\n\r\n"
	g := mustParse(t, src).Grid
	if g.Width() != 5 || g.Height() != 5 {
		t.Fatalf("expected 5x5, got %dx%d", g.Width(), g.Height())
	}
}

func TestParseGrid_MultiByteWallGlyph(t *testing.T) {
	src := "+-+\n|█|\n+-+\n"
	g := mustParse(t, src).Grid
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("expected 3x3, got %dx%d", g.Width(), g.Height())
	}
	tile, _ := g.At(1, 1)
	if tile != Tile('█') || !tile.IsWall() {
		t.Fatalf("expected a single block wall cell, got %q", tile)
	}
	if g.String() != src {
		t.Fatalf("expected round trip text, got\n%s", g.String())
	}

	// markers after a wide glyph still land on their column
	level := mustParse(t, "█████\n█p  █\n█  g█\n█████\n")
	if level.Player == nil || level.Player.X != 1.5 || level.Player.Y != 1.5 {
		t.Fatalf("expected player marker at (1.5,1.5), got %v", level.Player)
	}
}

func TestParseGrid_SpawnMarkers(t *testing.T) {
	level := mustParse(t, "+---+\n|p  |\n|   |\n|e g|\n+---+\n")
	if level.Player == nil || level.Player.X != 1.5 || level.Player.Y != 1.5 {
		t.Fatalf("expected player marker at (1.5,1.5), got %v", level.Player)
	}
	if level.Pursuer == nil || level.Pursuer.X != 1.5 || level.Pursuer.Y != 3.5 {
		t.Fatalf("expected pursuer marker at (1.5,3.5), got %v", level.Pursuer)
	}
	if tile, _ := level.Grid.At(1, 1); tile != TileEmpty {
		t.Fatalf("expected marker cell to become empty, got %q", tile)
	}
}

func TestParseGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"empty", "", ErrEmptyGrid},
		{"ragged", "+--+\n|  |\n+-+\n", ErrRaggedGrid},
		{"open", "+--+\n   |\n+--+\n", ErrOpenBorder},
		{"goal on border", "+-g+\n|  |\n+--+\n", ErrOpenBorder},
	}
	for _, c := range cases {
		_, err := ParseGrid(strings.NewReader(c.src))
		if !errors.Is(err, c.err) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.err, err)
		}
	}
}

func TestTile_Kind(t *testing.T) {
	if TileEmpty.Kind() != KindEmpty || TileGoal.Kind() != KindGoal {
		t.Fatal("expected empty and goal kinds")
	}
	for _, tile := range []Tile{TileCorner, TileHorizontal, TileVertical, '#', 'x'} {
		if !tile.IsWall() {
			t.Fatalf("expected %q to be a wall", tile)
		}
	}
}

func TestGrid_AtOutOfRange(t *testing.T) {
	g := mustParse(t, roomMaze).Grid
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		if _, ok := g.At(p[0], p[1]); ok {
			t.Fatalf("expected (%d,%d) to be outside the grid", p[0], p[1])
		}
	}
}

func TestLoadLevelImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, LevelColorWall)
		}
	}
	img.Set(1, 1, LevelColorPlayer)
	img.Set(2, 1, LevelColorEmpty)
	img.Set(1, 2, LevelColorPursuer)
	img.Set(2, 2, LevelColorGoal)
	img.Set(3, 3, color.RGBA{12, 34, 56, 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}

	level, err := LoadLevelImage(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level.Player == nil || level.Player.X != 1.5 || level.Player.Y != 1.5 {
		t.Fatalf("expected player at (1.5,1.5), got %v", level.Player)
	}
	if level.Pursuer == nil || level.Pursuer.X != 1.5 || level.Pursuer.Y != 2.5 {
		t.Fatalf("expected pursuer at (1.5,2.5), got %v", level.Pursuer)
	}
	if tile, _ := level.Grid.At(2, 2); tile != TileGoal {
		t.Fatalf("expected goal, got %q", tile)
	}
	if tile, _ := level.Grid.At(3, 3); !tile.IsWall() {
		t.Fatalf("expected unknown color to be a wall, got %q", tile)
	}
}
