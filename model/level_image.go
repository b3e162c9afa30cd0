package model

import (
	"fmt"
	"image"
	"image/color"
	"io"

	_ "image/png"
)

// Colors of a color-keyed level image, one pixel per cell.
var (
	LevelColorEmpty   = color.RGBA{255, 255, 255, 255}
	LevelColorWall    = color.RGBA{0, 0, 0, 255}
	LevelColorPanel   = color.RGBA{255, 255, 0, 255}
	LevelColorGoal    = color.RGBA{0, 255, 0, 255}
	LevelColorPlayer  = color.RGBA{0, 0, 255, 255}
	LevelColorPursuer = color.RGBA{255, 0, 0, 255}
)

// LoadLevelImage decodes a color-keyed level. Unknown colors become walls.
func LoadLevelImage(r io.Reader) (*Level, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode level image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	level := &Level{}

	rows := make([][]Tile, height)
	for y := 0; y < height; y++ {
		rows[y] = make([]Tile, width)
		for x := 0; x < width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)

			switch c {
			case LevelColorEmpty:
				rows[y][x] = TileEmpty
			case LevelColorGoal:
				rows[y][x] = TileGoal
			case LevelColorPanel:
				rows[y][x] = TileVertical
			case LevelColorPlayer:
				// the spawn cell itself is walkable
				rows[y][x] = TileEmpty
				level.Player = cellCenter(x, y)
			case LevelColorPursuer:
				rows[y][x] = TileEmpty
				level.Pursuer = cellCenter(x, y)
			default:
				rows[y][x] = TileCorner
			}
		}
	}

	level.Grid = &Grid{rows: rows}
	if err := level.Grid.Validate(); err != nil {
		return nil, err
	}
	return level, nil
}
