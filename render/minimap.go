package render

import (
	"image/color"

	"github.com/harbdog/raycaster-go/geom"

	"backrooms/engine"
	"backrooms/model"
)

var DefaultMinimapPalette = map[model.Tile]color.RGBA{
	model.TileCorner:     engine.Hex(0xD6C34E),
	model.TileHorizontal: engine.Hex(0xBFAA25),
	model.TileVertical:   engine.Hex(0xB9AB53),
	model.TileGoal:       engine.Hex(0xC92828),
	model.TileEmpty:      engine.Hex(0x7F5A1B),
}

// Minimap draws a top-down copy of the grid in the bottom-right corner.
type Minimap struct {
	Scale   int // block size divided by this gives the cell edge in pixels
	Margin  int
	Palette map[model.Tile]color.RGBA
	Unknown color.RGBA // tiles missing from the palette
	Player  color.RGBA
	Pursuer color.RGBA
	// ShowPursuer also marks the pursuer, which the first-person view never reveals through walls.
	ShowPursuer bool
}

// CellSize is the pixel edge of one minimap cell.
func (m *Minimap) CellSize(blockSize int) int {
	if m.Scale <= 0 {
		return blockSize
	}
	return blockSize / m.Scale
}

// Origin is the top-left pixel of the minimap for a grid.
func (m *Minimap) Origin(fb *engine.Framebuffer, grid *model.Grid, blockSize int) (x, y int) {
	size := m.CellSize(blockSize)
	return fb.Width() - grid.Width()*size - m.Margin, fb.Height() - grid.Height()*size - m.Margin
}

// Draw paints every cell and the player marker. pursuer may be nil.
func (m *Minimap) Draw(fb *engine.Framebuffer, grid *model.Grid, pose *model.Pose, pursuer *model.Pursuer, blockSize int) {
	size := m.CellSize(blockSize)
	if size <= 0 {
		return
	}
	ox, oy := m.Origin(fb, grid, blockSize)

	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			tile, _ := grid.At(col, row)
			c, ok := m.Palette[tile]
			if !ok {
				c = m.Unknown
			}
			fb.FillRect(ox+col*size, oy+row*size, size, size, c)
		}
	}

	if m.ShowPursuer && pursuer != nil {
		m.marker(fb, ox, oy, size, pursuer.Pos, m.Pursuer)
	}
	m.marker(fb, ox, oy, size, pose.Pos, m.Player)
}

func (m *Minimap) marker(fb *engine.Framebuffer, ox, oy, size int, pos geom.Vector2, c color.RGBA) {
	fb.FillRect(ox+int(pos.X*float64(size)), oy+int(pos.Y*float64(size)), size/2, size/2, c)
}
