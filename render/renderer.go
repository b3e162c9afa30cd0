package render

import (
	"math"

	"backrooms/engine"
	"backrooms/model"
)

// Scene is everything one frame reads. The renderer never mutates it.
type Scene struct {
	Grid    *model.Grid
	Pose    *model.Pose
	Pursuer *model.Pursuer
}

// Renderer runs the first-person pass in a fixed order:
// clear, ceiling and floor, wall columns, sprite, minimap.
type Renderer struct {
	BlockSize int
	Walls     *WallProjector
	Billboard *Billboard
	Minimap   *Minimap // nil disables the overlay
}

func (r *Renderer) RenderFrame(fb *engine.Framebuffer, s Scene) {
	fb.Clear()
	r.Walls.Project(fb, s.Grid, s.Pose)
	if s.Pursuer != nil {
		r.Billboard.Draw(fb, s.Pose, s.Pursuer)
	}
	if r.Minimap != nil {
		r.Minimap.Draw(fb, s.Grid, s.Pose, s.Pursuer, r.BlockSize)
	}
}

// RenderTopDown draws the grid at full block size with every column's ray
// plotted, a debugging view of what the caster sees.
func (r *Renderer) RenderTopDown(fb *engine.Framebuffer, s Scene) {
	fb.Clear()
	bs := r.BlockSize
	palette := DefaultMinimapPalette
	if r.Minimap != nil && r.Minimap.Palette != nil {
		palette = r.Minimap.Palette
	}

	for row := 0; row < s.Grid.Height(); row++ {
		for col := 0; col < s.Grid.Width(); col++ {
			tile, _ := s.Grid.At(col, row)
			if c, ok := palette[tile]; ok {
				fb.FillRect(col*bs, row*bs, bs, bs, c)
			} else {
				fb.FillRect(col*bs, row*bs, bs, bs, palette[model.TileCorner])
			}
		}
	}

	numRays := fb.Width()
	for i := 0; i < numRays; i += max(numRays/64, 1) {
		CastRay(s.Grid, s.Pose.Pos, RayAngle(s.Pose, i, numRays), bs, fb)
	}

	px, py := s.Pose.Pos.X*float64(bs), s.Pose.Pos.Y*float64(bs)
	h := s.Pose.Heading()
	fb.StrokeLine(px, py, px+h.X*float64(bs)/2, py+h.Y*float64(bs)/2, 3, engine.Hex(0xFFFFFF))
	fb.DrawFilledCircle(px, py, float64(bs)/8, engine.Hex(0x5F88CC))

	if s.Pursuer != nil {
		ex, ey := s.Pursuer.Pos.X*float64(bs), s.Pursuer.Pos.Y*float64(bs)
		fb.DrawFilledCircle(ex, ey, math.Max(s.Pursuer.Size*float64(bs)/4, 1), engine.Hex(0xE8E2D0))
	}
}

// Backdrop stretches a texture over the whole framebuffer with nearest-neighbour sampling.
func Backdrop(fb *engine.Framebuffer, tex engine.Texture) {
	w, h := fb.Width(), fb.Height()
	if w == 0 || h == 0 {
		return
	}
	for y := 0; y < h; y++ {
		ty := y * tex.Height() / h
		for x := 0; x < w; x++ {
			fb.SetPixel(x, y, tex.Sample(x*tex.Width()/w, ty))
		}
	}
}
