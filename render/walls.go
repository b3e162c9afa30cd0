package render

import (
	"image/color"
	"math"

	"github.com/sourcegraph/conc/pool"

	"backrooms/engine"
	"backrooms/model"
)

// WallProjector draws the flat ceiling and floor and one textured wall strip per screen column.
type WallProjector struct {
	BlockSize       int
	ProjectionPlane float64
	Ceiling         color.RGBA
	Floor           color.RGBA
	Textures        TextureHandler

	// Workers > 1 splits the columns into that many contiguous bands cast in parallel.
	Workers int
}

// RayAngle is the cast angle of column i out of numRays, spread linearly across the field of view.
func RayAngle(pose *model.Pose, i, numRays int) float64 {
	current := float64(i) / float64(numRays)
	return pose.Angle() - pose.FOV/2 + pose.FOV*current
}

// Project fills the ceiling and floor, then casts and draws every column.
func (w *WallProjector) Project(fb *engine.Framebuffer, grid *model.Grid, pose *model.Pose) {
	width, height := fb.Width(), fb.Height()
	if width == 0 || height == 0 {
		return
	}

	fb.FillRect(0, 0, width, height/2, w.Ceiling)
	fb.FillRect(0, height/2, width, height-height/2, w.Floor)

	bands := w.Workers
	if bands > width {
		bands = width
	}
	if bands <= 1 {
		w.columns(fb, grid, pose, 0, width)
		return
	}

	// each task owns a disjoint column range, so pixel writes never overlap
	p := pool.New().WithMaxGoroutines(bands)
	step := (width + bands - 1) / bands
	for start := 0; start < width; start += step {
		from, to := start, min(start+step, width)
		p.Go(func() {
			w.columns(fb, grid, pose, from, to)
		})
	}
	p.Wait()
}

func (w *WallProjector) columns(fb *engine.Framebuffer, grid *model.Grid, pose *model.Pose, from, to int) {
	numRays := fb.Width()
	for i := from; i < to; i++ {
		hit := CastRay(grid, pose.Pos, RayAngle(pose, i, numRays), w.BlockSize, nil)
		w.drawColumn(fb, i, hit)
	}
}

// StripBounds returns the unclipped top and bottom of a wall strip for a hit distance.
func (w *WallProjector) StripBounds(height int, distance float64) (top, bottom float64) {
	hh := float64(height) / 2
	stakeHeight := (hh / distance) * w.ProjectionPlane
	return hh - stakeHeight/2, hh + stakeHeight/2
}

func (w *WallProjector) drawColumn(fb *engine.Framebuffer, i int, hit Intersect) {
	if hit.Distance <= 0 {
		return
	}

	top, bottom := w.StripBounds(fb.Height(), hit.Distance)
	span := bottom - top
	tex := w.Textures.TextureAt(hit.Impact)
	texH := float64(engine.ReferenceTextureSize)

	yStart := max(int(math.Floor(top)), 0)
	yEnd := min(int(math.Floor(bottom)), fb.Height())
	for y := yStart; y < yEnd; y++ {
		ty := int((float64(y) - top) / span * texH)
		fb.SetPixel(i, y, tex.Sample(hit.TX, ty))
	}
}
