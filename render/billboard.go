package render

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"backrooms/engine"
	"backrooms/model"
)

// Billboard projects a camera-facing square sprite by angle and distance.
// It has no depth test: sprites draw over walls regardless of distance.
type Billboard struct {
	Near float64 // sprites closer than this are skipped
	Far  float64 // sprites farther than this are skipped
}

// Projection is where a visible sprite lands on screen, before clipping.
type Projection struct {
	Left, Top int
	Size      int
	AngleDiff float64
	Distance  float64
}

// AngleDiff is the signed angle from the camera facing to the sprite, wrapped into (-π, π].
func AngleDiff(pose *model.Pose, pos geom.Vector2) float64 {
	spriteAngle := math.Atan2(pos.Y-pose.Pos.Y, pos.X-pose.Pos.X)
	diff := math.Mod(spriteAngle-pose.Angle(), model.Pi2)
	if diff < 0 {
		diff += model.Pi2
	}
	if diff > math.Pi {
		diff -= model.Pi2
	}
	return diff
}

// Project computes the on-screen square for a sprite of the given world size.
// ok is false when the sprite is culled by distance or lies outside the field of view.
// A sprite at exactly half the field of view is still visible.
func (b *Billboard) Project(width, height int, pose *model.Pose, pos geom.Vector2, size float64) (Projection, bool) {
	dx := pos.X - pose.Pos.X
	dy := pos.Y - pose.Pos.Y
	distance := math.Hypot(dx, dy)
	if distance < b.Near || distance > b.Far || distance == 0 {
		return Projection{}, false
	}

	diff := AngleDiff(pose, pos)
	if math.Abs(diff) > pose.FOV/2 {
		return Projection{}, false
	}

	screenX := float64(width) / 2 * (1 + diff/pose.FOV)
	extent := int(math.Max(1, float64(height)/distance*size))

	return Projection{
		Left:      int(screenX) - extent/2,
		Top:       height/2 - extent/2,
		Size:      extent,
		AngleDiff: diff,
		Distance:  distance,
	}, true
}

// Draw renders the pursuer with nearest-neighbour sampling. Key color pixels are skipped.
func (b *Billboard) Draw(fb *engine.Framebuffer, pose *model.Pose, e *model.Pursuer) {
	if e == nil || e.Texture == nil {
		return
	}
	p, ok := b.Project(fb.Width(), fb.Height(), pose, e.Pos, e.Size)
	if !ok {
		return
	}

	tex := e.Texture
	texW, texH := tex.Width(), tex.Height()

	xStart, xEnd := max(p.Left, 0), min(p.Left+p.Size, fb.Width())
	yStart, yEnd := max(p.Top, 0), min(p.Top+p.Size, fb.Height())
	for y := yStart; y < yEnd; y++ {
		ty := (y - p.Top) * texH / p.Size
		for x := xStart; x < xEnd; x++ {
			tx := (x - p.Left) * texW / p.Size
			c := tex.Sample(tx, ty)
			if engine.IsKeyColor(c) {
				continue
			}
			fb.SetPixel(x, y, c)
		}
	}
}
