package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

const Pi2 = 2 * math.Pi

// Pose is the player camera: position in cell units, facing and motion tunables.
// The heading is derived from the angle and cannot be set on its own.
type Pose struct {
	Pos      geom.Vector2
	FOV      float64
	Speed    float64
	RotSpeed float64

	angle float64
	dir   geom.Vector2
}

func NewPose(x, y, fov, speed, rotSpeed float64) *Pose {
	p := &Pose{
		Pos:      geom.Vector2{X: x, Y: y},
		FOV:      fov,
		Speed:    speed,
		RotSpeed: rotSpeed,
	}
	p.SetAngle(0)
	return p
}

// NormalizeAngle wraps a into [0, 2π).
func NormalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, Pi2)
	if a < 0 {
		a += Pi2
	}
	// a tiny negative input rounds up to exactly 2π
	if a >= Pi2 {
		a = 0
	}
	return a
}

func (p *Pose) Angle() float64 { return p.angle }

// Heading is the unit facing vector (cos, sin) of the angle.
func (p *Pose) Heading() geom.Vector2 { return p.dir }

// SetAngle stores the wrapped angle and recomputes the heading.
func (p *Pose) SetAngle(a float64) {
	p.angle = NormalizeAngle(a)
	p.dir = geom.Vector2{X: math.Cos(p.angle), Y: math.Sin(p.angle)}
}

// Rotate turns by delta radians, positive is clockwise on screen.
func (p *Pose) Rotate(delta float64) {
	p.SetAngle(p.angle + delta)
}

// Advance moves along the heading by dir*Speed (dir is +1 forward, -1 back).
// The move happens only if the destination is not blocked.
func (p *Pose) Advance(dir float64, b Blocker) bool {
	return p.tryMove(p.dir.X*p.Speed*dir, p.dir.Y*p.Speed*dir, b)
}

// Strafe moves sideways, positive is to the right of the heading.
func (p *Pose) Strafe(dir float64, b Blocker) bool {
	return p.tryMove(-p.dir.Y*p.Speed*dir, p.dir.X*p.Speed*dir, b)
}

func (p *Pose) tryMove(dx, dy float64, b Blocker) bool {
	newX := p.Pos.X + dx
	newY := p.Pos.Y + dy
	if b.IsBlocked(newX, newY) {
		return false
	}
	p.Pos.X = newX
	p.Pos.Y = newY
	return true
}
