package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"backrooms/engine"
)

// Pursuer is the billboard entity that walks straight at the player.
type Pursuer struct {
	Pos     geom.Vector2
	Size    float64
	Speed   float64
	Texture engine.Texture
}

func NewPursuer(x, y, size, speed float64, tex engine.Texture) *Pursuer {
	return &Pursuer{
		Pos:     geom.Vector2{X: x, Y: y},
		Size:    size,
		Speed:   speed,
		Texture: tex,
	}
}

// DistanceTo is the euclidean distance in cell units.
func (e *Pursuer) DistanceTo(target geom.Vector2) float64 {
	return math.Hypot(target.X-e.Pos.X, target.Y-e.Pos.Y)
}

// Caught reports whether target is strictly closer than radius.
func (e *Pursuer) Caught(target geom.Vector2, radius float64) bool {
	return e.DistanceTo(target) < radius
}

// MoveToward takes one greedy step toward target.
//
// A blocked x step is swapped for a y nudge in the pursuit direction and vice
// versa. If both single-axis candidates are blocked the step is reversed.
// Each axis is then committed on its own, so a diagonal step can land only
// partially.
func (e *Pursuer) MoveToward(target geom.Vector2, b Blocker) {
	dx := target.X - e.Pos.X
	dy := target.Y - e.Pos.Y
	distance := math.Hypot(dx, dy)
	if distance == 0 || math.IsNaN(distance) {
		return
	}

	dirX := dx / distance
	dirY := dy / distance

	newX := e.Pos.X + dirX*e.Speed
	newY := e.Pos.Y + dirY*e.Speed

	if b.IsBlocked(newX, e.Pos.Y) {
		newX = e.Pos.X
		newY += e.Speed * sign(dirY)
	}
	if b.IsBlocked(e.Pos.X, newY) {
		newY = e.Pos.Y
		newX += e.Speed * sign(dirX)
	}

	if b.IsBlocked(newX, e.Pos.Y) && b.IsBlocked(e.Pos.X, newY) {
		newX = e.Pos.X - dirX*e.Speed
		newY = e.Pos.Y - dirY*e.Speed
	}

	if !b.IsBlocked(newX, e.Pos.Y) {
		e.Pos.X = newX
	}
	if !b.IsBlocked(e.Pos.X, newY) {
		e.Pos.Y = newY
	}
}

// sign is -1 for negative values and 1 otherwise, zero included.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
