package model

import (
	"math"
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"backrooms/engine"
)

func TestNormalizeAngle(t *testing.T) {
	inputs := []float64{0, 1, -1, Pi2, -Pi2, 7 * math.Pi, -13.37, 1e9, -1e-18, math.NaN(), math.Inf(1)}
	for _, a := range inputs {
		got := NormalizeAngle(a)
		if got < 0 || got >= Pi2 {
			t.Fatalf("NormalizeAngle(%v) = %v, expected [0, 2π)", a, got)
		}
	}
	if got := NormalizeAngle(-math.Pi / 2); math.Abs(got-1.5*math.Pi) > 1e-12 {
		t.Fatalf("expected 3π/2, got %v", got)
	}
}

func TestPose_HeadingFollowsAngle(t *testing.T) {
	p := NewPose(1.5, 1.5, math.Pi/3, 0.02, 0.03)
	for _, a := range []float64{0, 1, -2, 10, -0.03} {
		p.SetAngle(a)
		h := p.Heading()
		if math.Abs(h.X-math.Cos(p.Angle())) > 1e-12 || math.Abs(h.Y-math.Sin(p.Angle())) > 1e-12 {
			t.Fatalf("heading %v does not match angle %v", h, p.Angle())
		}
		if p.Angle() < 0 || p.Angle() >= Pi2 {
			t.Fatalf("angle %v left [0, 2π)", p.Angle())
		}
	}
}

func TestPose_RotateWraps(t *testing.T) {
	p := NewPose(1.5, 1.5, math.Pi/3, 0.02, 0.03)
	p.Rotate(-0.03)
	if math.Abs(p.Angle()-(Pi2-0.03)) > 1e-12 {
		t.Fatalf("expected wrap below zero, got %v", p.Angle())
	}
	p.Rotate(0.06)
	if math.Abs(p.Angle()-0.03) > 1e-12 {
		t.Fatalf("expected wrap past 2π, got %v", p.Angle())
	}
}

func TestPose_AdvanceRespectsWalls(t *testing.T) {
	c := roomCollision(t)
	p := NewPose(1.5, 1.5, math.Pi/3, 0.4, 0.03)
	p.SetAngle(math.Pi) // facing the left wall

	if !p.Advance(1, c) {
		t.Fatal("expected the first step to fit")
	}
	if p.Advance(1, c) {
		t.Fatalf("expected the wall to stop the second step, at %v", p.Pos)
	}
	if math.Abs(p.Pos.X-1.1) > 1e-9 {
		t.Fatalf("expected to stay at x=1.1, got %v", p.Pos.X)
	}
	if !p.Advance(-1, c) {
		t.Fatal("expected backing away to succeed")
	}
}

func TestPose_StrafeIsPerpendicular(t *testing.T) {
	c := roomCollision(t)
	p := NewPose(2.5, 2.5, math.Pi/3, 0.1, 0.03)
	p.Strafe(1, c)
	if math.Abs(p.Pos.X-2.5) > 1e-12 || math.Abs(p.Pos.Y-2.6) > 1e-12 {
		t.Fatalf("expected to slide to (2.5,2.6), got %v", p.Pos)
	}
}

func TestSpawn_CloneIsIndependent(t *testing.T) {
	tex := engine.NewSolidTexture(1, 1, engine.Hex(0xFFFFFF))
	tmpl := &Spawn{
		Player:  *NewPose(1.5, 1.5, math.Pi/3, 0.02, 0.03),
		Pursuer: *NewPursuer(1.5, 3.5, 1, 0.007, tex),
	}
	tmpl.Player.SetAngle(1)

	pose, pursuer, err := tmpl.Clone()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pose.Angle() != 1 || pose.Heading() != (geom.Vector2{X: math.Cos(1), Y: math.Sin(1)}) {
		t.Fatalf("expected cloned angle and heading, got %v %v", pose.Angle(), pose.Heading())
	}
	if pose.FOV != math.Pi/3 || pose.Speed != 0.02 {
		t.Fatalf("expected tunables to be copied, got %+v", pose)
	}
	if pursuer.Texture != engine.Texture(tex) {
		t.Fatal("expected the texture to be shared")
	}

	pose.Pos.X = 9
	pursuer.Pos.Y = 9
	if tmpl.Player.Pos.X != 1.5 || tmpl.Pursuer.Pos.Y != 3.5 {
		t.Fatal("expected the template to be untouched by clone mutations")
	}
}
