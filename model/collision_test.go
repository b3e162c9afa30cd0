package model

import (
	"math"
	"testing"

	"github.com/harbdog/raycaster-go/geom"
)

const blockSize = 100

func roomCollision(t *testing.T) *CollisionGrid {
	t.Helper()
	return NewCollisionGrid(mustParse(t, roomMaze).Grid, blockSize)
}

func TestCellIndex_Truncates(t *testing.T) {
	cases := []struct {
		v      float64
		expect int
	}{
		{0, 0},
		{0.999, 0},
		{1.0, 1},
		{3.5, 3},
		{-0.001, -1},
	}
	for _, c := range cases {
		if got := CellIndex(c.v, blockSize); got != c.expect {
			t.Fatalf("CellIndex(%v): expected %d, got %d", c.v, c.expect, got)
		}
	}
}

func TestCollisionGrid_IsBlocked(t *testing.T) {
	c := roomCollision(t)

	if !c.IsBlocked(0.5, 0.5) {
		t.Fatal("expected border wall to block")
	}
	if c.IsBlocked(1.5, 1.5) {
		t.Fatal("expected empty cell to be walkable")
	}
	if c.IsBlocked(3.5, 3.5) {
		t.Fatal("expected goal cell to be walkable")
	}
	for _, p := range [][2]float64{{-0.1, 1.5}, {1.5, -0.1}, {5.0, 1.5}, {1.5, 7.2}} {
		if !c.IsBlocked(p[0], p[1]) {
			t.Fatalf("expected out of range %v to block", p)
		}
	}
}

func TestCollisionGrid_IsGoal(t *testing.T) {
	c := roomCollision(t)
	if !c.IsGoal(3.01, 3.99) {
		t.Fatal("expected goal inside the goal cell")
	}
	if c.IsGoal(2.99, 3.5) {
		t.Fatal("expected no goal in the neighbouring cell")
	}
	if c.IsGoal(-1, -1) {
		t.Fatal("expected no goal outside the grid")
	}
}

// A player walking diagonally from (1,1) toward the goal cell must reach it
// without ever entering a wall.
func TestCollisionGrid_WalkToGoal(t *testing.T) {
	c := roomCollision(t)
	p := NewPose(1.5, 1.5, math.Pi/3, 0.05, 0.03)
	p.SetAngle(math.Atan2(2, 2))

	reached := false
	for i := 0; i < 200; i++ {
		if !p.Advance(1, c) {
			t.Fatalf("step %d blocked at %v", i, p.Pos)
		}
		if c.IsBlocked(p.Pos.X, p.Pos.Y) {
			t.Fatalf("player entered a wall at %v", p.Pos)
		}
		if c.IsGoal(p.Pos.X, p.Pos.Y) {
			reached = true
			break
		}
	}
	if !reached {
		t.Fatalf("expected to reach the goal, stopped at %v", p.Pos)
	}
}

func TestPursuer_ConvergesInOpenRoom(t *testing.T) {
	c := roomCollision(t)
	target := geom.Vector2{X: 3.5, Y: 3.5}
	e := NewPursuer(1.5, 3.5, 1, 0.007, nil)

	last := e.DistanceTo(target)
	for i := 0; i < 250; i++ {
		e.MoveToward(target, c)
		if c.IsBlocked(e.Pos.X, e.Pos.Y) {
			t.Fatalf("pursuer entered a wall at %v", e.Pos)
		}
		d := e.DistanceTo(target)
		if d >= last {
			t.Fatalf("step %d: distance did not decrease (%v -> %v)", i, last, d)
		}
		last = d
	}
	if !e.Caught(target, 0.5) {
		t.Fatalf("expected the pursuer to close in, distance %v", last)
	}
}

func TestPursuer_ZeroDistanceDoesNotMove(t *testing.T) {
	c := roomCollision(t)
	e := NewPursuer(2.5, 2.5, 1, 0.1, nil)
	e.MoveToward(geom.Vector2{X: 2.5, Y: 2.5}, c)
	if e.Pos.X != 2.5 || e.Pos.Y != 2.5 {
		t.Fatalf("expected no movement, got %v", e.Pos)
	}
}

func TestPursuer_SlidesAlongWall(t *testing.T) {
	// target is through the right wall, slightly below
	c := NewCollisionGrid(mustParse(t, "+---+\n|  ||\n|  ||\n|   |\n+---+\n").Grid, blockSize)
	e := NewPursuer(2.95, 1.5, 1, 0.1, nil)
	target := geom.Vector2{X: 4.5, Y: 1.6}
	dirY := (target.Y - e.Pos.Y) / e.DistanceTo(target)
	e.MoveToward(target, c)

	if e.Pos.X != 2.95 {
		t.Fatalf("expected x to hold against the wall, got %v", e.Pos.X)
	}
	expectY := 1.5 + dirY*0.1 + 0.1
	if math.Abs(e.Pos.Y-expectY) > 1e-9 {
		t.Fatalf("expected y step plus a full-speed nudge (%v), got %v", expectY, e.Pos.Y)
	}
}

func TestPursuer_CorneredHoldsPosition(t *testing.T) {
	// open cell (1,1) with walls right and below, target beyond the corner
	c := NewCollisionGrid(mustParse(t, "+---+\n| | |\n|-+ |\n|   |\n+---+\n").Grid, blockSize)
	e := NewPursuer(1.95, 1.95, 1, 0.1, nil)
	e.MoveToward(geom.Vector2{X: 3.5, Y: 3.5}, c)

	if e.Pos.X != 1.95 || e.Pos.Y != 1.95 {
		t.Fatalf("expected the pursuer to hold in the corner, got %v", e.Pos)
	}
}

func TestPursuer_ReversesWhenWedged(t *testing.T) {
	// the current cell and everything toward the target is blocked
	b := blockFunc(func(x, y float64) bool { return x >= 1.5 && y >= 1.5 })
	e := NewPursuer(1.5, 1.5, 1, 0.1, nil)
	e.MoveToward(geom.Vector2{X: 2.5, Y: 2.5}, b)

	if e.Pos.X >= 1.5 || e.Pos.Y >= 1.5 {
		t.Fatalf("expected a step away from the target, got %v", e.Pos)
	}
	if b.IsBlocked(e.Pos.X, e.Pos.Y) {
		t.Fatalf("expected to leave the blocked area, got %v", e.Pos)
	}
}

func TestPursuer_AxesCommitIndependently(t *testing.T) {
	b := blockFunc(func(x, y float64) bool { return y > 1.55 })
	e := NewPursuer(1.5, 1.5, 1, 0.1, nil)
	e.MoveToward(geom.Vector2{X: 2.5, Y: 2.5}, b)

	if e.Pos.X <= 1.5 {
		t.Fatalf("expected x to advance, got %v", e.Pos.X)
	}
	if e.Pos.Y != 1.5 {
		t.Fatalf("expected y to stay put, got %v", e.Pos.Y)
	}
}

type blockFunc func(x, y float64) bool

func (f blockFunc) IsBlocked(x, y float64) bool { return f(x, y) }
