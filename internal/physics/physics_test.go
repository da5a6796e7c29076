package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/arcade-motion/internal/core"
)

const dt = 1.0 / 60.0

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestComputeVelocity(t *testing.T) {
	tests := []struct {
		name     string
		velocity float64
		gravity  float64
		accel    float64
		drag     float64
		max      float64
		dt       float64
		expected float64
	}{
		{"acceleration integrates", 0, 0, 60, 0, 0, 1, 60},
		{"acceleration clamped", 0, 0, 60, 0, 50, 1, 50},
		{"negative clamp", -90, 0, -60, 0, 100, 1, -100},
		{"drag slows", 100, 0, 0, 1000, 0, dt, 100 - 1000*dt},
		{"drag stops at zero", 10, 0, 0, 1000, 0, dt, 0},
		{"drag never crosses zero", -10, 0, 0, 1000, 0, dt, 0},
		{"drag ignored while accelerating", 100, 0, 10, 1000, 0, 1, 110},
		{"gravity pulls", 0, 980, 0, 0, 0, 0.5, 490},
		{"no drag keeps velocity", 42, 0, 0, 0, 0, 1, 42},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := computeVelocity(tc.velocity, tc.gravity, tc.accel, tc.drag, tc.max, tc.dt)
			if !near(got, tc.expected) {
				t.Errorf("computeVelocity() = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestWorldStepIntegrates(t *testing.T) {
	w := NewWorld(848, 450)
	b := w.Add(NewBody(100, 100, 10, 10))
	b.Velocity = core.V(60, -30)
	b.AngularVelocity = math.Pi

	w.Step(0.5)

	if !near(b.Position.X, 130) || !near(b.Position.Y, 85) {
		t.Errorf("Position = %v, expected (130, 85)", b.Position)
	}
	if !near(b.Rotation, math.Pi/2) {
		t.Errorf("Rotation = %f, expected pi/2", b.Rotation)
	}
}

func TestWorldStepSkipsDisabled(t *testing.T) {
	w := NewWorld(100, 100)
	b := w.Add(NewBody(10, 10, 2, 2))
	b.Velocity = core.V(100, 0)
	b.Enabled = false

	w.Step(dt)

	if b.Position.X != 10 {
		t.Errorf("disabled body moved to %v", b.Position)
	}
}

func TestWorldBoundsClamp(t *testing.T) {
	w := NewWorld(100, 100)
	b := w.Add(NewBody(95, 50, 10, 10))
	b.CollideWorldBounds = true
	b.Velocity = core.V(600, 0)

	w.Step(dt)

	if !near(b.Position.X, 95) {
		t.Errorf("Position.X = %f, expected 95", b.Position.X)
	}
	if b.Velocity.X != 0 {
		t.Errorf("Velocity.X = %f, expected 0", b.Velocity.X)
	}
	if !b.Blocked.Right {
		t.Error("expected Blocked.Right")
	}
}

func TestWorldGravityOnlyWhenAllowed(t *testing.T) {
	w := NewWorld(1000, 1000)
	w.Gravity = core.V(0, 600)
	floating := w.Add(NewBody(10, 10, 2, 2))
	falling := w.Add(NewBody(20, 10, 2, 2))
	falling.AllowGravity = true

	w.Step(0.1)

	if floating.Velocity.Y != 0 {
		t.Errorf("floating body picked up velocity %f", floating.Velocity.Y)
	}
	if !near(falling.Velocity.Y, 60) {
		t.Errorf("falling Velocity.Y = %f, expected 60", falling.Velocity.Y)
	}
}

func TestOutside(t *testing.T) {
	w := NewWorld(848, 450)
	tests := []struct {
		pos      core.Vec
		expected bool
	}{
		{core.V(424, 225), false},
		{core.V(0, 0), false},
		{core.V(848, 450), false},
		{core.V(849, 10), true},
		{core.V(10, -0.5), true},
	}

	for _, tc := range tests {
		b := NewBody(tc.pos.X, tc.pos.Y, 4, 4)
		if got := Outside(b, w.Bounds); got != tc.expected {
			t.Errorf("Outside(%v) = %v, expected %v", tc.pos, got, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		in       core.Vec
		expected core.Vec
	}{
		{"past right edge", core.V(849, 10), core.V(0, 10)},
		{"past left edge", core.V(-1, 10), core.V(848, 10)},
		{"past bottom", core.V(10, 451), core.V(10, 0)},
		{"past top", core.V(10, -0.1), core.V(10, 450)},
		{"on edge stays", core.V(848, 450), core.V(848, 450)},
		{"inside stays", core.V(100, 100), core.V(100, 100)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Wrap(tc.in, 848, 450); got != tc.expected {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestAngleBetween(t *testing.T) {
	if got := AngleBetween(core.V(50, 100), core.V(150, 100)); got != 0 {
		t.Errorf("AngleBetween to the right = %f, expected 0", got)
	}
	if got := AngleBetween(core.V(0, 0), core.V(0, 10)); !near(got, math.Pi/2) {
		t.Errorf("AngleBetween downwards = %f, expected pi/2", got)
	}
}

func TestVelocityFromRotation(t *testing.T) {
	v := VelocityFromRotation(-math.Pi/2, 100)
	if !near(v.X, 0) || !near(v.Y, -100) {
		t.Errorf("VelocityFromRotation(-pi/2, 100) = %v, expected (0, -100)", v)
	}
	if !near(DegToRad(180), math.Pi) || !near(RadToDeg(math.Pi), 180) {
		t.Error("degree conversion mismatch")
	}
}

func newGroundWorld() (*World, *Body) {
	w := NewWorld(848, 450)
	w.Gravity = core.V(0, 980)
	space := NewSpace(848, 450, 32)
	space.AddBlock(core.RectF{X: 0, Y: 400, W: 848, H: 32})
	w.SetSpace(space)

	b := NewBody(100, 100, 32, 32)
	b.AllowGravity = true
	b.Solid = true
	w.Add(b)
	return w, b
}

func TestSpaceLandsOnGround(t *testing.T) {
	w, b := newGroundWorld()

	for i := 0; i < 120; i++ {
		w.Step(dt)
	}

	if !near(b.Position.Y, 384) {
		t.Errorf("Position.Y = %f, expected 384 (resting on ground)", b.Position.Y)
	}
	if b.Velocity.Y != 0 {
		t.Errorf("Velocity.Y = %f, expected 0", b.Velocity.Y)
	}
	if !b.Blocked.Down {
		t.Error("expected Blocked.Down while resting")
	}
}

func TestSpaceWalkOnGround(t *testing.T) {
	w, b := newGroundWorld()
	for i := 0; i < 120; i++ {
		w.Step(dt)
	}

	startX := b.Position.X
	b.Velocity.X = 120
	w.Step(dt)

	if !near(b.Position.X, startX+2) {
		t.Errorf("Position.X = %f, expected %f", b.Position.X, startX+2)
	}
	if b.Blocked.Left || b.Blocked.Right {
		t.Error("ground must not block horizontal movement")
	}
}

func TestSpaceStopsAtWall(t *testing.T) {
	w, b := newGroundWorld()
	w.Space().AddBlock(core.RectF{X: 200, Y: 300, W: 32, H: 100})
	for i := 0; i < 120; i++ {
		w.Step(dt)
	}

	for i := 0; i < 60; i++ {
		b.Velocity.X = 600
		w.Step(dt)
	}

	if !near(b.Position.X, 184) {
		t.Errorf("Position.X = %f, expected 184 (flush with wall)", b.Position.X)
	}
	if !b.Blocked.Right {
		t.Error("expected Blocked.Right")
	}
	if b.Velocity.X != 0 {
		t.Errorf("Velocity.X = %f, expected 0", b.Velocity.X)
	}
}

func TestSpaceBlocks(t *testing.T) {
	s := NewSpace(100, 100, 10)
	s.AddBlock(core.RectF{X: 0, Y: 90, W: 100, H: 10})
	s.AddBlock(core.RectF{X: 40, Y: 50, W: 20, H: 5})

	blocks := s.Blocks()
	if len(blocks) != 2 {
		t.Fatalf("Blocks() len = %d, expected 2", len(blocks))
	}
	if blocks[1] != (core.RectF{X: 40, Y: 50, W: 20, H: 5}) {
		t.Errorf("Blocks()[1] = %+v", blocks[1])
	}
}
