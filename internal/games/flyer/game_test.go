package flyer

import (
	"math"
	"testing"

	"github.com/vovakirdan/arcade-motion/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestThrustMovesAlongHeading(t *testing.T) {
	g := newTestGame(t)

	var last core.StepResult
	for i := 0; i < 60; i++ {
		last = g.Step(frame(core.ActionUp))
	}

	body := g.Ship().Body
	if body.Position.Y >= 225 {
		t.Errorf("ship y = %f, expected to climb from 225", body.Position.Y)
	}
	if math.Abs(body.Position.X-424) > 1e-6 {
		t.Errorf("ship x = %f, expected to stay at 424", body.Position.X)
	}
	if !g.Ship().EngineOn || g.Ship().Frame() != 1 {
		t.Error("engine should be lit while thrusting")
	}
	if len(last.Sounds) != 1 || last.Sounds[0].ID != core.SoundThrust || !last.Sounds[0].Ensure {
		t.Errorf("sounds = %+v, expected a thrust cue", last.Sounds)
	}
	if last.State.Score <= 0 {
		t.Errorf("score = %d, expected distance points", last.State.Score)
	}
}

func TestSpeedCappedByMaxVelocity(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 600; i++ {
		g.Step(frame(core.ActionUp))
	}
	if vy := math.Abs(g.Ship().Body.Velocity.Y); vy > 250+1e-9 {
		t.Errorf("vertical speed = %f, expected at most 250", vy)
	}
}

func TestCoastingDecelerates(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 60; i++ {
		g.Step(frame(core.ActionUp))
	}
	g.Step(frame())
	speed := g.Ship().Body.Velocity.Len()

	for i := 0; i < 30; i++ {
		g.Step(frame())
	}

	if got := g.Ship().Body.Velocity.Len(); got >= speed {
		t.Errorf("speed %f after coasting, expected below %f", got, speed)
	}
	if g.Ship().Body.Acceleration != (core.Vec{}) {
		t.Error("coasting ship should have no acceleration")
	}
}

func TestTurning(t *testing.T) {
	g := newTestGame(t)
	start := g.Ship().Body.Rotation

	// Angular velocity applies from the following step
	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionRight))

	want := start + math.Pi/60
	if got := g.Ship().Body.Rotation; math.Abs(got-want) > 1e-9 {
		t.Errorf("rotation = %f, expected %f", got, want)
	}
}

func TestShipWraps(t *testing.T) {
	g := newTestGame(t)
	g.Ship().Body.Position = core.V(100, -1)
	g.Step(frame())

	if y := g.Ship().Body.Position.Y; y != 450 {
		t.Errorf("ship y = %f after wrap, expected 450", y)
	}
}

func TestRenderShowsShip(t *testing.T) {
	g := newTestGame(t)
	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if dst.Get(40, 12) != '↑' {
		t.Errorf("center cell = %c, expected ↑", dst.Get(40, 12))
	}
}
