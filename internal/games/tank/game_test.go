package tank

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/arcade-motion/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	if err := g.LoadConfig(""); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
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

func hasSound(sounds []core.Sound, id core.SoundID) (core.Sound, bool) {
	for _, s := range sounds {
		if s.ID == id {
			return s, true
		}
	}
	return core.Sound{}, false
}

func TestResetPlacesHull(t *testing.T) {
	g := newTestGame(t)
	hull := g.Tank().Hull

	if hull.Position != core.V(424, 225) {
		t.Errorf("hull position = %v, expected world center", hull.Position)
	}
	if g.Tank().Pool.Size() != 3 || g.Tank().Pool.ActiveCount() != 0 {
		t.Errorf("pool = %d slots, %d active", g.Tank().Pool.Size(), g.Tank().Pool.ActiveCount())
	}
	if g.pointer != core.V(424, 225) {
		t.Errorf("pointer = %v, expected world center", g.pointer)
	}
}

func TestDriveForward(t *testing.T) {
	g := newTestGame(t)

	var last core.StepResult
	for i := 0; i < 120; i++ {
		last = g.Step(frame(core.ActionUp))
	}

	if g.Tank().Speed != 100 {
		t.Errorf("speed = %f, expected 100", g.Tank().Speed)
	}
	if y := g.Tank().Hull.Position.Y; y >= 225 {
		t.Errorf("hull y = %f, expected to move up from 225", y)
	}
	if last.State.Score <= 0 {
		t.Errorf("score = %d, expected distance points", last.State.Score)
	}
	s, ok := hasSound(last.Sounds, core.SoundTreads)
	if !ok || !s.Ensure || s.Volume != 0.4 {
		t.Errorf("treads cue = %+v (present %v), expected ensure at 0.4", s, ok)
	}
}

func TestIdleIsSilent(t *testing.T) {
	g := newTestGame(t)
	res := g.Step(frame())
	if len(res.Sounds) != 0 {
		t.Errorf("idle tick raised sounds %+v", res.Sounds)
	}
}

func TestHullWrapsAroundWorld(t *testing.T) {
	g := newTestGame(t)
	g.Tank().Hull.Position = core.V(849, 100)

	g.Step(frame())

	if x := g.Tank().Hull.Position.X; x != 0 {
		t.Errorf("hull x = %f after wrap, expected 0", x)
	}
}

func TestFireAndCull(t *testing.T) {
	g := newTestGame(t)

	in := frame()
	in.Pointer = core.Pointer{X: 0.75, Y: 0.5, Down: true, Valid: true}
	res := g.Step(in)

	if _, ok := hasSound(res.Sounds, core.SoundPew); !ok {
		t.Error("firing should raise the pew cue")
	}
	if g.Tank().Turret.Rotation != 0 {
		t.Errorf("turret rotation = %f, expected 0 (pointer to the right)", g.Tank().Turret.Rotation)
	}
	if g.Tank().Pool.ActiveCount() != 1 {
		t.Fatalf("active shells = %d, expected 1", g.Tank().Pool.ActiveCount())
	}

	// Holding the button inside the shot delay fires nothing more
	g.Step(in)
	if g.Tank().Pool.ActiveCount() != 1 {
		t.Errorf("active shells = %d within shot delay, expected 1", g.Tank().Pool.ActiveCount())
	}

	in.Pointer.Down = false
	for i := 0; i < 70; i++ {
		g.Step(in)
	}
	if g.Tank().Pool.ActiveCount() != 0 {
		t.Errorf("active shells = %d, expected 0 after leaving the world", g.Tank().Pool.ActiveCount())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionPause))

	if !g.State().Paused {
		t.Fatal("expected paused state")
	}
	g.Step(frame(core.ActionUp))
	if g.Tank().Speed != 0 {
		t.Errorf("speed = %f while paused, expected 0", g.Tank().Speed)
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionUp))
	if g.Tank().Speed != 10 {
		t.Errorf("speed = %f after unpause, expected 10", g.Tank().Speed)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%3 != 0 {
			inputs[i].Set(core.ActionUp)
		}
		if i%50 < 20 {
			inputs[i].Set(core.ActionLeft)
		}
		inputs[i].Pointer = core.Pointer{X: 0.1, Y: 0.9, Down: i%7 == 0, Valid: true}
	}

	run := func() *Game {
		g := newTestGame(t)
		for _, in := range inputs {
			g.Step(in)
		}
		return g
	}

	g1, g2 := run(), run()
	if g1.Tank().Hull.Position != g2.Tank().Hull.Position {
		t.Errorf("positions differ: %v vs %v", g1.Tank().Hull.Position, g2.Tank().Hull.Position)
	}
	if g1.State().Score != g2.State().Score {
		t.Errorf("scores differ: %d vs %d", g1.State().Score, g2.State().Score)
	}
}

func TestRenderDrawsHull(t *testing.T) {
	g := newTestGame(t)
	dst := core.NewScreen(80, 24)
	g.Render(dst)

	// Hull faces up at the world center
	if dst.Get(40, 12) != '↑' {
		t.Errorf("center cell = %c, expected ↑\n%s", dst.Get(40, 12), dst.String())
	}
}

func TestResetClearsShells(t *testing.T) {
	g := newTestGame(t)
	in := frame()
	in.Pointer = core.Pointer{X: 0.9, Y: 0.5, Down: true, Valid: true}
	g.Step(in)

	g.Reset(core.RuntimeConfig{TickRate: 60})

	if g.Tank().Pool.ActiveCount() != 0 {
		t.Error("reset should deactivate shells")
	}
	if g.State().Score != 0 {
		t.Errorf("score = %d after reset", g.State().Score)
	}
}

func TestCompass(t *testing.T) {
	tests := []struct {
		rad  float64
		want float64
	}{
		{0, 0},
		{math.Pi / 2, 90},
		{-math.Pi / 2, 270},
		{math.Pi, 180},
		{5 * math.Pi / 2, 90},
		{-2 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := compass(tt.rad); got != tt.want {
			t.Errorf("compass(%v) = %v, want %v", tt.rad, got, tt.want)
		}
	}
}

func TestHUDShowsHeading(t *testing.T) {
	g := newTestGame(t)
	hud := g.Scene().HUD
	if len(hud) != 2 {
		t.Fatalf("HUD lines = %d, expected 2", len(hud))
	}
	if !strings.HasPrefix(hud[1], "Heading: 270") {
		t.Errorf("HUD heading line = %q, expected the hull to face up", hud[1])
	}
}
