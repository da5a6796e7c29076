package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/arcade-motion/internal/core"
)

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		rotation float64
		expected rune
	}{
		{0, '→'},
		{math.Pi / 2, '↓'},
		{math.Pi, '←'},
		{-math.Pi / 2, '↑'},
		{-math.Pi / 4, '↗'},
		{2 * math.Pi, '→'},
		{0.3, '→'},
	}

	for _, tc := range tests {
		if got := HeadingGlyph(tc.rotation); got != tc.expected {
			t.Errorf("HeadingGlyph(%f) = %c, expected %c", tc.rotation, got, tc.expected)
		}
	}
}

func TestRasterCell(t *testing.T) {
	dst := core.NewScreen(80, 20)
	r := NewRaster(800, 400, dst)

	tests := []struct {
		p          core.Vec
		wantX, wantY int
	}{
		{core.V(0, 0), 0, 0},
		{core.V(400, 200), 40, 10},
		{core.V(799, 399), 79, 19},
		{core.V(800, 400), 79, 19},
		{core.V(-10, -10), 0, 0},
	}

	for _, tc := range tests {
		x, y := r.Cell(tc.p)
		if x != tc.wantX || y != tc.wantY {
			t.Errorf("Cell(%v) = (%d, %d), expected (%d, %d)", tc.p, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestDrawScene(t *testing.T) {
	dst := core.NewScreen(80, 20)
	s := Scene{Width: 800, Height: 400}
	s.Add(Sprite{Kind: KindBlock, Pos: core.V(400, 390), Size: core.V(800, 20), Color: core.ColorGray})
	s.Add(Sprite{Kind: KindHull, Pos: core.V(405, 205), Size: core.V(32, 32), Rotation: -math.Pi / 2, Color: core.ColorGreen})
	s.Add(Sprite{Kind: KindShell, Pos: core.V(105, 205), Color: core.ColorYellow})
	s.HUD = []string{"60 FPS"}

	Draw(s, dst)

	if got := dst.GetCell(40, 10); got.Rune != '↑' || got.Color != core.ColorGreen {
		t.Errorf("hull cell = %+v, expected green ↑", got)
	}
	if dst.Get(10, 10) != ShellChar {
		t.Errorf("shell cell = %c", dst.Get(10, 10))
	}
	for x := 0; x < 80; x++ {
		if dst.Get(x, 19) != BlockChar {
			t.Fatalf("ground row missing at x=%d", x)
		}
	}
	if dst.Row(0)[:7] != " 60 FPS" {
		t.Errorf("HUD row = %q", dst.Row(0))
	}
}

func TestDrawShipFlame(t *testing.T) {
	dst := core.NewScreen(80, 20)
	s := Scene{Width: 800, Height: 400}
	s.Add(Sprite{Kind: KindShip, Pos: core.V(405, 205), Size: core.V(40, 40), Rotation: 0, Frame: 1})

	Draw(s, dst)

	if dst.Get(40, 10) != '→' {
		t.Errorf("ship cell = %c, expected →", dst.Get(40, 10))
	}
	if dst.Get(36, 10) != FlameChar {
		t.Errorf("flame cell = %c, expected %c", dst.Get(36, 10), FlameChar)
	}
}

func TestDrawPointerOnlyOnEmptyCell(t *testing.T) {
	dst := core.NewScreen(80, 20)
	s := Scene{Width: 800, Height: 400, Pointer: core.V(5, 305), ShowPointer: true}

	Draw(s, dst)
	if dst.Get(0, 15) != PointerChar {
		t.Errorf("pointer cell = %c, expected %c", dst.Get(0, 15), PointerChar)
	}
}

func TestSceneOf(t *testing.T) {
	var s Scene
	s.Add(Sprite{Kind: KindShell})
	s.Add(Sprite{Kind: KindHull})
	s.Add(Sprite{Kind: KindShell})

	if n := len(s.Of(KindShell)); n != 2 {
		t.Errorf("Of(KindShell) = %d sprites, expected 2", n)
	}
	if n := len(s.Of(KindBlock)); n != 0 {
		t.Errorf("Of(KindBlock) = %d sprites, expected 0", n)
	}
}

func TestDrawPausedMessage(t *testing.T) {
	dst := core.NewScreen(40, 12)
	Draw(Scene{Width: 400, Height: 120, Paused: true}, dst)

	if !strings.Contains(dst.String(), "PAUSED") {
		t.Errorf("paused scene should show PAUSED:\n%s", dst.String())
	}
}

func TestSpriteCorners(t *testing.T) {
	near := func(a, b core.Vec) bool {
		return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
	}

	sp := Sprite{Pos: core.V(100, 50), Size: core.V(40, 20)}
	want := [4]core.Vec{core.V(120, 40), core.V(120, 60), core.V(80, 60), core.V(80, 40)}
	for i, c := range sp.Corners() {
		if !near(c, want[i]) {
			t.Errorf("corner %d = %v, want %v", i, c, want[i])
		}
	}

	// Facing down, the front edge is at the bottom
	sp.Rotation = math.Pi / 2
	want = [4]core.Vec{core.V(110, 70), core.V(90, 70), core.V(90, 30), core.V(110, 30)}
	for i, c := range sp.Corners() {
		if !near(c, want[i]) {
			t.Errorf("rotated corner %d = %v, want %v", i, c, want[i])
		}
	}
}
