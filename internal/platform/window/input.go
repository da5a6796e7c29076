package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/arcade-motion/internal/core"
)

// inputSource is the subset of ebiten's input state the window reads.
type inputSource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Cursor() (int, int)
	MouseDown() bool
}

// ebitenInput polls ebiten directly. Only valid inside Update.
type ebitenInput struct{}

func (ebitenInput) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenInput) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) Cursor() (int, int)            { return ebiten.CursorPosition() }
func (ebitenInput) MouseDown() bool               { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }

// heldBindings are level-triggered: set every tick the key is down.
var heldBindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
}

// edgeBindings fire once per key press.
var edgeBindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// buildFrame reads one tick of input. The cursor is normalized against a
// w x h logical screen; a cursor outside it leaves the pointer invalid so
// the game keeps its last aim.
func buildFrame(src inputSource, w, h int) core.InputFrame {
	frame := core.NewInputFrame()

	for _, b := range heldBindings {
		for _, k := range b.keys {
			if src.Pressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	for _, b := range edgeBindings {
		for _, k := range b.keys {
			if src.JustPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}

	x, y := src.Cursor()
	if w > 0 && h > 0 && x >= 0 && y >= 0 && x <= w && y <= h {
		frame.Pointer = core.Pointer{
			X:     float64(x) / float64(w),
			Y:     float64(y) / float64(h),
			Down:  src.MouseDown() || src.Pressed(ebiten.KeySpace),
			Valid: true,
		}
	}

	return frame
}
