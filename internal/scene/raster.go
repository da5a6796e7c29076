package scene

import (
	"math"

	"github.com/vovakirdan/arcade-motion/internal/core"
)

// Glyphs used by the rasterizer.
const (
	BlockChar   = '█'
	ShellChar   = '•'
	BarrelChar  = '·'
	PointerChar = '+'
	FlameChar   = '*'
)

// headingGlyphs are arrows for eight compass sectors, starting at "right"
// and turning clockwise (screen y grows downwards).
var headingGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// HeadingGlyph returns the arrow closest to the given rotation.
func HeadingGlyph(rotation float64) rune {
	sector := int(math.Round(rotation/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	return headingGlyphs[sector]
}

// Raster maps world coordinates onto a character screen.
type Raster struct {
	scaleX, scaleY float64
	w, h           int
}

// NewRaster creates a raster that fits a worldW x worldH world into dst.
func NewRaster(worldW, worldH float64, dst *core.Screen) Raster {
	r := Raster{w: dst.Width(), h: dst.Height()}
	if worldW > 0 {
		r.scaleX = float64(r.w) / worldW
	}
	if worldH > 0 {
		r.scaleY = float64(r.h) / worldH
	}
	return r
}

// Cell returns the screen cell containing world point p.
func (r Raster) Cell(p core.Vec) (int, int) {
	x := int(math.Floor(p.X * r.scaleX))
	y := int(math.Floor(p.Y * r.scaleY))
	return core.Clamp(x, 0, r.w-1), core.Clamp(y, 0, r.h-1)
}

// Rect returns the cells covered by a world rectangle, at least one cell.
func (r Raster) Rect(b core.RectF) core.Rect {
	x0 := int(math.Floor(b.X * r.scaleX))
	y0 := int(math.Floor(b.Y * r.scaleY))
	x1 := int(math.Ceil((b.X + b.W) * r.scaleX))
	y1 := int(math.Ceil((b.Y + b.H) * r.scaleY))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Draw renders the scene into dst. The screen is cleared first.
func Draw(s Scene, dst *core.Screen) {
	dst.Clear()
	r := NewRaster(s.Width, s.Height, dst)

	for _, sp := range s.Sprites {
		switch sp.Kind {
		case KindBlock:
			drawBlock(r, sp, dst)
		case KindShell:
			x, y := r.Cell(sp.Pos)
			dst.SetColored(x, y, ShellChar, sp.Color)
		case KindHull, KindShip:
			x, y := r.Cell(sp.Pos)
			dst.SetColored(x, y, HeadingGlyph(sp.Rotation), sp.Color)
			if sp.Kind == KindShip && sp.Frame == 1 {
				fx, fy := r.Cell(sp.Pos.Sub(core.FromAngle(sp.Rotation, sp.Size.X)))
				if fx != x || fy != y {
					dst.SetColored(fx, fy, FlameChar, core.ColorOrange)
				}
			}
		case KindTurret:
			tip := sp.Pos.Add(core.FromAngle(sp.Rotation, sp.Size.X))
			cx, cy := r.Cell(sp.Pos)
			x, y := r.Cell(tip)
			if x != cx || y != cy {
				dst.SetColored(x, y, BarrelChar, sp.Color)
			}
		case KindWalker:
			drawWalker(r, sp, dst)
		}
	}

	if s.ShowPointer {
		x, y := r.Cell(s.Pointer)
		if dst.Get(x, y) == ' ' {
			dst.SetColored(x, y, PointerChar, core.ColorGray)
		}
	}

	for i, line := range s.HUD {
		dst.DrawText(1, i, line)
	}

	if s.Paused {
		DrawMessage(dst, "PAUSED", "Press P to resume")
	}
}

// DrawMessage draws a boxed two-line message in the center of the screen.
func DrawMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))
	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-titleW)/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-subtitleW)/2, box.Y+3, subtitle)
}

func drawBlock(r Raster, sp Sprite, dst *core.Screen) {
	rect := r.Rect(sp.Bounds())
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			dst.SetColored(x, y, BlockChar, sp.Color)
		}
	}
}

func drawWalker(r Raster, sp Sprite, dst *core.Screen) {
	rect := r.Rect(sp.Bounds())
	head := 'o'
	body := '>'
	if sp.Frame < 0 {
		body = '<'
	}
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			ch := body
			if y == rect.Y && rect.H > 1 {
				ch = head
			}
			dst.SetColored(x, y, ch, sp.Color)
		}
	}
}
