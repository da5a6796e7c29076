package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/arcade-motion/internal/core"
	"github.com/vovakirdan/arcade-motion/internal/scene"
)

// Background and overlay colors
var (
	backgroundColor = color.RGBA{0x10, 0x14, 0x1c, 0xff}
	pointerColor    = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
	flameColor      = color.RGBA{0xff, 0x8c, 0x00, 0xff}
	shadeColor      = color.RGBA{0x00, 0x00, 0x00, 0x99}
)

// palette maps terminal colors to RGB for the window.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xe0, 0xe0, 0xe0, 0xff},
	core.ColorRed:           {0xcd, 0x31, 0x31, 0xff},
	core.ColorGreen:         {0x3a, 0x9a, 0x3a, 0xff},
	core.ColorYellow:        {0xe5, 0xc0, 0x2b, 0xff},
	core.ColorBlue:          {0x24, 0x72, 0xc8, 0xff},
	core.ColorMagenta:       {0xbc, 0x3f, 0xbc, 0xff},
	core.ColorCyan:          {0x11, 0xa8, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xf1, 0x4c, 0x4c, 0xff},
	core.ColorBrightGreen:   {0x5c, 0xd8, 0x5c, 0xff},
	core.ColorBrightYellow:  {0xf5, 0xf5, 0x43, 0xff},
	core.ColorBrightBlue:    {0x3b, 0x8e, 0xea, 0xff},
	core.ColorBrightMagenta: {0xd6, 0x70, 0xd6, 0xff},
	core.ColorBrightCyan:    {0x29, 0xb8, 0xdb, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x8c, 0x00, 0xff},
	core.ColorGray:          {0x80, 0x80, 0x80, 0xff},
}

// rgba returns the window color for a terminal color.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// drawScene draws s onto screen. The logical screen matches the world size,
// so world units are pixels.
func drawScene(screen *ebiten.Image, s scene.Scene) {
	screen.Fill(backgroundColor)

	for _, sp := range s.Sprites {
		c := rgba(sp.Color)
		switch sp.Kind {
		case scene.KindBlock:
			b := sp.Bounds()
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
		case scene.KindHull:
			fillPolygon(screen, sp.Corners()[:], c)
			front := sp.Pos.Add(core.FromAngle(sp.Rotation, sp.Size.X/2))
			vector.StrokeLine(screen, float32(sp.Pos.X), float32(sp.Pos.Y), float32(front.X), float32(front.Y), 2, palette[core.ColorBrightWhite], true)
		case scene.KindTurret:
			tip := sp.Pos.Add(core.FromAngle(sp.Rotation, sp.Size.X))
			vector.StrokeLine(screen, float32(sp.Pos.X), float32(sp.Pos.Y), float32(tip.X), float32(tip.Y), float32(sp.Size.Y), c, true)
			vector.DrawFilledCircle(screen, float32(sp.Pos.X), float32(sp.Pos.Y), float32(sp.Size.Y), c, true)
		case scene.KindShell:
			vector.DrawFilledCircle(screen, float32(sp.Pos.X), float32(sp.Pos.Y), float32(math.Max(sp.Size.X/2, 1)), c, true)
		case scene.KindShip:
			if sp.Frame == 1 {
				tail := sp.Pos.Sub(core.FromAngle(sp.Rotation, sp.Size.X*0.6))
				vector.DrawFilledCircle(screen, float32(tail.X), float32(tail.Y), float32(sp.Size.Y/4), flameColor, true)
			}
			fillPolygon(screen, shipOutline(sp), c)
		case scene.KindWalker:
			b := sp.Bounds()
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, true)
			// Eye on the facing side
			eyeX := sp.Pos.X + float64(sp.Frame)*sp.Size.X/4
			vector.DrawFilledCircle(screen, float32(eyeX), float32(b.Y+b.H/4), float32(math.Max(b.W/8, 1)), backgroundColor, true)
		}
	}

	if s.ShowPointer {
		drawCrosshair(screen, s.Pointer)
	}

	for i, line := range s.HUD {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+i*16)
	}

	if s.Paused {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), shadeColor, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P to resume", w/2-78, h/2-8)
	}
}

// shipOutline returns a triangle pointing along the sprite's rotation.
func shipOutline(sp scene.Sprite) []core.Vec {
	nose := sp.Pos.Add(core.FromAngle(sp.Rotation, sp.Size.X/2))
	back := sp.Pos.Sub(core.FromAngle(sp.Rotation, sp.Size.X/2))
	side := core.FromAngle(sp.Rotation+math.Pi/2, sp.Size.Y/2)
	return []core.Vec{nose, back.Add(side), back.Sub(side)}
}

func drawCrosshair(screen *ebiten.Image, p core.Vec) {
	const arm = 6
	x, y := float32(p.X), float32(p.Y)
	vector.StrokeLine(screen, x-arm, y, x+arm, y, 1, pointerColor, true)
	vector.StrokeLine(screen, x, y-arm, x, y+arm, 1, pointerColor, true)
}

// fillPolygon fills a convex polygon with a solid color.
func fillPolygon(screen *ebiten.Image, pts []core.Vec, c color.RGBA) {
	if len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage, op)
}
