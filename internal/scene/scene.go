// Package scene describes a frame of a vehicle game independently of the
// frontend that draws it. Games build a Scene each frame; the terminal
// frontend rasterizes it into character cells and the window frontend draws
// it with vector shapes.
package scene

import "github.com/vovakirdan/arcade-motion/internal/core"

// Kind selects how a sprite is drawn.
type Kind int

const (
	KindHull   Kind = iota // Tank body
	KindTurret             // Tank gun, drawn as a barrel from Pos along Rotation
	KindShell              // Projectile
	KindShip               // Flyer; Frame 1 shows the engine flame
	KindWalker             // Platformer character; Frame holds the facing (-1/1)
	KindBlock              // Static solid rectangle
)

// Sprite is one drawable object in world coordinates.
type Sprite struct {
	Kind     Kind
	Pos      core.Vec // Center
	Size     core.Vec
	Rotation float64 // Radians, 0 = right
	Frame    int
	Color    core.Color
}

// Scene is everything a frontend needs to draw one frame.
type Scene struct {
	Width, Height float64 // World size
	Sprites       []Sprite
	HUD           []string // Lines drawn in the top-left corner
	Pointer       core.Vec
	ShowPointer   bool
	Paused        bool
}

// Add appends a sprite.
func (s *Scene) Add(sp Sprite) {
	s.Sprites = append(s.Sprites, sp)
}

// Of returns the sprites of the given kind, in draw order.
func (s Scene) Of(kind Kind) []Sprite {
	var out []Sprite
	for _, sp := range s.Sprites {
		if sp.Kind == kind {
			out = append(out, sp)
		}
	}
	return out
}

// Bounds returns the sprite's box in world coordinates.
func (sp Sprite) Bounds() core.RectF {
	return core.RectF{
		X: sp.Pos.X - sp.Size.X/2,
		Y: sp.Pos.Y - sp.Size.Y/2,
		W: sp.Size.X,
		H: sp.Size.Y,
	}
}

// Corners returns the sprite's box turned by Rotation about its center:
// front-left, front-right, back-right, back-left.
func (sp Sprite) Corners() [4]core.Vec {
	f := core.FromAngle(sp.Rotation, 1)
	n := core.V(-f.Y, f.X)
	fx := f.Scale(sp.Size.X / 2)
	ny := n.Scale(sp.Size.Y / 2)
	return [4]core.Vec{
		sp.Pos.Add(fx).Sub(ny),
		sp.Pos.Add(fx).Add(ny),
		sp.Pos.Sub(fx).Add(ny),
		sp.Pos.Sub(fx).Sub(ny),
	}
}
