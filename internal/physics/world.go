package physics

import "github.com/vovakirdan/arcade-motion/internal/core"

// World owns a set of bodies and advances them in fixed steps.
type World struct {
	Bounds  core.RectF
	Gravity core.Vec

	bodies []*Body
	space  *Space
}

// NewWorld creates a world whose bounds span (0,0)-(w,h).
func NewWorld(w, h float64) *World {
	return &World{
		Bounds: core.RectF{W: w, H: h},
	}
}

// Add registers a body and returns it.
func (w *World) Add(b *Body) *Body {
	w.bodies = append(w.bodies, b)
	if w.space != nil && b.Solid {
		w.space.Attach(b)
	}
	return b
}

// SetSpace installs the static collision space. Solid bodies already in the
// world are attached to it.
func (w *World) SetSpace(s *Space) {
	w.space = s
	if s == nil {
		return
	}
	for _, b := range w.bodies {
		if b.Solid {
			s.Attach(b)
		}
	}
}

// Space returns the installed collision space, or nil.
func (w *World) Space() *Space {
	return w.space
}

// Step advances every enabled body by dt seconds.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		if !b.Enabled {
			continue
		}
		w.stepBody(b, dt)
	}
}

func (w *World) stepBody(b *Body, dt float64) {
	b.Blocked = Contact{}

	var gravity core.Vec
	if b.AllowGravity {
		gravity = w.Gravity
	}

	b.Velocity.X = computeVelocity(b.Velocity.X, gravity.X, b.Acceleration.X, b.Drag.X, b.MaxVelocity.X, dt)
	b.Velocity.Y = computeVelocity(b.Velocity.Y, gravity.Y, b.Acceleration.Y, b.Drag.Y, b.MaxVelocity.Y, dt)
	b.AngularVelocity = computeVelocity(b.AngularVelocity, 0, 0, b.AngularDrag, 0, dt)

	delta := b.Velocity.Scale(dt)
	if w.space != nil && b.Solid {
		w.space.Move(b, delta.X, delta.Y)
	} else {
		b.Position = b.Position.Add(delta)
	}
	b.Rotation += b.AngularVelocity * dt

	if b.CollideWorldBounds {
		w.clampToBounds(b)
	}
}

// clampToBounds keeps the body's box inside the world and stops it on the
// blocked axis.
func (w *World) clampToBounds(b *Body) {
	r := b.Bounds()
	halfW, halfH := b.Size.X/2, b.Size.Y/2

	if r.X < w.Bounds.X {
		b.Position.X = w.Bounds.X + halfW
		b.Velocity.X = 0
		b.Blocked.Left = true
	} else if r.X+r.W > w.Bounds.X+w.Bounds.W {
		b.Position.X = w.Bounds.X + w.Bounds.W - halfW
		b.Velocity.X = 0
		b.Blocked.Right = true
	}

	if r.Y < w.Bounds.Y {
		b.Position.Y = w.Bounds.Y + halfH
		b.Velocity.Y = 0
		b.Blocked.Up = true
	} else if r.Y+r.H > w.Bounds.Y+w.Bounds.H {
		b.Position.Y = w.Bounds.Y + w.Bounds.H - halfH
		b.Velocity.Y = 0
		b.Blocked.Down = true
	}
}

// Outside reports whether the body's center has left bounds.
func Outside(b *Body, bounds core.RectF) bool {
	return !bounds.Contains(b.Position)
}
