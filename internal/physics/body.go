// Package physics is a small arcade-style rigid body runtime.
// Bodies are axis-aligned boxes positioned by their center; velocity is
// integrated per axis with acceleration, drag and a max-velocity clamp.
package physics

import "github.com/vovakirdan/arcade-motion/internal/core"

// Contact records which sides of a body touched something during the last step.
type Contact struct {
	Up, Down, Left, Right bool
}

// Body is a simulated object. All units are world units (pixels) and seconds;
// rotations are radians.
type Body struct {
	Position     core.Vec // Center of the box
	Size         core.Vec // Width and height
	Velocity     core.Vec
	Acceleration core.Vec
	Drag         core.Vec // Applied on an axis only while it has no acceleration
	MaxVelocity  core.Vec // Zero on an axis means unbounded

	Rotation        float64
	AngularVelocity float64
	AngularDrag     float64

	AllowGravity       bool
	CollideWorldBounds bool

	// Solid bodies are moved through the world's Space, if any.
	Solid bool

	// Enabled bodies take part in World.Step.
	Enabled bool

	// Blocked is rebuilt on every step.
	Blocked Contact
}

// NewBody creates an enabled body centered at (x, y).
func NewBody(x, y, w, h float64) *Body {
	return &Body{
		Position: core.V(x, y),
		Size:     core.V(w, h),
		Enabled:  true,
	}
}

// Bounds returns the body's box in world coordinates.
func (b *Body) Bounds() core.RectF {
	return core.RectF{
		X: b.Position.X - b.Size.X/2,
		Y: b.Position.Y - b.Size.Y/2,
		W: b.Size.X,
		H: b.Size.Y,
	}
}

// Stop zeroes all motion, keeping position and rotation.
func (b *Body) Stop() {
	b.Velocity = core.Vec{}
	b.Acceleration = core.Vec{}
	b.AngularVelocity = 0
}

// ResetAt moves the body to (x, y) with no motion and clears contacts.
func (b *Body) ResetAt(x, y float64) {
	b.Position = core.V(x, y)
	b.Stop()
	b.Blocked = Contact{}
}

// computeVelocity advances one velocity component by dt.
// Acceleration wins over drag; drag moves the component toward zero without
// crossing it. The result is clamped to [-max, max] when max > 0.
func computeVelocity(velocity, gravity, accel, drag, max, dt float64) float64 {
	velocity += gravity * dt

	if accel != 0 {
		velocity += accel * dt
	} else if drag != 0 {
		d := drag * dt
		switch {
		case velocity-d > 0:
			velocity -= d
		case velocity+d < 0:
			velocity += d
		default:
			velocity = 0
		}
	}

	if max > 0 {
		velocity = core.ClampF(velocity, -max, max)
	}
	return velocity
}
