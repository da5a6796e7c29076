// Package vehicle holds the per-tick controllers for the steerable vehicles:
// a tank with a turret and a shell pool, a thrust-driven flyer, and a
// side-view walker. Controllers only write velocities and accelerations;
// integration and collision belong to the physics runtime.
package vehicle

import "github.com/vovakirdan/arcade-motion/internal/core"

// Input is the control snapshot for one tick, in world coordinates.
type Input struct {
	Left, Right, Up, Down bool
	Pointer               core.Vec
	PointerDown           bool
}

// InputFromFrame translates a platform input frame into controller input.
// The normalized pointer is scaled to a w x h world; an invalid pointer keeps
// the previous position.
func InputFromFrame(frame core.InputFrame, prev core.Vec, w, h float64) Input {
	in := Input{
		Left:    frame.Has(core.ActionLeft),
		Right:   frame.Has(core.ActionRight),
		Up:      frame.Has(core.ActionUp),
		Down:    frame.Has(core.ActionDown),
		Pointer: prev,
	}
	if frame.Pointer.Valid {
		in.Pointer = core.V(frame.Pointer.X*w, frame.Pointer.Y*h)
		in.PointerDown = frame.Pointer.Down
	}
	return in
}

// Steer returns the angular velocity for the held turn keys.
// Right takes precedence when both are held.
func Steer(in Input, rotationSpeed float64) float64 {
	switch {
	case in.Right:
		return rotationSpeed
	case in.Left:
		return -rotationSpeed
	default:
		return 0
	}
}
