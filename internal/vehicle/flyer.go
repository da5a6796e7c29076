package vehicle

import (
	"github.com/vovakirdan/arcade-motion/internal/core"
	"github.com/vovakirdan/arcade-motion/internal/physics"
)

// FlyerParams tune the thrust ship. RotationSpeed is radians per second,
// Acceleration world units per second squared.
type FlyerParams struct {
	RotationSpeed float64
	Acceleration  float64
}

// Flyer steers a body by rotating it and thrusting along its heading.
// Deceleration is left to the body's drag.
type Flyer struct {
	Params FlyerParams
	Body   *physics.Body

	// EngineOn mirrors the thrust key and selects the engine-lit frame.
	EngineOn bool
}

// NewFlyer creates a flyer controller for body.
func NewFlyer(params FlyerParams, body *physics.Body) *Flyer {
	return &Flyer{Params: params, Body: body}
}

// Update applies one tick of input.
func (f *Flyer) Update(in Input) {
	f.Body.AngularVelocity = Steer(in, f.Params.RotationSpeed)

	switch {
	case in.Up:
		f.Body.Acceleration = physics.VelocityFromRotation(f.Body.Rotation, f.Params.Acceleration)
	case in.Down:
		f.Body.Acceleration = physics.VelocityFromRotation(f.Body.Rotation, -f.Params.Acceleration)
	default:
		f.Body.Acceleration = core.Vec{}
	}
	f.EngineOn = in.Up
}

// Frame returns the visual frame index: 1 with the engine lit, 0 otherwise.
func (f *Flyer) Frame() int {
	if f.EngineOn {
		return 1
	}
	return 0
}
