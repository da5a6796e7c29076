package vehicle

import "github.com/vovakirdan/arcade-motion/internal/physics"

// WalkerParams tune the side-view walker.
type WalkerParams struct {
	Acceleration float64
}

// Walker moves a body left and right. Releasing both keys stops it dead;
// vertical motion is never touched.
type Walker struct {
	Params WalkerParams
	Body   *physics.Body

	// Facing is -1 for left, 1 for right.
	Facing int
}

// NewWalker creates a walker controller for body, facing right.
func NewWalker(params WalkerParams, body *physics.Body) *Walker {
	return &Walker{Params: params, Body: body, Facing: 1}
}

// Update applies one tick of input.
func (w *Walker) Update(in Input) {
	switch {
	case in.Right:
		w.Body.Acceleration.X = w.Params.Acceleration
		w.Facing = 1
	case in.Left:
		w.Body.Acceleration.X = -w.Params.Acceleration
		w.Facing = -1
	default:
		w.Body.Acceleration.X = 0
		w.Body.Velocity.X = 0
	}
}

// Walking reports whether the walker is accelerating this tick.
func (w *Walker) Walking() bool {
	return w.Body.Acceleration.X != 0
}
