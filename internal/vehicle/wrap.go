package vehicle

import "github.com/vovakirdan/arcade-motion/internal/physics"

// WrapBody teleports a body that left the w x h world to the opposite edge.
func WrapBody(b *physics.Body, w, h float64) {
	b.Position = physics.Wrap(b.Position, w, h)
}
