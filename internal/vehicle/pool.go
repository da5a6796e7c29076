package vehicle

import (
	"github.com/vovakirdan/arcade-motion/internal/core"
	"github.com/vovakirdan/arcade-motion/internal/physics"
)

// Pool is a fixed set of projectile bodies. A slot is active while its body
// is enabled; inactive slots are skipped by the physics world.
type Pool struct {
	slots []*physics.Body
}

// NewPool creates n inactive projectiles of the given size.
func NewPool(n int, size core.Vec) *Pool {
	if n < 0 {
		n = 0
	}
	p := &Pool{slots: make([]*physics.Body, n)}
	for i := range p.slots {
		b := physics.NewBody(0, 0, size.X, size.Y)
		b.Enabled = false
		p.slots[i] = b
	}
	return p
}

// Slots returns every projectile body, active or not.
func (p *Pool) Slots() []*physics.Body {
	return p.slots
}

// Size returns the number of slots.
func (p *Pool) Size() int {
	return len(p.slots)
}

// ActiveCount returns the number of projectiles in flight.
func (p *Pool) ActiveCount() int {
	n := 0
	for _, b := range p.slots {
		if b.Enabled {
			n++
		}
	}
	return n
}

// Fire activates the lowest-index inactive slot at pos, heading along
// rotation at speed. It returns false and changes nothing when every slot
// is in flight.
func (p *Pool) Fire(pos core.Vec, rotation, speed float64) (*physics.Body, bool) {
	for _, b := range p.slots {
		if b.Enabled {
			continue
		}
		b.ResetAt(pos.X, pos.Y)
		b.Rotation = rotation
		b.Velocity = physics.VelocityFromRotation(rotation, speed)
		b.Enabled = true
		return b, true
	}
	return nil, false
}

// Cull deactivates projectiles whose center left bounds and returns how many
// were removed.
func (p *Pool) Cull(bounds core.RectF) int {
	n := 0
	for _, b := range p.slots {
		if b.Enabled && physics.Outside(b, bounds) {
			b.Enabled = false
			b.Stop()
			n++
		}
	}
	return n
}

// Reset returns every slot to inactive.
func (p *Pool) Reset() {
	for _, b := range p.slots {
		b.Enabled = false
		b.Stop()
	}
}
