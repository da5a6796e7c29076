package physics

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/arcade-motion/internal/core"
)

// Collision tags used inside the resolv space.
const (
	tagSolid = "solid"
	tagBody  = "body"
)

// Space holds static solid blocks and resolves moving bodies against them.
// Broad-phase queries go through a resolv cell grid; the narrow phase is a
// plain AABB overlap test.
type Space struct {
	space  *resolv.Space
	blocks []*resolv.Object
	bodies map[*Body]*resolv.Object
}

// NewSpace creates a space covering (0,0)-(w,h) with square cells of cellSize.
func NewSpace(w, h float64, cellSize int) *Space {
	if cellSize <= 0 {
		cellSize = 16
	}
	cols := int(w)/cellSize + 1
	rows := int(h)/cellSize + 1
	return &Space{
		space:  resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize),
		bodies: make(map[*Body]*resolv.Object),
	}
}

// AddBlock adds a static solid rectangle.
func (s *Space) AddBlock(r core.RectF) {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tagSolid)
	s.space.Add(obj)
	s.blocks = append(s.blocks, obj)
}

// Blocks returns the static rectangles in insertion order.
func (s *Space) Blocks() []core.RectF {
	out := make([]core.RectF, len(s.blocks))
	for i, obj := range s.blocks {
		out[i] = core.RectF{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
	}
	return out
}

// Attach registers a body so it can be moved with Move.
func (s *Space) Attach(b *Body) {
	if _, ok := s.bodies[b]; ok {
		return
	}
	r := b.Bounds()
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tagBody)
	s.space.Add(obj)
	s.bodies[b] = obj
}

// Move displaces the body by (dx, dy), x first then y, stopping flush against
// any solid block in the way. A blocked axis has its velocity zeroed.
func (s *Space) Move(b *Body, dx, dy float64) {
	obj, ok := s.bodies[b]
	if !ok {
		s.Attach(b)
		obj = s.bodies[b]
	}

	r := b.Bounds()
	obj.X, obj.Y, obj.W, obj.H = r.X, r.Y, r.W, r.H

	if dx != 0 {
		allowed, hit := s.sweep(obj, dx, true)
		obj.X += allowed
		if hit {
			b.Velocity.X = 0
			if dx > 0 {
				b.Blocked.Right = true
			} else {
				b.Blocked.Left = true
			}
		}
	}

	if dy != 0 {
		allowed, hit := s.sweep(obj, dy, false)
		obj.Y += allowed
		if hit {
			b.Velocity.Y = 0
			if dy > 0 {
				b.Blocked.Down = true
			} else {
				b.Blocked.Up = true
			}
		}
	}

	obj.Update()
	b.Position = core.V(obj.X+obj.W/2, obj.Y+obj.H/2)
}

// sweep returns how far obj can travel by delta along one axis and whether a
// block cut the movement short.
func (s *Space) sweep(obj *resolv.Object, delta float64, horizontal bool) (float64, bool) {
	var col *resolv.Collision
	if horizontal {
		col = obj.Check(delta, 0, tagSolid)
	} else {
		col = obj.Check(0, delta, tagSolid)
	}
	if col == nil {
		return delta, false
	}

	moved := core.RectF{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
	if horizontal {
		moved.X += delta
	} else {
		moved.Y += delta
	}

	allowed := delta
	hit := false
	for _, other := range col.Objects {
		block := core.RectF{X: other.X, Y: other.Y, W: other.W, H: other.H}
		if !overlaps(moved, block) {
			continue
		}
		var limit float64
		switch {
		case horizontal && delta > 0:
			limit = block.X - (obj.X + obj.W)
		case horizontal:
			limit = block.X + block.W - obj.X
		case delta > 0:
			limit = block.Y - (obj.Y + obj.H)
		default:
			limit = block.Y + block.H - obj.Y
		}
		// Already overlapping on entry; do not pull the body backwards.
		if delta > 0 && limit < 0 || delta < 0 && limit > 0 {
			limit = 0
		}
		if delta > 0 && limit < allowed || delta < 0 && limit > allowed {
			allowed = limit
			hit = true
		}
	}
	return allowed, hit
}

// contactEpsilon absorbs rounding left over from previous resolutions.
const contactEpsilon = 1e-6

// overlaps is a strict AABB test; touching edges do not overlap.
func overlaps(a, b core.RectF) bool {
	return a.X < b.X+b.W-contactEpsilon && a.X+a.W > b.X+contactEpsilon &&
		a.Y < b.Y+b.H-contactEpsilon && a.Y+a.H > b.Y+contactEpsilon
}
