package physics

import (
	"math"

	"github.com/vovakirdan/arcade-motion/internal/core"
)

// VelocityFromRotation returns the velocity of magnitude speed along rotation.
func VelocityFromRotation(rotation, speed float64) core.Vec {
	return core.FromAngle(rotation, speed)
}

// AngleBetween returns the angle from a to b in radians, as atan2(dy, dx).
func AngleBetween(a, b core.Vec) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Wrap teleports a point that left the (0,0)-(w,h) rectangle to the
// opposite edge. Each axis is checked once; points on the edge stay put.
func Wrap(p core.Vec, w, h float64) core.Vec {
	if p.X > w {
		p.X = 0
	} else if p.X < 0 {
		p.X = w
	}
	if p.Y > h {
		p.Y = 0
	} else if p.Y < 0 {
		p.Y = h
	}
	return p
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
