package vehicle

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/arcade-motion/internal/core"
	"github.com/vovakirdan/arcade-motion/internal/physics"
)

// DecayMode selects how SpeedDecay is applied while the throttle is idle.
type DecayMode int

const (
	// DecayPerTick subtracts SpeedDecay once per tick.
	DecayPerTick DecayMode = iota
	// DecayPerSecond treats SpeedDecay as units per second.
	DecayPerSecond
)

// String returns the config name of the mode.
func (m DecayMode) String() string {
	if m == DecayPerSecond {
		return "second"
	}
	return "tick"
}

// ParseDecayMode parses "tick" or "second". The empty string means tick.
func ParseDecayMode(s string) (DecayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tick":
		return DecayPerTick, nil
	case "second", "seconds":
		return DecayPerSecond, nil
	default:
		return DecayPerTick, fmt.Errorf("unknown decay mode %q", s)
	}
}

// TankParams are the tuning constants of a tank. Rotation speed is in
// radians per second, speeds in world units per second, ShotDelay in ms.
type TankParams struct {
	RotationSpeed float64
	Acceleration  float64
	MaxSpeed      float64
	SpeedDecay    float64
	DecayMode     DecayMode
	ShotDelay     int64
	BulletSpeed   float64
}

// Turret is the aimable gun riding on the hull.
type Turret struct {
	Position core.Vec
	Rotation float64
}

// TankResult reports what the controller did this tick.
type TankResult struct {
	Moving bool // Turning or throttling; drives the treads cue
	Fired  bool
}

// Tank drives a hull body and its turret.
type Tank struct {
	Params TankParams
	Hull   *physics.Body
	Turret Turret
	Pool   *Pool

	// Speed is the signed scalar speed along the hull heading.
	Speed float64

	lastFire int64
	hasFired bool
}

// NewTank creates a tank around an existing hull body and projectile pool.
func NewTank(params TankParams, hull *physics.Body, pool *Pool) *Tank {
	t := &Tank{
		Params: params,
		Hull:   hull,
		Pool:   pool,
	}
	t.Turret.Position = hull.Position
	return t
}

// Reset clears speed, the fire cooldown and every projectile.
func (t *Tank) Reset() {
	t.Speed = 0
	t.lastFire = 0
	t.hasFired = false
	t.Turret = Turret{Position: t.Hull.Position}
	if t.Pool != nil {
		t.Pool.Reset()
	}
}

// Update applies one tick of input. now is the simulated clock in ms,
// dt the tick length in seconds.
func (t *Tank) Update(in Input, now int64, dt float64) TankResult {
	var res TankResult

	t.Turret.Position = t.Hull.Position

	t.Hull.AngularVelocity = Steer(in, t.Params.RotationSpeed)
	if t.Hull.AngularVelocity != 0 {
		res.Moving = true
	}

	switch {
	case in.Up:
		t.Speed = core.ClampF(t.Speed+t.Params.Acceleration, -t.Params.MaxSpeed, t.Params.MaxSpeed)
		res.Moving = true
	case in.Down:
		t.Speed = core.ClampF(t.Speed-t.Params.Acceleration, -t.Params.MaxSpeed, t.Params.MaxSpeed)
		res.Moving = true
	default:
		t.decay(dt)
		t.Hull.Acceleration = core.Vec{}
	}

	t.Hull.Velocity = physics.VelocityFromRotation(t.Hull.Rotation, t.Speed)

	t.Turret.Rotation = physics.AngleBetween(t.Turret.Position, in.Pointer)

	if in.PointerDown {
		res.Fired = t.Fire(now)
	}
	return res
}

// decay moves Speed toward zero without crossing it.
func (t *Tank) decay(dt float64) {
	step := t.Params.SpeedDecay
	if t.Params.DecayMode == DecayPerSecond {
		step *= dt
	}
	if t.Speed > 0 {
		t.Speed = max(t.Speed-step, 0)
	} else if t.Speed < 0 {
		t.Speed = min(t.Speed+step, 0)
	}
}

// Fire launches a shell from the turret if the cooldown allows it.
// The cooldown restarts on every allowed attempt, even when the pool is
// exhausted. It reports whether a shell left the barrel.
func (t *Tank) Fire(now int64) bool {
	if t.hasFired && now-t.lastFire < t.Params.ShotDelay {
		return false
	}
	t.lastFire = now
	t.hasFired = true

	if t.Pool == nil {
		return false
	}
	_, ok := t.Pool.Fire(t.Turret.Position, t.Turret.Rotation, t.Params.BulletSpeed)
	return ok
}
