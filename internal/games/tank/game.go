// Package tank implements a top-down tank demo: the hull steers and
// throttles with the arrow keys, the turret tracks the pointer and fires
// shells from a small pool on click.
package tank

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arcade-motion/internal/config"
	"github.com/vovakirdan/arcade-motion/internal/core"
	"github.com/vovakirdan/arcade-motion/internal/physics"
	"github.com/vovakirdan/arcade-motion/internal/registry"
	"github.com/vovakirdan/arcade-motion/internal/scene"
	"github.com/vovakirdan/arcade-motion/internal/vehicle"
)

// DistancePerPoint is how many world units of travel earn one point.
const DistancePerPoint = 10

// Sprite colors
const (
	HullColor   = core.ColorGreen
	TurretColor = core.ColorBrightGreen
	ShellColor  = core.ColorBrightYellow
)

// Game implements the tank scenario.
type Game struct {
	cfg       config.TankConfig
	cfgLoaded bool
	runtime   core.RuntimeConfig

	world   *physics.World
	tank    *vehicle.Tank
	pointer core.Vec

	tick     int64
	distance float64
	paused   bool
}

// New creates a new tank game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tank"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tank"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Arrows/WASD drive, mouse aims, click fires"
}

// LoadConfig loads the tank configuration; see config.LoadTank.
func (g *Game) LoadConfig(path string) error {
	cfg, err := config.LoadTank(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.cfgLoaded = true
	return nil
}

// Config returns the active configuration.
func (g *Game) Config() config.TankConfig {
	return g.cfg
}

// Reset builds a fresh scenario: hull centered and facing the configured
// heading, pointer at the world center, every shell inactive.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.cfgLoaded {
		// A broken search-path file is skipped inside the loader
		_ = g.LoadConfig("")
	}
	g.runtime = cfg
	g.tick = 0
	g.distance = 0
	g.paused = false

	w, h := g.cfg.World.Width, g.cfg.World.Height
	g.world = physics.NewWorld(w, h)
	g.pointer = core.V(w/2, h/2)

	hull := physics.NewBody(w/2, h/2, g.cfg.Hull.Size, g.cfg.Hull.Size)
	hull.Rotation = g.cfg.Hull.StartAngleRad()
	hull.MaxVelocity = core.V(g.cfg.Hull.MaxSpeed, g.cfg.Hull.MaxSpeed)
	hull.Drag = core.V(g.cfg.Hull.Drag, g.cfg.Hull.Drag)
	hull.CollideWorldBounds = g.cfg.Hull.CollideWorldBounds
	g.world.Add(hull)

	size := g.cfg.Weapon.BulletSize
	pool := vehicle.NewPool(g.cfg.Weapon.PoolSize, core.V(size, size))
	for _, shell := range pool.Slots() {
		g.world.Add(shell)
	}

	// Validated by the config loader
	decay, _ := vehicle.ParseDecayMode(g.cfg.Hull.DecayMode)
	g.tank = vehicle.NewTank(vehicle.TankParams{
		RotationSpeed: g.cfg.Hull.RotationSpeedRad(),
		Acceleration:  g.cfg.Hull.Acceleration,
		MaxSpeed:      g.cfg.Hull.MaxSpeed,
		SpeedDecay:    g.cfg.Hull.SpeedDecay,
		DecayMode:     decay,
		ShotDelay:     int64(g.cfg.Weapon.ShotDelay),
		BulletSpeed:   g.cfg.Weapon.BulletSpeed,
	}, hull, pool)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tank == nil {
		g.Reset(core.DefaultConfig())
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	now := g.runtime.TickMillis(g.tick)
	dt := g.runtime.TickSeconds()
	w, h := g.cfg.World.Width, g.cfg.World.Height
	hull := g.tank.Hull

	// Integrate, then keep the hull on screen
	before := hull.Position
	g.world.Step(dt)
	g.distance += hull.Position.Sub(before).Len()
	vehicle.WrapBody(hull, w, h)

	input := vehicle.InputFromFrame(in, g.pointer, w, h)
	g.pointer = input.Pointer
	res := g.tank.Update(input, now, dt)

	g.tank.Pool.Cull(g.world.Bounds)

	var sounds []core.Sound
	if res.Moving {
		sounds = append(sounds, core.Sound{ID: core.SoundTreads, Volume: g.cfg.Audio.TreadsVolume, Ensure: true})
	}
	if res.Fired {
		sounds = append(sounds, core.Sound{ID: core.SoundPew, Volume: g.cfg.Audio.PewVolume})
	}

	return core.StepResult{State: g.State(), Sounds: sounds}
}

// Tank exposes the controller for inspection.
func (g *Game) Tank() *vehicle.Tank {
	return g.tank
}

// Scene describes the current frame.
func (g *Game) Scene() scene.Scene {
	s := scene.Scene{
		Width:       g.cfg.World.Width,
		Height:      g.cfg.World.Height,
		Pointer:     g.pointer,
		ShowPointer: true,
		Paused:      g.paused,
	}
	if g.tank == nil {
		return s
	}

	for _, shell := range g.tank.Pool.Slots() {
		if !shell.Enabled {
			continue
		}
		s.Add(scene.Sprite{
			Kind:     scene.KindShell,
			Pos:      shell.Position,
			Size:     shell.Size,
			Rotation: shell.Rotation,
			Color:    ShellColor,
		})
	}

	hull := g.tank.Hull
	s.Add(scene.Sprite{
		Kind:     scene.KindHull,
		Pos:      hull.Position,
		Size:     hull.Size,
		Rotation: hull.Rotation,
		Color:    HullColor,
	})
	s.Add(scene.Sprite{
		Kind:     scene.KindTurret,
		Pos:      g.tank.Turret.Position,
		Size:     core.V(hull.Size.X*0.75, hull.Size.Y/4),
		Rotation: g.tank.Turret.Rotation,
		Color:    TurretColor,
	})

	s.HUD = []string{
		fmt.Sprintf("Score: %d  Speed: %.0f  Shells: %d/%d",
			g.score(), g.tank.Speed, g.tank.Pool.Size()-g.tank.Pool.ActiveCount(), g.tank.Pool.Size()),
		fmt.Sprintf("Heading: %03.0f  Turret: %03.0f", compass(hull.Rotation), compass(g.tank.Turret.Rotation)),
	}
	return s
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	scene.Draw(g.Scene(), dst)
}

// compass converts a rotation to whole degrees in [0, 360).
func compass(rad float64) float64 {
	deg := math.Round(physics.RadToDeg(rad))
	return math.Mod(math.Mod(deg, 360)+360, 360)
}

func (g *Game) score() int {
	return int(g.distance / DistancePerPoint)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score(),
		Paused: g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("tank", func() registry.Game {
		return New()
	})
}
