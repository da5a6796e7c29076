// Package flyer implements a top-down thrust ship. Left/right rotate the
// ship, up thrusts along the heading, down thrusts backwards, and drag
// slowly bleeds off speed while coasting. The ship wraps around the edges.
package flyer

import (
	"fmt"

	"github.com/vovakirdan/arcade-motion/internal/config"
	"github.com/vovakirdan/arcade-motion/internal/core"
	"github.com/vovakirdan/arcade-motion/internal/physics"
	"github.com/vovakirdan/arcade-motion/internal/registry"
	"github.com/vovakirdan/arcade-motion/internal/scene"
	"github.com/vovakirdan/arcade-motion/internal/vehicle"
)

// DistancePerPoint is how many world units of travel earn one point.
const DistancePerPoint = 10

// ShipColor is the ship sprite color.
const ShipColor = core.ColorBrightCyan

// Game implements the flyer scenario.
type Game struct {
	cfg       config.FlyerConfig
	cfgLoaded bool
	runtime   core.RuntimeConfig

	world *physics.World
	ship  *vehicle.Flyer

	distance float64
	paused   bool
}

// New creates a new flyer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flyer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flyer"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Rotate with left/right, thrust with up"
}

// LoadConfig loads the flyer configuration; see config.LoadFlyer.
func (g *Game) LoadConfig(path string) error {
	cfg, err := config.LoadFlyer(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.cfgLoaded = true
	return nil
}

// Reset places the ship at the world center, at rest.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.cfgLoaded {
		_ = g.LoadConfig("")
	}
	g.runtime = cfg
	g.distance = 0
	g.paused = false

	w, h := g.cfg.World.Width, g.cfg.World.Height
	g.world = physics.NewWorld(w, h)

	body := physics.NewBody(w/2, h/2, g.cfg.Ship.Size, g.cfg.Ship.Size)
	body.Rotation = g.cfg.Ship.StartAngleRad()
	body.MaxVelocity = core.V(g.cfg.Ship.MaxSpeed, g.cfg.Ship.MaxSpeed)
	body.Drag = core.V(g.cfg.Ship.Drag, g.cfg.Ship.Drag)
	g.world.Add(body)

	g.ship = vehicle.NewFlyer(vehicle.FlyerParams{
		RotationSpeed: g.cfg.Ship.RotationSpeedRad(),
		Acceleration:  g.cfg.Ship.Acceleration,
	}, body)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ship == nil {
		g.Reset(core.DefaultConfig())
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	body := g.ship.Body
	before := body.Position
	g.world.Step(g.runtime.TickSeconds())
	g.distance += body.Position.Sub(before).Len()
	vehicle.WrapBody(body, g.cfg.World.Width, g.cfg.World.Height)

	g.ship.Update(vehicle.InputFromFrame(in, core.Vec{}, g.cfg.World.Width, g.cfg.World.Height))

	var sounds []core.Sound
	if g.ship.EngineOn {
		sounds = append(sounds, core.Sound{ID: core.SoundThrust, Volume: g.cfg.Audio.ThrustVolume, Ensure: true})
	}
	return core.StepResult{State: g.State(), Sounds: sounds}
}

// Ship exposes the controller for inspection.
func (g *Game) Ship() *vehicle.Flyer {
	return g.ship
}

// Scene describes the current frame.
func (g *Game) Scene() scene.Scene {
	s := scene.Scene{
		Width:  g.cfg.World.Width,
		Height: g.cfg.World.Height,
		Paused: g.paused,
	}
	if g.ship == nil {
		return s
	}

	body := g.ship.Body
	s.Add(scene.Sprite{
		Kind:     scene.KindShip,
		Pos:      body.Position,
		Size:     body.Size,
		Rotation: body.Rotation,
		Frame:    g.ship.Frame(),
		Color:    ShipColor,
	})
	s.HUD = []string{
		fmt.Sprintf("Score: %d  Speed: %.0f", g.score(), body.Velocity.Len()),
	}
	return s
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	scene.Draw(g.Scene(), dst)
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
	registry.Register("flyer", func() registry.Game {
		return New()
	})
}
