// Package platformer implements a side-view walker on a block level.
// Left/right accelerate the walker, releasing both stops it dead; gravity
// and the static ground are handled by the physics space.
package platformer

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

// Sprite colors
const (
	WalkerColor = core.ColorBrightYellow
	BlockColor  = core.ColorGray
)

// Game implements the platformer scenario.
type Game struct {
	cfg       config.PlatformerConfig
	cfgLoaded bool
	runtime   core.RuntimeConfig

	world  *physics.World
	walker *vehicle.Walker

	distance float64
	paused   bool
}

// New creates a new platformer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Walk the level with left/right"
}

// LoadConfig loads the platformer configuration; see config.LoadPlatformer.
func (g *Game) LoadConfig(path string) error {
	cfg, err := config.LoadPlatformer(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.cfgLoaded = true
	return nil
}

// Reset rebuilds the level and drops the walker at its start point.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.cfgLoaded {
		_ = g.LoadConfig("")
	}
	g.runtime = cfg
	g.distance = 0
	g.paused = false

	w, h := g.cfg.World.Width, g.cfg.World.Height
	g.world = physics.NewWorld(w, h)
	g.world.Gravity = core.V(0, g.cfg.Gravity)
	g.world.SetSpace(g.buildLevel())

	p := g.cfg.Player
	body := physics.NewBody(p.StartX, p.StartY, p.Width, p.Height)
	body.AllowGravity = true
	body.CollideWorldBounds = true
	body.Solid = true
	body.MaxVelocity = core.V(p.MaxSpeed, 0)
	body.Drag = core.V(p.Drag, 0)
	g.world.Add(body)

	g.walker = vehicle.NewWalker(vehicle.WalkerParams{Acceleration: p.Acceleration}, body)
}

// buildLevel lays a row of ground blocks along the bottom and adds the
// configured platforms.
func (g *Game) buildLevel() *physics.Space {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	size := g.cfg.Level.BlockSize
	space := physics.NewSpace(w, h, int(size))

	if g.cfg.Level.Ground {
		for x := 0.0; x < w; x += size {
			space.AddBlock(core.RectF{X: x, Y: h - size, W: size, H: size})
		}
	}
	for _, b := range g.cfg.Level.Platforms {
		space.AddBlock(core.RectF{X: b.X, Y: b.Y, W: b.W, H: b.H})
	}
	return space
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.walker == nil {
		g.Reset(core.DefaultConfig())
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	body := g.walker.Body
	beforeX := body.Position.X
	g.world.Step(g.runtime.TickSeconds())
	dx := body.Position.X - beforeX
	if dx < 0 {
		dx = -dx
	}
	g.distance += dx

	g.walker.Update(vehicle.InputFromFrame(in, core.Vec{}, g.cfg.World.Width, g.cfg.World.Height))

	return core.StepResult{State: g.State()}
}

// Walker exposes the controller for inspection.
func (g *Game) Walker() *vehicle.Walker {
	return g.walker
}

// Scene describes the current frame.
func (g *Game) Scene() scene.Scene {
	s := scene.Scene{
		Width:  g.cfg.World.Width,
		Height: g.cfg.World.Height,
		Paused: g.paused,
	}
	if g.walker == nil {
		return s
	}

	if sp := g.world.Space(); sp != nil {
		for _, b := range sp.Blocks() {
			s.Add(scene.Sprite{
				Kind:  scene.KindBlock,
				Pos:   b.Center(),
				Size:  core.V(b.W, b.H),
				Color: BlockColor,
			})
		}
	}

	body := g.walker.Body
	s.Add(scene.Sprite{
		Kind:  scene.KindWalker,
		Pos:   body.Position,
		Size:  body.Size,
		Frame: g.walker.Facing,
		Color: WalkerColor,
	})

	grounded := "air"
	if body.Blocked.Down {
		grounded = "ground"
	}
	s.HUD = []string{
		fmt.Sprintf("Score: %d  Speed: %.0f  %s", g.score(), body.Velocity.X, grounded),
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
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
