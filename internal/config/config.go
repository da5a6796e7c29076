// Package config provides YAML and TOML configuration loading for the
// vehicle games. Angles are written in degrees in files and exposed in
// radians through accessor methods.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/arcade-motion/internal/physics"
)

// WorldConfig describes the playfield in world units (pixels).
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// AudioConfig sets per-cue volumes, 0.0 - 1.0.
type AudioConfig struct {
	TreadsVolume float64 `yaml:"treads_volume" toml:"treads_volume"`
	PewVolume    float64 `yaml:"pew_volume" toml:"pew_volume"`
	ThrustVolume float64 `yaml:"thrust_volume" toml:"thrust_volume"`
}

// TankConfig contains all configuration for the tank game.
type TankConfig struct {
	World  WorldConfig `yaml:"world" toml:"world"`
	Hull   TankHull    `yaml:"hull" toml:"hull"`
	Weapon TankWeapon  `yaml:"weapon" toml:"weapon"`
	Audio  AudioConfig `yaml:"audio" toml:"audio"`
}

// TankHull defines the hull's movement.
type TankHull struct {
	RotationSpeed      float64 `yaml:"rotation_speed" toml:"rotation_speed"` // degrees/second
	Acceleration       float64 `yaml:"acceleration" toml:"acceleration"`     // speed gained per tick
	MaxSpeed           float64 `yaml:"max_speed" toml:"max_speed"`
	Drag               float64 `yaml:"drag" toml:"drag"`
	SpeedDecay         float64 `yaml:"speed_decay" toml:"speed_decay"`
	DecayMode          string  `yaml:"decay_mode" toml:"decay_mode"` // "tick" or "second"
	StartAngle         float64 `yaml:"start_angle" toml:"start_angle"` // degrees, 0 = right
	Size               float64 `yaml:"size" toml:"size"`
	CollideWorldBounds bool    `yaml:"collide_world_bounds" toml:"collide_world_bounds"`
}

// TankWeapon defines the turret's shells.
type TankWeapon struct {
	ShotDelay   int     `yaml:"shot_delay" toml:"shot_delay"` // milliseconds
	BulletSpeed float64 `yaml:"bullet_speed" toml:"bullet_speed"`
	PoolSize    int     `yaml:"pool_size" toml:"pool_size"`
	BulletSize  float64 `yaml:"bullet_size" toml:"bullet_size"`
}

// RotationSpeedRad returns the hull turn rate in radians/second.
func (h TankHull) RotationSpeedRad() float64 {
	return physics.DegToRad(h.RotationSpeed)
}

// StartAngleRad returns the initial heading in radians.
func (h TankHull) StartAngleRad() float64 {
	return physics.DegToRad(h.StartAngle)
}

// FlyerConfig contains all configuration for the flyer game.
type FlyerConfig struct {
	World WorldConfig `yaml:"world" toml:"world"`
	Ship  FlyerShip   `yaml:"ship" toml:"ship"`
	Audio AudioConfig `yaml:"audio" toml:"audio"`
}

// FlyerShip defines the ship's thrust and handling.
type FlyerShip struct {
	RotationSpeed float64 `yaml:"rotation_speed" toml:"rotation_speed"` // degrees/second
	Acceleration  float64 `yaml:"acceleration" toml:"acceleration"`     // units/second^2
	MaxSpeed      float64 `yaml:"max_speed" toml:"max_speed"`
	Drag          float64 `yaml:"drag" toml:"drag"`
	StartAngle    float64 `yaml:"start_angle" toml:"start_angle"`
	Size          float64 `yaml:"size" toml:"size"`
}

// RotationSpeedRad returns the ship turn rate in radians/second.
func (s FlyerShip) RotationSpeedRad() float64 {
	return physics.DegToRad(s.RotationSpeed)
}

// StartAngleRad returns the initial heading in radians.
func (s FlyerShip) StartAngleRad() float64 {
	return physics.DegToRad(s.StartAngle)
}

// PlatformerConfig contains all configuration for the platformer game.
type PlatformerConfig struct {
	World   WorldConfig      `yaml:"world" toml:"world"`
	Player  PlatformerPlayer `yaml:"player" toml:"player"`
	Gravity float64          `yaml:"gravity" toml:"gravity"`
	Level   LevelConfig      `yaml:"level" toml:"level"`
}

// PlatformerPlayer defines the walker.
type PlatformerPlayer struct {
	Acceleration float64 `yaml:"acceleration" toml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed" toml:"max_speed"`
	Drag         float64 `yaml:"drag" toml:"drag"`
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	StartX       float64 `yaml:"start_x" toml:"start_x"`
	StartY       float64 `yaml:"start_y" toml:"start_y"`
}

// LevelConfig lays out the static blocks.
type LevelConfig struct {
	BlockSize float64 `yaml:"block_size" toml:"block_size"`
	Ground    bool    `yaml:"ground" toml:"ground"` // Fill the bottom row with blocks
	Platforms []Block `yaml:"platforms" toml:"platforms"`
}

// Block is a solid rectangle in world units.
type Block struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
	W float64 `yaml:"w" toml:"w"`
	H float64 `yaml:"h" toml:"h"`
}

// Normalize replaces non-positive values with defaults.
func (c *TankConfig) Normalize() {
	d := DefaultTankConfig()
	c.World.normalize(d.World)
	positive(&c.Hull.RotationSpeed, d.Hull.RotationSpeed)
	positive(&c.Hull.Acceleration, d.Hull.Acceleration)
	positive(&c.Hull.MaxSpeed, d.Hull.MaxSpeed)
	positive(&c.Hull.SpeedDecay, d.Hull.SpeedDecay)
	positive(&c.Hull.Size, d.Hull.Size)
	nonNegative(&c.Hull.Drag)
	if c.Weapon.ShotDelay < 0 {
		c.Weapon.ShotDelay = d.Weapon.ShotDelay
	}
	positive(&c.Weapon.BulletSpeed, d.Weapon.BulletSpeed)
	positive(&c.Weapon.BulletSize, d.Weapon.BulletSize)
	if c.Weapon.PoolSize <= 0 {
		c.Weapon.PoolSize = d.Weapon.PoolSize
	}
	c.Audio.normalize()
}

// Validate reports settings that cannot be normalized.
func (c TankConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Hull.DecayMode)) {
	case "", "tick", "second", "seconds":
		return nil
	default:
		return fmt.Errorf("hull.decay_mode must be tick or second, got %q", c.Hull.DecayMode)
	}
}

// Normalize replaces non-positive values with defaults.
func (c *FlyerConfig) Normalize() {
	d := DefaultFlyerConfig()
	c.World.normalize(d.World)
	positive(&c.Ship.RotationSpeed, d.Ship.RotationSpeed)
	positive(&c.Ship.Acceleration, d.Ship.Acceleration)
	positive(&c.Ship.MaxSpeed, d.Ship.MaxSpeed)
	positive(&c.Ship.Size, d.Ship.Size)
	nonNegative(&c.Ship.Drag)
	c.Audio.normalize()
}

// Validate reports settings that cannot be normalized.
func (c FlyerConfig) Validate() error {
	return nil
}

// Normalize replaces non-positive values with defaults.
func (c *PlatformerConfig) Normalize() {
	d := DefaultPlatformerConfig()
	c.World.normalize(d.World)
	positive(&c.Player.Acceleration, d.Player.Acceleration)
	positive(&c.Player.MaxSpeed, d.Player.MaxSpeed)
	positive(&c.Player.Width, d.Player.Width)
	positive(&c.Player.Height, d.Player.Height)
	nonNegative(&c.Player.Drag)
	nonNegative(&c.Gravity)
	positive(&c.Level.BlockSize, d.Level.BlockSize)
	if c.Player.StartX <= 0 || c.Player.StartX >= c.World.Width {
		c.Player.StartX = c.World.Width / 2
	}
	if c.Player.StartY <= 0 || c.Player.StartY >= c.World.Height {
		c.Player.StartY = c.World.Height / 2
	}
}

// Validate reports settings that cannot be normalized.
func (c PlatformerConfig) Validate() error {
	for i, b := range c.Level.Platforms {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("level.platforms[%d] has empty size %gx%g", i, b.W, b.H)
		}
	}
	return nil
}

func (w *WorldConfig) normalize(d WorldConfig) {
	positive(&w.Width, d.Width)
	positive(&w.Height, d.Height)
}

func (a *AudioConfig) normalize() {
	a.TreadsVolume = clampVolume(a.TreadsVolume)
	a.PewVolume = clampVolume(a.PewVolume)
	a.ThrustVolume = clampVolume(a.ThrustVolume)
}

func positive(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}

func nonNegative(v *float64) {
	if *v < 0 {
		*v = 0
	}
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
