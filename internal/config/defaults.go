package config

import (
	_ "embed"
)

//go:embed defaults/tank.yaml
var defaultTankYAML []byte

//go:embed defaults/flyer.yaml
var defaultFlyerYAML []byte

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultTankConfig returns the default tank configuration.
func DefaultTankConfig() TankConfig {
	return TankConfig{
		World: WorldConfig{Width: 848, Height: 450},
		Hull: TankHull{
			RotationSpeed: 180,
			Acceleration:  10,
			MaxSpeed:      100,
			Drag:          1000,
			SpeedDecay:    4,
			DecayMode:     "tick",
			StartAngle:    -90,
			Size:          32,
		},
		Weapon: TankWeapon{
			ShotDelay:   200,
			BulletSpeed: 500,
			PoolSize:    3,
			BulletSize:  8,
		},
		Audio: AudioConfig{
			TreadsVolume: 0.4,
			PewVolume:    1.0,
		},
	}
}

// DefaultFlyerConfig returns the default flyer configuration.
func DefaultFlyerConfig() FlyerConfig {
	return FlyerConfig{
		World: WorldConfig{Width: 848, Height: 450},
		Ship: FlyerShip{
			RotationSpeed: 180,
			Acceleration:  200,
			MaxSpeed:      250,
			Drag:          25,
			StartAngle:    -90,
			Size:          24,
		},
		Audio: AudioConfig{
			ThrustVolume: 0.5,
		},
	}
}

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: WorldConfig{Width: 848, Height: 450},
		Player: PlatformerPlayer{
			Acceleration: 1500,
			MaxSpeed:     500,
			Drag:         600,
			Width:        32,
			Height:       32,
			StartX:       424,
			StartY:       225,
		},
		Gravity: 980,
		Level: LevelConfig{
			BlockSize: 32,
			Ground:    true,
			Platforms: []Block{
				{X: 160, Y: 320, W: 128, H: 16},
				{X: 560, Y: 260, W: 160, H: 16},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tank":
		return defaultTankYAML
	case "flyer":
		return defaultFlyerYAML
	case "platformer":
		return defaultPlatformerYAML
	default:
		return nil
	}
}
