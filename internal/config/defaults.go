package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

// DefaultFlappyConfig returns the default flappy configuration.
// Values match defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: Playfield{Width: 480, Height: 640},
		Physics: FlappyPhysics{
			Gravity:      0.35,
			FlapStrength: -6.5,
		},
		Pipes: FlappyPipes{
			Speed:     2.6,
			Gap:       190,
			Width:     70,
			Interval:  120,
			GapMargin: 90,
		},
		Bird: FlappyBird{
			SpriteWidth:       64,
			SpriteHeight:      64,
			Scale:             0.7,
			HitboxWidthRatio:  0.45,
			HitboxHeightRatio: 0.55,
			MinHitbox:         8,
			HitboxOffsetY:     -2,
		},
		Star:        StarSize{Width: 32, Height: 32},
		FloorMargin: 10,
	}
}

// DefaultCatcherConfig returns the default catcher configuration.
// Values match defaults/catcher.yaml.
func DefaultCatcherConfig() CatcherConfig {
	return CatcherConfig{
		Playfield: Playfield{Width: 480, Height: 640},
		Basket: CatcherBasket{
			Width:        64,
			Height:       32,
			Step:         5,
			BottomOffset: 20,
		},
		Star: CatcherStar{
			Width:          32,
			Height:         32,
			InitialSpeed:   3.0,
			SpeedIncrement: 0.2,
			SpawnMargin:    20,
			SpawnOffset:    40,
		},
		Lives: 3,
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	case "catcher":
		return defaultCatcherYAML
	default:
		return nil
	}
}
