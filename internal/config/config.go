// Package config provides YAML-based game configuration loading for the two
// Star Catcher variants.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Playfield is the size of the simulated area in pixels.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyConfig contains all configuration for the flappy variant.
type FlappyConfig struct {
	Playfield   Playfield     `yaml:"playfield"`
	Physics     FlappyPhysics `yaml:"physics"`
	Pipes       FlappyPipes   `yaml:"pipes"`
	Bird        FlappyBird    `yaml:"bird"`
	Star        StarSize      `yaml:"star"`
	FloorMargin float64       `yaml:"floor_margin"` // Bird may sink this far into the bottom edge
}

// FlappyPhysics defines the bird kinematics.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Added to vertical velocity every tick
	FlapStrength float64 `yaml:"flap_strength"` // Velocity set by a flap (negative = up)
}

// FlappyPipes defines pipe scrolling and spawning.
type FlappyPipes struct {
	Speed     float64 `yaml:"speed"`      // Pixels moved left per tick
	Gap       float64 `yaml:"gap"`        // Height of the passable gap
	Width     float64 `yaml:"width"`      // Pipe width
	Interval  int     `yaml:"interval"`   // Ticks between spawns
	GapMargin int     `yaml:"gap_margin"` // Min distance of the gap centre from top/bottom
}

// FlappyBird defines the bird sprite and the hitbox derived from it.
type FlappyBird struct {
	SpriteWidth       float64 `yaml:"sprite_width"`
	SpriteHeight      float64 `yaml:"sprite_height"`
	Scale             float64 `yaml:"scale"`
	HitboxWidthRatio  float64 `yaml:"hitbox_width_ratio"`
	HitboxHeightRatio float64 `yaml:"hitbox_height_ratio"`
	MinHitbox         int     `yaml:"min_hitbox"`
	HitboxOffsetY     float64 `yaml:"hitbox_offset_y"`
}

// StarSize is the size of a star sprite (and its hitbox).
type StarSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CatcherConfig contains all configuration for the catcher variant.
type CatcherConfig struct {
	Playfield Playfield     `yaml:"playfield"`
	Basket    CatcherBasket `yaml:"basket"`
	Star      CatcherStar   `yaml:"star"`
	Lives     int           `yaml:"lives"`
}

// CatcherBasket defines the player-controlled basket.
type CatcherBasket struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Step         float64 `yaml:"step"`          // Pixels moved per tick while a direction is held
	BottomOffset float64 `yaml:"bottom_offset"` // Gap between basket bottom and playfield bottom
}

// CatcherStar defines the falling star and its speed ramp.
type CatcherStar struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added on every catch
	SpawnMargin    float64 `yaml:"spawn_margin"`    // Horizontal margin for respawn x
	SpawnOffset    float64 `yaml:"spawn_offset"`    // Respawn distance above the top edge
}

func (p Playfield) validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalid, p.Width, p.Height)
	}
	return nil
}

// Validate reports the first impossible value in the config.
func (c FlappyConfig) Validate() error {
	if err := c.Playfield.validate(); err != nil {
		return err
	}
	switch {
	case c.Pipes.Interval <= 0:
		return fmt.Errorf("%w: pipes.interval must be positive, got %d", ErrInvalid, c.Pipes.Interval)
	case c.Pipes.Width < 0 || c.Pipes.Gap < 0:
		return fmt.Errorf("%w: pipe width and gap must not be negative", ErrInvalid)
	case c.Pipes.GapMargin < 0 || float64(2*c.Pipes.GapMargin) > c.Playfield.Height:
		return fmt.Errorf("%w: pipes.gap_margin %d leaves no room in a %v px playfield",
			ErrInvalid, c.Pipes.GapMargin, c.Playfield.Height)
	case c.Bird.SpriteWidth < 0 || c.Bird.SpriteHeight < 0 || c.Bird.Scale < 0:
		return fmt.Errorf("%w: bird sprite size and scale must not be negative", ErrInvalid)
	case c.Bird.MinHitbox < 0:
		return fmt.Errorf("%w: bird.min_hitbox must not be negative", ErrInvalid)
	case c.Star.Width < 0 || c.Star.Height < 0:
		return fmt.Errorf("%w: star size must not be negative", ErrInvalid)
	}
	return nil
}

// Validate reports the first impossible value in the config.
func (c CatcherConfig) Validate() error {
	if err := c.Playfield.validate(); err != nil {
		return err
	}
	switch {
	case c.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalid, c.Lives)
	case c.Basket.Width < 0 || c.Basket.Height < 0 || c.Basket.Width > c.Playfield.Width:
		return fmt.Errorf("%w: basket %vx%v does not fit the playfield", ErrInvalid, c.Basket.Width, c.Basket.Height)
	case c.Basket.Step < 0:
		return fmt.Errorf("%w: basket.step must not be negative", ErrInvalid)
	case c.Star.Width < 0 || c.Star.Height < 0:
		return fmt.Errorf("%w: star size must not be negative", ErrInvalid)
	case c.Star.SpawnMargin < 0 || 2*c.Star.SpawnMargin > c.Playfield.Width:
		return fmt.Errorf("%w: star.spawn_margin %v leaves no room in a %v px playfield",
			ErrInvalid, c.Star.SpawnMargin, c.Playfield.Width)
	case c.Star.InitialSpeed < 0 || c.Star.SpeedIncrement < 0:
		return fmt.Errorf("%w: star speeds must not be negative", ErrInvalid)
	}
	return nil
}
