// Package catcher implements the falling-star variant: a basket slides along
// the bottom of the playfield and catches a single star that falls faster
// after every catch. Every missed star costs a life.
package catcher

import (
	"math/rand"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

// ID is the registry identifier of this variant.
const ID = "catcher"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path used by games created afterwards.
func SetConfigPath(path string) {
	configPath = path
}

// Basket is the player entity. It only moves horizontally.
type Basket struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Hitbox returns the collision box of the basket.
func (b Basket) Hitbox() core.Hitbox {
	return core.NewHitbox(b.X, b.Y, b.W, b.H)
}

// Star is the falling object. A single instance is reused for the whole run.
type Star struct {
	X, Y  float64 // Centre
	Speed float64 // Pixels fallen per tick
	W, H  float64
}

// Hitbox returns the collision box of the star.
func (s Star) Hitbox() core.Hitbox {
	return core.HitboxFromCenter(s.X, s.Y, s.W, s.H)
}

// Game implements the catcher variant.
type Game struct {
	cfg       config.CatcherConfig
	loaded    bool
	rng       *rand.Rand
	basket    Basket
	star      Star
	lives     int
	tickCount int
}

// New creates a game that loads its configuration on the first Reset.
func New() *Game {
	return &Game{cfg: config.DefaultCatcherConfig()}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.CatcherConfig) *Game {
	return &Game{cfg: cfg, loaded: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Catcher (falling stars)"
}

// Config returns the configuration in use.
func (g *Game) Config() config.CatcherConfig {
	return g.cfg
}

// Reset starts a fresh run: full lives, a centred basket and a star waiting
// above the top edge at its initial speed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.loaded {
		cfg, err := config.LoadCatcher(configPath)
		if err != nil {
			cfg = config.DefaultCatcherConfig()
		}
		g.cfg = cfg
		g.loaded = true
	}
	if rc.Width > 0 && rc.Height > 0 {
		g.cfg.Playfield = config.Playfield{Width: rc.Width, Height: rc.Height}
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	w, h := g.Playfield()
	bc := g.cfg.Basket
	g.basket = Basket{
		X: (w - bc.Width) / 2,
		Y: h - bc.BottomOffset - bc.Height,
		W: bc.Width,
		H: bc.Height,
	}
	g.star = Star{
		Speed: g.cfg.Star.InitialSpeed,
		W:     g.cfg.Star.Width,
		H:     g.cfg.Star.Height,
	}
	g.respawnStar()
	g.lives = g.cfg.Lives
	g.tickCount = 0
}

// respawnStar moves the star to a random column above the top edge.
// Its speed is left untouched.
func (g *Game) respawnStar() {
	w, _ := g.Playfield()
	margin := int(g.cfg.Star.SpawnMargin)
	span := int(w) - 2*margin
	x := margin
	if span > 0 {
		x += g.rng.Intn(span + 1)
	}
	g.star.X = float64(x)
	g.star.Y = -g.cfg.Star.SpawnOffset
}

// Step advances the game by one tick. The miss check and the catch check are
// independent: both can fire in the same tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult
	g.tickCount++

	w, h := g.Playfield()
	if in.Has(core.ActionLeft) {
		g.basket.X -= g.cfg.Basket.Step
	}
	if in.Has(core.ActionRight) {
		g.basket.X += g.cfg.Basket.Step
	}
	g.basket.X = core.ClampF(g.basket.X, 0, w-g.basket.W)

	g.star.Y += g.star.Speed

	if g.star.Hitbox().Top() > h {
		g.lives--
		g.respawnStar()
		if g.lives <= 0 {
			g.lives = 0
			res.Lethal = true
		}
	}

	if g.basket.Hitbox().Overlaps(g.star.Hitbox()) {
		res.Scored++
		g.star.Speed += g.cfg.Star.SpeedIncrement
		g.respawnStar()
	}

	return res
}

// Sprites returns the draw list: the star, then the basket.
func (g *Game) Sprites() []core.Sprite {
	return []core.Sprite{
		{Kind: core.SpriteStar, Box: g.star.Hitbox(), Visible: true},
		{Kind: core.SpriteBasket, Box: g.basket.Hitbox(), Visible: true},
	}
}

// Lives returns the remaining lives.
func (g *Game) Lives() (int, bool) {
	return g.lives, true
}

// Playfield returns the playfield size in pixels.
func (g *Game) Playfield() (width, height float64) {
	return g.cfg.Playfield.Width, g.cfg.Playfield.Height
}

// Basket returns the player entity.
func (g *Game) Basket() Basket {
	return g.basket
}

// Star returns the falling star.
func (g *Game) Star() Star {
	return g.star
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
