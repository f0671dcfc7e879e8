// Package flappy implements the side-scrolling variant: the player flaps a
// bird through gaps in pipes and collects the star waiting in each gap.
// A single pipe hit or leaving the playfield ends the run.
package flappy

import (
	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

// ID is the registry identifier of this variant.
const ID = "flappy"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path used by games created afterwards.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the flappy variant.
type Game struct {
	cfg       config.FlappyConfig
	loaded    bool
	bird      *Bird
	pipes     *PipeManager
	tickCount int
}

// New creates a game that loads its configuration on the first Reset.
func New() *Game {
	return &Game{cfg: config.DefaultFlappyConfig()}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg, loaded: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Catcher"
}

// Config returns the configuration in use.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset starts a fresh run: a new bird at the spawn point, no pipes and a
// full spawn timer. The playfield size from the runtime config wins over the
// file config when set.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.loaded {
		cfg, err := config.LoadFlappy(configPath)
		if err != nil {
			cfg = config.DefaultFlappyConfig()
		}
		g.cfg = cfg
		g.loaded = true
	}
	if rc.Width > 0 && rc.Height > 0 {
		g.cfg.Playfield = config.Playfield{Width: rc.Width, Height: rc.Height}
	}

	w, h := g.Playfield()
	g.bird = NewBird(w/2, h/2, g.cfg.Bird)
	g.tickCount = 0

	if g.pipes == nil {
		g.pipes = NewPipeManager(rc.Seed, g.cfg)
	} else {
		g.pipes.cfg = g.cfg
		g.pipes.screenW, g.pipes.screenH = w, h
		g.pipes.Reset(rc.Seed)
	}
}

// Step advances the game by one tick: flap, gravity, spawn, pipe pass and
// finally the playfield boundary check.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult
	g.tickCount++

	if in.Has(core.ActionFlap) {
		g.bird.Flap(g.cfg.Physics.FlapStrength)
		res.Flapped = true
	}

	g.bird.Update(g.cfg.Physics.Gravity)
	birdBox := g.bird.Hitbox()

	g.pipes.TickSpawner()

	collected, hit := g.pipes.Advance(birdBox)
	res.Scored = collected
	if hit {
		res.Lethal = true
		return res
	}

	_, h := g.Playfield()
	if birdBox.Top() < 0 || birdBox.Bottom() > h-g.cfg.FloorMargin {
		res.Lethal = true
	}

	return res
}

// Sprites returns the draw list: pipes and stars first, the bird on top.
func (g *Game) Sprites() []core.Sprite {
	if g.bird == nil {
		return nil
	}
	sprites := g.pipes.Sprites()
	return append(sprites, g.bird.Sprite())
}

// Lives reports that this variant has no lives.
func (g *Game) Lives() (int, bool) {
	return 0, false
}

// Playfield returns the playfield size in pixels.
func (g *Game) Playfield() (width, height float64) {
	return g.cfg.Playfield.Width, g.cfg.Playfield.Height
}

// Bird returns the player entity.
func (g *Game) Bird() *Bird {
	return g.bird
}

// Pipes returns the live pipes in spawn order.
func (g *Game) Pipes() []Pipe {
	if g.pipes == nil {
		return nil
	}
	return g.pipes.Pipes()
}

// SpawnTimer returns the ticks left until the next pipe spawns.
func (g *Game) SpawnTimer() int {
	if g.pipes == nil {
		return g.cfg.Pipes.Interval
	}
	return g.pipes.SpawnTimer()
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
