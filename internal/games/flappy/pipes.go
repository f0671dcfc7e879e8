package flappy

import (
	"math/rand"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
)

// Pipe is a pair of vertical barriers with a gap the bird must pass through.
// A star sits in the middle of the gap until it is collected.
type Pipe struct {
	X             float64 // Horizontal centre
	GapY          float64 // Vertical centre of the gap
	Gap           float64 // Gap height
	Width         float64
	StarCollected bool

	screenH float64
	star    config.StarSize
}

// TopRect returns the collision rectangle of the upper barrier.
func (p Pipe) TopRect() core.Hitbox {
	return core.NewHitbox(p.X-p.Width/2, 0, p.Width, p.GapY-p.Gap/2)
}

// BottomRect returns the collision rectangle of the lower barrier.
func (p Pipe) BottomRect() core.Hitbox {
	bottomY := p.GapY + p.Gap/2
	return core.NewHitbox(p.X-p.Width/2, bottomY, p.Width, p.screenH-bottomY)
}

// StarRect returns the collision rectangle of the embedded star.
func (p Pipe) StarRect() core.Hitbox {
	return core.HitboxFromCenter(p.X, p.GapY, p.star.Width, p.star.Height)
}

// OffScreen reports whether the pipe has scrolled past the left edge.
func (p Pipe) OffScreen() bool {
	return p.X+p.Width < 0
}

// PipeManager spawns pipes on a tick countdown, scrolls them and resolves
// collisions against the bird.
type PipeManager struct {
	pipes      []Pipe // Spawn order, oldest first
	rng        *rand.Rand
	spawnTimer int
	screenW    float64
	screenH    float64
	cfg        config.FlappyConfig
}

// NewPipeManager creates a pipe manager with the given RNG seed.
func NewPipeManager(seed int64, cfg config.FlappyConfig) *PipeManager {
	pm := &PipeManager{
		pipes:   make([]Pipe, 0, 8),
		screenW: cfg.Playfield.Width,
		screenH: cfg.Playfield.Height,
		cfg:     cfg,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all pipes, reseeds the RNG and rearms the spawn timer.
func (pm *PipeManager) Reset(seed int64) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rand.New(rand.NewSource(seed))
	pm.spawnTimer = pm.cfg.Pipes.Interval
}

// Pipes returns the live pipes in spawn order.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// SpawnTimer returns the ticks left until the next spawn.
func (pm *PipeManager) SpawnTimer() int {
	return pm.spawnTimer
}

// TickSpawner counts the spawn timer down by one tick and spawns a pipe when
// it runs out. At most one pipe is spawned per call.
func (pm *PipeManager) TickSpawner() {
	pm.spawnTimer--
	if pm.spawnTimer <= 0 {
		pm.spawn()
		pm.spawnTimer = pm.cfg.Pipes.Interval
	}
}

// spawn appends a pipe just beyond the right edge with a random gap centre.
func (pm *PipeManager) spawn() {
	margin := pm.cfg.Pipes.GapMargin
	span := int(pm.screenH) - 2*margin
	gapY := margin
	if span > 0 {
		gapY += pm.rng.Intn(span + 1)
	}

	pm.pipes = append(pm.pipes, Pipe{
		X:       pm.screenW + pm.cfg.Pipes.Width,
		GapY:    float64(gapY),
		Gap:     pm.cfg.Pipes.Gap,
		Width:   pm.cfg.Pipes.Width,
		screenH: pm.screenH,
		star:    pm.cfg.Star,
	})
}

// Advance scrolls every pipe one tick and checks it against the bird.
// Pipes are visited oldest first. Off-screen pipes are dropped. The first
// pipe the bird hits ends the pass: later pipes keep their position and are
// not checked this tick. Returns the stars collected and whether a pipe was hit.
func (pm *PipeManager) Advance(bird core.Hitbox) (collected int, hit bool) {
	retained := make([]Pipe, 0, len(pm.pipes))

	for i := range pm.pipes {
		p := pm.pipes[i]
		p.X -= pm.cfg.Pipes.Speed

		if p.OffScreen() {
			continue
		}

		if bird.Overlaps(p.TopRect()) || bird.Overlaps(p.BottomRect()) {
			retained = append(retained, p)
			retained = append(retained, pm.pipes[i+1:]...)
			pm.pipes = retained
			return collected, true
		}

		if !p.StarCollected && p.StarRect().Overlaps(bird) {
			p.StarCollected = true
			collected++
		}
		retained = append(retained, p)
	}

	pm.pipes = retained
	return collected, false
}

// Sprites returns the draw-list entries for all pipes and their stars.
func (pm *PipeManager) Sprites() []core.Sprite {
	sprites := make([]core.Sprite, 0, len(pm.pipes)*3)
	for _, p := range pm.pipes {
		sprites = append(sprites,
			core.Sprite{Kind: core.SpritePipe, Box: p.TopRect(), Visible: true},
			core.Sprite{Kind: core.SpritePipe, Box: p.BottomRect(), Visible: true},
			core.Sprite{Kind: core.SpriteStar, Box: p.StarRect(), Visible: !p.StarCollected},
		)
	}
	return sprites
}
