package flappy

import (
	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
)

// Tilt limits in degrees. Positive is nose-up.
const (
	minTilt = -30
	maxTilt = 60
)

// Bird is the player entity. X never changes during a run.
type Bird struct {
	X, Y float64 // Sprite centre
	VY   float64 // Vertical velocity, positive = down
	cfg  config.FlappyBird
}

// NewBird creates a bird at rest centred on (x, y).
func NewBird(x, y float64, cfg config.FlappyBird) *Bird {
	return &Bird{X: x, Y: y, cfg: cfg}
}

// Flap replaces the current vertical velocity with the flap strength.
func (b *Bird) Flap(strength float64) {
	b.VY = strength
}

// Update applies one tick of gravity and moves the bird.
func (b *Bird) Update(gravity float64) {
	b.VY += gravity
	b.Y += b.VY
}

// Angle returns the tilt in degrees derived from the current velocity.
func (b *Bird) Angle() float64 {
	return core.ClampF(-b.VY*4, minTilt, maxTilt)
}

// SpriteSize returns the scaled sprite dimensions.
func (b *Bird) SpriteSize() (w, h float64) {
	return b.cfg.SpriteWidth * b.cfg.Scale, b.cfg.SpriteHeight * b.cfg.Scale
}

// Hitbox returns the collision box for the bird's current position.
// It is a fixed fraction of the sprite, truncated to whole pixels and never
// smaller than MinHitbox, centred slightly above the sprite centre.
func (b *Bird) Hitbox() core.Hitbox {
	sw, sh := b.SpriteSize()
	w := core.Max(b.cfg.MinHitbox, int(sw*b.cfg.HitboxWidthRatio))
	h := core.Max(b.cfg.MinHitbox, int(sh*b.cfg.HitboxHeightRatio))
	return core.HitboxFromCenter(b.X, b.Y+b.cfg.HitboxOffsetY, float64(w), float64(h))
}

// Sprite returns the draw-list entry for the bird.
func (b *Bird) Sprite() core.Sprite {
	sw, sh := b.SpriteSize()
	return core.Sprite{
		Kind:    core.SpritePlayer,
		Box:     core.HitboxFromCenter(b.X, b.Y, sw, sh),
		Angle:   b.Angle(),
		Visible: true,
	}
}
