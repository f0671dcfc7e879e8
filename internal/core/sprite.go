package core

// SpriteKind identifies what a sprite depicts so a renderer can pick a look.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpritePipe
	SpriteStar
	SpriteBasket
)

// String returns a human-readable name for the sprite kind.
func (k SpriteKind) String() string {
	switch k {
	case SpritePlayer:
		return "Player"
	case SpritePipe:
		return "Pipe"
	case SpriteStar:
		return "Star"
	case SpriteBasket:
		return "Basket"
	default:
		return "Unknown"
	}
}

// Sprite is one entry of the draw list a game exposes each frame.
// Box is in playfield pixels. Angle is the tilt in degrees (player only).
type Sprite struct {
	Kind    SpriteKind
	Box     Hitbox
	Angle   float64
	Visible bool
}
