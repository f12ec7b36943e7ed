// Package sim implements the Invaders simulation core: the entity store, the
// fixed-step clock and gates, and the player, enemy, laser, collision and
// explosion systems run in a fixed order every tick.
//
// The package draws nothing and reads no files. Viewport size and sprite
// footprints come from a Host, input arrives as a polled Input per tick, and
// the renderer reads World.Snapshot.
package sim

// Size is a width/height pair in world units.
type Size struct {
	W, H float64
}

// Sprite identifies a sprite whose footprint sizes a collision box.
type Sprite int

const (
	SpritePlayer Sprite = iota
	SpriteEnemy
	SpritePlayerLaser
	SpriteEnemyLaser
)

// String returns the sprite name used in config files.
func (s Sprite) String() string {
	switch s {
	case SpritePlayer:
		return "player"
	case SpriteEnemy:
		return "enemy"
	case SpritePlayerLaser:
		return "player_laser"
	case SpriteEnemyLaser:
		return "enemy_laser"
	default:
		return "unknown"
	}
}

// Input is the polled intent state for one tick.
type Input struct {
	Left  bool
	Right bool
	Fire  bool
}

// Host is the platform layer the simulation reads its environment from.
type Host interface {
	// Viewport returns the playfield size. The origin is its centre, y grows up.
	Viewport() Size

	// Footprint returns the unscaled sprite size used for collision boxes.
	Footprint(s Sprite) Size
}

// StaticHost is a Host with fixed dimensions.
type StaticHost struct {
	View    Size
	Sprites map[Sprite]Size
}

// Viewport implements Host.
func (h StaticHost) Viewport() Size {
	return h.View
}

// Footprint implements Host. Unknown sprites have a zero footprint.
func (h StaticHost) Footprint(s Sprite) Size {
	return h.Sprites[s]
}

// DefaultHost returns the reference playfield: a 598x676 window and the
// reference sprite sizes.
func DefaultHost() StaticHost {
	return StaticHost{
		View: Size{W: 598, H: 676},
		Sprites: map[Sprite]Size{
			SpritePlayer:      {W: 144, H: 75},
			SpriteEnemy:       {W: 64, H: 64},
			SpritePlayerLaser: {W: 9, H: 54},
			SpriteEnemyLaser:  {W: 17, H: 55},
		},
	}
}
