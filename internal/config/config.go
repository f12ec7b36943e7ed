// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders game.
package config

// InvadersConfig contains all configuration for the invaders game.
type InvadersConfig struct {
	Viewport   InvadersViewport  `yaml:"viewport"`
	Timing     InvadersTiming    `yaml:"timing"`
	Player     InvadersPlayer    `yaml:"player"`
	Enemy      InvadersEnemy     `yaml:"enemy"`
	Laser      InvadersLaser     `yaml:"laser"`
	Explosion  InvadersExplosion `yaml:"explosion"`
	Sprites    InvadersSprites   `yaml:"sprites"`
	Gameplay   InvadersGameplay  `yaml:"gameplay"`
	Input      InvadersInput     `yaml:"input"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// InvadersViewport is the playfield size in world units. The origin is its
// centre and y grows upward.
type InvadersViewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InvadersTiming defines the fixed tick rate and system cadences in seconds.
type InvadersTiming struct {
	TickRate           int     `yaml:"tick_rate"`
	RespawnDelay       float64 `yaml:"respawn_delay"`
	RespawnInterval    float64 `yaml:"respawn_interval"`
	EnemySpawnInterval float64 `yaml:"enemy_spawn_interval"`
	EnemyFireInterval  float64 `yaml:"enemy_fire_interval"`
}

// InvadersPlayer defines the player ship.
type InvadersPlayer struct {
	Speed        float64 `yaml:"speed"`
	Scale        float64 `yaml:"scale"`
	BottomOffset float64 `yaml:"bottom_offset"`
}

// InvadersEnemy defines enemy spawning.
type InvadersEnemy struct {
	Cap         int     `yaml:"cap"`
	SpawnMargin float64 `yaml:"spawn_margin"`
}

// InvadersLaser defines both laser kinds.
type InvadersLaser struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	PlayerScale float64 `yaml:"player_scale"`
	EnemyScale  float64 `yaml:"enemy_scale"`
	OffsetX     float64 `yaml:"offset_x"` // Horizontal offset of each laser in the player pair
	OffsetY     float64 `yaml:"offset_y"`
	CullMargin  float64 `yaml:"cull_margin"`
}

// InvadersExplosion defines the explosion animation.
type InvadersExplosion struct {
	Frames        int     `yaml:"frames"`
	FrameInterval float64 `yaml:"frame_interval"`
}

// InvadersSprites holds unscaled sprite footprints used for collision boxes.
type InvadersSprites struct {
	Player      SpriteSize `yaml:"player"`
	Enemy       SpriteSize `yaml:"enemy"`
	PlayerLaser SpriteSize `yaml:"player_laser"`
	EnemyLaser  SpriteSize `yaml:"enemy_laser"`
}

// SpriteSize is a width/height pair in world units.
type SpriteSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InvadersGameplay defines scoring and lives.
type InvadersGameplay struct {
	Lives      int `yaml:"lives"`
	KillPoints int `yaml:"kill_points"`
}

// InvadersInput defines how terminal key repeats become held keys.
type InvadersInput struct {
	HoldMs int `yaml:"hold_ms"` // A key stays held this long after its last press or repeat
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to enemy laser speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the enemy fire interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
