package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Viewport: InvadersViewport{
			Width:  598,
			Height: 676,
		},
		Timing: InvadersTiming{
			TickRate:           60,
			RespawnDelay:       2.0,
			RespawnInterval:    0.5,
			EnemySpawnInterval: 1.0,
			EnemyFireInterval:  0.9,
		},
		Player: InvadersPlayer{
			Speed:        500,
			Scale:        0.5,
			BottomOffset: 25,
		},
		Enemy: InvadersEnemy{
			Cap:         1,
			SpawnMargin: 100,
		},
		Laser: InvadersLaser{
			PlayerSpeed: 500,
			EnemySpeed:  500,
			PlayerScale: 0.4,
			EnemyScale:  0.5,
			OffsetX:     31,
			OffsetY:     15,
			CullMargin:  50,
		},
		Explosion: InvadersExplosion{
			Frames:        16,
			FrameInterval: 0.05,
		},
		Sprites: InvadersSprites{
			Player:      SpriteSize{Width: 144, Height: 75},
			Enemy:       SpriteSize{Width: 64, Height: 64},
			PlayerLaser: SpriteSize{Width: 9, Height: 54},
			EnemyLaser:  SpriteSize{Width: 17, Height: 55},
		},
		Gameplay: InvadersGameplay{
			Lives:      3,
			KillPoints: 10,
		},
		Input: InvadersInput{
			HoldMs: 180,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.6,
				IntervalReduction: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders", "invaders_endless":
		return defaultInvadersYAML
	default:
		return nil
	}
}
