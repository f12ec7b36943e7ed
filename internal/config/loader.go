package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("invaders.yaml"), filepath.Join("configs", "invaders.yaml")} {
		if path == "" {
			continue
		}
		if c, ok := tryLoad(path); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultInvadersConfig()
	if err := yaml.Unmarshal(defaultInvadersYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (InvadersConfig, bool) {
	cfg := DefaultInvadersConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports every setting that would make the simulation unplayable.
func (c InvadersConfig) Validate() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	check(c.Viewport.Width > 0 && c.Viewport.Height > 0, "viewport must be positive")
	check(c.Timing.TickRate > 0, "timing.tick_rate must be positive")
	check(c.Timing.RespawnDelay >= 0, "timing.respawn_delay must not be negative")
	check(c.Timing.RespawnInterval > 0, "timing.respawn_interval must be positive")
	check(c.Timing.EnemySpawnInterval > 0, "timing.enemy_spawn_interval must be positive")
	check(c.Timing.EnemyFireInterval > 0, "timing.enemy_fire_interval must be positive")
	check(c.Enemy.Cap >= 1, "enemy.cap must be at least 1")
	check(c.Enemy.SpawnMargin >= 0, "enemy.spawn_margin must not be negative")
	check(c.Enemy.SpawnMargin < c.Viewport.Width/2 && c.Enemy.SpawnMargin < c.Viewport.Height/2,
		"enemy.spawn_margin leaves no room to spawn")
	check(c.Laser.PlayerSpeed > 0 && c.Laser.EnemySpeed > 0, "laser speeds must be positive")
	check(c.Laser.CullMargin >= 0, "laser.cull_margin must not be negative")
	check(c.Explosion.Frames > 0, "explosion.frames must be positive")
	check(c.Explosion.FrameInterval > 0, "explosion.frame_interval must be positive")
	check(c.Input.HoldMs >= 0, "input.hold_ms must not be negative")

	return errors.Join(errs...)
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Timing.EnemyFireInterval *= 1.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Enemy.Cap++
	}
}
