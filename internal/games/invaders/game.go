// Package invaders adapts the shooter simulation to the arcade platform:
// config loading, lives and scoring, difficulty progression and cell rendering.
package invaders

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// GameState constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover" // No lives left
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeLives   GameMode = iota // Limited ships, game over when they run out
	ModeEndless                 // The player respawns forever
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives simulation events. It discards output until SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes game event logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game on top of a sim.World.
type Game struct {
	mode  GameMode
	world *sim.World

	state string
	lives int

	// Difficulty-driven tuning currently applied to the world
	fireInterval float64
	laserSpeed   float64

	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
	difficulty *config.DifficultyManager

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game with limited lives.
func New() *Game {
	return &Game{mode: ModeLives}
}

// NewEndless creates a game where the player always respawns.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "invaders_endless"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Invaders (Endless)"
	}
	return "Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	simCfg := SimConfig(cfg)
	g.world = sim.New(simCfg, Host(cfg), runtime.Seed)
	g.fireInterval = simCfg.EnemyFireInterval
	g.laserSpeed = simCfg.EnemyLaserSpeed

	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.state = StatePlaying
	g.lives = cfg.Gameplay.Lives
	if g.mode == ModeEndless {
		g.lives = core.UnlimitedLives
	}

	logger.Debug("game reset", "game", g.ID(), "seed", runtime.Seed, "tick_rate", simCfg.TickRate, "lives", g.lives)
}

// SimConfig converts the YAML configuration into simulation tunables.
func SimConfig(cfg config.InvadersConfig) sim.Config {
	return sim.Config{
		TickRate:           cfg.Timing.TickRate,
		Speed:              cfg.Player.Speed,
		PlayerLaserSpeed:   cfg.Laser.PlayerSpeed,
		EnemyLaserSpeed:    cfg.Laser.EnemySpeed,
		RespawnDelay:       cfg.Timing.RespawnDelay,
		RespawnInterval:    cfg.Timing.RespawnInterval,
		EnemySpawnInterval: cfg.Timing.EnemySpawnInterval,
		EnemyFireInterval:  cfg.Timing.EnemyFireInterval,
		EnemyCap:           cfg.Enemy.Cap,
		SpawnMargin:        cfg.Enemy.SpawnMargin,
		ShipScale:          cfg.Player.Scale,
		PlayerLaserScale:   cfg.Laser.PlayerScale,
		EnemyLaserScale:    cfg.Laser.EnemyScale,
		PlayerBottomOffset: cfg.Player.BottomOffset,
		LaserOffsetX:       cfg.Laser.OffsetX,
		LaserOffsetY:       cfg.Laser.OffsetY,
		CullMargin:         cfg.Laser.CullMargin,
		ExplosionFrames:    cfg.Explosion.Frames,
		ExplosionInterval:  cfg.Explosion.FrameInterval,
	}
}

// Host builds the simulation host from the viewport and sprite sections.
func Host(cfg config.InvadersConfig) sim.StaticHost {
	size := func(s config.SpriteSize) sim.Size {
		return sim.Size{W: s.Width, H: s.Height}
	}
	return sim.StaticHost{
		View: sim.Size{W: cfg.Viewport.Width, H: cfg.Viewport.Height},
		Sprites: map[sim.Sprite]sim.Size{
			sim.SpritePlayer:      size(cfg.Sprites.Player),
			sim.SpriteEnemy:       size(cfg.Sprites.Enemy),
			sim.SpritePlayerLaser: size(cfg.Sprites.PlayerLaser),
			sim.SpriteEnemyLaser:  size(cfg.Sprites.EnemyLaser),
		},
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	ev := g.world.Step(sim.Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Fire:  in.Has(core.ActionFire),
	})
	g.handleEvents(ev)
	g.applyDifficulty()

	return core.StepResult{State: g.State()}
}

// handleEvents logs world events and spends lives.
func (g *Game) handleEvents(ev sim.Events) {
	tick := g.world.Clock().Tick()

	if ev.PlayerSpawned {
		logger.Debug("player spawned", "tick", tick)
	}
	if ev.EnemiesDestroyed > 0 {
		logger.Debug("enemy destroyed", "tick", tick, "count", ev.EnemiesDestroyed, "score", g.score())
	}
	if !ev.PlayerDestroyed {
		return
	}

	logger.Debug("player destroyed", "tick", tick, "deaths", g.world.Stats().Deaths)
	if g.mode == ModeEndless {
		return
	}
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		logger.Info("game over", "score", g.score(), "ticks", tick)
	}
}

// applyDifficulty retunes enemy fire from the current score.
func (g *Game) applyDifficulty() {
	if !g.difficulty.IsEnabled() {
		return
	}
	score := g.score()
	ticks := int(g.world.Clock().Tick()) //#nosec G115 -- tick count fits in int

	interval := g.difficulty.Interval(g.cfg.Timing.EnemyFireInterval, score, ticks)
	if interval != g.fireInterval {
		g.fireInterval = interval
		g.world.SetEnemyFireInterval(interval)
	}

	speed := g.difficulty.Speed(g.cfg.Laser.EnemySpeed, score, ticks)
	if speed != g.laserSpeed {
		g.laserSpeed = speed
		g.world.SetEnemyLaserSpeed(speed)
	}
}

// score is kills weighted by the configured points per kill.
func (g *Game) score() int {
	return g.world.Stats().Kills * g.cfg.Gameplay.KillPoints
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		Lives:    g.lives,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// RunStats returns totals for the current run.
func (g *Game) RunStats() core.RunStats {
	st := g.world.Stats()
	return core.RunStats{
		Kills:  st.Kills,
		Deaths: st.Deaths,
		Shots:  st.Shots,
		Ticks:  g.world.Clock().Tick(),
	}
}

// Resize adapts rendering to a new screen without restarting the run.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.screenTooSmall = screenW < g.minScreenW || screenH < g.minScreenH
}

// World exposes the simulation for inspection.
func (g *Game) World() *sim.World {
	return g.world
}

// SimRate returns the fixed simulation rate in steps per second. It comes
// from timing.tick_rate and does not follow the render rate.
func (g *Game) SimRate() int {
	return g.world.Clock().Rate()
}

// HoldDuration returns how long a key stays held after its last press, in milliseconds.
func (g *Game) HoldDuration() int {
	return g.cfg.Input.HoldMs
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_endless", func() registry.Game {
		return NewEndless()
	})
}

// livesText formats remaining lives for the HUD.
func (g *Game) livesText() string {
	if g.lives == core.UnlimitedLives {
		return "Lives: ∞"
	}
	return fmt.Sprintf("Lives: %d", g.lives)
}
