package sim

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Config holds the tunable simulation constants. Distances are world units,
// times are seconds, speeds are units per second.
type Config struct {
	TickRate int // Fixed steps per second

	Speed            float64 // Ship speed
	PlayerLaserSpeed float64
	EnemyLaserSpeed  float64

	RespawnDelay       float64 // Minimum time dead before a respawn
	RespawnInterval    float64 // Player respawn attempt gate
	EnemySpawnInterval float64 // Enemy spawn attempt gate
	EnemyFireInterval  float64 // Enemy volley gate

	EnemyCap    int     // Maximum live enemies
	SpawnMargin float64 // Inset from each viewport edge for enemy spawns

	ShipScale        float64
	PlayerLaserScale float64
	EnemyLaserScale  float64

	PlayerBottomOffset float64 // Player height above the bottom edge
	LaserOffsetX       float64 // Horizontal offset of each player laser
	LaserOffsetY       float64 // Vertical offset of lasers from the shooter
	CullMargin         float64 // Distance past the edge before a laser is removed

	ExplosionFrames   int
	ExplosionInterval float64
}

// DefaultConfig returns the reference ruleset.
func DefaultConfig() Config {
	return Config{
		TickRate: 60,

		Speed:            500,
		PlayerLaserSpeed: 500,
		EnemyLaserSpeed:  500,

		RespawnDelay:       2.0,
		RespawnInterval:    0.5,
		EnemySpawnInterval: 1.0,
		EnemyFireInterval:  0.9,

		EnemyCap:    1,
		SpawnMargin: 100,

		ShipScale:        0.5,
		PlayerLaserScale: 0.4,
		EnemyLaserScale:  0.5,

		PlayerBottomOffset: 25,
		LaserOffsetX:       31,
		LaserOffsetY:       15,
		CullMargin:         50,

		ExplosionFrames:   16,
		ExplosionInterval: 0.05,
	}
}

// Stats are running totals since the world was created.
type Stats struct {
	Kills  int // Enemies destroyed
	Deaths int // Times the player was destroyed
	Shots  int // Lasers fired by the player
}

// Events describes what happened during a single Step.
type Events struct {
	PlayerSpawned      bool
	PlayerDestroyed    bool
	EnemiesSpawned     int
	EnemiesDestroyed   int
	LasersFired        int // Player and enemy lasers
	LasersCulled       int
	ExplosionsFinished int
}

// World is the simulation context handed to every system. It owns the store
// and the process-wide singletons so systems never reach for globals.
type World struct {
	cfg   Config
	host  Host
	clock *Clock
	store *Store
	rng   *rand.Rand

	respawnGate *Gate
	spawnGate   *Gate
	fireGate    *Gate

	player     PlayerState
	enemies    ActiveEnemies
	explosions []ExplosionRequest

	stats  Stats
	events Events
}

// New creates a world and performs the startup player spawn.
// The seed drives enemy placement; equal seeds and inputs replay identically.
func New(cfg Config, host Host, seed int64) *World {
	clock := NewClock(cfg.TickRate)
	rate := clock.Rate()

	w := &World{
		cfg:         cfg,
		host:        host,
		clock:       clock,
		store:       NewStore(),
		rng:         rand.New(rand.NewSource(seed)),
		respawnGate: NewGate(cfg.RespawnInterval, rate),
		spawnGate:   NewGate(cfg.EnemySpawnInterval, rate),
		fireGate:    NewGate(cfg.EnemyFireInterval, rate),
	}

	TrySpawnPlayer(w)
	w.store.Flush()
	return w
}

// Step runs one fixed tick. Systems run in a fixed order and the store is
// flushed once at the end.
func (w *World) Step(in Input) Events {
	w.events = Events{}
	w.clock.Advance()

	if w.respawnGate.Step() {
		TrySpawnPlayer(w)
	}
	MovePlayer(w, in)
	FirePlayer(w, in)

	if w.spawnGate.Step() {
		TrySpawnEnemy(w)
	}
	if w.fireGate.Step() {
		FireEnemies(w)
	}

	MoveLasers(w)

	ResolvePlayerHits(w)
	ResolveEnemyHits(w)

	SpawnExplosions(w)
	AnimateExplosions(w)

	w.store.Flush()
	return w.events
}

// Config returns the active configuration.
func (w *World) Config() Config {
	return w.cfg
}

// Host returns the platform host.
func (w *World) Host() Host {
	return w.host
}

// Clock returns the fixed-step clock.
func (w *World) Clock() *Clock {
	return w.clock
}

// Store returns the entity store.
func (w *World) Store() *Store {
	return w.store
}

// Player returns the player lifecycle state.
func (w *World) Player() *PlayerState {
	return &w.player
}

// Enemies returns the live enemy counter.
func (w *World) Enemies() *ActiveEnemies {
	return &w.enemies
}

// Stats returns running totals.
func (w *World) Stats() Stats {
	return w.stats
}

// PendingExplosions returns explosion requests not yet turned into entities.
func (w *World) PendingExplosions() []ExplosionRequest {
	return w.explosions
}

// SetEnemyFireInterval retunes the enemy volley gate.
func (w *World) SetEnemyFireInterval(seconds float64) {
	w.cfg.EnemyFireInterval = seconds
	w.fireGate.SetInterval(seconds, w.clock.Rate())
}

// SetEnemyLaserSpeed changes the speed of enemy lasers fired from now on.
func (w *World) SetEnemyLaserSpeed(speed float64) {
	w.cfg.EnemyLaserSpeed = speed
}

// Box returns the collision box of e: its sprite footprint scaled by the
// absolute scale and centred on its position.
func (w *World) Box(e *Entity) core.Box {
	fp := w.host.Footprint(e.Sprite())
	return core.BoxAt(
		e.Transform.X,
		e.Transform.Y,
		fp.W*math.Abs(e.Transform.ScaleX),
		fp.H*math.Abs(e.Transform.ScaleY),
	)
}

// View is a read-only render record for one entity.
type View struct {
	Handle Handle
	Kind   Kind
	Origin Origin
	X, Y   float64
	Z      float64
	ScaleX float64
	ScaleY float64
	Frame  int
}

// Snapshot returns every live entity ordered by layer, then creation order.
func (w *World) Snapshot() []View {
	all := w.store.All()
	views := make([]View, 0, len(all))
	for i := range all {
		e := &all[i]
		views = append(views, View{
			Handle: e.Handle,
			Kind:   e.Kind,
			Origin: e.Origin,
			X:      e.Transform.X,
			Y:      e.Transform.Y,
			Z:      e.Transform.Z,
			ScaleX: e.Transform.ScaleX,
			ScaleY: e.Transform.ScaleY,
			Frame:  e.Frame,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Z < views[j].Z
	})
	return views
}
