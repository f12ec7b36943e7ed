package sim

// ActiveEnemies counts live enemies. It is incremented on spawn and
// decremented only when a live enemy is despawned.
type ActiveEnemies struct {
	n int
}

// Inc records a spawned enemy.
func (a *ActiveEnemies) Inc() {
	a.n++
}

// Dec records a destroyed enemy. Going below zero means an enemy was counted
// twice and panics.
func (a *ActiveEnemies) Dec() {
	if a.n <= 0 {
		panic("sim: active enemy count underflow")
	}
	a.n--
}

// Value returns the current count.
func (a *ActiveEnemies) Value() int {
	return a.n
}

// TrySpawnEnemy places one enemy at a random point of the inset spawn
// rectangle if the population is below the cap.
func TrySpawnEnemy(w *World) bool {
	if w.enemies.Value() >= w.cfg.EnemyCap {
		return false
	}

	view := w.host.Viewport()
	x := w.uniform(view.W/2 - w.cfg.SpawnMargin)
	y := w.uniform(view.H/2 - w.cfg.SpawnMargin)

	w.store.Spawn(Entity{
		Kind: KindEnemy,
		Transform: Transform{
			X:      x,
			Y:      y,
			ScaleX: w.cfg.ShipScale,
			ScaleY: w.cfg.ShipScale,
		},
		Speed: w.cfg.Speed,
	})
	w.enemies.Inc()
	w.events.EnemiesSpawned++
	return true
}

// FireEnemies makes every live enemy fire one laser downward.
func FireEnemies(w *World) int {
	fired := 0
	w.store.Each(KindEnemy, func(e *Entity) {
		w.store.Spawn(Entity{
			Kind:   KindLaser,
			Origin: OriginEnemy,
			Transform: Transform{
				X:      e.Transform.X,
				Y:      e.Transform.Y - w.cfg.LaserOffsetY,
				ScaleX: w.cfg.EnemyLaserScale,
				ScaleY: -w.cfg.EnemyLaserScale,
			},
			Speed: w.cfg.EnemyLaserSpeed,
		})
		fired++
	})
	w.events.LasersFired += fired
	return fired
}

// uniform returns a value in [-half, half). A non-positive half yields 0.
func (w *World) uniform(half float64) float64 {
	if half <= 0 {
		return 0
	}
	return -half + w.rng.Float64()*2*half
}
