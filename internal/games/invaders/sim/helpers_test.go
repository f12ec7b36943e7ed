package sim

import "math"

// quietConfig disables enemy spawning so player behaviour can be observed alone.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.EnemyCap = 0
	return cfg
}

// newQuietWorld returns a world with the startup player and no enemies.
func newQuietWorld() *World {
	return New(quietConfig(), DefaultHost(), 1)
}

// setTime moves the clock to the tick closest to seconds.
func setTime(w *World, seconds float64) {
	w.clock.tick = uint64(math.Round(seconds * float64(w.clock.rate)))
}

// spawnEnemyAt places a counted enemy at (x, y); it is live after the next Flush.
func spawnEnemyAt(w *World, x, y float64) Handle {
	h := w.store.Spawn(Entity{
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
	return h
}

// spawnLaserAt places a laser fired by origin at (x, y).
func spawnLaserAt(w *World, origin Origin, x, y float64) Handle {
	scaleX, scaleY := w.cfg.PlayerLaserScale, w.cfg.PlayerLaserScale
	speed := w.cfg.PlayerLaserSpeed
	if origin == OriginEnemy {
		scaleX, scaleY = w.cfg.EnemyLaserScale, -w.cfg.EnemyLaserScale
		speed = w.cfg.EnemyLaserSpeed
	}
	return w.store.Spawn(Entity{
		Kind:   KindLaser,
		Origin: origin,
		Transform: Transform{
			X:      x,
			Y:      y,
			ScaleX: scaleX,
			ScaleY: scaleY,
		},
		Speed: speed,
	})
}

// killPlayer removes the live player as a hit would.
func killPlayer(w *World) {
	if p, ok := w.store.First(KindPlayer); ok {
		w.store.Despawn(p.Handle)
	}
	w.player.Shot(w.clock.Now())
	w.store.Flush()
}

// countLasers returns live lasers fired by origin.
func countLasers(w *World, origin Origin) int {
	n := 0
	w.store.Lasers(origin, func(*Entity) { n++ })
	return n
}
