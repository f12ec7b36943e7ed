package sim

// ResolvePlayerHits destroys enemies touched by player lasers. Each enemy is
// claimed at most once per tick; every laser that touches an enemy is removed
// even when another laser claimed that enemy first.
func ResolvePlayerHits(w *World) int {
	blasted := make(map[Handle]bool)

	w.store.Lasers(OriginPlayer, func(l *Entity) {
		if w.store.Despawning(l.Handle) {
			return // culled this tick
		}
		laserBox := w.Box(l)

		w.store.Each(KindEnemy, func(e *Entity) {
			if !laserBox.Overlaps(w.Box(e)) {
				return
			}
			if !blasted[e.Handle] {
				blasted[e.Handle] = true
				w.store.Despawn(e.Handle)
				w.enemies.Dec()
				w.requestExplosion(e.Transform.X, e.Transform.Y)
			}
			w.store.Despawn(l.Handle)
		})
	})

	w.stats.Kills += len(blasted)
	w.events.EnemiesDestroyed += len(blasted)
	return len(blasted)
}

// ResolveEnemyHits destroys the player on the first enemy laser touching it.
func ResolveEnemyHits(w *World) bool {
	if !w.player.Alive {
		return false
	}
	p, ok := w.store.First(KindPlayer)
	if !ok {
		return false
	}
	playerBox := w.Box(p)

	hit := false
	w.store.Lasers(OriginEnemy, func(l *Entity) {
		if hit || w.store.Despawning(l.Handle) {
			return
		}
		if !w.Box(l).Overlaps(playerBox) {
			return
		}
		hit = true
		w.store.Despawn(p.Handle)
		w.store.Despawn(l.Handle)
		w.player.Shot(w.clock.Now())
		w.requestExplosion(p.Transform.X, p.Transform.Y)
	})

	if hit {
		w.stats.Deaths++
		w.events.PlayerDestroyed = true
	}
	return hit
}
