package sim

// ExplosionRequest asks for an explosion at a position. Requests are turned
// into animated entities later in the same tick.
type ExplosionRequest struct {
	X, Y float64
}

// requestExplosion queues an explosion at (x, y).
func (w *World) requestExplosion(x, y float64) {
	w.explosions = append(w.explosions, ExplosionRequest{X: x, Y: y})
}

// SpawnExplosions turns every queued request into an explosion entity at frame 0.
func SpawnExplosions(w *World) int {
	n := len(w.explosions)
	for _, req := range w.explosions {
		w.store.Spawn(Entity{
			Kind: KindExplosion,
			Transform: Transform{
				X:      req.X,
				Y:      req.Y,
				ScaleX: 1,
				ScaleY: 1,
			},
			Timer: NewGate(w.cfg.ExplosionInterval, w.clock.Rate()),
		})
	}
	w.explosions = w.explosions[:0]
	return n
}

// AnimateExplosions advances explosion frames on their timers and removes
// explosions that ran past the last frame.
func AnimateExplosions(w *World) int {
	finished := 0
	w.store.Each(KindExplosion, func(e *Entity) {
		if e.Timer == nil || !e.Timer.Step() {
			return
		}
		e.Frame++
		if e.Frame >= w.cfg.ExplosionFrames {
			w.store.Despawn(e.Handle)
			finished++
		}
	})
	w.events.ExplosionsFinished += finished
	return finished
}
