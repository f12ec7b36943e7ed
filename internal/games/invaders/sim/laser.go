package sim

// MoveLasers advances every laser along its travel direction and removes
// those that left the viewport by more than the cull margin.
func MoveLasers(w *World) int {
	view := w.host.Viewport()
	top := view.H/2 + w.cfg.CullMargin
	bottom := -top
	step := w.clock.Delta()

	culled := 0
	w.store.Each(KindLaser, func(l *Entity) {
		dir := l.Origin.Direction()
		l.Transform.Y += dir * l.Speed * step

		if (dir > 0 && l.Transform.Y > top) || (dir < 0 && l.Transform.Y < bottom) {
			w.store.Despawn(l.Handle)
			culled++
		}
	})

	w.events.LasersCulled += culled
	return culled
}
