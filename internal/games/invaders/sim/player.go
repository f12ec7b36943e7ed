package sim

import "github.com/vovakirdan/tui-invaders/internal/core"

// PlayerState tracks the player's life cycle. LastDeath is zero until the
// first death and again after every respawn.
type PlayerState struct {
	Alive     bool
	LastDeath float64
}

// Shot marks the player dead at time now.
func (p *PlayerState) Shot(now float64) {
	p.Alive = false
	p.LastDeath = now
}

// Spawned marks the player alive and clears the death time.
func (p *PlayerState) Spawned() {
	p.Alive = true
	p.LastDeath = 0
}

// CanRespawn reports whether a dead player may respawn at time now.
func (p PlayerState) CanRespawn(now, delay float64) bool {
	if p.Alive {
		return false
	}
	return p.LastDeath == 0 || now > p.LastDeath+delay
}

// TrySpawnPlayer creates the player near the bottom edge if it is dead and
// the respawn delay has passed.
func TrySpawnPlayer(w *World) bool {
	if !w.player.CanRespawn(w.clock.Now(), w.cfg.RespawnDelay) {
		return false
	}

	view := w.host.Viewport()
	w.store.Spawn(Entity{
		Kind: KindPlayer,
		Transform: Transform{
			X:      0,
			Y:      -view.H/2 + w.cfg.PlayerBottomOffset,
			ScaleX: w.cfg.ShipScale,
			ScaleY: w.cfg.ShipScale,
		},
		Speed:       w.cfg.Speed,
		ReadyToFire: true,
	})
	w.player.Spawned()
	w.events.PlayerSpawned = true
	return true
}

// MovePlayer moves the player horizontally, keeping its hull inside the viewport.
func MovePlayer(w *World, in Input) {
	p, ok := w.store.First(KindPlayer)
	if !ok {
		return
	}

	var dir float64
	switch {
	case in.Left && !in.Right:
		dir = -1
	case in.Right && !in.Left:
		dir = 1
	default:
		return
	}

	half := w.Box(p).W / 2
	limit := w.host.Viewport().W/2 - half
	if limit < 0 {
		limit = 0
	}

	x := p.Transform.X + dir*p.Speed*w.clock.Delta()
	p.Transform.X = core.ClampF(x, -limit, limit)
}

// FirePlayer emits a pair of lasers when fire is pressed while ready.
// Holding fire emits nothing more until it is released.
func FirePlayer(w *World, in Input) {
	p, ok := w.store.First(KindPlayer)
	if !ok {
		return
	}

	if !in.Fire {
		p.ReadyToFire = true
		return
	}
	if !p.ReadyToFire {
		return
	}

	x, y := p.Transform.X, p.Transform.Y+w.cfg.LaserOffsetY
	for _, dx := range [2]float64{w.cfg.LaserOffsetX, -w.cfg.LaserOffsetX} {
		w.store.Spawn(Entity{
			Kind:   KindLaser,
			Origin: OriginPlayer,
			Transform: Transform{
				X:      x + dx,
				Y:      y,
				ScaleX: w.cfg.PlayerLaserScale,
				ScaleY: w.cfg.PlayerLaserScale,
			},
			Speed: w.cfg.PlayerLaserSpeed,
		})
	}

	p.ReadyToFire = false
	w.stats.Shots += 2
	w.events.LasersFired += 2
}
