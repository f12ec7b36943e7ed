package sim

import "testing"

func TestExplosionLifetime(t *testing.T) {
	w := newQuietWorld()
	w.requestExplosion(12, 34)

	if n := SpawnExplosions(w); n != 1 {
		t.Fatalf("SpawnExplosions() = %d, expected 1", n)
	}
	if len(w.PendingExplosions()) != 0 {
		t.Error("request queue should be drained")
	}
	w.store.Flush()

	e, ok := w.Store().First(KindExplosion)
	if !ok {
		t.Fatal("explosion not spawned")
	}
	if e.Transform.X != 12 || e.Transform.Y != 34 || e.Frame != 0 {
		t.Errorf("explosion = (%f, %f) frame %d", e.Transform.X, e.Transform.Y, e.Frame)
	}
	if e.Transform.Z != LayerExplosion {
		t.Errorf("Z = %f, expected %f", e.Transform.Z, LayerExplosion)
	}

	// 16 frames x 3 ticks: visible for 47 ticks, gone on the 48th
	for i := 1; i <= 47; i++ {
		AnimateExplosions(w)
		w.store.Flush()
		if w.Store().Count(KindExplosion) != 1 {
			t.Fatalf("explosion removed after %d ticks", i)
		}
	}

	e, _ = w.Store().First(KindExplosion)
	if e.Frame != 15 {
		t.Errorf("Frame = %d before the last tick, expected 15", e.Frame)
	}

	if n := AnimateExplosions(w); n != 1 {
		t.Errorf("AnimateExplosions() = %d, expected 1", n)
	}
	w.store.Flush()
	if w.Store().Count(KindExplosion) != 0 {
		t.Error("explosion should be removed after 48 ticks")
	}
}

func TestExplosionFramesAdvanceEveryThreeTicks(t *testing.T) {
	w := newQuietWorld()
	w.requestExplosion(0, 0)
	SpawnExplosions(w)
	w.store.Flush()

	for tick := 1; tick <= 12; tick++ {
		AnimateExplosions(w)
		w.store.Flush()
		e, _ := w.Store().First(KindExplosion)
		if expected := tick / 3; e.Frame != expected {
			t.Errorf("tick %d: Frame = %d, expected %d", tick, e.Frame, expected)
		}
	}
}

func TestExplosionsAreIndependent(t *testing.T) {
	w := newQuietWorld()
	w.requestExplosion(0, 0)
	SpawnExplosions(w)
	w.store.Flush()

	for i := 0; i < 24; i++ {
		AnimateExplosions(w)
		w.store.Flush()
	}
	w.requestExplosion(50, 50)
	SpawnExplosions(w)
	w.store.Flush()

	for i := 0; i < 24; i++ {
		AnimateExplosions(w)
		w.store.Flush()
	}
	if n := w.Store().Count(KindExplosion); n != 1 {
		t.Fatalf("Count(explosion) = %d, expected only the second", n)
	}
	e, _ := w.Store().First(KindExplosion)
	if e.Transform.X != 50 || e.Frame != 8 {
		t.Errorf("remaining explosion at x=%f frame %d", e.Transform.X, e.Frame)
	}
}

func TestExplosionThroughStep(t *testing.T) {
	w := newQuietWorld()
	spawnEnemyAt(w, 0, 0)
	spawnLaserAt(w, OriginPlayer, 0, -5)
	w.store.Flush()

	// The hit lands on the next step; the explosion is spawned but not yet animated
	ev := w.Step(Input{})
	if ev.EnemiesDestroyed != 1 {
		t.Fatalf("EnemiesDestroyed = %d, expected 1", ev.EnemiesDestroyed)
	}
	if w.Store().Count(KindExplosion) != 1 {
		t.Fatal("explosion should exist after the hit step")
	}

	finished := 0
	for i := 0; i < 48; i++ {
		finished += w.Step(Input{}).ExplosionsFinished
	}
	if finished != 1 || w.Store().Count(KindExplosion) != 0 {
		t.Errorf("finished = %d, remaining = %d", finished, w.Store().Count(KindExplosion))
	}
}
