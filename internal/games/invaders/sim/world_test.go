package sim

import (
	"math/rand"
	"testing"
)

func randomInputs(seed int64, n int) []Input {
	r := rand.New(rand.NewSource(seed))
	in := make([]Input, n)
	for i := range in {
		in[i] = Input{
			Left:  r.Intn(3) == 0,
			Right: r.Intn(3) == 0,
			Fire:  r.Intn(2) == 0,
		}
	}
	return in
}

func checkInvariants(t *testing.T, w *World, tick int) {
	t.Helper()

	players := w.Store().Count(KindPlayer)
	if players > 1 {
		t.Fatalf("tick %d: %d players", tick, players)
	}
	if w.Player().Alive != (players == 1) {
		t.Fatalf("tick %d: Alive = %v with %d players", tick, w.Player().Alive, players)
	}

	enemies := w.Store().Count(KindEnemy)
	if enemies != w.Enemies().Value() {
		t.Fatalf("tick %d: counter = %d, live enemies = %d", tick, w.Enemies().Value(), enemies)
	}
	if enemies > w.Config().EnemyCap {
		t.Fatalf("tick %d: %d enemies over cap %d", tick, enemies, w.Config().EnemyCap)
	}

	view := w.Host().Viewport()
	limit := view.H/2 + w.Config().CullMargin
	w.Store().Each(KindLaser, func(l *Entity) {
		if l.Transform.Y > limit || l.Transform.Y < -limit {
			t.Fatalf("tick %d: laser at y=%f outside cull bounds", tick, l.Transform.Y)
		}
	})

	if p, ok := w.Store().First(KindPlayer); ok {
		half := w.Box(p).W / 2
		if p.Transform.X-half < -view.W/2 || p.Transform.X+half > view.W/2 {
			t.Fatalf("tick %d: player hull at x=%f leaves the viewport", tick, p.Transform.X)
		}
	}

	if spawns, despawns := len(w.store.spawns), len(w.store.despawns); spawns != 0 || despawns != 0 {
		t.Fatalf("tick %d: %d spawns and %d despawns left after flush", tick, spawns, despawns)
	}
}

func TestLongRunInvariants(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemyCap = 3
	w := New(cfg, DefaultHost(), 99)

	for i, in := range randomInputs(5, 60*60) {
		w.Step(in)
		checkInvariants(t, w, i+1)
	}

	st := w.Stats()
	if st.Shots == 0 {
		t.Error("expected the player to fire during the run")
	}
	if st.Shots%2 != 0 {
		t.Errorf("Shots = %d, lasers come in pairs", st.Shots)
	}
}

func TestDeterministicReplay(t *testing.T) {
	inputs := randomInputs(11, 1200)

	run := func() ([]View, Stats) {
		w := New(DefaultConfig(), DefaultHost(), 2024)
		for _, in := range inputs {
			w.Step(in)
		}
		return w.Snapshot(), w.Stats()
	}

	a, sa := run()
	b, sb := run()
	if sa != sb {
		t.Fatalf("stats differ: %+v vs %+v", sa, sb)
	}
	if len(a) != len(b) {
		t.Fatalf("snapshot sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("snapshot[%d] differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSnapshotOrderedByLayer(t *testing.T) {
	w := newQuietWorld()
	w.requestExplosion(0, 0)
	SpawnExplosions(w)
	spawnLaserAt(w, OriginPlayer, 0, 0)
	spawnEnemyAt(w, 100, 100)
	spawnLaserAt(w, OriginEnemy, 50, 50)
	w.store.Flush()

	views := w.Snapshot()
	if len(views) != 5 {
		t.Fatalf("Snapshot() has %d views, expected 5", len(views))
	}
	for i := 1; i < len(views); i++ {
		if views[i].Z < views[i-1].Z {
			t.Errorf("view %d (Z=%f) drawn before view %d (Z=%f)", i, views[i].Z, i-1, views[i-1].Z)
		}
		if views[i].Z == views[i-1].Z && views[i].Handle < views[i-1].Handle {
			t.Errorf("views %d and %d on one layer are out of creation order", i-1, i)
		}
	}

	expected := []Kind{KindPlayer, KindEnemy, KindLaser, KindLaser, KindExplosion}
	for i, k := range expected {
		if views[i].Kind != k {
			t.Errorf("views[%d].Kind = %v, expected %v", i, views[i].Kind, k)
		}
	}
}

func TestEnemyReplacedAfterKill(t *testing.T) {
	w := New(DefaultConfig(), DefaultHost(), 3)
	for i := 0; i < 60; i++ {
		w.Step(Input{})
	}
	e, ok := w.Store().First(KindEnemy)
	if !ok {
		t.Fatal("expected an enemy after one second")
	}

	spawnLaserAt(w, OriginPlayer, e.Transform.X, e.Transform.Y)
	w.store.Flush()
	if ev := w.Step(Input{}); ev.EnemiesDestroyed != 1 {
		t.Fatalf("EnemiesDestroyed = %d, expected 1", ev.EnemiesDestroyed)
	}
	if w.Enemies().Value() != 0 {
		t.Fatalf("counter = %d, expected 0", w.Enemies().Value())
	}

	// Next spawn gate fires at tick 120
	for w.Clock().Tick() < 120 {
		w.Step(Input{})
	}
	if w.Enemies().Value() != 1 {
		t.Errorf("counter = %d after the next spawn gate, expected 1", w.Enemies().Value())
	}
}

func TestSetEnemyFireInterval(t *testing.T) {
	w := newQuietWorld()
	spawnEnemyAt(w, 200, 0)
	w.store.Flush()
	w.SetEnemyFireInterval(0.5)

	fired := 0
	for tick := 1; tick <= 60; tick++ {
		if w.Step(Input{}).LasersFired > 0 {
			fired++
		}
	}
	if fired != 2 {
		t.Errorf("volleys in one second = %d, expected 2", fired)
	}
}
